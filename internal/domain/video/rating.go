package video

// Rating is the closed set of audience ratings. The zero value means
// unset and fails validation.
type Rating string

const (
	RatingER    Rating = "ER"
	RatingFree  Rating = "L"
	RatingAge10 Rating = "10"
	RatingAge12 Rating = "12"
	RatingAge14 Rating = "14"
	RatingAge16 Rating = "16"
	RatingAge18 Rating = "18"
)

// Ratings lists every known rating.
func Ratings() []Rating {
	return []Rating{RatingER, RatingFree, RatingAge10, RatingAge12, RatingAge14, RatingAge16, RatingAge18}
}

// RatingOf resolves a label to a known rating, or the zero value for an
// unknown label.
func RatingOf(label string) Rating {
	for _, r := range Ratings() {
		if string(r) == label {
			return r
		}
	}
	return ""
}
