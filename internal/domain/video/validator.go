package video

import (
	"strings"
	"unicode/utf8"

	"github.com/streamvault/catalog/internal/domain/validation"
)

const (
	titleMaxLength       = 255
	descriptionMaxLength = 4000
)

// Field rules are checked in order and only the first applicable error
// is appended per field. The zero value stands in for an unset field.
func checkTitleConstraints(title string, n *validation.Notification) {
	if title == "" {
		n.Append(validation.NewError("'title' should not be null"))
		return
	}
	if strings.TrimSpace(title) == "" {
		n.Append(validation.NewError("'title' should not be empty"))
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(title)) > titleMaxLength {
		n.Append(validation.NewError("'title' must be between 1 and 255 characters"))
	}
}

func checkDescriptionConstraints(description string, n *validation.Notification) {
	if description == "" {
		n.Append(validation.NewError("'description' should not be null"))
		return
	}
	if strings.TrimSpace(description) == "" {
		n.Append(validation.NewError("'description' should not be empty"))
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(description)) > descriptionMaxLength {
		n.Append(validation.NewError("'description' must be between 1 and 4000 characters"))
	}
}

func checkLaunchedAtConstraints(launchedAt int, n *validation.Notification) {
	if launchedAt == 0 {
		n.Append(validation.NewError("'launchedAt' should not be null"))
	}
}

func checkRatingConstraints(rating Rating, n *validation.Notification) {
	if rating == "" {
		n.Append(validation.NewError("'rating' should not be null"))
	}
}
