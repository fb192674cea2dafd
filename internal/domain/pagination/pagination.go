package pagination

// SearchQuery carries the paging, filtering and sorting parameters of a
// list operation.
type SearchQuery struct {
	Page      int
	PerPage   int
	Terms     string
	Sort      string
	Direction string
}

// Page is one page of results.
type Page[T any] struct {
	CurrentPage int
	PerPage     int
	Total       int64
	Items       []T
}

// Map converts a page of one item type into a page of another.
func Map[T, R any](p Page[T], mapper func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, mapper(it))
	}
	return Page[R]{
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
		Items:       items,
	}
}
