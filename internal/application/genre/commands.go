package genre

// CreateGenreCommand carries the inputs to create a genre.
type CreateGenreCommand struct {
	Name       string
	Active     bool
	Categories []string
}

// UpdateGenreCommand carries the inputs to update a genre.
type UpdateGenreCommand struct {
	ID         string
	Name       string
	Active     bool
	Categories []string
}
