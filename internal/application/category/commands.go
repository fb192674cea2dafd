package category

// CreateCategoryCommand carries the inputs to create a category.
type CreateCategoryCommand struct {
	Name        string
	Description string
	Active      bool
}

// UpdateCategoryCommand carries the inputs to update a category.
type UpdateCategoryCommand struct {
	ID          string
	Name        string
	Description string
	Active      bool
}
