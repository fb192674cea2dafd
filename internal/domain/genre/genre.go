package genre

import (
	"time"

	"github.com/google/uuid"

	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/validation"
)

// ID identifies a genre aggregate.
type ID string

// NewID generates a fresh genre identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// IDFrom builds an identifier from its string form.
func IDFrom(value string) ID {
	return ID(value)
}

// String returns the underlying value.
func (id ID) String() string {
	return string(id)
}

// Genre is the aggregate classifying videos. It references categories by
// id in an ordered list; duplicates are allowed and insertion order is
// preserved.
type Genre struct {
	ID         ID
	Name       string
	Active     bool
	Categories []category.ID
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// NewGenre creates and validates a new genre with no categories.
func NewGenre(name string, active bool) (*Genre, error) {
	now := time.Now().UTC()
	var deletedAt *time.Time
	if !active {
		deletedAt = &now
	}
	g := &Genre{
		ID:         NewID(),
		Name:       name,
		Active:     active,
		Categories: []category.ID{},
		CreatedAt:  now,
		UpdatedAt:  now,
		DeletedAt:  deletedAt,
	}
	if err := g.selfValidate("Failed to create Aggregate Genre"); err != nil {
		return nil, err
	}
	return g, nil
}

// With reconstructs a genre from stored state without validating. The
// category list is copied.
func With(id ID, name string, active bool, categories []category.ID, createdAt, updatedAt time.Time, deletedAt *time.Time) *Genre {
	return &Genre{
		ID:         id,
		Name:       name,
		Active:     active,
		Categories: append([]category.ID{}, categories...),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

// WithGenre returns a field-for-field copy of the source aggregate,
// including the category list order.
func WithGenre(g *Genre) *Genre {
	return With(g.ID, g.Name, g.Active, g.Categories, g.CreatedAt, g.UpdatedAt, g.DeletedAt)
}

// Update replaces name, active flag and the whole category list,
// re-validating the aggregate.
func (g *Genre) Update(name string, active bool, categories []category.ID) error {
	if active {
		g.Activate()
	} else {
		g.Deactivate()
	}
	g.Name = name
	g.Categories = append([]category.ID{}, categories...)
	g.UpdatedAt = time.Now().UTC()
	return g.selfValidate("Failed to update Aggregate Genre")
}

// Activate clears the soft-delete timestamp unconditionally.
func (g *Genre) Activate() {
	g.DeletedAt = nil
	g.Active = true
	g.UpdatedAt = time.Now().UTC()
}

// Deactivate soft-deletes the genre. An already-set DeletedAt is kept.
func (g *Genre) Deactivate() {
	if g.DeletedAt == nil {
		now := time.Now().UTC()
		g.DeletedAt = &now
	}
	g.Active = false
	g.UpdatedAt = time.Now().UTC()
}

// AddCategory appends one category reference. A zero id is a no-op and
// does not touch UpdatedAt.
func (g *Genre) AddCategory(id category.ID) *Genre {
	if id == "" {
		return g
	}
	g.Categories = append(g.Categories, id)
	g.UpdatedAt = time.Now().UTC()
	return g
}

// AddCategories appends every given category reference in order.
func (g *Genre) AddCategories(ids []category.ID) *Genre {
	if len(ids) == 0 {
		return g
	}
	g.Categories = append(g.Categories, ids...)
	g.UpdatedAt = time.Now().UTC()
	return g
}

// RemoveCategory removes the first occurrence of the given reference.
func (g *Genre) RemoveCategory(id category.ID) *Genre {
	if id == "" {
		return g
	}
	for i, c := range g.Categories {
		if c == id {
			g.Categories = append(g.Categories[:i], g.Categories[i+1:]...)
			break
		}
	}
	g.UpdatedAt = time.Now().UTC()
	return g
}

// Validate appends this genre's field errors to the notification.
func (g *Genre) Validate(n *validation.Notification) {
	checkNameConstraints(g.Name, n)
}

func (g *Genre) selfValidate(message string) error {
	n := validation.NewNotification()
	g.Validate(n)
	if n.HasError() {
		return validation.NewNotificationError(message, n)
	}
	return nil
}
