package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/streamvault/catalog/internal/domain/validation"
)

// ID identifies a category aggregate.
type ID string

// NewID generates a fresh category identifier.
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

// Category is the aggregate grouping videos by theme. Deactivation is a
// soft delete: the aggregate keeps its DeletedAt timestamp.
type Category struct {
	ID          ID
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewCategory creates and validates a new category.
func NewCategory(name, description string, active bool) (*Category, error) {
	now := time.Now().UTC()
	var deletedAt *time.Time
	if !active {
		deletedAt = &now
	}
	c := &Category{
		ID:          NewID(),
		Name:        name,
		Description: description,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
		DeletedAt:   deletedAt,
	}
	if err := c.selfValidate("Failed to create Aggregate Category"); err != nil {
		return nil, err
	}
	return c, nil
}

// With reconstructs a category from stored state without validating.
func With(id ID, name, description string, active bool, createdAt, updatedAt time.Time, deletedAt *time.Time) *Category {
	return &Category{
		ID:          id,
		Name:        name,
		Description: description,
		Active:      active,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

// WithCategory returns a field-for-field copy of the source aggregate.
func WithCategory(c *Category) *Category {
	return With(c.ID, c.Name, c.Description, c.Active, c.CreatedAt, c.UpdatedAt, c.DeletedAt)
}

// Update mutates name, description and the active flag, re-validating
// the aggregate. On failure no persistence must happen.
func (c *Category) Update(name, description string, active bool) error {
	if active {
		c.Activate()
	} else {
		c.Deactivate()
	}
	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now().UTC()
	return c.selfValidate("Failed to update Aggregate Category")
}

// Activate clears the soft-delete timestamp unconditionally.
func (c *Category) Activate() *Category {
	c.Active = true
	c.DeletedAt = nil
	c.UpdatedAt = time.Now().UTC()
	return c
}

// Deactivate soft-deletes the category. An already-set DeletedAt is kept.
func (c *Category) Deactivate() *Category {
	if c.DeletedAt == nil {
		now := time.Now().UTC()
		c.DeletedAt = &now
	}
	c.Active = false
	c.UpdatedAt = time.Now().UTC()
	return c
}

// Validate appends this category's field errors to the notification.
func (c *Category) Validate(n *validation.Notification) {
	checkNameConstraints(c.Name, n)
}

func (c *Category) selfValidate(message string) error {
	n := validation.NewNotification()
	c.Validate(n)
	if n.HasError() {
		return validation.NewNotificationError(message, n)
	}
	return nil
}
