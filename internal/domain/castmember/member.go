package castmember

import (
	"time"

	"github.com/google/uuid"

	"github.com/streamvault/catalog/internal/domain/validation"
)

// ID identifies a cast member aggregate.
type ID string

// NewID generates a fresh cast member identifier.
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

// Type classifies a cast member. The zero value means unset.
type Type string

const (
	TypeActor    Type = "ACTOR"
	TypeDirector Type = "DIRECTOR"
)

// TypeOf resolves a label to a known type, or the zero value.
func TypeOf(value string) Type {
	switch Type(value) {
	case TypeActor, TypeDirector:
		return Type(value)
	}
	return ""
}

// CastMember is a person credited on a video. Cast members have no
// soft-delete.
type CastMember struct {
	ID        ID
	Name      string
	Type      Type
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCastMember creates and validates a new cast member.
func NewCastMember(name string, memberType Type) (*CastMember, error) {
	now := time.Now().UTC()
	m := &CastMember{
		ID:        NewID(),
		Name:      name,
		Type:      memberType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.selfValidate("Failed to create Aggregate CastMember"); err != nil {
		return nil, err
	}
	return m, nil
}

// With reconstructs a cast member from stored state without validating.
func With(id ID, name string, memberType Type, createdAt, updatedAt time.Time) *CastMember {
	return &CastMember{
		ID:        id,
		Name:      name,
		Type:      memberType,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// WithCastMember returns a field-for-field copy of the source aggregate.
func WithCastMember(m *CastMember) *CastMember {
	return With(m.ID, m.Name, m.Type, m.CreatedAt, m.UpdatedAt)
}

// Update mutates name and type, re-validating the aggregate.
func (m *CastMember) Update(name string, memberType Type) error {
	m.Name = name
	m.Type = memberType
	m.UpdatedAt = time.Now().UTC()
	return m.selfValidate("Failed to update Aggregate CastMember")
}

// Validate appends this cast member's field errors to the notification.
func (m *CastMember) Validate(n *validation.Notification) {
	checkNameConstraints(m.Name, n)
	checkTypeConstraints(m.Type, n)
}

func (m *CastMember) selfValidate(message string) error {
	n := validation.NewNotification()
	m.Validate(n)
	if n.HasError() {
		return validation.NewNotificationError(message, n)
	}
	return nil
}
