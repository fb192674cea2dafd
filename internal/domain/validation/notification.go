package validation

import (
	"fmt"
	"strings"
)

// Error is a single immutable validation failure.
type Error struct {
	Message string
}

// NewError creates a validation error with the given message.
func NewError(message string) Error {
	return Error{Message: message}
}

// Notification accumulates validation errors produced during one
// validation pass. It is owned by a single caller and never shared.
type Notification struct {
	errors []Error
}

// NewNotification creates an empty notification.
func NewNotification() *Notification {
	return &Notification{}
}

// Append adds a single error, preserving insertion order.
func (n *Notification) Append(err Error) *Notification {
	n.errors = append(n.errors, err)
	return n
}

// Merge appends every error of another notification, preserving order.
func (n *Notification) Merge(other *Notification) *Notification {
	if other == nil {
		return n
	}
	n.errors = append(n.errors, other.errors...)
	return n
}

// HasError reports whether at least one error was accumulated.
func (n *Notification) HasError() bool {
	return len(n.errors) > 0
}

// FirstError returns the first accumulated error, or nil.
func (n *Notification) FirstError() *Error {
	if len(n.errors) == 0 {
		return nil
	}
	return &n.errors[0]
}

// Errors returns the accumulated errors in insertion order.
func (n *Notification) Errors() []Error {
	return n.errors
}

// NotificationError is the aggregated validation failure raised when a
// validation pass accumulated one or more errors. It carries the full
// ordered error list, never just the first entry.
type NotificationError struct {
	Message      string
	Notification *Notification
}

// NewNotificationError wraps a notification into an aggregated failure.
func NewNotificationError(message string, notification *Notification) *NotificationError {
	return &NotificationError{
		Message:      message,
		Notification: notification,
	}
}

// Error returns the failure message with every accumulated error.
func (e *NotificationError) Error() string {
	msgs := make([]string, 0, len(e.Notification.Errors()))
	for _, err := range e.Notification.Errors() {
		msgs = append(msgs, err.Message)
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(msgs, ", "))
}

// Errors returns the ordered error list carried by the failure.
func (e *NotificationError) Errors() []Error {
	return e.Notification.Errors()
}
