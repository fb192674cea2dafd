package genre

import (
	"strings"
	"unicode/utf8"

	"github.com/streamvault/catalog/internal/domain/validation"
)

const (
	nameMinLength = 1
	nameMaxLength = 255
)

// Name rules are checked in order and only the first applicable error is
// appended. The zero value stands in for an unset name.
func checkNameConstraints(name string, n *validation.Notification) {
	if name == "" {
		n.Append(validation.NewError("'name' should not be null"))
		return
	}
	if strings.TrimSpace(name) == "" {
		n.Append(validation.NewError("'name' should not be empty"))
		return
	}
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	if length < nameMinLength || length > nameMaxLength {
		n.Append(validation.NewError("'name' must be between 1 and 255 characters"))
	}
}
