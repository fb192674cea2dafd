package validation

import (
	"fmt"
	"sort"
	"strings"
)

// CheckExistence verifies that every referenced id resolves to a real
// aggregate. An empty id set short-circuits with no error. Missing ids
// produce a single error per aggregate family, each id listed once,
// sorted. Duplicate ids in the input are legal and never misreported.
func CheckExistence[T ~string](family string, ids []T, existsByIDs func([]T) ([]T, error)) (*Notification, error) {
	notification := NewNotification()
	if len(ids) == 0 {
		return notification, nil
	}

	retrieved, err := existsByIDs(ids)
	if err != nil {
		return nil, err
	}

	found := make(map[T]struct{}, len(retrieved))
	for _, id := range retrieved {
		found[id] = struct{}{}
	}

	var missing []string
	reported := make(map[T]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := found[id]; ok {
			continue
		}
		if _, dup := reported[id]; dup {
			continue
		}
		reported[id] = struct{}{}
		missing = append(missing, string(id))
	}
	if len(missing) == 0 {
		return notification, nil
	}
	sort.Strings(missing)

	notification.Append(NewError(
		fmt.Sprintf("Some %s could not be found: %s", family, strings.Join(missing, ", ")),
	))
	return notification, nil
}
