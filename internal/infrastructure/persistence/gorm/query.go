package gorm

import (
	"fmt"
	"strings"

	"github.com/streamvault/catalog/internal/domain/pagination"
)

const defaultPerPage = 10

func perPage(value int) int {
	if value <= 0 {
		return defaultPerPage
	}
	return value
}

// orderClause builds a safe ORDER BY from the search query; unknown sort
// columns fall back to the given default.
func orderClause(query pagination.SearchQuery, defaultSort string) string {
	sort := defaultSort
	switch query.Sort {
	case "name", "title", "created_at", "updated_at":
		sort = query.Sort
	}
	direction := "asc"
	if strings.EqualFold(query.Direction, "desc") {
		direction = "desc"
	}
	return fmt.Sprintf("%s %s", sort, direction)
}
