package query

import (
	"fmt"
	"strings"
)

// Direction orders a sort field.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortField is one entry of a stable multi-key sort; sort fields apply in
// slice order.
type SortField struct {
	Field     string
	Direction Direction
}

// OrderByClause renders sort fields into an SQL ORDER BY fragment, resolving
// field names against the schema. An empty sort yields an empty clause.
func OrderByClause(s Schema, sort []SortField) (string, error) {
	if len(sort) == 0 {
		return "", nil
	}

	frags := make([]string, 0, len(sort))
	for _, sf := range sort {
		column, ok := s.Column(sf.Field)
		if !ok {
			return "", &InvalidFilterFieldError{Field: sf.Field}
		}
		switch sf.Direction {
		case Asc:
			frags = append(frags, column+" ASC")
		case Desc:
			frags = append(frags, column+" DESC")
		default:
			return "", fmt.Errorf("invalid sort direction %q for field %q", sf.Direction, sf.Field)
		}
	}

	return strings.Join(frags, ", "), nil
}
