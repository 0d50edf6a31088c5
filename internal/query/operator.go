package query

import "fmt"

// Operator is one comparison in the closed filter operator set.
type Operator string

const (
	OpExact       Operator = "exact"
	OpNotEqual    Operator = "ne"
	OpGreater     Operator = "gt"
	OpGreaterEq   Operator = "ge"
	OpLess        Operator = "lt"
	OpLessEq      Operator = "le"
	OpIn          Operator = "in"
	OpNotIn       Operator = "notin"
	OpBetween     Operator = "between"
	OpLike        Operator = "like"
	OpILike       Operator = "ilike"
	OpStartsWith  Operator = "startswith"
	OpIStartsWith Operator = "istartswith"
	OpEndsWith    Operator = "endswith"
	OpIEndsWith   Operator = "iendswith"
	OpIsNull      Operator = "isnull"
	OpOverlaps    Operator = "overlaps"
)

// operators is the closed set; anything else is a rejected request.
var operators = map[Operator]struct{}{
	OpExact: {}, OpNotEqual: {},
	OpGreater: {}, OpGreaterEq: {}, OpLess: {}, OpLessEq: {},
	OpIn: {}, OpNotIn: {}, OpBetween: {},
	OpLike: {}, OpILike: {},
	OpStartsWith: {}, OpIStartsWith: {}, OpEndsWith: {}, OpIEndsWith: {},
	OpIsNull: {}, OpOverlaps: {},
}

// Valid reports whether op belongs to the supported operator set.
func (op Operator) Valid() bool {
	_, ok := operators[op]
	return ok
}

// render emits the SQL fragment for a single predicate. args is appended to
// in place; n is the next positional parameter index.
func (op Operator) render(column string, value any, args []any, n int) (string, []any, int, error) {
	switch op {
	case OpExact:
		return fmt.Sprintf("%s = $%d", column, n), append(args, value), n + 1, nil
	case OpNotEqual:
		return fmt.Sprintf("%s <> $%d", column, n), append(args, value), n + 1, nil
	case OpGreater:
		return fmt.Sprintf("%s > $%d", column, n), append(args, value), n + 1, nil
	case OpGreaterEq:
		return fmt.Sprintf("%s >= $%d", column, n), append(args, value), n + 1, nil
	case OpLess:
		return fmt.Sprintf("%s < $%d", column, n), append(args, value), n + 1, nil
	case OpLessEq:
		return fmt.Sprintf("%s <= $%d", column, n), append(args, value), n + 1, nil
	case OpIn:
		return fmt.Sprintf("%s = ANY($%d)", column, n), append(args, value), n + 1, nil
	case OpNotIn:
		return fmt.Sprintf("NOT (%s = ANY($%d))", column, n), append(args, value), n + 1, nil
	case OpBetween:
		pair, ok := betweenBounds(value)
		if !ok {
			return "", nil, 0, fmt.Errorf("between operator on %s requires a two-element bound", column)
		}
		frag := fmt.Sprintf("%s BETWEEN $%d AND $%d", column, n, n+1)
		return frag, append(args, pair[0], pair[1]), n + 2, nil
	case OpLike:
		return fmt.Sprintf("%s LIKE $%d", column, n), append(args, value), n + 1, nil
	case OpILike:
		return fmt.Sprintf("%s ILIKE $%d", column, n), append(args, value), n + 1, nil
	case OpStartsWith:
		return fmt.Sprintf("%s LIKE $%d", column, n), append(args, fmt.Sprintf("%v%%", value)), n + 1, nil
	case OpIStartsWith:
		return fmt.Sprintf("%s ILIKE $%d", column, n), append(args, fmt.Sprintf("%v%%", value)), n + 1, nil
	case OpEndsWith:
		return fmt.Sprintf("%s LIKE $%d", column, n), append(args, fmt.Sprintf("%%%v", value)), n + 1, nil
	case OpIEndsWith:
		return fmt.Sprintf("%s ILIKE $%d", column, n), append(args, fmt.Sprintf("%%%v", value)), n + 1, nil
	case OpIsNull:
		if isTrue(value) {
			return fmt.Sprintf("%s IS NULL", column), args, n, nil
		}
		return fmt.Sprintf("%s IS NOT NULL", column), args, n, nil
	case OpOverlaps:
		return fmt.Sprintf("%s && $%d", column, n), append(args, value), n + 1, nil
	}
	return "", nil, 0, fmt.Errorf("unsupported operator %q", op)
}

func betweenBounds(value any) ([2]any, bool) {
	switch v := value.(type) {
	case [2]any:
		return v, true
	case []any:
		if len(v) == 2 {
			return [2]any{v[0], v[1]}, true
		}
	}
	return [2]any{}, false
}

func isTrue(value any) bool {
	b, ok := value.(bool)
	return ok && b
}
