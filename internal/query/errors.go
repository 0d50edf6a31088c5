package query

import "fmt"

// InvalidFilterFieldError reports a filter naming a field the entity schema
// does not declare.
type InvalidFilterFieldError struct {
	Field string
}

func (e *InvalidFilterFieldError) Error() string {
	return fmt.Sprintf("unknown filter field %q", e.Field)
}

// InvalidFilterOperatorError reports a filter expression whose operator suffix
// is not in the supported set.
type InvalidFilterOperatorError struct {
	Expr string
}

func (e *InvalidFilterOperatorError) Error() string {
	return fmt.Sprintf("expression %q has incorrect operator", e.Expr)
}
