package query

import "strings"

// Condition is one typed filter criterion: a field, an operator, and a value.
// A zero Op means equality.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// Predicate is a single resolved field comparison. Predicates are combined
// with logical AND; there is no OR support.
type Predicate struct {
	column string
	op     Operator
	value  any
}

// ParseExpr parses a declarative "field" or "field__operator" expression into
// a Condition. The operator defaults to equality when omitted. An unknown
// operator suffix yields InvalidFilterOperatorError.
func ParseExpr(expr string, value any) (Condition, error) {
	field, opName, found := strings.Cut(expr, "__")
	op := OpExact
	if found {
		op = Operator(opName)
		if !op.Valid() {
			return Condition{}, &InvalidFilterOperatorError{Expr: expr}
		}
	}
	return Condition{Field: field, Op: op, Value: value}, nil
}

// Build resolves conditions against the entity schema, producing predicates.
// It is a pure function: no I/O, no mutation of its inputs.
func Build(s Schema, conds []Condition) ([]Predicate, error) {
	preds := make([]Predicate, 0, len(conds))
	for _, c := range conds {
		op := c.Op
		if op == "" {
			op = OpExact
		}
		if !op.Valid() {
			return nil, &InvalidFilterOperatorError{Expr: c.Field + "__" + string(op)}
		}
		column, ok := s.Column(c.Field)
		if !ok {
			return nil, &InvalidFilterFieldError{Field: c.Field}
		}
		preds = append(preds, Predicate{column: column, op: op, value: c.Value})
	}
	return preds, nil
}

// WhereClause renders predicates into a conjunctive SQL WHERE fragment with
// positional parameters starting at startArg. An empty predicate list yields
// an empty clause.
func WhereClause(preds []Predicate, startArg int) (string, []any, error) {
	if len(preds) == 0 {
		return "", nil, nil
	}

	frags := make([]string, 0, len(preds))
	var args []any
	n := startArg

	for _, p := range preds {
		frag, next, nn, err := p.op.render(p.column, p.value, args, n)
		if err != nil {
			return "", nil, err
		}
		frags = append(frags, frag)
		args = next
		n = nn
	}

	return strings.Join(frags, " AND "), args, nil
}
