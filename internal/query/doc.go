// Package query implements the generic filter, sort, and pagination layer.
//
// Filters are typed Conditions (field, operator, value) resolved against a
// static per-entity Schema into Predicates, which render as a single
// conjunctive WHERE fragment with positional parameters. The operator set is
// closed; an unknown operator or field rejects the request. Only AND
// composition is supported.
package query
