// Package store persists and queries daily stock observations in PostgreSQL.
//
// Writes go through a single-statement upsert keyed on the unique
// (symbol, date) index; reads compose the query package's predicates into
// paginated lists and average aggregations. Store-level failures surface as
// *PersistenceError, filter failures propagate from the query package
// unchanged.
package store
