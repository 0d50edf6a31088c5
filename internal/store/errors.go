package store

import (
	"errors"
	"fmt"
)

// ErrInvalidDateRange rejects a filter whose end date does not come after its
// start date. It is raised before any query executes.
var ErrInvalidDateRange = errors.New("end_date must come after start_date")

// PersistenceError wraps a store-level failure (connectivity loss, constraint
// violation outside the upsert conflict target) with the operation that hit it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
