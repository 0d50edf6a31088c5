package store

import (
	"time"

	"github.com/quantfeed/stock-data/internal/query"
)

// ListFilter narrows the observation list: all fields are optional and
// independently settable.
type ListFilter struct {
	Symbol    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Validate rejects an inverted date range before any query executes.
func (f ListFilter) Validate() error {
	if f.StartDate != nil && f.EndDate != nil && !f.StartDate.Before(*f.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// Conditions maps the typed filter onto the operator-tagged condition list.
// Pure function; unset fields contribute nothing.
func (f ListFilter) Conditions() []query.Condition {
	var conds []query.Condition
	if f.Symbol != "" {
		conds = append(conds, mustExpr("symbol", f.Symbol))
	}
	if f.StartDate != nil {
		conds = append(conds, mustExpr("date__ge", *f.StartDate))
	}
	if f.EndDate != nil {
		conds = append(conds, mustExpr("date__le", *f.EndDate))
	}
	return conds
}

// StatsFilter selects the aggregation window; every field is mandatory.
type StatsFilter struct {
	Symbol    string
	StartDate time.Time
	EndDate   time.Time
}

// Validate checks the mandatory fields and the date range.
func (f StatsFilter) Validate() error {
	if !f.StartDate.Before(f.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// Conditions maps the stats filter onto the condition list.
func (f StatsFilter) Conditions() []query.Condition {
	return []query.Condition{
		mustExpr("symbol", f.Symbol),
		mustExpr("date__ge", f.StartDate),
		mustExpr("date__le", f.EndDate),
	}
}

// mustExpr parses a declarative filter expression that is known to be
// well-formed. A panic here means a malformed expression literal in this
// package.
func mustExpr(expr string, value any) query.Condition {
	c, err := query.ParseExpr(expr, value)
	if err != nil {
		panic(err)
	}
	return c
}
