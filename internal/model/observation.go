package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the canonical calendar-day layout used throughout the system.
const DateFormat = "2006-01-02"

// Observation is one symbol's single-day open price, close price, and volume.
//
// The (Symbol, Date) pair is the natural key: it is unique across the
// financial_data table and is the conflict target for upserts. Prices are
// decimals because binary floats accumulate rounding error under repeated
// aggregation.
type Observation struct {
	ID         int64           `json:"-"`
	Symbol     string          `json:"symbol"`
	Date       time.Time       `json:"-"`
	OpenPrice  decimal.Decimal `json:"open_price"`
	ClosePrice decimal.Decimal `json:"close_price"`
	Volume     int64           `json:"volume"`
}

// DateString returns the observation date in ISO format.
func (o Observation) DateString() string {
	return o.Date.Format(DateFormat)
}

// Validate checks the observation invariants.
func (o Observation) Validate(maxSymbolLen int) error {
	if o.Symbol == "" {
		return fmt.Errorf("symbol is empty")
	}
	if len(o.Symbol) > maxSymbolLen {
		return fmt.Errorf("symbol %q exceeds max length %d", o.Symbol, maxSymbolLen)
	}
	if o.Symbol != strings.ToUpper(o.Symbol) {
		return fmt.Errorf("symbol %q is not uppercase", o.Symbol)
	}
	if o.Date.IsZero() {
		return fmt.Errorf("date is not set")
	}
	if o.OpenPrice.IsNegative() {
		return fmt.Errorf("open price %s is negative", o.OpenPrice)
	}
	if o.ClosePrice.IsNegative() {
		return fmt.Errorf("close price %s is negative", o.ClosePrice)
	}
	if o.Volume < 0 {
		return fmt.Errorf("volume %d is negative", o.Volume)
	}
	return nil
}

// ParseDate parses an ISO calendar-day string into a date-only time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
