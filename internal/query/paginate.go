package query

// Page is a validated page request: Page starts at 1, Limit is bounded by the
// caller's configuration.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the row offset for this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages computes the total page count for a filtered result set: total/limit,
// plus one when the division leaves a remainder.
func Pages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	if total%limit == 0 {
		return total / limit
	}
	return total/limit + 1
}
