package ingest

import (
	"time"

	"github.com/quantfeed/stock-data/internal/model"
)

// dayWindow returns ISO day identifiers from today back n-1 calendar days,
// newest first. Days are reckoned in UTC so every run agrees on what "today"
// means.
//
// Preparing the window up front and probing the fetched history with it is
// faster than parsing every date in the history and comparing.
func dayWindow(today time.Time, n int) []string {
	today = today.UTC()
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, today.AddDate(0, 0, -i).Format(model.DateFormat))
	}
	return days
}
