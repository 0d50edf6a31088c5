package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/quantfeed/stock-data/internal/alphavantage"
	"github.com/quantfeed/stock-data/internal/model"
)

var fixedNow = time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSource struct {
	series map[string]map[string]alphavantage.DailyQuote
}

func (f *fakeSource) DailySeries(_ context.Context, symbol string) map[string]alphavantage.DailyQuote {
	return f.series[symbol]
}

type fakeStore struct {
	mu      sync.Mutex
	upserts []model.Observation
	failing map[string]bool // "SYMBOL 2024-01-15" keys that error
}

func (f *fakeStore) Upsert(_ context.Context, obs model.Observation) (int64, error) {
	key := obs.Symbol + " " + obs.DateString()
	if f.failing[key] {
		return 0, errors.New("connection refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, obs)
	return int64(len(f.upserts)), nil
}

func newOrchestrator(src Source, st Upserter, symbols []string) *Orchestrator {
	o := New(Config{
		Symbols:      symbols,
		WindowDays:   3,
		Concurrency:  4,
		MaxSymbolLen: 5,
	}, src, st, discardLogger())
	o.now = func() time.Time { return fixedNow }
	return o
}

func quote(open, close, volume string) alphavantage.DailyQuote {
	return alphavantage.DailyQuote{Open: open, Close: close, Volume: volume}
}

func TestDayWindow(t *testing.T) {
	t.Run("three days newest first", func(t *testing.T) {
		days := dayWindow(fixedNow, 3)
		want := []string{"2024-01-15", "2024-01-14", "2024-01-13"}
		if len(days) != len(want) {
			t.Fatalf("len(days) = %d, want %d", len(days), len(want))
		}
		for i := range want {
			if days[i] != want[i] {
				t.Errorf("days[%d] = %q, want %q", i, days[i], want[i])
			}
		}
	})

	t.Run("single day", func(t *testing.T) {
		days := dayWindow(fixedNow, 1)
		if len(days) != 1 || days[0] != "2024-01-15" {
			t.Errorf("days = %v, want [2024-01-15]", days)
		}
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		days := dayWindow(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 2)
		if days[1] != "2024-02-29" {
			t.Errorf("days[1] = %q, want %q", days[1], "2024-02-29")
		}
	})
}

func TestCoerceObservation(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		obs, err := coerceObservation("IBM", "2024-01-15", quote("185.40", "186.05", "3862000"), 5)
		if err != nil {
			t.Fatalf("coerceObservation failed: %v", err)
		}
		if obs.Symbol != "IBM" {
			t.Errorf("Symbol = %q, want IBM", obs.Symbol)
		}
		if obs.DateString() != "2024-01-15" {
			t.Errorf("Date = %q, want 2024-01-15", obs.DateString())
		}
		if obs.OpenPrice.String() != "185.4" {
			t.Errorf("OpenPrice = %s, want 185.4", obs.OpenPrice)
		}
		if obs.Volume != 3862000 {
			t.Errorf("Volume = %d, want 3862000", obs.Volume)
		}
	})

	t.Run("bad open price", func(t *testing.T) {
		if _, err := coerceObservation("IBM", "2024-01-15", quote("n/a", "186.05", "1"), 5); err == nil {
			t.Error("expected error for unparseable open price")
		}
	})

	t.Run("bad volume", func(t *testing.T) {
		if _, err := coerceObservation("IBM", "2024-01-15", quote("185.40", "186.05", "lots"), 5); err == nil {
			t.Error("expected error for unparseable volume")
		}
	})

	t.Run("bad date", func(t *testing.T) {
		if _, err := coerceObservation("IBM", "Jan 15", quote("185.40", "186.05", "1"), 5); err == nil {
			t.Error("expected error for unparseable date")
		}
	})

	t.Run("negative price", func(t *testing.T) {
		if _, err := coerceObservation("IBM", "2024-01-15", quote("-1.00", "186.05", "1"), 5); err == nil {
			t.Error("expected error for negative price")
		}
	})
}

func TestRunPersistsFetchedRecords(t *testing.T) {
	src := &fakeSource{series: map[string]map[string]alphavantage.DailyQuote{
		"IBM": {
			"2024-01-15": quote("185.40", "186.05", "3862000"),
			"2024-01-14": quote("184.00", "185.32", "4100500"),
			"2023-12-01": quote("160.00", "161.00", "999"), // outside window
		},
	}}
	st := &fakeStore{}

	stats := newOrchestrator(src, st, []string{"ibm"}).Run(context.Background())

	if stats.FetchedSymbols != 1 {
		t.Errorf("FetchedSymbols = %d, want 1", stats.FetchedSymbols)
	}
	if stats.Observations != 2 {
		t.Errorf("Observations = %d, want 2", stats.Observations)
	}
	if stats.Upserted != 2 {
		t.Errorf("Upserted = %d, want 2", stats.Upserted)
	}
	if len(st.upserts) != 2 {
		t.Fatalf("len(upserts) = %d, want 2", len(st.upserts))
	}
	for _, obs := range st.upserts {
		if obs.Symbol != "IBM" {
			t.Errorf("upserted symbol = %q, want IBM (uppercased)", obs.Symbol)
		}
	}
}

func TestRunIsolatesFailedSymbol(t *testing.T) {
	src := &fakeSource{series: map[string]map[string]alphavantage.DailyQuote{
		// "A" is absent: its fetch produced nothing this run.
		"B": {"2024-01-15": quote("10.00", "12.00", "100")},
	}}
	st := &fakeStore{}

	stats := newOrchestrator(src, st, []string{"A", "B"}).Run(context.Background())

	if stats.Symbols != 2 {
		t.Errorf("Symbols = %d, want 2", stats.Symbols)
	}
	if stats.FetchedSymbols != 1 {
		t.Errorf("FetchedSymbols = %d, want 1", stats.FetchedSymbols)
	}
	if stats.Upserted != 1 {
		t.Errorf("Upserted = %d, want 1", stats.Upserted)
	}
	if len(st.upserts) != 1 || st.upserts[0].Symbol != "B" {
		t.Errorf("upserts = %v, want one row for B", st.upserts)
	}
}

func TestRunDropsUnparseableDay(t *testing.T) {
	src := &fakeSource{series: map[string]map[string]alphavantage.DailyQuote{
		"IBM": {
			"2024-01-15": quote("bogus", "186.05", "3862000"),
			"2024-01-14": quote("184.00", "185.32", "4100500"),
		},
	}}
	st := &fakeStore{}

	stats := newOrchestrator(src, st, []string{"IBM"}).Run(context.Background())

	if stats.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", stats.Dropped)
	}
	if stats.Upserted != 1 {
		t.Errorf("Upserted = %d, want 1", stats.Upserted)
	}
	if len(st.upserts) != 1 || st.upserts[0].DateString() != "2024-01-14" {
		t.Errorf("upserts = %v, want only 2024-01-14", st.upserts)
	}
}

func TestRunIsolatesFailedUpsert(t *testing.T) {
	src := &fakeSource{series: map[string]map[string]alphavantage.DailyQuote{
		"IBM": {
			"2024-01-15": quote("185.40", "186.05", "3862000"),
			"2024-01-14": quote("184.00", "185.32", "4100500"),
		},
	}}
	st := &fakeStore{failing: map[string]bool{"IBM 2024-01-15": true}}

	stats := newOrchestrator(src, st, []string{"IBM"}).Run(context.Background())

	if stats.Failed != 1 {
		t.Errorf("Failed = %d, want 1", stats.Failed)
	}
	if stats.Upserted != 1 {
		t.Errorf("Upserted = %d, want 1", stats.Upserted)
	}
	if len(st.upserts) != 1 || st.upserts[0].DateString() != "2024-01-14" {
		t.Errorf("upserts = %v, want only 2024-01-14", st.upserts)
	}
}

func TestRunCompletesWithNoData(t *testing.T) {
	src := &fakeSource{}
	st := &fakeStore{}

	stats := newOrchestrator(src, st, []string{"IBM", "AAPL"}).Run(context.Background())

	if stats.FetchedSymbols != 0 || stats.Upserted != 0 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want all-zero counters", stats)
	}
	if stats.RunID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a non-zero run ID")
	}
}
