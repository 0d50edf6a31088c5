package ingest

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/quantfeed/stock-data/internal/alphavantage"
	"github.com/quantfeed/stock-data/internal/model"
)

// Source fetches one symbol's daily series; an empty result means no data
// this run.
type Source interface {
	DailySeries(ctx context.Context, symbol string) map[string]alphavantage.DailyQuote
}

// Upserter persists one observation keyed on (symbol, date).
type Upserter interface {
	Upsert(ctx context.Context, obs model.Observation) (int64, error)
}

// Config holds the knobs for one ingestion run.
type Config struct {
	Symbols      []string
	WindowDays   int
	Concurrency  int
	MaxSymbolLen int
}

// RunStats summarizes one run. Per-unit failures are visible here and in the
// logs; they never fail the run itself.
type RunStats struct {
	RunID          uuid.UUID
	Symbols        int
	FetchedSymbols int
	Observations   int
	Dropped        int
	Upserted       int
	Failed         int
	Duration       time.Duration
}

// Orchestrator drives the fetch-coerce-upsert pipeline for a bounded symbol
// set and day window.
type Orchestrator struct {
	cfg    Config
	source Source
	store  Upserter
	logger *slog.Logger

	now func() time.Time
}

// New creates an Orchestrator.
func New(cfg Config, source Source, store Upserter, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		cfg:    cfg,
		source: source,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes one full ingestion pass: enumerate the day window and symbol
// set, fetch every symbol's series concurrently, coerce each in-window day,
// and upsert every coerced observation concurrently.
//
// Failures are isolated at every level: a symbol with no data, a day that
// fails coercion, and an upsert that errors each cost only their own unit of
// work. The run always completes; partial success is the steady state.
func (o *Orchestrator) Run(ctx context.Context) RunStats {
	start := o.now()
	runID := uuid.New()
	logger := o.logger.With("run_id", runID)

	symbols := make([]string, len(o.cfg.Symbols))
	for i, s := range o.cfg.Symbols {
		symbols[i] = strings.ToUpper(s)
	}
	days := dayWindow(start, o.cfg.WindowDays)

	logger.Info("ingestion run started",
		"symbols", len(symbols),
		"window_days", len(days),
		"concurrency", o.cfg.Concurrency,
	)

	histories := o.fetchAll(ctx, logger, symbols)

	var observations []model.Observation
	var dropped int
	fetched := 0
	for i, symbol := range symbols {
		history := histories[i]
		if len(history) == 0 {
			continue
		}
		fetched++

		for _, day := range days {
			quote, ok := history[day]
			if !ok {
				continue
			}
			obs, err := coerceObservation(symbol, day, quote, o.cfg.MaxSymbolLen)
			if err != nil {
				logger.Warn("dropping unparseable day record",
					"symbol", symbol,
					"date", day,
					"error", err,
				)
				dropped++
				continue
			}
			observations = append(observations, obs)
		}
	}

	upserted, failed := o.upsertAll(ctx, logger, observations)

	stats := RunStats{
		RunID:          runID,
		Symbols:        len(symbols),
		FetchedSymbols: fetched,
		Observations:   len(observations),
		Dropped:        dropped,
		Upserted:       upserted,
		Failed:         failed,
		Duration:       o.now().Sub(start),
	}

	logger.Info("ingestion run complete",
		"fetched_symbols", stats.FetchedSymbols,
		"observations", stats.Observations,
		"dropped", stats.Dropped,
		"upserted", stats.Upserted,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)

	return stats
}

// fetchAll fans out one fetch per symbol, bounded by the configured
// concurrency, and collects each result into its own slot.
func (o *Orchestrator) fetchAll(ctx context.Context, logger *slog.Logger, symbols []string) []map[string]alphavantage.DailyQuote {
	histories := make([]map[string]alphavantage.DailyQuote, len(symbols))

	sem := make(chan struct{}, o.cfg.Concurrency)
	var wg sync.WaitGroup

	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			history := o.source.DailySeries(ctx, symbol)
			if len(history) == 0 {
				logger.Warn("no data for symbol this run", "symbol", symbol)
				return
			}
			histories[i] = history
		}(i, symbol)
	}

	wg.Wait()
	return histories
}

// upsertAll fans out one upsert per observation. A failed upsert is logged
// and counted; siblings are unaffected.
func (o *Orchestrator) upsertAll(ctx context.Context, logger *slog.Logger, observations []model.Observation) (upserted, failed int) {
	sem := make(chan struct{}, o.cfg.Concurrency)
	var wg sync.WaitGroup
	var ok, errs atomic.Int64

	for _, obs := range observations {
		wg.Add(1)
		go func(obs model.Observation) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			if _, err := o.store.Upsert(ctx, obs); err != nil {
				logger.Error("failed to upsert observation",
					"symbol", obs.Symbol,
					"date", obs.DateString(),
					"error", err,
				)
				errs.Add(1)
				return
			}
			ok.Add(1)
		}(obs)
	}

	wg.Wait()
	return int(ok.Load()), int(errs.Load())
}
