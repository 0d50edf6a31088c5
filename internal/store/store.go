package store

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quantfeed/stock-data/internal/query"
)

// DB is the subset of pgxpool.Pool the store uses. Each call acquires and
// releases its own pooled connection.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// observationSchema is the static field descriptor for the financial_data
// table; filters resolve against it, not against struct reflection.
var observationSchema = query.NewSchema("financial_data", map[string]string{
	"symbol":      "symbol",
	"date":        "date",
	"open_price":  "open_price",
	"close_price": "close_price",
	"volume":      "volume",
})

// ObservationStore reads and upserts daily stock observations.
type ObservationStore struct {
	db     DB
	logger *slog.Logger
}

// New creates an ObservationStore.
func New(db DB, logger *slog.Logger) *ObservationStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ObservationStore{db: db, logger: logger}
}
