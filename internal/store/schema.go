package store

import (
	"context"
	"fmt"
)

// EnsureSchema creates the financial_data table and its unique composite
// (symbol, date) index if they do not exist. The index is what makes the
// ON CONFLICT upsert target work.
func (s *ObservationStore) EnsureSchema(ctx context.Context, maxSymbolLen int) error {
	createTable := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS financial_data (
			id BIGSERIAL PRIMARY KEY,
			symbol VARCHAR(%d) NOT NULL,
			date DATE NOT NULL,
			open_price DECIMAL NOT NULL,
			close_price DECIMAL NOT NULL,
			volume BIGINT NOT NULL
		)
	`, maxSymbolLen)

	if _, err := s.db.Exec(ctx, createTable); err != nil {
		return &PersistenceError{Op: "create financial_data table", Err: err}
	}

	createIndex := `
		CREATE UNIQUE INDEX IF NOT EXISTS ix_symbol_date
		ON financial_data (symbol, date)
	`
	if _, err := s.db.Exec(ctx, createIndex); err != nil {
		return &PersistenceError{Op: "create symbol/date index", Err: err}
	}

	return nil
}
