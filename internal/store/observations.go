package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quantfeed/stock-data/internal/model"
	"github.com/quantfeed/stock-data/internal/query"
)

const upsertSQL = `
	INSERT INTO financial_data (symbol, date, open_price, close_price, volume)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (symbol, date) DO UPDATE SET
		open_price = EXCLUDED.open_price,
		close_price = EXCLUDED.close_price,
		volume = EXCLUDED.volume
	RETURNING id
`

// Upsert inserts the observation or, on conflict against the (symbol, date)
// uniqueness constraint, overwrites the full value set. Last write wins; the
// whole operation is one atomic statement, so concurrent upserts with the
// same key leave exactly one row holding one writer's values.
func (s *ObservationStore) Upsert(ctx context.Context, obs model.Observation) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, upsertSQL,
		obs.Symbol,
		obs.Date,
		obs.OpenPrice,
		obs.ClosePrice,
		obs.Volume,
	).Scan(&id)
	if err != nil {
		return 0, &PersistenceError{Op: "upsert observation", Err: err}
	}
	return id, nil
}

// List returns one page of observations matching the filter, together with
// the total matching row count and the total page count. The count comes from
// a separate unpaginated query, never from the limited fetch.
func (s *ObservationStore) List(
	ctx context.Context,
	filter ListFilter,
	sort []query.SortField,
	page query.Page,
) ([]model.Observation, int, int, error) {
	preds, err := query.Build(observationSchema, filter.Conditions())
	if err != nil {
		return nil, 0, 0, err
	}

	where, args, err := query.WhereClause(preds, 1)
	if err != nil {
		return nil, 0, 0, err
	}

	countSQL := "SELECT COUNT(*) FROM financial_data"
	if where != "" {
		countSQL += " WHERE " + where
	}

	var total int
	if err := s.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, 0, &PersistenceError{Op: "count observations", Err: err}
	}

	orderBy, err := query.OrderByClause(observationSchema, sort)
	if err != nil {
		return nil, 0, 0, err
	}

	listSQL := "SELECT id, symbol, date, open_price, close_price, volume FROM financial_data"
	listArgs := args
	if where != "" {
		listSQL += " WHERE " + where
	}
	if orderBy != "" {
		listSQL += " ORDER BY " + orderBy
	}
	n := len(listArgs)
	listSQL += fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
	listArgs = append(listArgs, page.Limit, page.Offset())

	rows, err := s.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, 0, &PersistenceError{Op: "list observations", Err: err}
	}
	defer rows.Close()

	var observations []model.Observation
	for rows.Next() {
		var obs model.Observation
		if err := rows.Scan(&obs.ID, &obs.Symbol, &obs.Date, &obs.OpenPrice, &obs.ClosePrice, &obs.Volume); err != nil {
			return nil, 0, 0, &PersistenceError{Op: "scan observation", Err: err}
		}
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, &PersistenceError{Op: "list observations", Err: err}
	}

	return observations, total, query.Pages(total, page.Limit), nil
}

// Stats holds the averages for one symbol over a date range. The decimals are
// null when no observations fall inside the range.
type Stats struct {
	AvgOpenPrice  decimal.NullDecimal
	AvgClosePrice decimal.NullDecimal
	AvgVolume     decimal.NullDecimal
}

// Stats computes average open price, close price, and volume for the filter's
// symbol and date range.
func (s *ObservationStore) Stats(ctx context.Context, filter StatsFilter) (Stats, error) {
	preds, err := query.Build(observationSchema, filter.Conditions())
	if err != nil {
		return Stats{}, err
	}

	where, args, err := query.WhereClause(preds, 1)
	if err != nil {
		return Stats{}, err
	}

	statsSQL := "SELECT AVG(open_price), AVG(close_price), AVG(volume) FROM financial_data WHERE " + where

	var st Stats
	if err := s.db.QueryRow(ctx, statsSQL, args...).Scan(&st.AvgOpenPrice, &st.AvgClosePrice, &st.AvgVolume); err != nil {
		return Stats{}, &PersistenceError{Op: "aggregate statistics", Err: err}
	}
	return st, nil
}
