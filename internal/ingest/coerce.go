package ingest

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/quantfeed/stock-data/internal/alphavantage"
	"github.com/quantfeed/stock-data/internal/model"
)

// coerceObservation turns one day's raw provider record into an Observation.
// The provider's label-keyed strings end at this boundary; from here on the
// entity carries typed decimals and a real date.
func coerceObservation(symbol, day string, q alphavantage.DailyQuote, maxSymbolLen int) (model.Observation, error) {
	date, err := model.ParseDate(day)
	if err != nil {
		return model.Observation{}, err
	}

	open, err := decimal.NewFromString(q.Open)
	if err != nil {
		return model.Observation{}, fmt.Errorf("parse open price %q: %w", q.Open, err)
	}

	closePrice, err := decimal.NewFromString(q.Close)
	if err != nil {
		return model.Observation{}, fmt.Errorf("parse close price %q: %w", q.Close, err)
	}

	volume, err := strconv.ParseInt(q.Volume, 10, 64)
	if err != nil {
		return model.Observation{}, fmt.Errorf("parse volume %q: %w", q.Volume, err)
	}

	obs := model.Observation{
		Symbol:     symbol,
		Date:       date,
		OpenPrice:  open,
		ClosePrice: closePrice,
		Volume:     volume,
	}
	if err := obs.Validate(maxSymbolLen); err != nil {
		return model.Observation{}, err
	}
	return obs, nil
}
