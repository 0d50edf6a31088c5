package alphavantage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// functionDailyAdjusted selects the raw daily adjusted time series. The
// default output covers the latest 100 data points, which is more than the
// bounded ingestion window needs.
const functionDailyAdjusted = "TIME_SERIES_DAILY_ADJUSTED"

// DailyQuote is one day's raw record as labeled on the wire. The numbered
// label keys ("1. open") are an Alpha Vantage convention and stay inside this
// package.
type DailyQuote struct {
	Open   string `json:"1. open"`
	Close  string `json:"4. close"`
	Volume string `json:"6. volume"`
}

// dailyResponse is the success body envelope.
type dailyResponse struct {
	TimeSeries map[string]DailyQuote `json:"Time Series (Daily)"`
}

// DailySeries fetches the daily time series for one symbol, keyed by ISO date
// string.
//
// A transport failure, a non-200 status, an unparseable body, or a body
// missing the series key all degrade to a nil result: the cause is logged and
// the symbol simply contributes no data this run, so one provider outage
// cannot fail the whole pipeline. There is no retry here; a failed call is
// "no data available for this symbol on this run".
func (c *Client) DailySeries(ctx context.Context, symbol string) map[string]DailyQuote {
	query := url.Values{}
	query.Set("function", functionDailyAdjusted)
	query.Set("symbol", symbol)
	query.Set("apikey", c.apiKey)

	fullURL := c.baseURL + "/query?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		c.logger.Error("failed to build daily series request", "symbol", symbol, "error", err)
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("daily series request failed", "symbol", symbol, "error", err)
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read daily series response", "symbol", symbol, "error", err)
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("provider responded with non-success status",
			"symbol", symbol,
			"status", resp.StatusCode,
		)
		return nil
	}

	var parsed dailyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Error("provider responded with unparseable body", "symbol", symbol, "error", err)
		return nil
	}

	if parsed.TimeSeries == nil {
		c.logger.Error("provider response is missing the daily series key", "symbol", symbol)
		return nil
	}

	return parsed.TimeSeries
}
