package alphavantage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := NewClient("https://www.alphavantage.co", "demo")

		if c.baseURL != "https://www.alphavantage.co" {
			t.Errorf("baseURL = %q, want %q", c.baseURL, "https://www.alphavantage.co")
		}
		if c.apiKey != "demo" {
			t.Errorf("apiKey = %q, want %q", c.apiKey, "demo")
		}
		if c.httpClient.Timeout != 30*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 30*time.Second)
		}
		if c.logger == nil {
			t.Error("logger should not be nil")
		}
	})

	t.Run("with timeout option", func(t *testing.T) {
		c := NewClient("https://www.alphavantage.co", "", WithTimeout(5*time.Second))
		if c.httpClient.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 5*time.Second)
		}
	})

	t.Run("with custom HTTP client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		c := NewClient("https://www.alphavantage.co", "", WithHTTPClient(customClient))
		if c.httpClient != customClient {
			t.Error("custom HTTP client not set")
		}
	})
}

func TestDailySeries(t *testing.T) {
	const goodBody = `{
		"Meta Data": {"2. Symbol": "IBM"},
		"Time Series (Daily)": {
			"2024-01-15": {"1. open": "185.40", "4. close": "186.05", "6. volume": "3862000"},
			"2024-01-12": {"1. open": "184.00", "4. close": "185.32", "6. volume": "4100500"}
		}
	}`

	t.Run("success returns series keyed by date", func(t *testing.T) {
		var gotQuery map[string][]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(goodBody))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "testkey", WithLogger(discardLogger()))
		series := c.DailySeries(context.Background(), "IBM")

		if len(series) != 2 {
			t.Fatalf("len(series) = %d, want 2", len(series))
		}
		day, ok := series["2024-01-15"]
		if !ok {
			t.Fatal("series missing 2024-01-15")
		}
		if day.Open != "185.40" {
			t.Errorf("Open = %q, want %q", day.Open, "185.40")
		}
		if day.Close != "186.05" {
			t.Errorf("Close = %q, want %q", day.Close, "186.05")
		}
		if day.Volume != "3862000" {
			t.Errorf("Volume = %q, want %q", day.Volume, "3862000")
		}

		if got := gotQuery["function"]; len(got) != 1 || got[0] != "TIME_SERIES_DAILY_ADJUSTED" {
			t.Errorf("function query = %v, want TIME_SERIES_DAILY_ADJUSTED", got)
		}
		if got := gotQuery["symbol"]; len(got) != 1 || got[0] != "IBM" {
			t.Errorf("symbol query = %v, want IBM", got)
		}
		if got := gotQuery["apikey"]; len(got) != 1 || got[0] != "testkey" {
			t.Errorf("apikey query = %v, want testkey", got)
		}
	})

	t.Run("transport failure yields empty series", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		c := NewClient(srv.URL, "testkey", WithLogger(discardLogger()))
		if series := c.DailySeries(context.Background(), "IBM"); series != nil {
			t.Errorf("series = %v, want nil", series)
		}
	})

	t.Run("non-success status yields empty series", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "testkey", WithLogger(discardLogger()))
		if series := c.DailySeries(context.Background(), "IBM"); series != nil {
			t.Errorf("series = %v, want nil", series)
		}
	})

	t.Run("unparseable body yields empty series", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>rate limited</html>"))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "testkey", WithLogger(discardLogger()))
		if series := c.DailySeries(context.Background(), "IBM"); series != nil {
			t.Errorf("series = %v, want nil", series)
		}
	})

	t.Run("missing series key yields empty series", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Note": "API call frequency exceeded"}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "testkey", WithLogger(discardLogger()))
		if series := c.DailySeries(context.Background(), "IBM"); series != nil {
			t.Errorf("series = %v, want nil", series)
		}
	})
}
