package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "https://www.alphavantage.co"
	DefaultWindowDays   = 14
	DefaultAPITimeout   = 30 * time.Second
	DefaultDBPort       = 5432
	DefaultDBSSLMode    = "prefer"
	DefaultMaxConns     = 10
	DefaultMinConns     = 2
	DefaultConcurrency  = 10
	DefaultServerAddr   = ":8000"
	DefaultPageLimit    = 5
	DefaultMaxPageLimit = 100
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second

	// Tickers on the NYSE or AMEX are up to three letters; Nasdaq symbols
	// commonly run four to five.
	DefaultMaxSymbolLen = 5
)

// DefaultSymbols is the symbol set ingested when none is configured.
var DefaultSymbols = []string{"IBM", "AAPL"}

func (c *Config) applyDefaults() {
	// Provider defaults
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = DefaultBaseURL
	}
	if len(c.Provider.Symbols) == 0 {
		c.Provider.Symbols = append([]string(nil), DefaultSymbols...)
	}
	if c.Provider.WindowDays == 0 {
		c.Provider.WindowDays = DefaultWindowDays
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = DefaultAPITimeout
	}
	if c.Provider.MaxSymbolLen == 0 {
		c.Provider.MaxSymbolLen = DefaultMaxSymbolLen
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Ingest defaults
	if c.Ingest.Concurrency == 0 {
		c.Ingest.Concurrency = DefaultConcurrency
	}

	// Server defaults
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Server.DefaultLimit == 0 {
		c.Server.DefaultLimit = DefaultPageLimit
	}
	if c.Server.MaxLimit == 0 {
		c.Server.MaxLimit = DefaultMaxPageLimit
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
}
