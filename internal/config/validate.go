package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" {
		return errors.New("provider.api_key is required")
	}
	if c.Provider.WindowDays < 1 {
		return errors.New("provider.window_days must be >= 1")
	}
	if c.Provider.MaxSymbolLen < 1 {
		return errors.New("provider.max_symbol_len must be >= 1")
	}
	for _, s := range c.Provider.Symbols {
		if s == "" {
			return errors.New("provider.symbols must not contain empty entries")
		}
		if len(s) > c.Provider.MaxSymbolLen {
			return fmt.Errorf("provider.symbols entry %q exceeds max length %d", s, c.Provider.MaxSymbolLen)
		}
	}

	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if c.Ingest.Concurrency < 1 {
		return errors.New("ingest.concurrency must be >= 1")
	}

	if c.Server.DefaultLimit < 1 {
		return errors.New("server.default_limit must be >= 1")
	}
	if c.Server.MaxLimit < c.Server.DefaultLimit {
		return errors.New("server.max_limit must be >= server.default_limit")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns must be <= %s.max_conns", prefix, prefix)
	}
	return nil
}
