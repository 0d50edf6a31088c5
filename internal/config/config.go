package config

import "time"

// Config is the root configuration shared by the ingest and server binaries.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Database DBConfig       `yaml:"database"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Server   ServerConfig   `yaml:"server"`
}

// ProviderConfig holds Alpha Vantage API settings.
type ProviderConfig struct {
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key"`
	Symbols      []string      `yaml:"symbols"`
	WindowDays   int           `yaml:"window_days"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxSymbolLen int           `yaml:"max_symbol_len"`
}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// IngestConfig holds ingestion run settings.
type IngestConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// ServerConfig holds read-API server settings.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	DefaultLimit int           `yaml:"default_limit"`
	MaxLimit     int           `yaml:"max_limit"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}
