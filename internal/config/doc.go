// Package config loads and validates YAML configuration for the stock-data
// binaries.
//
// A config file is loaded with Load, which expands ${VAR} environment
// references before parsing, then optional fields receive defaults and the
// result is validated. Both cmd/ingest and cmd/server share the same file.
package config
