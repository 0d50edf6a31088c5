// Package database provides connection pool management for PostgreSQL.
//
// The single financial_data table lives here; both the ingestion pipeline and
// the read API share one pgxpool.Pool.
package database
