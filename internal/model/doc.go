// Package model defines the persisted entities shared across stock-data.
//
// Conventions:
//   - Prices: shopspring decimal, never float64
//   - Dates: calendar days only, formatted as "2006-01-02"
//   - Symbols: uppercase tickers, bounded length
package model
