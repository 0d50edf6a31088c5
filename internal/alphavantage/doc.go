// Package alphavantage implements the upstream source client.
//
// The client makes one outbound GET per symbol and fully absorbs upstream
// failures: every failure mode degrades to an empty series with its cause
// logged, never an error to the caller. Retry/backoff for provider throttling
// is a future extension point around this boundary.
package alphavantage
