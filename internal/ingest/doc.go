// Package ingest implements the ingestion orchestrator.
//
// One run enumerates the target day window and symbol set, fetches every
// symbol's daily series concurrently, coerces each in-window day into an
// observation, and upserts the results concurrently. Failures are captured
// per unit of work, so a run never fails as a whole; symbol count and window
// size are small and configuration-bounded, which is why plain fan-out with a
// semaphore suffices and no batching or provider-throttling backoff exists.
package ingest
