// Package server exposes the read API over HTTP.
//
// Both endpoints answer with a uniform envelope: {data, pagination?, info}
// where info.error is empty on success and carries a human-readable message
// on failure. Request-shape problems map to 422, persistence failures to 500,
// and a failed readiness probe to 503.
package server
