// Package timeouts defines shared timeout constants used across the
// service. Centralizing these values prevents drift between boundaries
// and makes the durations discoverable.
package timeouts

import "time"

// UpstreamFetch caps a single GitHub GraphQL request. The image endpoint
// degrades to the silent visual on expiry, so this also bounds worst-case
// response latency.
const UpstreamFetch = 4 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
