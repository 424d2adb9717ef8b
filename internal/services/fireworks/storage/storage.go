// Package storage defines the contribution-count cache consumed by the
// fireworks service. Caching is optional: the service works without a
// configured store, it just hits the GitHub API on every request.
package storage

import (
	"context"
	"time"
)

// ContributionEntry is one cached daily count.
type ContributionEntry struct {
	Username  string
	Day       string // UTC calendar day, YYYY-MM-DD
	Count     int
	FetchedAt time.Time
}

// ContributionCache stores daily contribution counts keyed by user and
// day. Implementations decide nothing about freshness; the service
// applies its TTL against FetchedAt.
type ContributionCache interface {
	Get(ctx context.Context, username, day string) (ContributionEntry, bool, error)
	Put(ctx context.Context, entry ContributionEntry) error
	Close() error
}
