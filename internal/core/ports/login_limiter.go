package ports

import (
	"context"
	"time"
)

// LoginLimiter tracks failed logins per client key (IP address).
type LoginLimiter interface {
	// LockedFor reports how long key stays locked; zero means not locked.
	LockedFor(ctx context.Context, key string) (time.Duration, error)
	// RecordFailure counts a failed attempt and returns the attempts left
	// before the key gets locked.
	RecordFailure(ctx context.Context, key string) (remaining int, err error)
	Reset(ctx context.Context, key string) error
}
