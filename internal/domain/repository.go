package domain

import (
	"context"
	"time"
)

// CacheRepository is the in-process cache tier of the additive resolver.
// Implementations must be safe for concurrent use.
type CacheRepository interface {
	Get(ctx context.Context, key string) (*ResolvedAdditive, error)
	Set(ctx context.Context, key string, value *ResolvedAdditive, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// DurableCache is the persistent key-value tier behind the memory cache.
// Entries older than the store's TTL are treated as absent.
type DurableCache interface {
	Get(ctx context.Context, code string) (*ResolvedAdditive, error)
	Set(ctx context.Context, code string, value *ResolvedAdditive) error
	Close() error
}

// TaxonomyClient fetches additive metadata from the remote taxonomy.
type TaxonomyClient interface {
	GetAdditive(ctx context.Context, code string) (*ResolvedAdditive, error)
}

// ProfileRepository looks up a user's health profile by opaque identity.
// Returns ErrProfileNotFound when the user has none.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*GeneticProfile, error)
}
