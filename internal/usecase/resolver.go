package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nutrilens/backend/internal/catalog"
	"github.com/nutrilens/backend/internal/domain"
)

// ResolvePolicy controls which tiers of the lookup chain a resolution may
// use. The zero value is the "best effort" policy: registry and caches only,
// never the network. Callers that can tolerate blocking set AllowNetwork.
type ResolvePolicy struct {
	AllowNetwork bool
}

// ResolverConfig holds construction options for the resolver.
type ResolverConfig struct {
	CacheTTL time.Duration
}

// AdditiveResolver resolves additive codes through a strict priority chain:
// local registry, memory cache, durable cache, remote taxonomy, synthetic
// fallback. Every tier produces the same uniform record shape; the Source
// field records which tier answered.
type AdditiveResolver struct {
	memory   domain.CacheRepository
	durable  domain.DurableCache
	client   domain.TaxonomyClient
	cacheTTL time.Duration
}

// NewAdditiveResolver creates a resolver. The durable cache and taxonomy
// client may be nil; their tiers are then skipped.
func NewAdditiveResolver(
	memory domain.CacheRepository,
	durable domain.DurableCache,
	client domain.TaxonomyClient,
	config ResolverConfig,
) *AdditiveResolver {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 168 * time.Hour // Default 7 days
	}

	return &AdditiveResolver{
		memory:   memory,
		durable:  durable,
		client:   client,
		cacheTTL: cacheTTL,
	}
}

// Resolve returns a record for the code, stopping at the first tier that
// answers. It never fails for well-formed codes: when every tier misses, the
// result is a synthetic fallback record with risk tier moderate. The only
// error condition is a malformed (empty) code.
func (r *AdditiveResolver) Resolve(ctx context.Context, code string, policy ResolvePolicy) (*domain.ResolvedAdditive, error) {
	normalized, err := domain.NormalizeAdditiveCode(code)
	if err != nil {
		return nil, err
	}

	// Tier 1: local registry always wins, regardless of cache/remote state
	if entry, ok := catalog.LookupAdditive(normalized); ok {
		return &domain.ResolvedAdditive{
			Code:        normalized,
			Name:        entry.Name,
			Risk:        entry.Risk,
			Functions:   entry.Functions,
			Description: entry.Description,
			Vegan:       entry.Vegan,
			Source:      domain.SourceLocal,
		}, nil
	}

	// Tier 2: in-process cache of earlier remote lookups
	if r.memory != nil {
		if cached, err := r.memory.Get(ctx, normalized); err == nil {
			result := *cached
			result.Source = domain.SourceCachedRemote
			return &result, nil
		}
	}

	// Tier 2b: durable cache, repopulating the memory tier on a hit
	if r.durable != nil {
		if cached, err := r.durable.Get(ctx, normalized); err == nil {
			r.storeInMemory(ctx, normalized, cached)
			return cached, nil
		}
	}

	// Tier 3: remote taxonomy, tried once per call. Failures degrade
	// silently to the fallback tier; they are never propagated.
	if policy.AllowNetwork && r.client != nil {
		fetched, err := r.client.GetAdditive(ctx, normalized)
		if err == nil {
			r.storeInMemory(ctx, normalized, fetched)
			if r.durable != nil {
				if err := r.durable.Set(ctx, normalized, fetched); err != nil {
					log.Printf("[resolver] durable cache write failed for %s: %v", normalized, err)
				}
			}
			return fetched, nil
		}
		if !errors.Is(err, domain.ErrAdditiveNotFound) {
			log.Printf("[resolver] taxonomy fetch failed for %s: %v", normalized, err)
		}
	}

	// Tier 4: synthetic fallback. Unknown codes are not errors; they get a
	// moderate record so downstream scoring can still count them.
	return &domain.ResolvedAdditive{
		Code:   normalized,
		Name:   fmt.Sprintf("Additive %s", normalized),
		Risk:   domain.RiskModerate,
		Source: domain.SourceFallback,
	}, nil
}

// ResolveAll resolves a list of codes preserving input order.
func (r *AdditiveResolver) ResolveAll(ctx context.Context, codes []string, policy ResolvePolicy) ([]domain.ResolvedAdditive, error) {
	resolved := make([]domain.ResolvedAdditive, 0, len(codes))
	for _, code := range codes {
		record, err := r.Resolve(ctx, code, policy)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *record)
	}
	return resolved, nil
}

func (r *AdditiveResolver) storeInMemory(ctx context.Context, code string, record *domain.ResolvedAdditive) {
	if r.memory == nil {
		return
	}
	if err := r.memory.Set(ctx, code, record, r.cacheTTL); err != nil {
		log.Printf("[resolver] memory cache write failed for %s: %v", code, err)
	}
}
