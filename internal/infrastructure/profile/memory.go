// Package profile provides the ProfileRepository implementation. Keeping
// profiles behind the repository interface decouples personalization from
// any identity scheme; the engine only ever sees opaque user IDs.
package profile

import (
	"context"
	"sync"

	"github.com/nutrilens/backend/internal/domain"
)

// MemoryRepository is a thread-safe in-memory profile store.
type MemoryRepository struct {
	mutex    sync.RWMutex
	profiles map[string]*domain.GeneticProfile
}

// NewMemoryRepository creates an empty profile repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles: make(map[string]*domain.GeneticProfile),
	}
}

// GetProfile returns the profile for a user, or ErrProfileNotFound. Absence
// is the normal case for most users.
func (r *MemoryRepository) GetProfile(ctx context.Context, userID string) (*domain.GeneticProfile, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

// Register stores or replaces a user's profile.
func (r *MemoryRepository) Register(userID string, p *domain.GeneticProfile) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	p.UserID = userID
	r.profiles[userID] = p
}
