package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gearfit/backend/internal/domain"
)

// record is one stored form submission with its results and expiry.
type record struct {
	Profile         domain.CustomerProfile
	Sport           string
	ShopID          string
	Recommendations []domain.ScoredRecommendation
	CreatedAt       time.Time
	Expiration      time.Time
}

// MemoryStore is a thread-safe in-memory session store with TTL support.
// Sessions are best-effort bookkeeping; nothing in the recommendation path
// depends on them surviving.
type MemoryStore struct {
	data  map[string]*record
	ttl   time.Duration
	mutex sync.RWMutex
}

// NewMemoryStore creates a session store. Entries expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	store := &MemoryStore{
		data: make(map[string]*record),
		ttl:  ttl,
	}

	// Cleanup goroutine removes expired entries every 10 minutes.
	go store.cleanupExpired()

	return store
}

// Record stores a form submission and returns an opaque session token.
func (s *MemoryStore) Record(ctx context.Context, profile domain.CustomerProfile, sport, shopID string) (string, error) {
	token := uuid.NewString()
	now := time.Now()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[token] = &record{
		Profile:    profile,
		Sport:      sport,
		ShopID:     shopID,
		CreatedAt:  now,
		Expiration: now.Add(s.ttl),
	}

	return token, nil
}

// Attach stores the recommendations returned for a recorded session.
func (s *MemoryStore) Attach(ctx context.Context, token string, recommendations []domain.ScoredRecommendation) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rec, exists := s.data[token]
	if !exists || time.Now().After(rec.Expiration) {
		return domain.ErrSessionNotFound
	}

	rec.Recommendations = recommendations
	return nil
}

// Get returns a recorded session, or ErrSessionNotFound if the token is
// unknown or expired.
func (s *MemoryStore) Get(token string) (domain.CustomerProfile, []domain.ScoredRecommendation, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rec, exists := s.data[token]
	if !exists || time.Now().After(rec.Expiration) {
		return nil, nil, domain.ErrSessionNotFound
	}

	return rec.Profile, rec.Recommendations, nil
}

// Size returns the current number of sessions held.
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// cleanupExpired removes expired sessions periodically.
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for token, rec := range s.data {
			if now.After(rec.Expiration) {
				delete(s.data, token)
			}
		}
		s.mutex.Unlock()
	}
}
