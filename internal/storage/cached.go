package storage

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedStore is a read-through cache in front of another Store. Writes and
// deletes evict the key so the next read goes to the backend.
type CachedStore struct {
	Store
	cache *cache.Cache

	mu  sync.Mutex
	gen map[string]uint64
}

// NewCachedStore wraps s with entries living for ttl.
func NewCachedStore(s Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		Store: s,
		cache: cache.New(ttl, 2*ttl),
		gen:   make(map[string]uint64),
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if data, found := s.cache.Get(key); found {
		return append([]byte(nil), data.([]byte)...), nil
	}

	s.mu.Lock()
	gen := s.gen[key]
	s.mu.Unlock()

	data, err := s.Store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	// A write that landed during the backend read makes data stale.
	s.mu.Lock()
	if s.gen[key] == gen {
		s.cache.Set(key, append([]byte(nil), data...), cache.DefaultExpiration)
	}
	s.mu.Unlock()
	return data, nil
}

func (s *CachedStore) Put(ctx context.Context, key string, value []byte) error {
	defer s.invalidate(key)
	return s.Store.Put(ctx, key, value)
}

func (s *CachedStore) Delete(ctx context.Context, key string) error {
	defer s.invalidate(key)
	return s.Store.Delete(ctx, key)
}

func (s *CachedStore) invalidate(key string) {
	s.mu.Lock()
	s.gen[key]++
	s.cache.Delete(key)
	s.mu.Unlock()
}
