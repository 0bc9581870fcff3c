package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultCapacity bounds a MemoryStore created with a non-positive capacity.
const DefaultCapacity = 256

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore keeps entries in a mutex-guarded map. When full, expired entries are
// dropped first, then the entry closest to expiry.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  map[string]memoryEntry
	capacity int
	now      func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore holding at most capacity entries.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		entries:  make(map[string]memoryEntry),
		capacity: capacity,
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || !s.now().Before(entry.expiresAt) {
		return nil, ErrMiss
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.capacity {
		s.evictLocked(now)
	}
	s.entries[key] = memoryEntry{value: stored, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.entries, k)
	}
	return nil
}

func (s *MemoryStore) Purge(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make([]string, 0)
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
			removed = append(removed, k)
		}
	}
	sort.Strings(removed)
	return removed, nil
}

// Len reports the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) evictLocked(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	if len(s.entries) < s.capacity {
		return
	}

	var victim string
	var soonest time.Time
	for k, e := range s.entries {
		if victim == "" || e.expiresAt.Before(soonest) {
			victim, soonest = k, e.expiresAt
		}
	}
	delete(s.entries, victim)
}
