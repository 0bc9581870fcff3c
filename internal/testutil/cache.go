package testutil

import (
	"github.com/preston-bernstein/nba-stats-aggregator/internal/cache"
)

// MemoPrefix is the key prefix used by NewMemo.
const MemoPrefix = "test:"

// NewMemo returns a memo backed by a fresh in-memory store.
func NewMemo() (*cache.Memo, *cache.MemoryStore) {
	store := cache.NewMemoryStore(0)
	return cache.NewMemo(store, MemoPrefix, nil, nil), store
}
