package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/tokenkit/pkg/tokenkit/internalerr"
	"github.com/cognicore/tokenkit/pkg/tokenkit/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	records map[string]store.Record
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{records: make(map[string]store.Record)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// PutCount implements store.Store.
func (s *Store) PutCount(ctx context.Context, r store.Record) (store.Record, error) {
	if r.Analyzer == "" {
		return store.Record{}, fmt.Errorf("put count: missing analyzer: %w", internalerr.ErrInvalidInput)
	}
	r = store.Prepare(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.ID] = r
	return r, nil
}

// GetCount implements store.Store.
func (s *Store) GetCount(ctx context.Context, id string) (store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return store.Record{}, fmt.Errorf("count %s: %w", id, internalerr.ErrNotFound)
	}
	return r, nil
}

// ListCounts implements store.Store.
func (s *Store) ListCounts(ctx context.Context, analyzer string, limit int) ([]store.Record, error) {
	s.mu.RLock()
	out := make([]store.Record, 0, len(s.records))
	for _, r := range s.records {
		if analyzer == "" || r.Analyzer == analyzer {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	// ULIDs sort by creation time.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// TotalTokens implements store.Store.
func (s *Store) TotalTokens(ctx context.Context, analyzer string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, r := range s.records {
		if analyzer == "" || r.Analyzer == analyzer {
			total += r.Tokens
		}
	}
	return total, nil
}
