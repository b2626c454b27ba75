package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store persists per-document token counts
type Store interface {
	Close() error

	// PutCount stores r. An empty r.ID is filled with a new ULID and a zero
	// r.CreatedAt with the current time; the stored record is returned.
	PutCount(ctx context.Context, r Record) (Record, error)
	GetCount(ctx context.Context, id string) (Record, error)
	// ListCounts returns the newest records first. An empty analyzer matches all.
	ListCounts(ctx context.Context, analyzer string, limit int) ([]Record, error)
	// TotalTokens sums Tokens over every record. An empty analyzer matches all.
	TotalTokens(ctx context.Context, analyzer string) (int64, error)
}

// Record is the token count of one document under one analyzer
type Record struct {
	ID        string
	Source    string
	Analyzer  string
	Tokens    int64
	CreatedAt time.Time
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a new ULID string. IDs are monotonic within a process.
func NewID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Prepare fills in the ID and CreatedAt of r when they are unset.
func Prepare(r Record) Record {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.ID == "" {
		r.ID = NewID(r.CreatedAt)
	}
	return r
}
