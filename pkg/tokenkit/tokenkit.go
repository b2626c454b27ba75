// Package tokenkit normalizes text tokens before indexing or counting.
//
// The building blocks live in subpackages:
//
//   - analysis: token stream model, whitespace tokenizer, lower casing,
//     stopword marking and CountTokens
//   - filters: outer punctuation and possessive contraction filters
//   - stoplist: the curated English stopword list and its apostrophe expansion
//   - analyzers: the three ready-made pipelines and a name registry
//
// This package re-exports the common entry points and provides Counter,
// which counts documents and optionally records the counts in a store.
package tokenkit

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cognicore/tokenkit/pkg/tokenkit/analysis"
	"github.com/cognicore/tokenkit/pkg/tokenkit/analyzers"
	"github.com/cognicore/tokenkit/pkg/tokenkit/store"
)

// Re-exported pipeline constructors.
var (
	KapicheAnalyzer                   = analyzers.KapicheAnalyzer
	KapicheAnalyzerLower              = analyzers.KapicheAnalyzerLower
	KapicheAnalyzerLowerWithStopwords = analyzers.KapicheAnalyzerLowerWithStopwords
)

// CountTokens returns the number of live tokens a produces for text.
func CountTokens(a *analysis.Analyzer, text string) int {
	return analysis.CountTokens(a, text)
}

// Options configures a Counter
type Options struct {
	// Registry resolves Analyzer; nil means analyzers.NewRegistry().
	Registry *analyzers.Registry
	// Analyzer is the pipeline name; empty means kapiche_lower_stopwords.
	Analyzer string
	// Store, when set, receives one record per counted document.
	Store  store.Store
	Logger *zap.Logger
}

// Counter counts live tokens per document with a named pipeline.
// It is safe for concurrent use: each goroutine borrows its own analyzer.
type Counter struct {
	name  string
	store store.Store
	log   *zap.Logger
	pool  sync.Pool
}

// New creates a Counter with the given dependencies
func New(opts Options) (*Counter, error) {
	reg := opts.Registry
	if reg == nil {
		reg = analyzers.NewRegistry()
	}
	name := opts.Analyzer
	if name == "" {
		name = analyzers.KapicheLowerStopwords
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Build one analyzer up front so an unknown name fails here.
	first, err := reg.Get(name)
	if err != nil {
		return nil, err
	}

	c := &Counter{name: name, store: opts.Store, log: log}
	c.pool.New = func() any {
		a, err := reg.Get(name)
		if err != nil {
			// Unreachable once the first Get succeeded; registrations are never removed.
			panic(fmt.Sprintf("tokenkit: analyzer %q vanished: %v", name, err))
		}
		return a
	}
	c.pool.Put(first)
	return c, nil
}

// Analyzer returns the pipeline name used by the counter.
func (c *Counter) Analyzer() string {
	return c.name
}

// Count returns the number of live tokens in text and, when a store is
// configured, records it under source.
func (c *Counter) Count(ctx context.Context, source, text string) (store.Record, error) {
	a := c.pool.Get().(*analysis.Analyzer)
	n := analysis.CountTokens(a, text)
	c.pool.Put(a)

	rec := store.Record{Source: source, Analyzer: c.name, Tokens: int64(n)}
	if c.store == nil {
		return rec, nil
	}

	rec, err := c.store.PutCount(ctx, rec)
	if err != nil {
		return store.Record{}, fmt.Errorf("record count for %s: %w", source, err)
	}
	c.log.Debug("count stored", zap.String("id", rec.ID), zap.String("source", source), zap.Int64("tokens", rec.Tokens))
	return rec, nil
}

// Close closes the underlying store, if any.
func (c *Counter) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}
