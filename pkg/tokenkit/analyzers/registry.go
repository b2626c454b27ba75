package analyzers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/tokenkit/pkg/tokenkit/analysis"
	"github.com/cognicore/tokenkit/pkg/tokenkit/internalerr"
)

// Built-in analyzer names.
const (
	Kapiche               = "kapiche"
	KapicheLower          = "kapiche_lower"
	KapicheLowerStopwords = "kapiche_lower_stopwords"
)

// Factory builds a new analyzer instance.
type Factory func() *analysis.Analyzer

// Registry manages analyzer factories by name.
// Get always builds a fresh analyzer, so callers on different goroutines
// never share a pipeline.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a Registry with the built-in analyzers registered.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
	}
	r.factories[Kapiche] = KapicheAnalyzer
	r.factories[KapicheLower] = KapicheAnalyzerLower
	r.factories[KapicheLowerStopwords] = KapicheAnalyzerLowerWithStopwords
	return r
}

// Get builds the analyzer registered under the given name.
func (r *Registry) Get(name string) (*analysis.Analyzer, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("analyzer %q: %w", name, internalerr.ErrNotFound)
	}
	return f(), nil
}

// Register adds a custom analyzer factory to the registry.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("register analyzer %q: %w", name, internalerr.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("analyzer %q: %w", name, internalerr.ErrDuplicate)
	}
	r.factories[name] = f
	return nil
}

// Names returns the names of all registered analyzers, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
