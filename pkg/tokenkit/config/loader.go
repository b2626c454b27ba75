package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/tokenkit/pkg/tokenkit/analysis"
	"github.com/cognicore/tokenkit/pkg/tokenkit/analyzers"
	"github.com/cognicore/tokenkit/pkg/tokenkit/filters"
	"github.com/cognicore/tokenkit/pkg/tokenkit/stoplist"
)

// Loader loads the pipeline configuration and builds an analyzer registry
type Loader struct {
	ConfigPath string
	Logger     *zap.Logger
}

// Load returns a registry holding the built-in analyzers plus every analyzer
// defined in ConfigPath. An empty ConfigPath yields the built-ins only.
func (l *Loader) Load() (*analyzers.Registry, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	reg := analyzers.NewRegistry()
	if l.ConfigPath == "" {
		return reg, nil
	}

	cfg, err := Load(l.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	for _, def := range cfg.Analyzers {
		factory, err := cfg.Factory(def)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(def.Name, factory); err != nil {
			return nil, err
		}
		log.Debug("registered analyzer",
			zap.String("name", def.Name),
			zap.Bool("lowercase", def.Lowercase),
			zap.Strings("markers", def.Markers),
			zap.String("stopwords", def.Stopwords),
			zap.Bool("possessive", def.StripPossessive()),
		)
	}

	log.Info("analyzers loaded", zap.String("config", l.ConfigPath), zap.Int("custom", len(cfg.Analyzers)))
	return reg, nil
}

// Factory builds the analyzer factory for def. Stoplist files are read once
// here; the resulting stopword filter is shared by every analyzer the
// factory builds.
func (c *Config) Factory(def AnalyzerConfig) (analyzers.Factory, error) {
	var stop *analysis.StopWordFilter
	if def.HasStopwords() {
		words, err := c.stopwords(def)
		if err != nil {
			return nil, fmt.Errorf("analyzer %q: %w", def.Name, err)
		}
		stop = analysis.NewStopWordFilter(words)
	}
	markers := def.MarkerRunes()

	return func() *analysis.Analyzer {
		b := analysis.NewBuilder(analysis.NewWhitespaceTokenizer())
		if def.Lowercase {
			b.Filter(analysis.NewLowerCaser())
		}
		if stop != nil {
			b.Filter(stop)
		}
		b.Filter(filters.NewOuterPunctuationFilter(markers...))
		if def.StripPossessive() {
			b.Filter(filters.NewPossessiveContractionFilter())
		}
		return b.Build()
	}, nil
}

// stopwords returns the expanded stopword list for def.
func (c *Config) stopwords(def AnalyzerConfig) ([]string, error) {
	var base []string
	switch src := strings.TrimSpace(def.Stopwords); src {
	case "", StopwordsNone:
	case StopwordsEnglish:
		base = stoplist.English()
	default:
		terms, err := stoplist.LoadFile(c.resolve(src))
		if err != nil {
			return nil, err
		}
		base = terms
	}

	extra := make([]string, 0, len(def.ExtraStopwords))
	for _, w := range def.ExtraStopwords {
		extra = append(extra, strings.TrimSpace(w))
	}
	if def.Lowercase {
		for i, w := range extra {
			extra[i] = strings.ToLower(w)
		}
	}

	return stoplist.Expand(stoplist.Merge(base, extra)), nil
}
