package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/tokenkit/pkg/tokenkit/internalerr"
)

// Stopword sources understood besides a file path.
const (
	StopwordsNone    = "none"
	StopwordsEnglish = "english"
)

// Config represents a pipeline configuration file
type Config struct {
	Analyzers []AnalyzerConfig `yaml:"analyzers"`

	// dir is the directory of the loaded file; relative stoplist paths resolve against it.
	dir string
}

// AnalyzerConfig describes one custom pipeline.
//
// The chain is always: whitespace tokenizer, optional lower casing, optional
// stopword removal, outer punctuation stripping, optional possessive stripping.
type AnalyzerConfig struct {
	Name      string   `yaml:"name"`
	Lowercase bool     `yaml:"lowercase"`
	Markers   []string `yaml:"markers"`
	// Stopwords is "none" (or empty), "english", or a path to a stoplist YAML file.
	Stopwords      string   `yaml:"stopwords"`
	ExtraStopwords []string `yaml:"extra_stopwords"`
	// Possessive defaults to true when omitted.
	Possessive *bool `yaml:"possessive"`
}

// StripPossessive reports whether the possessive filter is part of the chain.
func (s AnalyzerConfig) StripPossessive() bool {
	return s.Possessive == nil || *s.Possessive
}

// MarkerRunes returns the configured markers as runes.
// Validate guarantees every marker is exactly one character.
func (s AnalyzerConfig) MarkerRunes() []rune {
	out := make([]rune, 0, len(s.Markers))
	for _, m := range s.Markers {
		r, _ := utf8.DecodeRuneInString(m)
		out = append(out, r)
	}
	return out
}

// HasStopwords reports whether the pipeline asks for stopword removal.
func (s AnalyzerConfig) HasStopwords() bool {
	src := strings.TrimSpace(s.Stopwords)
	return (src != "" && src != StopwordsNone) || len(s.ExtraStopwords) > 0
}

// Load reads and validates a pipeline configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes and validates a pipeline configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks names, markers and stopword sources.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Analyzers))
	for i, def := range c.Analyzers {
		if strings.TrimSpace(def.Name) == "" {
			return fmt.Errorf("analyzer #%d: missing name: %w", i+1, internalerr.ErrInvalidConfig)
		}
		if _, dup := seen[def.Name]; dup {
			return fmt.Errorf("analyzer %q: defined twice: %w", def.Name, internalerr.ErrInvalidConfig)
		}
		seen[def.Name] = struct{}{}

		for _, m := range def.Markers {
			if utf8.RuneCountInString(m) != 1 {
				return fmt.Errorf("analyzer %q: marker %q must be a single character: %w",
					def.Name, m, internalerr.ErrInvalidConfig)
			}
		}
	}
	return nil
}

// resolve returns path relative to the config file's directory.
func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}
