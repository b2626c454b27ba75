package stoplist

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk stoplist shape:
//
//	terms:
//	  - rt
//	  - via
type File struct {
	Terms []string `yaml:"terms"`
}

// LoadFile reads a stoplist YAML file. Terms are trimmed and lower-cased so
// they match the output of a case-folding pipeline.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stoplist %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse stoplist %s: %w", path, err)
	}

	terms := make([]string, 0, len(f.Terms))
	for _, t := range f.Terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms, nil
}
