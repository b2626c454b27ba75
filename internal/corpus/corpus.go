package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Document is one unit of text to analyze
type Document struct {
	Source string `json:"url"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// LoadFromJSONL loads documents from a JSONL file with proper error handling.
// Malformed lines are logged and skipped. Documents without a url get
// "path#line" as their source.
func LoadFromJSONL(path string, log *zap.Logger) ([]Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var docs []Document
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var doc Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			log.Warn("skipping malformed JSON line",
				zap.String("path", path), zap.Int("line", i+1), zap.Error(err))
			continue
		}
		if doc.Source == "" {
			doc.Source = fmt.Sprintf("%s#%d", path, i+1)
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no valid documents found in %s", path)
	}

	return docs, nil
}

// LoadFile loads the documents in path, choosing the reader by extension:
// .jsonl holds one document per line, .html/.htm is reduced to its text,
// anything else is read as a single plain-text document.
func LoadFile(path string, log *zap.Logger) ([]Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return LoadFromJSONL(path, log)
	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file %s: %w", path, err)
		}
		return []Document{{Source: path, Text: StripHTML(string(data))}}, nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file %s: %w", path, err)
		}
		return []Document{{Source: path, Text: string(data)}}, nil
	}
}

// LoadFiles loads every path in order.
func LoadFiles(paths []string, log *zap.Logger) ([]Document, error) {
	var docs []Document
	for _, p := range paths {
		d, err := LoadFile(p, log)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d...)
	}
	return docs, nil
}
