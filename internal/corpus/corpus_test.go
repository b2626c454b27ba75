package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromJSONL(t *testing.T) {
	path := write(t, "docs.jsonl", `{"url":"https://a","title":"A","text":"John's dog"}
not json

{"text":"no url"}
`)

	docs, err := LoadFromJSONL(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "https://a", docs[0].Source)
	assert.Equal(t, "John's dog", docs[0].Text)
	assert.Equal(t, path+"#4", docs[1].Source)
}

func TestLoadFromJSONL_Empty(t *testing.T) {
	path := write(t, "empty.jsonl", "\n\n")
	_, err := LoadFromJSONL(path, nil)
	assert.Error(t, err)

	_, err = LoadFromJSONL(filepath.Join(t.TempDir(), "missing.jsonl"), nil)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	txt := write(t, "doc.txt", "plain text body")
	docs, err := LoadFile(txt, nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, txt, docs[0].Source)
	assert.Equal(t, "plain text body", docs[0].Text)

	page := write(t, "page.HTML", "<html><body><p>Hello</p><p>world!</p></body></html>")
	docs, err = LoadFile(page, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello world!", docs[0].Text)
}

func TestLoadFiles(t *testing.T) {
	a := write(t, "a.txt", "one")
	b := write(t, "b.jsonl", `{"text":"two"}`+"\n"+`{"text":"three"}`)

	docs, err := LoadFiles([]string{a, b}, nil)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, []string{"one", "two", "three"}, []string{docs[0].Text, docs[1].Text, docs[2].Text})

	_, err = LoadFiles([]string{a, filepath.Join(t.TempDir(), "missing.txt")}, nil)
	assert.Error(t, err)
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"paragraphs", "<p>John's</p><p>#tag</p>", "John's #tag"},
		{"script dropped", "<div>keep<script>var x = 1;</script></div>", "keep"},
		{"style dropped", "<style>p{}</style><b>bold</b> text", "bold text"},
		{"entities", "<p>Tom &amp; Jerry</p>", "Tom & Jerry"},
		{"plain", "no markup", "no markup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.input))
		})
	}
}
