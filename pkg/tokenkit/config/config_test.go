package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cognicore/tokenkit/pkg/tokenkit/analyzers"
	"github.com/cognicore/tokenkit/pkg/tokenkit/internalerr"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
analyzers:
  - name: tweets
    lowercase: true
    markers: ["#", "@", "$"]
    stopwords: english
    extra_stopwords: [RT]
  - name: plain
    possessive: false
`))
	require.NoError(t, err)
	require.Len(t, cfg.Analyzers, 2)

	tweets := cfg.Analyzers[0]
	assert.Equal(t, "tweets", tweets.Name)
	assert.True(t, tweets.Lowercase)
	assert.Equal(t, []rune{'#', '@', '$'}, tweets.MarkerRunes())
	assert.True(t, tweets.HasStopwords())
	assert.True(t, tweets.StripPossessive())

	plain := cfg.Analyzers[1]
	assert.False(t, plain.HasStopwords())
	assert.False(t, plain.StripPossessive())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "analyzers:\n  - lowercase: true\n"},
		{"duplicate name", "analyzers:\n  - name: a\n  - name: a\n"},
		{"long marker", "analyzers:\n  - name: a\n    markers: [\"##\"]\n"},
		{"empty marker", "analyzers:\n  - name: a\n    markers: [\"\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, internalerr.ErrInvalidConfig)
		})
	}

	_, err := Parse([]byte("analyzers: [unclosed"))
	assert.Error(t, err)
}

func TestLoaderEmptyPath(t *testing.T) {
	loader := Loader{}
	reg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{analyzers.Kapiche, analyzers.KapicheLower, analyzers.KapicheLowerStopwords}, reg.Names())
}

func TestLoaderMissingFile(t *testing.T) {
	loader := Loader{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoaderCustomAnalyzers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stop.yaml", "terms:\n  - via\n  - y'all\n")
	path := writeFile(t, dir, "tokenkit.yaml", `
analyzers:
  - name: tweets
    lowercase: true
    markers: ["#", "@", "$"]
    stopwords: english
    extra_stopwords: [RT]
  - name: custom_list
    lowercase: true
    stopwords: stop.yaml
  - name: keep_possessive
    possessive: false
`)

	loader := Loader{ConfigPath: path, Logger: zap.NewNop()}
	reg, err := loader.Load()
	require.NoError(t, err)
	assert.Len(t, reg.Names(), 6)

	tweets, err := reg.Get("tweets")
	require.NoError(t, err)
	assert.Equal(t, []string{"$aapl", "#stocks", "john"}, tweets.Terms("RT $AAPL the #Stocks John's!"))

	custom, err := reg.Get("custom_list")
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "news"}, custom.Terms("Via the news Y’ALL"))

	keep, err := reg.Get("keep_possessive")
	require.NoError(t, err)
	assert.Equal(t, []string{"HashTag", "John's"}, keep.Terms("#HashTag John's"))
}

func TestLoaderBadStoplistPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tokenkit.yaml", "analyzers:\n  - name: a\n    stopwords: nope.yaml\n")

	loader := Loader{ConfigPath: path}
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoaderConflictsWithBuiltin(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tokenkit.yaml", "analyzers:\n  - name: kapiche\n")

	loader := Loader{ConfigPath: path}
	_, err := loader.Load()
	assert.ErrorIs(t, err, internalerr.ErrDuplicate)
}
