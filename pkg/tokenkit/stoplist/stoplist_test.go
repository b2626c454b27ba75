package stoplist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/tokenkit/pkg/tokenkit/filters"
)

func TestExpand_Contraction(t *testing.T) {
	got := Expand([]string{"don't"})

	require.Len(t, got, 8)
	assert.Contains(t, got, "don't")
	assert.Contains(t, got, "don’t")
	assert.Equal(t, "don't", got[0])
	assert.Equal(t, "don＇t", got[7])

	seen := make(map[string]bool)
	for i, w := range got {
		assert.False(t, seen[w], "duplicate variant %q", w)
		seen[w] = true
		assert.Equal(t, "don"+string(filters.Apostrophes()[i])+"t", w)
	}
}

func TestExpand_NoApostrophes(t *testing.T) {
	base := []string{"the", "a", "of", "and"}
	assert.Equal(t, base, Expand(base))
}

func TestExpand_PreservesOrder(t *testing.T) {
	got := Expand([]string{"a", "it's", "the", "won't"})

	require.Len(t, got, 1+8+1+8)
	assert.Equal(t, "a", got[0])
	assert.Equal(t, "it's", got[1])
	assert.Equal(t, "it’s", got[2])
	assert.Equal(t, "the", got[9])
	assert.Equal(t, "won't", got[10])
	assert.Equal(t, "won＇t", got[17])
}

func TestExpand_AnyVariantInBase(t *testing.T) {
	got := Expand([]string{"can’t"})
	require.Len(t, got, 8)
	assert.Equal(t, "can't", got[0])
}

func TestExpand_MultipleApostrophes(t *testing.T) {
	got := Expand([]string{"y'all'd"})
	require.Len(t, got, 8)
	assert.Equal(t, "y'all'd", got[0])
	assert.Equal(t, "y’all’d", got[1])
}

func TestExpand_Empty(t *testing.T) {
	assert.Empty(t, Expand(nil))
}

func TestEnglish(t *testing.T) {
	words := English()
	require.NotEmpty(t, words)

	seen := make(map[string]bool, len(words))
	withApostrophe := 0
	for _, w := range words {
		assert.False(t, seen[w], "duplicate stopword %q", w)
		seen[w] = true
		assert.Equal(t, strings.ToLower(w), w)
		if strings.ContainsRune(w, '\'') {
			withApostrophe++
		}
	}
	assert.True(t, seen["the"])
	assert.True(t, seen["don't"])
	assert.False(t, seen["best"])

	expanded := EnglishExpanded()
	assert.Len(t, expanded, len(words)+7*withApostrophe)
	assert.Contains(t, expanded, "don’t")
}

func TestEnglishExpanded_ReturnsCopy(t *testing.T) {
	first := EnglishExpanded()
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", EnglishExpanded()[0])

	base := English()
	base[0] = "mutated"
	assert.NotEqual(t, "mutated", English()[0])
}

func TestMerge(t *testing.T) {
	got := Merge([]string{"a", "b"}, []string{"b", "", "c"}, nil)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("terms:\n  - RT\n  - \" via \"\n  - \"\"\n"), 0o644))

	terms, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"rt", "via"}, terms)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("terms: [unclosed"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
