package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cognicore/tokenkit/pkg/tokenkit/internalerr"
	"github.com/cognicore/tokenkit/pkg/tokenkit/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"), WithLogger(zap.NewNop()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

// TestSQLiteIntegrationBasic tests basic put/get/list operations
func TestSQLiteIntegrationBasic(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	created := time.Date(2024, 5, 1, 12, 0, 0, 123, time.UTC)
	rec, err := st.PutCount(ctx, store.Record{
		Source:    "docs/a.txt",
		Analyzer:  "kapiche_lower_stopwords",
		Tokens:    42,
		CreatedAt: created,
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)

	got, err := st.GetCount(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Source, got.Source)
	assert.Equal(t, rec.Analyzer, got.Analyzer)
	assert.Equal(t, int64(42), got.Tokens)
	assert.True(t, created.Equal(got.CreatedAt))

	_, err = st.GetCount(ctx, "missing")
	assert.ErrorIs(t, err, internalerr.ErrNotFound)
}

// TestSQLiteIntegrationReplace tests that re-putting an ID updates it
func TestSQLiteIntegrationReplace(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	rec, err := st.PutCount(ctx, store.Record{Source: "a", Analyzer: "kapiche", Tokens: 1})
	require.NoError(t, err)

	rec.Tokens = 9
	_, err = st.PutCount(ctx, rec)
	require.NoError(t, err)

	list, err := st.ListCounts(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(9), list[0].Tokens)
}

// TestSQLiteIntegrationListAndTotal tests filtering, ordering and sums
func TestSQLiteIntegrationListAndTotal(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	base := time.Now().UTC()
	var ids []string
	for i, analyzer := range []string{"kapiche", "kapiche", "kapiche_lower"} {
		rec, err := st.PutCount(ctx, store.Record{
			Source:    "doc",
			Analyzer:  analyzer,
			Tokens:    int64(i + 1),
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		})
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	list, err := st.ListCounts(ctx, "kapiche", 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[1], list[0].ID)
	assert.Equal(t, ids[0], list[1].ID)

	limited, err := st.ListCounts(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, ids[2], limited[0].ID)

	total, err := st.TotalTokens(ctx, "kapiche")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	all, err := st.TotalTokens(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(6), all)

	none, err := st.TotalTokens(ctx, "unknown")
	require.NoError(t, err)
	assert.Zero(t, none)
}

// TestSQLiteIntegrationReopen tests persistence across connections
func TestSQLiteIntegrationReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	st, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	rec, err := st.PutCount(ctx, store.Record{Source: "a", Analyzer: "kapiche", Tokens: 3})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.GetCount(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Tokens)
}

// TestSQLiteIntegrationConcurrentWrites tests concurrent puts
func TestSQLiteIntegrationConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := st.PutCount(ctx, store.Record{Source: "doc", Analyzer: "kapiche", Tokens: int64(i)})
			if err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent put: %v", err)
	}

	total, err := st.TotalTokens(ctx, "kapiche")
	require.NoError(t, err)
	assert.Equal(t, int64(45), total)
}
