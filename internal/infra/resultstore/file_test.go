package resultstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legallens/backend/internal/domain/analysis"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func testRecord(summary string) *analysis.Record {
	return &analysis.Record{
		DocumentSummary: summary,
		RiskAnalysis:    "OVERALL RISK LEVEL: LOW",
		Metadata:        analysis.Metadata{analysis.MetaConfidence: 0.9},
	}
}

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analysis_storage.json")
	clock := fixedClock{t: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
	return New(path, clock, nil), path
}

func TestPutAndMostRecent(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	key, err := store.Put(ctx, "alice@example.com", testRecord("first"), "text one")
	require.NoError(t, err)
	assert.Contains(t, key, "alice@example.com_")

	_, err = store.Put(ctx, "alice@example.com", testRecord("second"), "text two")
	require.NoError(t, err)

	latest, err := store.MostRecent(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.Record.DocumentSummary)
	assert.Equal(t, "text two", latest.SourceText)

	// File was flushed on every Put.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestMostRecentUnknownUser(t *testing.T) {
	store, _ := newTestStore(t)

	latest, err := store.MostRecent(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestRetentionKeepsNewestTen(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 11; i++ {
		_, err := store.Put(ctx, "alice@example.com", testRecord(fmt.Sprintf("doc %d", i)), "text")
		require.NoError(t, err)
	}
	// An unrelated user is untouched by eviction.
	_, err := store.Put(ctx, "bob@example.com", testRecord("bob doc"), "text")
	require.NoError(t, err)

	store.mu.Lock()
	aliceCount := 0
	oldestSurvives := false
	for _, e := range store.entries {
		if e.UserEmail == "alice@example.com" {
			aliceCount++
			if e.Record.DocumentSummary == "doc 1" {
				oldestSurvives = true
			}
		}
	}
	store.mu.Unlock()

	assert.Equal(t, 10, aliceCount)
	assert.False(t, oldestSurvives)

	latest, err := store.MostRecent(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "doc 11", latest.Record.DocumentSummary)
}

func TestReloadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis_storage.json")
	clock := fixedClock{t: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
	ctx := context.Background()

	store := New(path, clock, nil)
	key, err := store.Put(ctx, "alice@example.com", testRecord("persisted"), "text")
	require.NoError(t, err)

	reloaded := New(path, clock, nil)
	latest, err := reloaded.MostRecent(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, key, latest.Key())
	assert.Equal(t, "persisted", latest.Record.DocumentSummary)

	// Sequence continues past reloaded entries instead of restarting.
	key2, err := reloaded.Put(ctx, "alice@example.com", testRecord("after reload"), "text")
	require.NoError(t, err)
	assert.NotEqual(t, key, key2)
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis_storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := New(path, fixedClock{t: time.Now()}, nil)
	latest, err := store.MostRecent(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestFlushFailurePropagatesAndRollsBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The store path sits under a regular file, so the flush cannot create
	// its parent directory.
	store := New(filepath.Join(blocker, "store.json"), fixedClock{t: time.Now()}, nil)
	ctx := context.Background()

	_, err := store.Put(ctx, "alice@example.com", testRecord("doomed"), "text")
	require.Error(t, err)

	latest, err := store.MostRecent(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Nil(t, latest, "failed write must not remain visible")
}

func TestFlushFailureRestoresEvictedEntries(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		_, err := store.Put(ctx, "alice@example.com", testRecord(fmt.Sprintf("doc %d", i)), "text")
		require.NoError(t, err)
	}

	// Redirect the store file under a regular file so the next flush fails.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	store.mu.Lock()
	store.path = filepath.Join(blocker, "store.json")
	store.mu.Unlock()

	_, err := store.Put(ctx, "alice@example.com", testRecord("doc 11"), "text")
	require.Error(t, err)

	store.mu.Lock()
	summaries := make(map[string]bool)
	for _, e := range store.entries {
		if e.UserEmail == "alice@example.com" {
			summaries[e.Record.DocumentSummary] = true
		}
	}
	store.mu.Unlock()

	assert.Len(t, summaries, 10)
	assert.True(t, summaries["doc 1"], "entry evicted during the failed put must be restored")
	assert.False(t, summaries["doc 11"], "failed write must not remain visible")
}

func TestConcurrentPuts(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	keys := make([]string, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user%d@example.com", i%4)
			key, err := store.Put(ctx, user, testRecord("concurrent"), "text")
			assert.NoError(t, err)
			keys[i] = key
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}
