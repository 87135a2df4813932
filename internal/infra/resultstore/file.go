package resultstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/legallens/backend/internal/application"
	"github.com/legallens/backend/internal/domain/analysis"
	"github.com/legallens/backend/internal/domain/results"
)

const defaultRetention = 10

// FileStore is the flat-file implementation of the results.Store port.
// A mutex guards the table; every Put flushes the whole table to disk
// before returning and propagates flush failures to the caller.
type FileStore struct {
	mu        sync.Mutex
	path      string
	entries   map[string]*results.StoredAnalysis
	seq       uint64
	retention int
	clock     application.Clock
	logger    *zap.Logger
}

// New loads the table from path. A missing file yields an empty store; an
// unreadable or corrupt file is logged and treated the same way.
func New(path string, clock application.Clock, logger *zap.Logger) *FileStore {
	if clock == nil {
		clock = application.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &FileStore{
		path:      path,
		entries:   make(map[string]*results.StoredAnalysis),
		retention: defaultRetention,
		clock:     clock,
		logger:    logger,
	}
	s.load()
	return s
}

func (s *FileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("result store unreadable, starting empty", zap.String("path", s.path), zap.Error(err))
		}
		return
	}
	var entries map[string]*results.StoredAnalysis
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Error("result store corrupt, starting empty", zap.String("path", s.path), zap.Error(err))
		return
	}
	s.entries = entries
	for _, e := range entries {
		if e.Seq > s.seq {
			s.seq = e.Seq
		}
	}
	s.logger.Info("result store loaded", zap.String("path", s.path), zap.Int("entries", len(entries)))
}

func (s *FileStore) Put(_ context.Context, userEmail string, rec *analysis.Record, sourceText string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	entry := &results.StoredAnalysis{
		UserEmail:  userEmail,
		Seq:        s.seq,
		CreatedAt:  s.clock.Now(),
		Record:     rec,
		SourceText: sourceText,
	}
	key := entry.Key()
	s.entries[key] = entry
	evicted := s.evictLocked(userEmail)

	if err := s.flushLocked(); err != nil {
		// Roll back fully: drop the new entry and restore what eviction
		// removed, so memory keeps matching what disk last held.
		delete(s.entries, key)
		for _, e := range evicted {
			s.entries[e.Key()] = e
		}
		return "", fmt.Errorf("flush result store: %w", err)
	}
	s.logger.Info("analysis stored", zap.String("key", key), zap.String("user", userEmail))
	return key, nil
}

func (s *FileStore) MostRecent(_ context.Context, userEmail string) (*results.StoredAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *results.StoredAnalysis
	for _, e := range s.entries {
		if e.UserEmail != userEmail {
			continue
		}
		if latest == nil || e.Seq > latest.Seq {
			latest = e
		}
	}
	return latest, nil
}

func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

// evictLocked keeps only the retention newest entries (by sequence) for the
// user and returns what it removed so a failed flush can restore them.
// Called with the mutex held.
func (s *FileStore) evictLocked(userEmail string) []*results.StoredAnalysis {
	var owned []*results.StoredAnalysis
	for _, e := range s.entries {
		if e.UserEmail == userEmail {
			owned = append(owned, e)
		}
	}
	if len(owned) <= s.retention {
		return nil
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].Seq < owned[j].Seq })
	evicted := owned[:len(owned)-s.retention]
	for _, e := range evicted {
		delete(s.entries, e.Key())
	}
	return evicted
}

// flushLocked writes the table atomically: temp file then rename.
func (s *FileStore) flushLocked() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
