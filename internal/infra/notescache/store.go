// Package notescache provides a JSON file-based implementation of domain.NotesCache.
package notescache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/runoshun/deputui/internal/domain"
)

// Ensure Store implements domain.NotesCache.
var _ domain.NotesCache = (*Store)(nil)

// storeVersion is bumped when the file layout changes; older files are discarded.
const storeVersion = 1

// snapshot is the on-disk layout.
type snapshot struct {
	Entries map[string]domain.CachedNotes `json:"entries"`
	Version int                           `json:"version"`
}

// Store implements domain.NotesCache using a JSON file guarded by flock.
// The lock lives in a sidecar file so the data file can be replaced by rename.
type Store struct {
	path string
}

// New creates a Store backed by path. The file and its directory are
// created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Get returns the cached entry for key.
func (s *Store) Get(key string) (domain.CachedNotes, bool, error) {
	var (
		entry domain.CachedNotes
		found bool
	)
	err := s.view(func(snap *snapshot) {
		entry, found = snap.Entries[key]
	})
	return entry, found, err
}

// Put stores an entry for key.
func (s *Store) Put(key string, entry domain.CachedNotes) error {
	return s.update(func(snap *snapshot) bool {
		snap.Entries[key] = entry
		return true
	})
}

// Prune removes entries fetched before cutoff and reports how many went.
func (s *Store) Prune(cutoff time.Time) (int, error) {
	removed := 0
	err := s.update(func(snap *snapshot) bool {
		for key, e := range snap.Entries {
			if e.FetchedAt.Before(cutoff) {
				delete(snap.Entries, key)
				removed++
			}
		}
		return removed > 0
	})
	return removed, err
}

// view runs fn on the current contents under a shared lock.
func (s *Store) view(fn func(*snapshot)) error {
	unlock, err := s.lock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	fn(snap)
	return nil
}

// update runs fn under an exclusive lock and saves when fn reports a change.
func (s *Store) update(fn func(*snapshot) bool) error {
	unlock, err := s.lock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	if !fn(snap) {
		return nil
	}
	return s.save(snap)
}

// lock takes a flock of the given kind on the sidecar file.
func (s *Store) lock(how int) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	f, err := os.OpenFile(s.path+".lock", os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open cache lock: %w", err)
	}
	if err := syscall.Flock(int(f.Fd()), how); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("lock cache: %w", err)
	}

	return func() {
		_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
		_ = f.Close()
	}, nil
}

// load reads the cache file. A missing, corrupt or outdated file reads as empty,
// since every entry can be fetched again.
func (s *Store) load() (*snapshot, error) {
	fresh := &snapshot{Entries: map[string]domain.CachedNotes{}, Version: storeVersion}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}

	var snap snapshot
	if json.Unmarshal(raw, &snap) != nil || snap.Version != storeVersion {
		return fresh, nil
	}
	if snap.Entries == nil {
		snap.Entries = map[string]domain.CachedNotes{}
	}
	return &snap, nil
}

// save replaces the cache file through a temp file in the same directory.
func (s *Store) save(snap *snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create cache temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}
