// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/deputui/internal/asynctask"
	"github.com/runoshun/deputui/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockRegistry is a test double for domain.Registry.
// Fields are ordered to minimize memory padding.
type MockRegistry struct {
	Packages map[string]*domain.PackageMetadata
	Errors   map[string]error
	// Delay is applied before every lookup, honouring ctx cancellation.
	Delay time.Duration
	calls []string
	mu    sync.Mutex
}

// NewMockRegistry creates a MockRegistry with initialized maps.
func NewMockRegistry() *MockRegistry {
	return &MockRegistry{
		Packages: make(map[string]*domain.PackageMetadata),
		Errors:   make(map[string]error),
	}
}

// Add registers package metadata.
func (m *MockRegistry) Add(name, repoURL string, versions ...string) {
	m.Packages[name] = &domain.PackageMetadata{Name: name, RepositoryURL: repoURL, Versions: versions}
}

// FetchPackage returns the registered metadata or error.
func (m *MockRegistry) FetchPackage(ctx context.Context, name string) (*domain.PackageMetadata, error) {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	meta, ok := m.Packages[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	return meta, nil
}

// Calls returns the names looked up so far.
func (m *MockRegistry) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockNotesSource is a test double for domain.NotesSource.
type MockNotesSource struct {
	Notes    map[string]string // keyed by release identity
	Err      error
	SourceID string
	calls    int
	mu       sync.Mutex
}

// Name returns SourceID or "mock".
func (m *MockNotesSource) Name() string {
	if m.SourceID == "" {
		return "mock"
	}
	return m.SourceID
}

// FetchNotes returns Err if set, otherwise the notes registered for the release.
func (m *MockNotesSource) FetchNotes(_ context.Context, release domain.Release) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	notes, ok := m.Notes[release.String()]
	if !ok {
		return "", fmt.Errorf("%s: %w", release, domain.ErrNotFound)
	}
	return notes, nil
}

// Calls returns how many times FetchNotes was called.
func (m *MockNotesSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockNotesCache is an in-memory domain.NotesCache.
type MockNotesCache struct {
	Entries map[string]domain.CachedNotes
	GetErr  error
	PutErr  error
	mu      sync.Mutex
}

// NewMockNotesCache creates an empty MockNotesCache.
func NewMockNotesCache() *MockNotesCache {
	return &MockNotesCache{Entries: make(map[string]domain.CachedNotes)}
}

// Get returns the entry for key.
func (m *MockNotesCache) Get(key string) (domain.CachedNotes, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return domain.CachedNotes{}, false, m.GetErr
	}
	e, ok := m.Entries[key]
	return e, ok, nil
}

// Put stores an entry.
func (m *MockNotesCache) Put(key string, entry domain.CachedNotes) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Entries[key] = entry
	return nil
}

// Prune removes entries fetched before cutoff.
func (m *MockNotesCache) Prune(cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k, e := range m.Entries {
		if e.FetchedAt.Before(cutoff) {
			delete(m.Entries, k)
			n++
		}
	}
	return n, nil
}

// MockNotesRunner records started releases and returns a fixed status.
type MockNotesRunner struct {
	Started []domain.Release
	Current asynctask.Status[string]
}

// Start records the release and returns its 1-based generation.
func (m *MockNotesRunner) Start(release domain.Release) uint64 {
	m.Started = append(m.Started, release)
	return uint64(len(m.Started))
}

// Status returns Current.
func (m *MockNotesRunner) Status() asynctask.Status[string] {
	return m.Current
}

// RecordingLogger is a domain.Logger that keeps entries in memory.
type RecordingLogger struct {
	Entries []string
	mu      sync.Mutex
}

func (l *RecordingLogger) add(level, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, fmt.Sprintf("[%s] [%s] %s", level, category, msg))
}

// Info records an info entry.
func (l *RecordingLogger) Info(category, msg string) { l.add("INFO", category, msg) }

// Debug records a debug entry.
func (l *RecordingLogger) Debug(category, msg string) { l.add("DEBUG", category, msg) }

// Warn records a warn entry.
func (l *RecordingLogger) Warn(category, msg string) { l.add("WARN", category, msg) }

// Error records an error entry.
func (l *RecordingLogger) Error(category, msg string) { l.add("ERROR", category, msg) }

// Lines returns a copy of the recorded entries.
func (l *RecordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.Entries...)
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	InitConfig *domain.Config
	FileInfo   domain.ConfigInfo
	InitCalled bool
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// Info returns the configured info.
func (m *MockConfigManager) Info() domain.ConfigInfo {
	return m.FileInfo
}

// Init records the call and returns the configured error.
func (m *MockConfigManager) Init(cfg *domain.Config) error {
	m.InitCalled = true
	m.InitConfig = cfg
	return m.InitErr
}
