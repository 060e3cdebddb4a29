package workspace

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound indicates a workspace has no stored preference. Callers
// treat it as "no constraints", not as a failure.
var ErrNotFound = errors.New("workspace preference not found")

// Store loads workspace preferences. Implementations may hit a database
// or remote service; callers bound them with a context deadline and
// fall back to no constraints when the load fails.
type Store interface {
	Load(ctx context.Context, workspaceID string) (*Preference, error)
}

// MemoryStore is an in-memory Store for tests and single-process
// deployments. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	prefs map[string]Preference
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]Preference)}
}

// Load returns the preference for the workspace, or ErrNotFound.
func (s *MemoryStore) Load(_ context.Context, workspaceID string) (*Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prefs[workspaceID]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy so callers cannot mutate stored state through the pointer.
	return &p, nil
}

// Set stores or replaces the preference for a workspace.
func (s *MemoryStore) Set(workspaceID string, pref Preference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[workspaceID] = pref
}

// Delete removes a workspace's preference.
func (s *MemoryStore) Delete(workspaceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.prefs, workspaceID)
}
