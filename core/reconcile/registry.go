package reconcile

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Registry holds the open session of every folder.
// Loads of the same folder are collapsed with singleflight.
type Registry struct {
	adapter Adapter

	mu       sync.RWMutex
	sessions map[string]*Session
	sf       singleflight.Group
}

// NewRegistry creates an empty registry fetching through adapter.
func NewRegistry(adapter Adapter) *Registry {
	return &Registry{
		adapter:  adapter,
		sessions: make(map[string]*Session),
	}
}

// Adapter returns the adapter sessions are loaded and persisted with.
func (r *Registry) Adapter() Adapter {
	return r.adapter
}

// Get returns the open session for folder, if any.
func (r *Registry) Get(folder string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[folder]
	return s, ok
}

// Open returns the session for folder, fetching it on first use.
func (r *Registry) Open(ctx context.Context, folder string) (*Session, error) {
	if s, ok := r.Get(folder); ok {
		return s, nil
	}

	result, err, _ := r.sf.Do(folder, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		if s, ok := r.Get(folder); ok {
			return s, nil
		}

		items, err := r.fetch(ctx, folder)
		if err != nil {
			return nil, err
		}

		s := NewSession(folder, items)
		r.mu.Lock()
		r.sessions[folder] = s
		r.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Session), nil
}

// Refresh refetches folder and replaces the session's list.
// A folder without a session is opened instead.
func (r *Registry) Refresh(ctx context.Context, folder string) (*Session, error) {
	s, ok := r.Get(folder)
	if !ok {
		return r.Open(ctx, folder)
	}
	t, err := s.Begin()
	if err != nil {
		return nil, err
	}
	defer t.End()

	items, err := r.fetch(ctx, folder)
	if err != nil {
		return nil, err
	}
	t.Replace(items)
	return s, nil
}

// Discard drops the session for folder. It reports whether one was open.
func (r *Registry) Discard(folder string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[folder]
	delete(r.sessions, folder)
	return ok
}

// Folders returns the folders with an open session, sorted.
func (r *Registry) Folders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.sessions))
	for f := range r.sessions {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) fetch(ctx context.Context, folder string) ([]Item, error) {
	items, err := r.adapter.Fetch(ctx, folder)
	if err != nil {
		return nil, &FetchError{Folder: folder, Err: err}
	}
	return items, nil
}
