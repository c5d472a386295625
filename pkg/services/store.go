package services

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Carlosma7/carlosma7-cv/pkg/models"
)

// LoadState describes where a resource is in its load lifecycle.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Entry is a snapshot of one resource in the store.
type Entry struct {
	State      LoadState
	Collection models.Collection
	Err        error
}

// Store holds the most recently loaded collection per resource. Collections
// are replaced wholesale, never merged. Each load carries a request token;
// completions presenting a stale token are discarded, so racing loads
// resolve to the most recently issued request.
type Store struct {
	mu      sync.Mutex
	entries map[string]*storeEntry
	log     *zap.Logger
}

type storeEntry struct {
	state      LoadState
	collection models.Collection
	err        error
	token      string
}

func NewStore(log *zap.Logger) *Store {
	return &Store{
		entries: make(map[string]*storeEntry),
		log:     log,
	}
}

func (s *Store) entry(resource string) *storeEntry {
	e, ok := s.entries[resource]
	if !ok {
		e = &storeEntry{}
		s.entries[resource] = e
	}
	return e
}

// Begin marks the resource Loading and returns the token the eventual
// completion must present.
func (s *Store) Begin(resource string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(resource)
	e.state = StateLoading
	e.token = uuid.NewString()
	return e.token
}

// Complete installs the collection if token is still current. Returns false
// when the completion was stale and discarded.
func (s *Store) Complete(resource, token string, collection models.Collection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(resource)
	if e.token != token {
		s.log.Debug("discarding stale completion", zap.String("resource", resource))
		return false
	}
	e.state = StateLoaded
	e.collection = collection
	e.err = nil
	return true
}

// Fail records the failure. The previous collection is retained, so readers
// keep whatever was last loaded (empty on first load).
func (s *Store) Fail(resource, token string, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(resource)
	if e.token != token {
		s.log.Debug("discarding stale failure", zap.String("resource", resource))
		return false
	}
	e.state = StateFailed
	e.err = err
	return true
}

// Invalidate returns the resource to Idle so the next page view reloads it.
// The last collection is kept; readers never see a flash of empty content.
func (s *Store) Invalidate(resource string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(resource)
	e.state = StateIdle
	e.token = ""
}

// Get returns a snapshot of the resource.
func (s *Store) Get(resource string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(resource)
	return Entry{State: e.state, Collection: e.collection, Err: e.err}
}
