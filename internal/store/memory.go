package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-lookup/internal/lookup"
)

var (
	// ErrNotFound is returned when no session exists for a given id.
	ErrNotFound = errors.New("no lookup session for id")
)

// Session pairs a browser session id with its own WeatherLookup instance.
type Session struct {
	ID     string
	Lookup *lookup.WeatherLookup

	lastSeen time.Time
}

// MemoryStore is a concurrency-safe in-memory registry of lookup sessions.
type MemoryStore struct {
	mu sync.RWMutex

	// key: session id
	data map[string]*Session

	maxAge    time.Duration // idle sessions older than this are swept (0 = never)
	newLookup func() *lookup.WeatherLookup
	now       func() time.Time
}

// NewMemoryStore creates a store that builds a fresh WeatherLookup for each
// new session with newLookup.
func NewMemoryStore(maxAge time.Duration, newLookup func() *lookup.WeatherLookup) *MemoryStore {
	return &MemoryStore{
		data:      make(map[string]*Session),
		maxAge:    maxAge,
		newLookup: newLookup,
		now:       time.Now,
	}
}

// Create registers a new session under a random id.
func (s *MemoryStore) Create() *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		Lookup:   s.newLookup(),
		lastSeen: s.now(),
	}

	s.mu.Lock()
	s.data[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id and marks it as seen.
func (s *MemoryStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.lastSeen = s.now()
	return sess, nil
}

// GetOrCreate returns the session for id, or a new one when id is unknown.
// The boolean reports whether a session was created.
func (s *MemoryStore) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if sess, err := s.Get(id); err == nil {
			return sess, false
		}
	}
	return s.Create(), true
}

// Sweep drops sessions idle for longer than maxAge and returns how many were
// removed. Sessions with a lookup in flight are kept.
func (s *MemoryStore) Sweep() int {
	if s.maxAge <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.data {
		if sess.lastSeen.Before(cutoff) && sess.Lookup.State().Mode() != lookup.Loading {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
