package sessions

import (
	"context"
	"sync"
	"time"

	"rightimage-site/pkg/wizard"
)

type entry struct {
	state     wizard.State
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory with a sliding TTL.
type MemoryStore struct {
	mu      sync.RWMutex
	pending map[string]*entry
	timeout time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store. Entries expire ttl after their
// last save.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		pending: make(map[string]*entry),
		timeout: ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*wizard.State, error) {
	s.mu.RLock()
	e, exists := s.pending[id]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}

	now := s.now()
	if !now.After(e.expiresAt) {
		state := e.state
		return &state, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The entry may have been saved again since the read lock was dropped.
	cur, ok := s.pending[id]
	if ok && cur != e && !now.After(cur.expiresAt) {
		state := cur.state
		return &state, nil
	}
	if ok && cur == e {
		delete(s.pending, id)
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Save(_ context.Context, state *wizard.State) error {
	s.mu.Lock()
	s.pending[state.ID] = &entry{
		state:     *state,
		expiresAt: s.now().Add(s.timeout),
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored sessions, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.pending {
		if now.After(e.expiresAt) {
			delete(s.pending, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
