// README: In-memory session store (default backend).
package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	state     State
	expiresAt time.Time
}

// MemoryStore keeps sessions in a mutex-guarded map with a janitor goroutine
// sweeping expired entries.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	done    chan struct{}
	closeMu sync.Once
}

func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	s := &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.janitor(cleanupInterval)
	return s
}

func (s *MemoryStore) Get(_ context.Context, id string) (State, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return State{}, ErrNotFound
	}
	return e.state, nil
}

func (s *MemoryStore) Put(_ context.Context, state State) error {
	s.mu.Lock()
	s.entries[state.ID] = entry{state: state, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

// Close stops the janitor.
func (s *MemoryStore) Close() {
	s.closeMu.Do(func() { close(s.done) })
}

func (s *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
