package turnaround

import "sync"

// SessionStore holds the append-only collection of completed players for
// the current booth run. Implementations must preserve insertion order.
// Built-ins: MemoryStore (default), SQLiteStore, RedisStore.
type SessionStore interface {
	AppendPlayer(p Player) error
	Players() ([]Player, error)
	Close() error
}

// MemoryStore is the default session store: a plain in-process list.
// Records live exactly as long as the process, matching the booth's
// no-persistence contract.
type MemoryStore struct {
	mu      sync.Mutex
	players []Player
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AppendPlayer(p Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = append(s.players, p)
	return nil
}

func (s *MemoryStore) Players() ([]Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
