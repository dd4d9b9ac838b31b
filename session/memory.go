package session

import "sync"

// MemoryRepository keeps the session in process memory
type MemoryRepository struct {
	mu      sync.RWMutex
	current Session
}

// NewMemoryRepository returns an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Get() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *MemoryRepository) Set(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
	return nil
}

func (m *MemoryRepository) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = Session{}
	return nil
}
