package cache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/example/sneaker-cart-service/internal/domain"
)

// MemorySnapshotStore — слот снимка корзины в памяти. Используется,
// когда база не сконфигурирована, и в тестах.
type MemorySnapshotStore struct {
	mu    sync.RWMutex
	slot  string
	store map[string][]byte
}

func NewMemorySnapshotStore(slot string) *MemorySnapshotStore {
	if slot == "" {
		slot = "cart"
	}
	return &MemorySnapshotStore{slot: slot, store: make(map[string][]byte)}
}

func (s *MemorySnapshotStore) Save(_ context.Context, lines []domain.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.store[s.slot] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemorySnapshotStore) Load(_ context.Context) ([]domain.CartLine, error) {
	s.mu.RLock()
	payload, ok := s.store[s.slot]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(payload, &lines); err != nil {
		// битый снимок равнозначен пустой корзине
		return nil, nil
	}
	return lines, nil
}

func (s *MemorySnapshotStore) Clear(_ context.Context) error {
	s.mu.Lock()
	delete(s.store, s.slot)
	s.mu.Unlock()
	return nil
}

var _ domain.SnapshotRepository = (*MemorySnapshotStore)(nil)
