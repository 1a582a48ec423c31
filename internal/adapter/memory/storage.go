package memory

import (
	"context"
	"slices"
	"sync"

	"campaign-manager/internal/core/port"
)

// Storage implements port.SlotStorage in process memory. Values do not
// survive a restart.
type Storage struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewStorage returns an empty in-memory storage.
func NewStorage() *Storage {
	return &Storage{slots: make(map[string][]byte)}
}

// Get returns a copy of the value stored in slot.
func (s *Storage) Get(ctx context.Context, slot string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[slot]
	if !ok {
		return nil, port.ErrSlotNotFound
	}
	return slices.Clone(v), nil
}

// Set stores a copy of value in slot.
func (s *Storage) Set(ctx context.Context, slot string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = slices.Clone(value)
	return nil
}
