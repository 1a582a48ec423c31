package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"campaign-manager/internal/core/port"
)

// Storage implements port.SlotStorage with one Redis string per slot.
type Storage struct {
	rdb redis.Cmdable
}

// NewStorage wraps a Redis client.
func NewStorage(rdb redis.Cmdable) *Storage {
	return &Storage{rdb: rdb}
}

// Get returns the value stored in slot.
func (s *Storage) Get(ctx context.Context, slot string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, SlotKey(slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, port.ErrSlotNotFound
		}
		return nil, fmt.Errorf("redis get %q: %w", slot, err)
	}
	return v, nil
}

// Set overwrites the value stored in slot. Slots never expire.
func (s *Storage) Set(ctx context.Context, slot string, value []byte) error {
	if err := s.rdb.Set(ctx, SlotKey(slot), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", slot, err)
	}
	return nil
}
