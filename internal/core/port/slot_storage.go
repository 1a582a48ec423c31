package port

import (
	"context"
	"errors"

	"campaign-manager/internal/core/domain"
)

// ErrSlotNotFound is returned by SlotStorage.Get when nothing has been
// written to the slot yet.
var ErrSlotNotFound = errors.New("slot not found")

// SlotStorage is a synchronous key-value store holding whole values under
// named slots. It is an outbound port; implementations exist for a local
// file, memory, PostgreSQL, Redis and SQLite.
type SlotStorage interface {
	// Get returns the raw value stored in slot, or ErrSlotNotFound.
	Get(ctx context.Context, slot string) ([]byte, error)
	// Set overwrites the value stored in slot.
	Set(ctx context.Context, slot string, value []byte) error
}

// Persister loads and saves the full campaign sequence. Implementations
// never fail: read problems yield an empty sequence and write problems are
// logged and dropped.
type Persister interface {
	Load(ctx context.Context) []domain.Campaign
	Save(ctx context.Context, campaigns []domain.Campaign)
}
