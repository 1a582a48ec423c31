package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// DefaultSlot is the slot name campaigns are stored under.
const DefaultSlot = "campaigns"

// Adapter implements port.Persister on top of a port.SlotStorage. All
// storage I/O for campaigns goes through it. Read and write failures are
// logged and swallowed so a corrupt or unavailable slot never takes the
// application down.
type Adapter struct {
	storage port.SlotStorage
	slot    string
	logger  *slog.Logger
}

// NewAdapter returns an adapter reading and writing the given slot. An
// empty slot name falls back to DefaultSlot.
func NewAdapter(storage port.SlotStorage, slot string, logger *slog.Logger) *Adapter {
	if slot == "" {
		slot = DefaultSlot
	}
	return &Adapter{storage: storage, slot: slot, logger: logger}
}

// Slot returns the slot name used by the adapter.
func (a *Adapter) Slot() string {
	return a.slot
}

// Load reads the campaign sequence. An absent slot yields an empty
// sequence; an unreadable or malformed one is logged and also yields an
// empty sequence.
func (a *Adapter) Load(ctx context.Context) []domain.Campaign {
	raw, err := a.storage.Get(ctx, a.slot)
	if errors.Is(err, port.ErrSlotNotFound) {
		return []domain.Campaign{}
	}
	if err != nil {
		a.logger.Error("failed to load campaigns",
			slog.String("slot", a.slot),
			slog.Any("error", fmt.Errorf("%w: %w", domain.ErrPersistenceRead, err)))
		return []domain.Campaign{}
	}

	campaigns, err := Decode(raw)
	if err != nil {
		a.logger.Error("failed to load campaigns",
			slog.String("slot", a.slot),
			slog.Any("error", err))
		return []domain.Campaign{}
	}
	a.logger.Debug("campaigns loaded", slog.String("slot", a.slot), slog.Int("count", len(campaigns)))
	return campaigns
}

// Save serializes the full sequence and overwrites the slot. Failures are
// logged; the in-memory state stays authoritative.
func (a *Adapter) Save(ctx context.Context, campaigns []domain.Campaign) {
	data, err := Encode(campaigns)
	if err != nil {
		a.logger.Error("failed to save campaigns",
			slog.String("slot", a.slot),
			slog.Any("error", err))
		return
	}
	if err = a.storage.Set(ctx, a.slot, data); err != nil {
		a.logger.Error("failed to save campaigns",
			slog.String("slot", a.slot),
			slog.Any("error", fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)))
		return
	}
	a.logger.Debug("campaigns saved", slog.String("slot", a.slot), slog.Int("count", len(campaigns)))
}

// Encode serializes campaigns into the persisted slot layout: a JSON array
// of campaign objects. A nil sequence is written as an empty array.
func Encode(campaigns []domain.Campaign) ([]byte, error) {
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	data, err := json.Marshal(campaigns)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", domain.ErrPersistenceWrite, err)
	}
	return data, nil
}

// Decode parses a persisted slot value. Blank input and JSON null decode to
// an empty sequence.
func Decode(raw []byte) ([]domain.Campaign, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []domain.Campaign{}, nil
	}
	var campaigns []domain.Campaign
	if err := json.Unmarshal(raw, &campaigns); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", domain.ErrPersistenceRead, err)
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return campaigns, nil
}
