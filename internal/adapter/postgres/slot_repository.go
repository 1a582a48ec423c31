package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"campaign-manager/internal/core/port"
)

// DB is the subset of pgxpool.Pool used by SlotRepository.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SlotRepository implements port.SlotStorage on the storage_slots table.
type SlotRepository struct {
	db DB
}

// NewSlotRepository returns a new repository instance.
func NewSlotRepository(db DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// Get returns the value stored in slot.
func (r *SlotRepository) Get(ctx context.Context, slot string) ([]byte, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM storage_slots WHERE slot = $1`, slot).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrSlotNotFound
		}
		return nil, fmt.Errorf("select slot %q: %w", slot, err)
	}
	return []byte(value), nil
}

// Set upserts the value stored in slot.
func (r *SlotRepository) Set(ctx context.Context, slot string, value []byte) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO storage_slots (slot, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (slot) DO UPDATE
        SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		slot, string(value))
	if err != nil {
		return fmt.Errorf("upsert slot %q: %w", slot, err)
	}
	return nil
}
