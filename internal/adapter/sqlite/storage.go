package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campaign-manager/internal/core/port"
)

// Storage implements port.SlotStorage on an SQLite storage_slots table.
// The table is created by db.OpenSQLite.
type Storage struct {
	sqlDB *sql.DB
}

// NewStorage wraps an open SQLite handle.
func NewStorage(sqlDB *sql.DB) *Storage {
	return &Storage{sqlDB: sqlDB}
}

// Get returns the value stored in slot.
func (s *Storage) Get(ctx context.Context, slot string) ([]byte, error) {
	var value []byte
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM storage_slots WHERE slot = ?`, slot).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, port.ErrSlotNotFound
		}
		return nil, fmt.Errorf("select slot %q: %w", slot, err)
	}
	return value, nil
}

// Set upserts the value stored in slot.
func (s *Storage) Set(ctx context.Context, slot string, value []byte) error {
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO storage_slots (slot, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET
    value = excluded.value,
    updated_at = excluded.updated_at`,
		slot, value, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("upsert slot %q: %w", slot, err)
	}
	return nil
}
