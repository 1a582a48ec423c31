package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"campaign-manager/internal/core/port"
)

// Storage implements port.SlotStorage with one JSON file per slot inside a
// directory. Writes go to a temporary file that is renamed over the
// previous value, so a crash never leaves a half-written slot.
type Storage struct {
	dir string
}

// NewStorage returns a storage rooted at dir. The directory is created on
// the first write.
func NewStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

// Path returns the file backing slot.
func (s *Storage) Path(slot string) (string, error) {
	if strings.TrimSpace(slot) == "" {
		return "", errors.New("slot name is required")
	}
	if strings.ContainsAny(slot, `/\`) || slot == "." || slot == ".." {
		return "", fmt.Errorf("invalid slot name %q", slot)
	}
	return filepath.Join(s.dir, slot+".json"), nil
}

// Get reads the slot file.
func (s *Storage) Get(ctx context.Context, slot string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.Path(slot)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, port.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read slot file: %w", err)
	}
	return data, nil
}

// Set replaces the slot file contents.
func (s *Storage) Set(ctx context.Context, slot string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.Path(slot)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}
