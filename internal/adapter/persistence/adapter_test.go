package persistence

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/adapter/memory"
	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
	"campaign-manager/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: "b", Name: "Spring Sale", StartDate: "2024-03-01", EndDate: "2024-03-31", Clicks: 120, Cost: 300, Revenue: 450},
		{ID: "a", Name: "winter", StartDate: "2023-12-01", EndDate: "2024-01-15", Clicks: 0, Cost: 12.25, Revenue: 0.5},
		{ID: "c", Name: "Ünïcode ✓", StartDate: "2024-05-05", EndDate: "", Clicks: -3, Cost: -1, Revenue: 1e6},
	}
}

func TestAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(memory.NewStorage(), "", discardLogger())
	assert.Equal(t, DefaultSlot, a.Slot())

	want := sampleCampaigns()
	a.Save(ctx, want)
	assert.Equal(t, want, a.Load(ctx))

	a.Save(ctx, nil)
	got := a.Load(ctx)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdapterLoadAbsentSlot(t *testing.T) {
	a := NewAdapter(memory.NewStorage(), "campaigns", discardLogger())
	got := a.Load(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdapterLoadCorruptSlot(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()
	require.NoError(t, storage.Set(ctx, "campaigns", []byte(`{not json`)))

	var logs bytes.Buffer
	a := NewAdapter(storage, "campaigns", slog.New(slog.NewTextHandler(&logs, nil)))

	got := a.Load(ctx)
	assert.Empty(t, got)
	assert.Contains(t, logs.String(), "failed to load campaigns")
	assert.Contains(t, logs.String(), domain.ErrPersistenceRead.Error())
}

func TestAdapterLoadStorageError(t *testing.T) {
	storage := mocks.NewMockSlotStorage(t)
	storage.EXPECT().Get(mock.Anything, "campaigns").Return(nil, errors.New("disk on fire"))

	a := NewAdapter(storage, "campaigns", discardLogger())
	assert.Empty(t, a.Load(context.Background()))
}

func TestAdapterSaveStorageError(t *testing.T) {
	storage := mocks.NewMockSlotStorage(t)
	storage.EXPECT().Set(mock.Anything, "campaigns", []byte(`[]`)).Return(errors.New("quota exceeded"))

	var logs bytes.Buffer
	a := NewAdapter(storage, "campaigns", slog.New(slog.NewTextHandler(&logs, nil)))

	assert.NotPanics(t, func() { a.Save(context.Background(), []domain.Campaign{}) })
	assert.Contains(t, logs.String(), "quota exceeded")
	assert.Contains(t, logs.String(), domain.ErrPersistenceWrite.Error())
}

func TestAdapterSaveUnencodable(t *testing.T) {
	storage := mocks.NewMockSlotStorage(t)
	a := NewAdapter(storage, "campaigns", discardLogger())

	// Set must not be called when encoding fails.
	a.Save(context.Background(), []domain.Campaign{{ID: "x", Cost: math.NaN()}})
	storage.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"blank", "  \n", 0, false},
		{"null", "null", 0, false},
		{"empty array", "[]", 0, false},
		{"one", `[{"id":"1","name":"x","startDate":"2024-01-01","endDate":"2024-01-02","clicks":1,"cost":1,"revenue":2}]`, 1, false},
		{"object", `{"id":"1"}`, 0, true},
		{"garbage", `campaigns`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.raw))
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrPersistenceRead)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestEncodeNil(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

var _ port.Persister = (*Adapter)(nil)
