package db

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/adapter/memory"
	"campaign-manager/internal/adapter/persistence"
	"campaign-manager/internal/adapter/usecase"
	"campaign-manager/internal/core/domain"
)

func newSeedStore() *usecase.CampaignStore {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewCampaignStore(persistence.NewAdapter(memory.NewStorage(), "", logger), logger)
}

func TestSeed_EmptyStore(t *testing.T) {
	ctx := context.Background()
	store := newSeedStore()

	n, err := Seed(ctx, store, DemoCampaigns)
	require.NoError(t, err)
	assert.Equal(t, DemoCampaigns, n)

	campaigns := store.List(ctx)
	require.Len(t, campaigns, DemoCampaigns)
	for _, c := range campaigns {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		_, ok := domain.ParseDate(c.StartDate)
		assert.True(t, ok, c.StartDate)
		assert.Positive(t, c.Clicks)
		assert.Positive(t, c.Cost)
	}
}

func TestSeed_SkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := newSeedStore()
	require.NoError(t, store.Add(ctx, domain.Campaign{ID: "existing", Name: "Existing"}))

	n, err := Seed(ctx, store, DemoCampaigns)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, store.List(ctx), 1)
}
