package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/adapter/memory"
	"campaign-manager/internal/adapter/persistence"
	"campaign-manager/internal/adapter/usecase"
	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// fixedStore opens the same store on every call, like reopening one
// storage slot between invocations.
func fixedStore(t *testing.T) (*usecase.CampaignStore, storeOpener) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := usecase.NewCampaignStore(persistence.NewAdapter(memory.NewStorage(), "", logger), logger)
	return store, func(context.Context) (port.CampaignUseCase, func(), error) {
		return store, func() {}, nil
	}
}

func run(t *testing.T, open storeOpener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(open)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList_Empty(t *testing.T) {
	_, open := fixedStore(t)

	out, err := run(t, open, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No campaigns found.")
}

func TestAddThenList(t *testing.T) {
	store, open := fixedStore(t)

	out, err := run(t, open, "add",
		"--name", "Spring Sale",
		"--startDate", "2024-03-01",
		"--endDate", "2024-03-31",
		"--clicks", "1000",
		"--cost", "250",
		"--revenue", "400")
	require.NoError(t, err)
	assert.Contains(t, out, "added campaign")
	require.Len(t, store.List(context.Background()), 1)

	out, err = run(t, open, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Spring Sale")
	assert.Contains(t, out, "03/01/2024")
	assert.Contains(t, out, "$150.00")
}

func TestAdd_ValidationError(t *testing.T) {
	store, open := fixedStore(t)

	_, err := run(t, open, "add", "--name", "Spring Sale", "--startDate", "2024-03-01", "--endDate", "2024-03-31")
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.FieldClicks, verr.Field)
	assert.Empty(t, store.List(context.Background()))
}

func TestList_SortFlags(t *testing.T) {
	store, open := fixedStore(t)
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, domain.Campaign{ID: "a", Name: "Alpha", StartDate: "2024-01-01", Cost: 10, Revenue: 5}))
	require.NoError(t, store.Add(ctx, domain.Campaign{ID: "b", Name: "Bravo", StartDate: "2024-02-01", Cost: 10, Revenue: 50}))

	out, err := run(t, open, "list", "--sort", "profit", "--desc")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("Bravo")), bytes.Index([]byte(out), []byte("Alpha")))
	assert.Contains(t, out, "$-5.00")

	_, err = run(t, open, "list", "--sort", "clicks")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	store, open := fixedStore(t)
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, domain.Campaign{ID: "a", Name: "Alpha"}))

	out, err := run(t, open, "delete", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted campaign a")
	assert.Empty(t, store.List(ctx))

	_, err = run(t, open, "delete", "a")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	store, open := fixedStore(t)
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, domain.Campaign{ID: "a", StartDate: "2024-01-01", EndDate: "2024-01-31", Clicks: 10, Cost: 100, Revenue: 150}))
	require.NoError(t, store.Add(ctx, domain.Campaign{ID: "b", StartDate: "2024-06-01", EndDate: "2024-06-30", Clicks: 5, Cost: 50, Revenue: 20}))

	out, err := run(t, open, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "$20.00")

	out, err = run(t, open, "stats", "--from", "2024-05-01")
	require.NoError(t, err)
	assert.Contains(t, out, "$-30.00")

	_, err = run(t, open, "stats", "--to", "someday")
	assert.Error(t, err)
}

func TestOpenError(t *testing.T) {
	open := func(context.Context) (port.CampaignUseCase, func(), error) {
		return nil, func() {}, errors.New("boom")
	}
	_, err := run(t, open, "list")
	assert.EqualError(t, err, "boom")
}
