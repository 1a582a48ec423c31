package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// CampaignStore is the in-memory ordered sequence of campaigns and the single
// source of truth for every view. The sequence is seeded from the persister
// exactly once and written back in full after every mutation. It implements
// port.CampaignUseCase.
type CampaignStore struct {
	persist port.Persister
	logger  *slog.Logger

	loadOnce  sync.Once
	mu        sync.RWMutex
	campaigns []domain.Campaign
}

// NewCampaignStore creates a store backed by the given persister. Nothing
// is read until Load or the first operation.
func NewCampaignStore(persist port.Persister, logger *slog.Logger) *CampaignStore {
	return &CampaignStore{persist: persist, logger: logger}
}

// Load seeds the store from the persister. Only the first call has an
// effect; later calls, including the implicit ones made by every other
// method, are no-ops.
func (s *CampaignStore) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		loaded := s.persist.Load(ctx)

		seen := make(map[string]struct{}, len(loaded))
		campaigns := make([]domain.Campaign, 0, len(loaded))
		for _, c := range loaded {
			if _, dup := seen[c.ID]; dup {
				s.logger.Warn("dropping persisted campaign with duplicate id", slog.String("id", c.ID))
				continue
			}
			seen[c.ID] = struct{}{}
			campaigns = append(campaigns, c)
		}

		s.mu.Lock()
		s.campaigns = campaigns
		s.mu.Unlock()
		s.logger.Info("campaign store loaded", slog.Int("count", len(campaigns)))
	})
}

// List returns a copy of the campaigns in insertion order.
func (s *CampaignStore) List(ctx context.Context) []domain.Campaign {
	s.Load(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.campaigns)
}

// Add appends c and persists the whole sequence.
func (s *CampaignStore) Add(ctx context.Context, c domain.Campaign) error {
	s.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.campaigns, func(existing domain.Campaign) bool { return existing.ID == c.ID }) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, c.ID)
	}
	next := make([]domain.Campaign, len(s.campaigns), len(s.campaigns)+1)
	copy(next, s.campaigns)
	s.campaigns = append(next, c)
	s.persist.Save(ctx, slices.Clone(s.campaigns))
	s.logger.Debug("campaign added", slog.String("id", c.ID), slog.String("name", c.Name))
	return nil
}

// Delete removes the campaign with the given id and persists the whole
// sequence. An unknown id leaves the sequence as it was but still rewrites
// the slot.
func (s *CampaignStore) Delete(ctx context.Context, id string) bool {
	s.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.campaigns), func(c domain.Campaign) bool { return c.ID == id })
	removed := len(next) != len(s.campaigns)
	s.campaigns = next
	s.persist.Save(ctx, slices.Clone(s.campaigns))
	if removed {
		s.logger.Debug("campaign deleted", slog.String("id", id))
	}
	return removed
}

// Stats aggregates totals over campaigns whose start date lies within the
// requested period.
func (s *CampaignStore) Stats(ctx context.Context, req port.StatsReq) port.StatsResp {
	var resp port.StatsResp
	for _, c := range s.List(ctx) {
		if !inPeriod(c, req) {
			continue
		}
		resp.Campaigns++
		resp.Clicks += c.Clicks
		resp.Cost += c.Cost
		resp.Revenue += c.Revenue
	}
	resp.Profit = resp.Revenue - resp.Cost
	return resp
}

func inPeriod(c domain.Campaign, req port.StatsReq) bool {
	if req.From.IsZero() && req.To.IsZero() {
		return true
	}
	start, ok := domain.ParseDate(c.StartDate)
	if !ok {
		return false
	}
	if !req.From.IsZero() && start.Before(req.From) {
		return false
	}
	if !req.To.IsZero() && start.After(req.To) {
		return false
	}
	return true
}
