package port

import (
	"context"
	"time"

	"campaign-manager/internal/core/domain"
)

// CampaignUseCase defines the operations on the campaign store. It is the
// primary port into the application; the HTTP layer, the shell view model
// and the CLI all go through it.
type CampaignUseCase interface {
	// List returns a snapshot of all campaigns in insertion order. The
	// caller may modify the returned slice.
	List(ctx context.Context) []domain.Campaign

	// Add appends a campaign and persists the resulting sequence. It
	// returns domain.ErrDuplicateID if the id is already present.
	Add(ctx context.Context, c domain.Campaign) error

	// Delete removes the campaign with the given id and persists the
	// resulting sequence. Unknown ids leave the sequence unchanged; the
	// result reports whether anything was removed.
	Delete(ctx context.Context, id string) bool

	// Stats aggregates clicks, cost, revenue and profit over the campaigns
	// whose start date falls inside the requested period.
	Stats(ctx context.Context, req StatsReq) StatsResp
}

// StatsReq bounds the stats period by campaign start date. A zero From or
// To leaves that side open. Campaigns with an unparseable start date are
// only counted when both bounds are open.
type StatsReq struct {
	From time.Time
	To   time.Time
}

// StatsResp contains aggregated totals over the selected campaigns.
type StatsResp struct {
	Campaigns int     `json:"campaigns"`
	Clicks    int64   `json:"clicks"`
	Cost      float64 `json:"cost"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
}
