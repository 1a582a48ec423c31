package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// DemoCampaigns is the number of campaigns Seed adds.
const DemoCampaigns = 5

// Seed adds demo campaigns through the store. Nothing is added when the
// store already holds campaigns, so it is safe to call on every start.
func Seed(ctx context.Context, store port.CampaignUseCase, n int) (int, error) {
	if len(store.List(ctx)) > 0 {
		return 0, nil
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	added := 0
	for i := 1; i <= n; i++ {
		start := now.AddDate(0, 0, -r.Intn(60))
		end := start.AddDate(0, 1, r.Intn(30))
		clicks := int64(100 + r.Intn(5000))
		cost := float64(clicks) * (0.2 + r.Float64()) // 0.20..1.20 per click
		revenue := cost * (0.5 + r.Float64())         // 50%..150% of cost
		c := domain.Campaign{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("Campaign %d", i),
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
			Clicks:    clicks,
			Cost:      roundCents(cost),
			Revenue:   roundCents(revenue),
		}
		if err := store.Add(ctx, c); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
