// Command campaignctl manages campaigns from the terminal against the same
// storage the HTTP server uses.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campaign-manager/internal/app"
	"campaign-manager/internal/config"
	"campaign-manager/internal/core/port"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(openStore).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// storeOpener returns a loaded campaign store and a func releasing it.
type storeOpener func(ctx context.Context) (port.CampaignUseCase, func(), error)

func openStore(ctx context.Context) (port.CampaignUseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to load config: %w", err)
	}
	logger := cfg.Log.New(os.Stderr)
	return app.NewStore(ctx, cfg, logger)
}
