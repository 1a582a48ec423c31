package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
	"campaign-manager/internal/core/ui"
)

// newRootCmd builds the command tree. Every subcommand opens the store
// through open and releases it before returning.
func newRootCmd(open storeOpener) *cobra.Command {
	root := &cobra.Command{
		Use:   "campaignctl",
		Short: "Manage advertising campaigns",
		Long: `campaignctl lists, adds and deletes campaigns in the configured
storage backend and prints aggregate statistics.

Storage is selected with the same environment variables as the server
(STORAGE_BACKEND, STORAGE_SLOT, FILE_DIR, PSQL_ADDRESS, ...).`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newListCmd(open),
		newAddCmd(open),
		newDeleteCmd(open),
		newStatsCmd(open),
	)
	return root
}

// withStore runs fn against a freshly opened store.
func withStore(cmd *cobra.Command, open storeOpener, fn func(store port.CampaignUseCase) error) error {
	store, closeFn, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(store)
}

func newListCmd(open storeOpener) *cobra.Command {
	var (
		sortKey string
		desc    bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns as a table",
		Long: `Prints every campaign with its computed profit.

Sort keys: name, startDate, endDate, profit (default startDate).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, ok := ui.ParseSortKey(sortKey)
			if !ok {
				return fmt.Errorf("unknown sort key %q", sortKey)
			}
			state := ui.SortState{Key: key, Order: ui.SortAsc}
			if desc {
				state.Order = ui.SortDesc
			}
			return withStore(cmd, open, func(store port.CampaignUseCase) error {
				table := ui.NewTable()
				table.SetSortState(state)
				_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTable(table.View(store.List(cmd.Context()))))
				return err
			})
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", string(ui.SortByStartDate), "column to sort by")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func newAddCmd(open storeOpener) *cobra.Command {
	values := make(map[domain.Field]*string, len(domain.Fields()))
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a campaign",
		Long: `Validates the flags exactly like the web form and appends the campaign.

Example:
  campaignctl add --name "Spring Sale" --startDate 2024-03-01 \
    --endDate 2024-03-31 --clicks 1000 --cost 250 --revenue 400`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, open, func(store port.CampaignUseCase) error {
				shell := ui.NewShell(store)
				shell.OpenModal()
				for _, f := range domain.Fields() {
					shell.Form().Set(f, *values[f])
				}
				c, err := shell.Submit(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "added campaign %s (%s)\n", c.ID, c.Name)
				return err
			})
		},
	}
	for _, f := range domain.Fields() {
		values[f] = cmd.Flags().String(string(f), "", f.Label())
	}
	return cmd
}

func newDeleteCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a campaign by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, open, func(store port.CampaignUseCase) error {
				shell := ui.NewShell(store)
				if !shell.OnTableDelete(cmd.Context(), args[0]) {
					return fmt.Errorf("campaign %q not found", args[0])
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted campaign %s\n", args[0])
				return err
			})
		},
	}
}

func newStatsCmd(open storeOpener) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print totals over campaigns",
		Long: `Sums clicks, cost, revenue and profit. With --from and/or --to only
campaigns starting inside the period are counted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req port.StatsReq
			var err error
			if req.From, err = parseBound("from", from); err != nil {
				return err
			}
			if req.To, err = parseBound("to", to); err != nil {
				return err
			}
			return withStore(cmd, open, func(store port.CampaignUseCase) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), renderStats(store.Stats(cmd.Context(), req)))
				return err
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "period start date")
	cmd.Flags().StringVar(&to, "to", "", "period end date")
	return cmd
}

func parseBound(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, ok := domain.ParseDate(value)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid --%s date %q", name, value)
	}
	return t, nil
}
