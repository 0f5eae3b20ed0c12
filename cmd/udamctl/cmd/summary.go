package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:     "summary",
		Short:   "Show your order totals as buyer and seller",
		Example: "  udamctl summary\n  udamctl summary --user seller-1 --admin-token $UDAM_ADMIN_TOKEN",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newClient().AccountSummary(context.Background(), userID)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(s)
			}

			return printAccountSummary(s)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user to summarise (admin only, defaults to you)")

	return cmd
}

func marketSummaryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "market-summary",
		Short: "Show marketplace totals and top participants (admin)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newClient().MarketplaceSummary(context.Background(), days)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(s)
			}

			return printMarketplaceSummary(s)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "activity window in days (1-365)")

	return cmd
}
