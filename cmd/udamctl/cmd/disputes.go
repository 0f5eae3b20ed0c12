package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/CyberSolo/UDAM/internal/api/client"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

func disputeCmd() *cobra.Command {
	var claim apiclient.Claim

	cmd := &cobra.Command{
		Use:   "dispute <order-id>",
		Short: "Dispute an accepted order as its buyer",
		Long: "Opens the buyer's single dispute. Must be raised before the\n" +
			"dispute window closes; the seller then has the counter window\n" +
			"to respond.",
		Example: `  udamctl dispute 9a1e... --reason "key revoked" --evidence "401 since 12:00 UTC"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			o, err := newClient().OpenDispute(context.Background(), args[0], claim)
			if err != nil {
				return err
			}
			return printOrderResult(o)
		},
	}
	addClaimFlags(cmd, &claim)

	return cmd
}

func counterCmd() *cobra.Command {
	var claim apiclient.Claim

	cmd := &cobra.Command{
		Use:   "counter <order-id>",
		Short: "Answer a dispute as the order's seller",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			o, err := newClient().OpenCounter(context.Background(), args[0], claim)
			if err != nil {
				return err
			}
			return printOrderResult(o)
		},
	}
	addClaimFlags(cmd, &claim)

	return cmd
}

func addClaimFlags(cmd *cobra.Command, claim *apiclient.Claim) {
	cmd.Flags().StringVar(&claim.Reason, "reason", "", "what went wrong")
	cmd.Flags().StringVar(&claim.Evidence, "evidence", "", "supporting evidence")
	cobra.CheckErr(cmd.MarkFlagRequired("reason"))
	cobra.CheckErr(cmd.MarkFlagRequired("evidence"))
}

func adjudicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "adjudicate <order-id> <BUYER|SELLER>",
		Short:     "Settle a disputed order (admin)",
		Example:   `  udamctl adjudicate 9a1e... BUYER --admin-token $UDAM_ADMIN_TOKEN`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.PartyBuyer), string(domain.PartySeller)},
		RunE: func(_ *cobra.Command, args []string) error {
			decision, ok := domain.ParseParty(strings.ToUpper(args[1]))
			if !ok {
				return fmt.Errorf("decision must be BUYER or SELLER, got %q", args[1])
			}

			o, err := newClient().Adjudicate(context.Background(), args[0], decision)
			if err != nil {
				return err
			}
			return printOrderResult(o)
		},
	}
}

func expireCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expire-windows",
		Short: "Settle orders whose dispute or counter window has elapsed (admin)",
		RunE: func(_ *cobra.Command, _ []string) error {
			res, err := newClient().ExpireWindows(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(res)
			}

			fmt.Printf("Scanned %d: %d completed, %d resolved, %d skipped\n",
				res.Scanned, res.Completed, res.Resolved, res.Skipped)
			return nil
		},
	}
}
