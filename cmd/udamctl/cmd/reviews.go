package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func reviewCmd() *cobra.Command {
	var (
		score   int
		comment string
	)

	cmd := &cobra.Command{
		Use:     "review <order-id>",
		Short:   "Review a settled order as its buyer",
		Example: `  udamctl review 9a1e... --score 5 --comment "keys worked instantly"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := newClient().SubmitReview(context.Background(), args[0], score, comment)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(r)
			}

			fmt.Printf("Reviewed order %s: %d/5\n", r.OrderID, r.Score)
			return nil
		},
	}
	cmd.Flags().IntVar(&score, "score", 0, "score from 1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "optional comment")
	cobra.CheckErr(cmd.MarkFlagRequired("score"))

	return cmd
}

func ratingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rating <user-id>",
		Short: "Show a seller's rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rating, err := newClient().GetUserRating(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(rating)
			}

			return printRating(rating)
		},
	}
}
