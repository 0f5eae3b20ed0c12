package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/CyberSolo/UDAM/internal/api/client"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Place and settle orders",
		Long: "Place orders against listings and move them through their\n" +
			"lifecycle. Escrow is reserved when an order is created and\n" +
			"released when it settles.",
	}

	ordersRoot.AddCommand(
		ordersListCmd(),
		ordersGetCmd(),
		ordersCreateCmd(),
		orderActionCmd("confirm", "Confirm payment (development servers only)",
			(*apiclient.Client).ConfirmOrder),
		orderActionCmd("accept", "Accept a confirmed order as its seller",
			(*apiclient.Client).AcceptOrder),
		orderActionCmd("cancel", "Cancel an order that has not been accepted",
			(*apiclient.Client).CancelOrder),
		orderActionCmd("complete", "Confirm delivery as the buyer",
			(*apiclient.Client).CompleteOrder),
	)

	return ordersRoot
}

func ordersListCmd() *cobra.Command {
	var (
		state  string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Example: `  udamctl orders list
  udamctl orders list --state DISPUTED`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			orders, err := c.ListOrders(context.Background(), &apiclient.ListOrdersParams{
				State:  state,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(orders)
			}

			if len(orders) == 0 {
				fmt.Println("No orders found.")
				return nil
			}
			return printOrdersTable(orders)
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "state filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}

func ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			o, err := newClient().GetOrder(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printOrderResult(o)
		},
	}
}

func ordersCreateCmd() *cobra.Command {
	var units int

	cmd := &cobra.Command{
		Use:     "create <listing-id>",
		Short:   "Buy units from a listing",
		Example: `  udamctl orders create 3f0c... --units 4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			o, err := newClient().CreateOrder(context.Background(), args[0], units)
			if err != nil {
				return err
			}
			return printOrderResult(o)
		},
	}
	cmd.Flags().IntVar(&units, "units", 1, "number of units")

	return cmd
}

func orderActionCmd(
	use, short string,
	action func(*apiclient.Client, context.Context, string) (*domain.Order, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			o, err := action(newClient(), context.Background(), args[0])
			if err != nil {
				return err
			}
			return printOrderResult(o)
		},
	}
}

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List your escrow tokens",
		RunE: func(_ *cobra.Command, _ []string) error {
			tokens, err := newClient().ListTokens(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(tokens)
			}

			if len(tokens) == 0 {
				fmt.Println("No escrow tokens found.")
				return nil
			}
			return printTokensTable(tokens)
		},
	}
}

func printOrderResult(o *domain.Order) error {
	if jsonOutput() {
		return outputJSON(o)
	}
	return printOrderDetail(o)
}
