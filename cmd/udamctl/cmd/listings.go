package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/CyberSolo/UDAM/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Browse and publish listings",
		Long: "Browse listings of API access and publish new ones. Prices are\n" +
			"integer minor units (cents).",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
		listingsCreateCmd(),
		listingsCredentialCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		sellerID string
		status   string
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings with optional filters",
		Example: `  # Active listings
  udamctl listings list

  # One seller's sold out listings
  udamctl listings list --seller alice --status sold_out`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListListings(context.Background(), &apiclient.ListListingsParams{
				SellerID: sellerID,
				Status:   status,
				Limit:    limit,
				Offset:   offset,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}

			fmt.Printf("Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(resp.Listings)
		},
	}
	cmd.Flags().StringVar(&sellerID, "seller", "", "seller filter")
	cmd.Flags().StringVar(&status, "status", "", "status filter (active, sold_out)")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show listing details",
		Example: `  udamctl listings get 3f0c...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}

			return printListingDetail(l)
		},
	}
}

func listingsCreateCmd() *cobra.Command {
	var req apiclient.CreateListingRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a listing",
		Example: `  udamctl listings create --service geocoder --price 250 \
    --unit "1k requests" --units 40 --credential sk-live-123`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			l, err := c.CreateListing(context.Background(), &req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}

			fmt.Printf("Created listing %s\n", l.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ServiceName, "service", "", "service name")
	cmd.Flags().Int64Var(&req.PricePerUnit, "price", 0, "price per unit in minor units")
	cmd.Flags().StringVar(&req.UnitDescription, "unit", "", "what one unit buys")
	cmd.Flags().StringVar(&req.EndpointURL, "endpoint", "", "API base URL")
	cmd.Flags().IntVar(&req.TotalUnits, "units", 0, "units offered")
	cmd.Flags().StringVar(&req.Credential, "credential", "", "access credential, stored encrypted")
	cobra.CheckErr(cmd.MarkFlagRequired("service"))
	cobra.CheckErr(cmd.MarkFlagRequired("price"))
	cobra.CheckErr(cmd.MarkFlagRequired("unit"))
	cobra.CheckErr(cmd.MarkFlagRequired("units"))

	return cmd
}

func listingsCredentialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "credential <id>",
		Short: "Reveal the credential of one of your listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			cred, err := c.RevealCredential(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(map[string]string{"listing_id": args[0], "credential": cred})
			}

			fmt.Println(cred)
			return nil
		},
	}
}
