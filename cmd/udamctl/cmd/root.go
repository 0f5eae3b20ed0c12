// Package cmd implements the udamctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/CyberSolo/UDAM/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "udamctl",
		Short: "CLI client for the UDAM marketplace",
		Long: "udamctl is a command-line client for the UDAM marketplace API.\n" +
			"It lets you publish listings, place and settle orders, raise and\n" +
			"answer disputes, and leave reviews from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.udamctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("token", "", "bearer token (see `udam token`)")
	rootCmd.PersistentFlags().
		String("admin-token", "", "admin capability token")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token")))
	cobra.CheckErr(viper.BindPFlag("admin_token", rootCmd.PersistentFlags().Lookup("admin-token")))

	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(ordersCmd())
	rootCmd.AddCommand(tokensCmd())
	rootCmd.AddCommand(disputeCmd())
	rootCmd.AddCommand(counterCmd())
	rootCmd.AddCommand(adjudicateCmd())
	rootCmd.AddCommand(expireCmd())
	rootCmd.AddCommand(reviewCmd())
	rootCmd.AddCommand(ratingCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(marketSummaryCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".udamctl")
	}

	viper.SetEnvPrefix("UDAMCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(
		viper.GetString("server"),
		apiclient.WithToken(viper.GetString("token")),
		apiclient.WithAdminToken(viper.GetString("admin_token")),
	)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
