// Package cmd implements the CLI commands for the udam server.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "udam",
	Short: "Marketplace order and escrow engine",
	Long: "An API-first marketplace for finite-inventory API access. It reserves\n" +
		"inventory and escrow per order, runs the order lifecycle with dispute\n" +
		"and counter windows, and aggregates seller reputation.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(func() {
		viper.SetEnvPrefix("UDAM")
		viper.AutomaticEnv()
	})

	rootCmd.PersistentFlags().String("config", "config.yaml", "config file path")
	cobra.CheckErr(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))

	rootCmd.AddCommand(versionCommand())
}

// Root returns the root command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// configPath returns the config file from --config or UDAM_CONFIG.
func configPath() string {
	return viper.GetString("config")
}
