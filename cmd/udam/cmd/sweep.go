package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Settle one batch of orders whose dispute or counter window has elapsed",
	Long: "Runs the window sweep once against the configured database and exits.\n" +
		"Useful from an external scheduler when the server's own sweeper is not\n" +
		"running.",
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, logger, logCloser, err := loadConfig()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ctx, cancel := commandContext(5 * time.Minute)
	defer cancel()

	st, closeStore, err := openStore(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore()

	eng, err := newEngine(cfg, st, logger)
	if err != nil {
		return err
	}

	res, err := eng.ExpireWindows(ctx)
	if err != nil {
		return fmt.Errorf("sweeping windows: %w", err)
	}
	eng.Wait()

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "scanned=%d completed=%d resolved=%d skipped=%d\n",
		res.Scanned, res.Completed, res.Resolved, res.Skipped)
	return err
}
