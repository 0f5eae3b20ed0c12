package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CyberSolo/UDAM/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, logger, logCloser, err := loadConfig()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	if cfg.Database.Driver != config.DriverPostgres {
		logger.Info("nothing to migrate", "driver", cfg.Database.Driver)
		return nil
	}

	ctx, cancel := commandContext(60 * time.Second)
	defer cancel()

	st, closeStore, err := openStore(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore()

	logger.Info("running migrations", "host", cfg.Database.Host, "database", cfg.Database.Name)

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	logger.Info("migrations complete")
	return nil
}
