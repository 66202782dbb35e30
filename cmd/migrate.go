package cmd

import (
	"fmt"

	"github.com/lexivox/speech-api/internal/database"
	"github.com/lexivox/speech-api/internal/models"
	"github.com/lexivox/speech-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the database schema for the Speech Practice API.

The schema is managed with GORM AutoMigrate, which creates missing
tables, columns, and indexes without touching existing data.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Attempt{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied to %s\n", cfg.Database.Path)
	return nil
}
