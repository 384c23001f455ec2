package cmd

import (
	"fmt"
	"log"

	"github.com/htx-labs/transcriber-api/internal/database"
	"github.com/htx-labs/transcriber-api/internal/models"
	"github.com/htx-labs/transcriber-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Bring the transcript database schema up to date.

Runs GORM AutoMigrate for the transcriptions table against the configured
database path. Safe to run repeatedly; existing data is preserved.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("verbose", false, "enable SQL logging during migration")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	dbPath := config.GetString("database.path")
	if dbPath == "" {
		return fmt.Errorf("database.path is not configured")
	}

	db, err := database.Initialize(dbPath, verbose)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	if err := db.AutoMigrate(&models.Transcript{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied to %s\n", dbPath)
	return nil
}
