package main

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/aperrault/phraseur/internal/config"
	"github.com/aperrault/phraseur/internal/platform/logger"
	"github.com/aperrault/phraseur/internal/platform/postgres"
	"github.com/aperrault/phraseur/migrations"
)

var databaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Manage the database schema",
}

var databaseInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrations(cmd, func(db *sql.DB) error {
			return goose.Up(db, ".")
		})
	},
}

var databaseCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Roll back all migrations, dropping every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrations(cmd, func(db *sql.DB) error {
			return goose.DownTo(db, ".", 0)
		})
	},
}

var databaseResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Roll back all migrations, then apply them again",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrations(cmd, func(db *sql.DB) error {
			if err := goose.DownTo(db, ".", 0); err != nil {
				return err
			}
			return goose.Up(db, ".")
		})
	},
}

func init() {
	databaseCmd.AddCommand(databaseInitCmd, databaseCleanCmd, databaseResetCmd)
	rootCmd.AddCommand(databaseCmd)
}

// withMigrations loads config, opens the database, and runs fn with goose
// pointed at the embedded migrations.
func withMigrations(cmd *cobra.Command, fn func(db *sql.DB) error) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Setup(cfg.Server)

	db, err := postgres.Open(cmd.Context(), cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return fn(db)
}
