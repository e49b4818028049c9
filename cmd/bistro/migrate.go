package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/bistro/internal/bistro/store/drivers/sqlite"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long:  `Create, inspect and roll back the database schema.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		return printVersion(cmd, db)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration",
	Long: `Roll back every migration. All data is lost.

Example:
  bistro migrate down --db bistro.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.NewStore(loadConfig().DSN())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.MigrateDown(); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
		return printVersion(cmd, db)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.NewStore(loadConfig().DSN())
		if err != nil {
			return err
		}
		defer db.Close()

		return printVersion(cmd, db)
	},
}

func printVersion(cmd *cobra.Command, db *sqlite.Store) error {
	version, dirty, err := db.MigrationVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	out := cmd.OutOrStdout()
	if dirty {
		fmt.Fprintf(out, "schema version %d (dirty)\n", version)
		return nil
	}
	fmt.Fprintf(out, "schema version %d\n", version)
	return nil
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}
