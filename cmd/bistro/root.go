package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/bistro/internal/bistro/app"
	"github.com/aussiebroadwan/bistro/internal/bistro/store/drivers/sqlite"
)

var databaseFile string

var rootCmd = &cobra.Command{
	Use:           "bistro",
	Short:         "Bistro Boss restaurant API",
	Long:          `Run the Bistro Boss API server and manage its database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseFile, "db", "",
		"SQLite database file (overrides DATABASE_FILE)")
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig() app.Config {
	cfg := app.LoadConfig()
	if databaseFile != "" {
		cfg.DatabaseFile = databaseFile
	}
	return cfg
}

// openStore opens the configured database with the schema up to date.
func openStore() (*sqlite.Store, error) {
	return app.OpenStore(loadConfig())
}
