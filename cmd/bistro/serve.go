package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/bistro/internal/bistro/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	Long: `Run the API server.

Requires ACCESS_TOKEN_SECRET. Pending migrations are applied on startup.
The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.New(loadConfig())
		if err != nil {
			return err
		}
		return application.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
