// Command bistro runs and maintains the Bistro Boss API server.
//
//	# Apply the schema
//	bistro migrate up
//
//	# Load the sample menu and reviews
//	bistro seed seed/menu.yaml
//
//	# Promote the first admin (after they have signed in once)
//	bistro users grant-admin owner@example.com
//
//	# Start the server
//	ACCESS_TOKEN_SECRET=... bistro serve
//
// Configuration is read from the environment; see internal/bistro/app.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
