// Package commands provides status and version command definitions for octoctl.
//
// This file implements the status command for retrieving the full printer
// state with temperature data, and the version command for querying the
// server's version information.
package commands

import (
	"github.com/spf13/cobra"
)

// Status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show printer state and temperatures",
	Long: `Show the current printer state including temperature readings for
all reported heaters.

By default a short human-readable report is printed. Use --machine-readable
to dump the raw server response for scripting.`,
	Example: `  # Show printer status
  octoctl status

  # Dump the raw status JSON
  octoctl status --machine-readable

  # Request the last 5 temperature history entries
  octoctl status --history=5

  # Skip temperature history entirely
  octoctl status --no-history`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Version command (server version, not the CLI version)
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show printer server version information",
	Long: `Show version information reported by the printer server, including
the server version and the API version it implements.

For the octoctl CLI version itself use --version on the root command.`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetStatusCommands returns the status command structures for handler assignment
func GetStatusCommands() (*cobra.Command, *cobra.Command) {
	return statusCmd, versionCmd
}

// SetupStatusFlags configures flags for the status command
func SetupStatusFlags(statusCmd *cobra.Command, machineReadablePtr *bool,
	historyPtr *int, noHistoryPtr *bool) {
	statusCmd.Flags().BoolVarP(machineReadablePtr, "machine-readable", "m", false,
		"Dump the raw status response instead of the report")
	statusCmd.Flags().IntVar(historyPtr, "history", 2,
		"Number of temperature history entries to request")
	statusCmd.Flags().BoolVar(noHistoryPtr, "no-history", false,
		"Do not request temperature history")
	statusCmd.MarkFlagsMutuallyExclusive("history", "no-history")
}
