// Package commands provides the complete command tree implementation for octoctl.
//
// This package defines the command structure for the octoctl CLI tool,
// implementing a flat command layout that mirrors the printer subsystems
// exposed by the OctoPrint REST API.
//
// COMMAND STRUCTURE:
//   - version: Server version information
//   - status: Printer state and temperature report
//   - home, jog: Print head movement
//   - tool, bed, select-tool, extrude: Temperature and extruder control
//   - connection: Serial connection management
//   - file: File listing and selection (list, select)
//   - job: Print job control (start, cancel, restart, pause, info)
//
// All commands follow consistent patterns with standardized flag handling,
// error messages, and output formatting.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "octoctl",
	Short: "CLI tool for controlling 3D printers through an OctoPrint server",
	Long: `octoctl is a command-line tool for controlling 3D printers through
the OctoPrint REST API.

It talks to a running OctoPrint server over HTTP, letting you check printer
status, move the print head, manage temperatures, select files and control
print jobs from the terminal.`,
	SilenceUsage: true,
	Example: `  # Show printer status
  octoctl status

  # Home all axes, then just x and y
  octoctl home
  octoctl home xy

  # Move the print head 10mm along x
  octoctl jog -x 10

  # Heat the hotend and the bed
  octoctl tool 210
  octoctl bed 60

  # Start a print
  octoctl file select benchy.gcode --print

  # Pause and resume the running job
  octoctl job pause

  # Talk to a remote server
  octoctl --url=http://printer.local:5000 --apikey=SECRET status

  # Output in JSON format
  octoctl -o json status`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Add all top-level commands to root
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(homeCmd)
	RootCmd.AddCommand(jogCmd)
	RootCmd.AddCommand(toolCmd)
	RootCmd.AddCommand(bedCmd)
	RootCmd.AddCommand(selectToolCmd)
	RootCmd.AddCommand(extrudeCmd)
	RootCmd.AddCommand(connectionCmd)
	RootCmd.AddCommand(fileCmd)
	RootCmd.AddCommand(jobCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, urlPtr *string, apiKeyPtr *string,
	logLevelPtr *string, timeoutPtr *int, outputPtr *string) {
	rootCmd.PersistentFlags().StringVarP(urlPtr, "url", "u", "",
		"Base URL of the printer server (default from settings file)")
	rootCmd.PersistentFlags().StringVarP(apiKeyPtr, "apikey", "a", "",
		"API key for printer access (default from settings file)")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", 8,
		"Connection timeout in seconds")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
