// Package commands provides file command definitions for octoctl.
//
// This file implements the file command tree for working with files stored
// on the printer server, covering both local storage and the printer's SD
// card.
//
// FILE COMMANDS:
//   - list: List files on a storage location
//   - select: Load a file into the current job, optionally starting it
package commands

import (
	"github.com/spf13/cobra"
)

// File command (parent command for file operations)
var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Manage files on the printer server",
	Long: `Commands for working with files stored on the printer server.

Files live either on the server's local storage or on the printer's SD card;
use --location to pick one.`,
}

// File list command
var fileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List files on the printer server",
	Long: `List the files available on the given storage location.

The long listing adds the file path, upload time and the remaining free
space when the server reports it.`,
	Example: `  # List files on local storage
  octoctl file list

  # List files on the SD card
  octoctl file list --location=sdcard

  # Long listing format
  octoctl file list -l`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// File select command
var fileSelectCmd = &cobra.Command{
	Use:   "select <name>",
	Short: "Select a file for printing",
	Long: `Load the named file into the current print job.

By default the file is only selected; pass --print to start printing it
right away.`,
	Example: `  # Select a file
  octoctl file select benchy.gcode

  # Select a file on the SD card and start printing
  octoctl file select benchy.gcode --location=sdcard --print`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// SetupFileCommands initializes file commands and their relationships
func SetupFileCommands() {
	fileCmd.AddCommand(fileListCmd)
	fileCmd.AddCommand(fileSelectCmd)
}

// GetFileCommands returns the file command structures for handler assignment
func GetFileCommands() (*cobra.Command, *cobra.Command) {
	return fileListCmd, fileSelectCmd
}

// SetupFileFlags configures flags for file commands
func SetupFileFlags(fileListCmd, fileSelectCmd *cobra.Command,
	locationPtr *string, printPtr *bool, longPtr *bool) {
	fileListCmd.Flags().StringVar(locationPtr, "location", "local",
		"Storage location: local, sdcard")
	fileListCmd.Flags().BoolVarP(longPtr, "long", "l", false,
		"Long listing format")

	fileSelectCmd.Flags().StringVar(locationPtr, "location", "local",
		"Storage location: local, sdcard")
	fileSelectCmd.Flags().BoolVarP(printPtr, "print", "p", false,
		"Start printing right after selecting")
}
