// Package commands provides print job command definitions for octoctl.
//
// This file implements the job command for controlling the current print
// job and inspecting its progress. Job control commands (start, cancel,
// restart, pause) are passed through as an argument while "job info" is a
// proper subcommand.
package commands

import (
	"github.com/spf13/cobra"
)

// Job command (control commands as argument)
var jobCmd = &cobra.Command{
	Use:   "job <start|cancel|restart|pause>",
	Short: "Control the current print job",
	Long: `Send a control command to the current print job.

Valid commands are start, cancel, restart and pause. Pausing an already
paused job resumes it. Use "job info" to inspect the current job.`,
	Example: `  # Start printing the selected file
  octoctl job start

  # Pause (or resume) the running job
  octoctl job pause

  # Cancel the running job
  octoctl job cancel

  # Show the current job and its progress
  octoctl job info`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// Job info subcommand
var jobInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the current print job",
	Long: `Show the current print job including the selected file, progress
percentage, elapsed time and estimated time remaining.`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// SetupJobCommands initializes job commands and their relationships
func SetupJobCommands() {
	jobCmd.AddCommand(jobInfoCmd)
}

// GetJobCommands returns the job command structures for handler assignment
func GetJobCommands() (*cobra.Command, *cobra.Command) {
	return jobCmd, jobInfoCmd
}
