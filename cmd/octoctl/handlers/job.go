// Package handlers provides command handler functions for octoctl print
// job operations.
//
// This file contains the handlers for controlling the current print job
// (start, cancel, restart, pause) and for showing job progress.
package handlers

import (
	"octoctl/cmd/octoctl/display"
	"octoctl/cmd/octoctl/utils"
	"octoctl/internal/logging"

	"github.com/spf13/cobra"
)

// HandleJob handles the job command, forwarding the requested command to
// the printer server. Unknown commands are rejected before any request is
// made.
func HandleJob(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.Job(args[0]); err != nil {
		return err
	}

	logging.Success("Job command %q sent", args[0])
	return nil
}

// HandleJobInfo handles the job info command for displaying the current
// print job and its progress.
func HandleJobInfo(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	client, err := newClient()
	if err != nil {
		return err
	}

	info, err := client.GetJobInfo()
	if err != nil {
		return err
	}

	display.ShowJob(info)
	return nil
}
