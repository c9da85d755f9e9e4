// Package handlers provides command handler functions for octoctl status
// operations.
//
// This file contains the handlers for printer status retrieval and server
// version reporting. The status handler supports both a condensed human
// report and a machine-readable dump of the raw server response for
// scripting workflows.
package handlers

import (
	"octoctl/cmd/octoctl/config"
	"octoctl/cmd/octoctl/display"
	"octoctl/cmd/octoctl/utils"
	"octoctl/internal/logging"

	"github.com/spf13/cobra"
)

// HandleStatus handles the status command for retrieving the full printer
// state including temperature data. Temperature history is included by
// default and can be limited or disabled through flags.
func HandleStatus(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching printer status from: %s", config.Global.URL)

	client, err := newClient()
	if err != nil {
		return err
	}

	status, err := client.GetStatus(!config.Status.NoHistory, config.Status.History)
	if err != nil {
		return err
	}

	display.ShowStatus(status, config.Status.MachineReadable)
	logging.Success("Successfully retrieved printer status (%s)", status.State.Text)
	return nil
}

// HandleVersion handles the version command for retrieving server version
// information from the printer server.
func HandleVersion(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching server version from: %s", config.Global.URL)

	client, err := newClient()
	if err != nil {
		return err
	}

	info, err := client.GetVersion()
	if err != nil {
		return err
	}

	display.ShowVersion(info)
	return nil
}
