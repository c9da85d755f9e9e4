// Package handlers provides command handler functions for octoctl file
// operations.
//
// This file contains the handlers for listing files on the printer server
// and selecting a file for printing, on local storage or the SD card.
package handlers

import (
	"octoctl/cmd/octoctl/config"
	"octoctl/cmd/octoctl/display"
	"octoctl/cmd/octoctl/utils"
	"octoctl/internal/logging"

	"github.com/spf13/cobra"
)

// HandleFileList handles the file list command for displaying files stored
// on the requested location.
func HandleFileList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching file list from: %s (%s)", config.Global.URL, config.File.Location)

	client, err := newClient()
	if err != nil {
		return err
	}

	list, err := client.GetFiles(config.File.Location)
	if err != nil {
		return err
	}

	display.ShowFiles(list, config.File.Long)
	logging.Success("Successfully retrieved %d files", len(list.Files))
	return nil
}

// HandleFileSelect handles the file select command for loading a file into
// the current print job, optionally starting the print right away.
func HandleFileSelect(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	name := args[0]

	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.SelectFile(name, config.File.Location, config.File.Print); err != nil {
		return err
	}

	if config.File.Print {
		logging.Success("Selected %s and started printing", name)
	} else {
		logging.Success("Selected %s", name)
	}
	return nil
}
