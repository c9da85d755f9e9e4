// Package handlers provides command handler functions for octoctl serial
// connection operations.
//
// This file contains the handler for managing the connection between the
// printer server and the printer itself: establishing a serial connection
// with optional port and baudrate overrides, disconnecting, and showing the
// current connection state.
package handlers

import (
	"octoctl/cmd/octoctl/config"
	"octoctl/cmd/octoctl/display"
	"octoctl/cmd/octoctl/utils"
	"octoctl/internal/logging"
	"octoctl/internal/octoprint"

	"github.com/spf13/cobra"
)

// HandleConnection handles the connection command. With --connect a serial
// connection is established using whichever options were provided; with
// --disconnect the connection is torn down; with neither the current state
// is displayed.
func HandleConnection(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	client, err := newClient()
	if err != nil {
		return err
	}

	switch {
	case config.Connection.Connect:
		opts := octoprint.ConnectOptions{
			Port:        config.Connection.Port,
			Baudrate:    config.Connection.Baudrate,
			Profile:     config.Connection.Profile,
			Save:        config.Connection.Save,
			Autoconnect: config.Connection.Autoconnect,
		}
		if err := client.Connect(opts); err != nil {
			return err
		}
		logging.Success("Connect command sent")

	case config.Connection.Disconnect:
		if err := client.Disconnect(); err != nil {
			return err
		}
		logging.Success("Disconnect command sent")

	default:
		info, err := client.GetConnection()
		if err != nil {
			return err
		}
		display.ShowConnection(info)
	}

	return nil
}
