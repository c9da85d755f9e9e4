// Package commands provides connection command definitions for octoctl.
//
// This file implements the connection command for managing the serial link
// between the printer server and the printer itself.
package commands

import (
	"github.com/spf13/cobra"
)

// Connection command
var connectionCmd = &cobra.Command{
	Use:   "connection",
	Short: "Manage the serial connection to the printer",
	Long: `Manage the serial connection between the printer server and the
printer.

With no flags the current connection state is shown. Use --connect to
establish a connection (optionally with an explicit port and baudrate) and
--disconnect to tear it down.`,
	Example: `  # Show the current connection state
  octoctl connection

  # Connect using the server's saved settings
  octoctl connection --connect

  # Connect to a specific port and baudrate
  octoctl connection --connect --port=/dev/ttyUSB0 --baudrate=115200

  # Connect and save the settings on the server
  octoctl connection --connect --port=/dev/ttyUSB0 --save

  # Disconnect from the printer
  octoctl connection --disconnect`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetConnectionCommand returns the connection command structure for handler assignment
func GetConnectionCommand() *cobra.Command {
	return connectionCmd
}

// SetupConnectionFlags configures flags for the connection command
func SetupConnectionFlags(connectionCmd *cobra.Command, connectPtr, disconnectPtr *bool,
	portPtr *string, baudratePtr *int, profilePtr *string, savePtr, autoconnectPtr *bool) {
	connectionCmd.Flags().BoolVarP(connectPtr, "connect", "c", false,
		"Connect to the printer")
	connectionCmd.Flags().BoolVarP(disconnectPtr, "disconnect", "d", false,
		"Disconnect from the printer")
	connectionCmd.Flags().StringVarP(portPtr, "port", "p", "",
		"Serial port to connect to (default: server autodetect)")
	connectionCmd.Flags().IntVarP(baudratePtr, "baudrate", "b", 0,
		"Baudrate to use (default: server autodetect)")
	connectionCmd.Flags().StringVar(profilePtr, "profile", "",
		"Printer profile to connect with")
	connectionCmd.Flags().BoolVar(savePtr, "save", false,
		"Save the connection settings on the server")
	connectionCmd.Flags().BoolVar(autoconnectPtr, "autoconnect", false,
		"Connect automatically on server startup")
	connectionCmd.MarkFlagsMutuallyExclusive("connect", "disconnect")
}
