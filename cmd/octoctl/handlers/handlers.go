// Package handlers provides command handler functions for octoctl.
//
// This package contains all the command execution logic for octoctl commands,
// organized by printer subsystem for maintainability and clean separation of
// concerns. Each handler file corresponds to a specific subsystem and contains
// all related command handlers and helper functions.
//
// The package is organized as follows:
// - status.go: Printer status and server version retrieval
// - printhead.go: Print head homing and relative jogging
// - temp.go: Hotend and bed temperature control, filament extrusion
// - connection.go: Serial connection management (connect, disconnect, state)
// - file.go: File listing and selection on local storage and SD card
// - job.go: Print job control (start, cancel, restart, pause)
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Consistent output formatting through the display package
// - Clean separation between API communication and presentation logic
package handlers

import (
	"time"

	"octoctl/cmd/octoctl/config"
	"octoctl/internal/octoprint"
)

// newClient creates an OctoPrint API client from the resolved global
// configuration. Every handler goes through here so flag, settings-file and
// default resolution only happens in one place.
func newClient() (*octoprint.Client, error) {
	return octoprint.New(config.Global.URL, config.Global.APIKey,
		time.Duration(config.Global.Timeout)*time.Second)
}
