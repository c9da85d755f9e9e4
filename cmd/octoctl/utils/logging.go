// Package utils provides utility functions for the octoctl CLI.
// This file contains logging setup for clean command output.
package utils

import (
	"os"

	"octoctl/cmd/octoctl/config"
	"octoctl/internal/logging"
)

// SetupLogging configures CLI logging behavior based on environment and config.
// Enables debug output when DEBUG=true, honors an explicit --log-level, and
// otherwise suppresses everything below ERROR so command output stays clean.
func SetupLogging() {
	// Check for DEBUG environment variable for debug logging
	if os.Getenv("DEBUG") == "true" {
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	// An explicit log level re-enables output at that level
	if config.Global.LogLevel != config.DefaultLogLevel {
		logging.RestoreOutput()
		logging.SetLevel(config.Global.LogLevel)
		return
	}

	// Suppress debug/info logs by default (only show errors)
	logging.SuppressOutput()
}
