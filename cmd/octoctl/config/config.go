// Package config provides configuration management for the octoctl CLI.
package config

import "octoctl/internal/version"

const (
	DefaultTimeout  = 8       // Connection timeout in seconds
	DefaultLogLevel = "ERROR" // Only errors unless debugging
)

// Version returns the current octoctl CLI version from the centralized version package
var Version = version.OctoctlVersion

// Global holds the global CLI configuration
var Global struct {
	URL      string // Base URL of the printer server, including port
	APIKey   string // API key for printer access
	LogLevel string // Log level for CLI operations
	Timeout  int    // Connection timeout in seconds
	Output   string // Output format: table, json
}

// Status holds the status command configuration
var Status struct {
	MachineReadable bool // Dump the raw status JSON instead of the report
	History         int  // Length of temperature history to request
	NoHistory       bool // Disable temperature history in the request
}

// Jog holds the jog command configuration
var Jog struct {
	X float64 // Relative X distance in mm
	Y float64 // Relative Y distance in mm
	Z float64 // Relative Z distance in mm
}

// Tool holds the tool command configuration
var Tool struct {
	Number int // Extruder number, starting at 0
}

// Connection holds the connection command configuration
var Connection struct {
	Connect     bool   // Connect to the printer
	Disconnect  bool   // Disconnect from the printer
	Port        string // Serial port to connect to
	Baudrate    int    // Baudrate to use
	Profile     string // Printer profile to use
	Save        bool   // Save connection settings on the server
	Autoconnect bool   // Auto-connect on server startup
}

// File holds the file command configuration
var File struct {
	Location string // Storage location: local or sdcard
	Print    bool   // Start printing right after selecting
	Long     bool   // Long listing format
}
