// Package main provides the entry point for the octoctl CLI tool.
//
// This package implements the main executable for the 3D printer control
// CLI that talks to an OctoPrint server over its REST API. The CLI provides
// commands for monitoring printer state, moving the print head, managing
// temperatures, selecting files and controlling print jobs.
//
// INITIALIZATION FLOW:
// 1. Command structure setup
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to API operations
// 4. Settings-file resolution and configuration validation
// 5. Command execution with proper error handling and exit codes
package main

import (
	"os"

	"octoctl/cmd/octoctl/commands"
	"octoctl/cmd/octoctl/config"
	"octoctl/cmd/octoctl/handlers"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ResolveAndValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupFileCommands()
	commands.SetupJobCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.URL, &config.Global.APIKey,
		&config.Global.LogLevel, &config.Global.Timeout, &config.Global.Output)

	// Setup status command flags
	statusCmd, _ := commands.GetStatusCommands()
	commands.SetupStatusFlags(statusCmd,
		&config.Status.MachineReadable, &config.Status.History, &config.Status.NoHistory)

	// Setup jog command flags
	_, jogCmd := commands.GetPrintheadCommands()
	commands.SetupJogFlags(jogCmd, &config.Jog.X, &config.Jog.Y, &config.Jog.Z)

	// Setup temperature command flags
	toolCmd, _, _, _ := commands.GetTempCommands()
	commands.SetupTempFlags(toolCmd, &config.Tool.Number)

	// Setup connection command flags
	commands.SetupConnectionFlags(commands.GetConnectionCommand(),
		&config.Connection.Connect, &config.Connection.Disconnect,
		&config.Connection.Port, &config.Connection.Baudrate, &config.Connection.Profile,
		&config.Connection.Save, &config.Connection.Autoconnect)

	// Setup file command flags
	fileListCmd, fileSelectCmd := commands.GetFileCommands()
	commands.SetupFileFlags(fileListCmd, fileSelectCmd,
		&config.File.Location, &config.File.Print, &config.File.Long)

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	statusCmd, versionCmd := commands.GetStatusCommands()
	statusCmd.RunE = handlers.HandleStatus
	versionCmd.RunE = handlers.HandleVersion

	homeCmd, jogCmd := commands.GetPrintheadCommands()
	homeCmd.RunE = handlers.HandleHome
	jogCmd.RunE = handlers.HandleJog

	toolCmd, bedCmd, selectToolCmd, extrudeCmd := commands.GetTempCommands()
	toolCmd.RunE = handlers.HandleTool
	bedCmd.RunE = handlers.HandleBed
	selectToolCmd.RunE = handlers.HandleSelectTool
	extrudeCmd.RunE = handlers.HandleExtrude

	commands.GetConnectionCommand().RunE = handlers.HandleConnection

	fileListCmd, fileSelectCmd := commands.GetFileCommands()
	fileListCmd.RunE = handlers.HandleFileList
	fileSelectCmd.RunE = handlers.HandleFileSelect

	jobCmd, jobInfoCmd := commands.GetJobCommands()
	jobCmd.RunE = handlers.HandleJob
	jobInfoCmd.RunE = handlers.HandleJobInfo
}

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
