// Package commands provides temperature and extruder command definitions for octoctl.
//
// This file implements the tool and bed commands for heater control, the
// select-tool command for switching extruders, and the extrude command for
// pushing filament. The tool and bed commands double as getters when no
// target temperature is given.
package commands

import (
	"github.com/spf13/cobra"
)

// Tool command (hotend temperature)
var toolCmd = &cobra.Command{
	Use:   "tool [temperature]",
	Short: "Get or set the hotend temperature",
	Long: `Get or set the hotend target temperature in degrees Celsius.

Without a temperature argument the current reading for the selected extruder
is shown. Use --number to address a specific extruder on multi-extruder
printers.`,
	Example: `  # Show the current hotend temperature
  octoctl tool

  # Heat the hotend to 210 C
  octoctl tool 210

  # Cool down
  octoctl tool 0

  # Address the second extruder
  octoctl tool --number=1 230`,
	Args: cobra.MaximumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Bed command (bed temperature)
var bedCmd = &cobra.Command{
	Use:   "bed [temperature]",
	Short: "Get or set the bed temperature",
	Long: `Get or set the bed target temperature in degrees Celsius.

Without a temperature argument the current bed reading is shown.`,
	Example: `  # Show the current bed temperature
  octoctl bed

  # Heat the bed to 60 C
  octoctl bed 60

  # Cool down
  octoctl bed 0`,
	Args: cobra.MaximumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Select-tool command (active extruder)
var selectToolCmd = &cobra.Command{
	Use:   "select-tool <number>",
	Short: "Select the active extruder",
	Long: `Select the extruder used for subsequent extrude commands on
multi-extruder printers. Extruders are numbered starting at 0.`,
	Example: `  # Select the second extruder
  octoctl select-tool 1`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// Extrude command
var extrudeCmd = &cobra.Command{
	Use:   "extrude [amount]",
	Short: "Extrude filament through the selected extruder",
	Long: `Extrude the given length of filament in millimeters through the
currently selected extruder. Negative amounts retract. The default amount
is 5mm.`,
	Example: `  # Extrude 5mm (the default)
  octoctl extrude

  # Extrude 20mm
  octoctl extrude 20

  # Retract 2mm
  octoctl extrude -- -2`,
	Args: cobra.MaximumNArgs(1),
	// RunE will be set by the main package that imports this
}

// GetTempCommands returns the temperature command structures for handler assignment
func GetTempCommands() (*cobra.Command, *cobra.Command, *cobra.Command, *cobra.Command) {
	return toolCmd, bedCmd, selectToolCmd, extrudeCmd
}

// SetupTempFlags configures flags for the temperature commands
func SetupTempFlags(toolCmd *cobra.Command, numberPtr *int) {
	toolCmd.Flags().IntVarP(numberPtr, "number", "n", 0,
		"Extruder number, starting at 0")
}
