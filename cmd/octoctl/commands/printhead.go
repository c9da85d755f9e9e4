// Package commands provides print head command definitions for octoctl.
//
// This file implements the home and jog commands for moving the print head.
// Homing accepts axis letters as arguments while jogging uses per-axis flags
// so distances can carry a sign.
package commands

import (
	"github.com/spf13/cobra"
)

// Home command
var homeCmd = &cobra.Command{
	Use:   "home [axes...]",
	Short: "Home the print head",
	Long: `Home the print head on the given axes.

Axes are given as letters and may be combined in a single argument. With no
arguments all three axes are homed.`,
	Example: `  # Home all axes
  octoctl home

  # Home x and y only
  octoctl home xy
  octoctl home x y`,
	// RunE will be set by the main package that imports this
}

// Jog command
var jogCmd = &cobra.Command{
	Use:   "jog",
	Short: "Move the print head by a relative distance",
	Long: `Move the print head by the given relative distances in millimeters.

Only axes given on the command line are moved; an explicit zero is sent to
the printer as-is.`,
	Example: `  # Move 10mm along x
  octoctl jog -x 10

  # Move diagonally and lower the bed
  octoctl jog -x 5 -y 5 -z -1`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetPrintheadCommands returns the print head command structures for handler assignment
func GetPrintheadCommands() (*cobra.Command, *cobra.Command) {
	return homeCmd, jogCmd
}

// SetupJogFlags configures flags for the jog command
func SetupJogFlags(jogCmd *cobra.Command, xPtr, yPtr, zPtr *float64) {
	jogCmd.Flags().Float64VarP(xPtr, "x", "x", 0, "Relative x distance in mm")
	jogCmd.Flags().Float64VarP(yPtr, "y", "y", 0, "Relative y distance in mm")
	jogCmd.Flags().Float64VarP(zPtr, "z", "z", 0, "Relative z distance in mm")
}
