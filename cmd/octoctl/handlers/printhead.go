// Package handlers provides command handler functions for octoctl print
// head operations.
//
// This file contains the handlers for moving the print head: homing one or
// more axes and jogging by relative distances. Jog distances are only sent
// for axes the user actually specified so an explicit zero still reaches the
// printer while untouched axes are omitted from the request.
package handlers

import (
	"fmt"
	"strings"

	"octoctl/cmd/octoctl/config"
	"octoctl/cmd/octoctl/utils"
	"octoctl/internal/logging"

	"github.com/spf13/cobra"
)

// HandleHome handles the home command. Each argument is a set of axis
// letters (e.g. "xy" or "x y z"); with no arguments all axes are homed.
func HandleHome(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	var x, y, z bool
	if len(args) == 0 {
		x, y, z = true, true, true
	}
	for _, arg := range args {
		for _, axis := range strings.ToLower(arg) {
			switch axis {
			case 'x':
				x = true
			case 'y':
				y = true
			case 'z':
				z = true
			default:
				return fmt.Errorf("unknown axis %q: valid axes are x, y, z", string(axis))
			}
		}
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.Home(x, y, z); err != nil {
		return err
	}

	logging.Success("Homing command sent")
	return nil
}

// HandleJog handles the jog command for relative print head movement. Only
// axes whose flag was set on the command line are included in the request.
func HandleJog(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	var x, y, z *float64
	if cmd.Flags().Changed("x") {
		x = &config.Jog.X
	}
	if cmd.Flags().Changed("y") {
		y = &config.Jog.Y
	}
	if cmd.Flags().Changed("z") {
		z = &config.Jog.Z
	}

	if x == nil && y == nil && z == nil {
		return fmt.Errorf("nothing to do: specify at least one of -x, -y, -z")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.Jog(x, y, z); err != nil {
		return err
	}

	logging.Success("Jog command sent")
	return nil
}
