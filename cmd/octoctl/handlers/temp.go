// Package handlers provides command handler functions for octoctl
// temperature operations.
//
// This file contains the handlers for hotend and bed temperature control
// and filament extrusion. The tool and bed commands double as getters: with
// no target argument they query and display the current reading instead of
// sending a setpoint.
package handlers

import (
	"fmt"
	"strconv"

	"octoctl/cmd/octoctl/config"
	"octoctl/cmd/octoctl/display"
	"octoctl/cmd/octoctl/utils"
	"octoctl/internal/logging"

	"github.com/spf13/cobra"
)

// HandleTool handles the tool command. With a temperature argument the
// hotend setpoint is changed; without one the current reading is shown.
func HandleTool(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	client, err := newClient()
	if err != nil {
		return err
	}

	tool := config.Tool.Number
	name := fmt.Sprintf("tool%d", tool)

	if len(args) == 0 {
		reading, err := client.GetToolTemp(tool)
		if err != nil {
			return err
		}
		display.ShowTemperature(name, reading)
		return nil
	}

	target, err := parseTemperature(args[0])
	if err != nil {
		return err
	}
	if err := client.SetToolTemp(target, tool); err != nil {
		return err
	}

	logging.Success("Set %s target to %.1f C", name, target)
	return nil
}

// HandleBed handles the bed command. With a temperature argument the bed
// setpoint is changed; without one the current reading is shown.
func HandleBed(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	client, err := newClient()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		reading, err := client.GetBedTemp()
		if err != nil {
			return err
		}
		display.ShowTemperature("bed", reading)
		return nil
	}

	target, err := parseTemperature(args[0])
	if err != nil {
		return err
	}
	if err := client.SetBedTemp(target); err != nil {
		return err
	}

	logging.Success("Set bed target to %.1f C", target)
	return nil
}

// HandleSelectTool handles the select-tool command for switching the active
// extruder on multi-extruder printers.
func HandleSelectTool(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	tool, err := strconv.Atoi(args[0])
	if err != nil || tool < 0 {
		return fmt.Errorf("invalid tool number %q: must be a non-negative integer", args[0])
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.SelectTool(tool); err != nil {
		return err
	}

	logging.Success("Selected tool%d", tool)
	return nil
}

// HandleExtrude handles the extrude command for pushing filament through the
// currently selected extruder. Negative amounts retract.
func HandleExtrude(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	amount := 5.0
	if len(args) > 0 {
		parsed, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: must be a number of millimeters", args[0])
		}
		amount = parsed
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.Extrude(amount); err != nil {
		return err
	}

	logging.Success("Extruding %.1f mm", amount)
	return nil
}

// parseTemperature parses a user-supplied temperature argument, rejecting
// values that are obviously not Celsius setpoints.
func parseTemperature(raw string) (float64, error) {
	target, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid temperature %q: must be a number", raw)
	}
	if target < 0 {
		return 0, fmt.Errorf("invalid temperature %v: must not be negative", target)
	}
	return target, nil
}
