// Package display provides output formatting and display functions for octoctl.
//
// This package handles all user-facing output formatting including table and
// JSON output for printer status, temperatures, connection state, files, and
// job information. It provides consistent formatting across all octoctl
// commands with support for different output formats and proper error
// handling for display operations.
//
// The display functions handle:
// - Printer status with per-heater temperature report
// - Version and connection information
// - File listings with humanized sizes and upload times
// - Print job progress with formatted durations
// - Consistent table formatting using text/tabwriter
// - JSON output with proper indentation and error handling
//
// All display functions respect global configuration for output format while
// maintaining clean separation from API communication logic.
package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"octoctl/cmd/octoctl/config"
	"octoctl/cmd/octoctl/utils"
	"octoctl/internal/logging"
	"octoctl/internal/octoprint"
)

// jsonOutput reports whether the user asked for JSON output.
func jsonOutput() bool {
	return config.Global.Output == "json"
}

// encodeJSON writes v to stdout as indented JSON.
func encodeJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Println("Error encoding JSON output")
	}
}

// ShowStatus renders the printer status. machineReadable dumps the raw
// status body exactly as the server sent it; otherwise a short report with
// the printer state and one line per heater is printed.
func ShowStatus(status *octoprint.StatusInfo, machineReadable bool) {
	if machineReadable || jsonOutput() {
		var indented bytes.Buffer
		if err := json.Indent(&indented, status.Raw, "", "  "); err != nil {
			// Fall back to the body as-is
			os.Stdout.Write(status.Raw)
			fmt.Println()
			return
		}
		fmt.Println(indented.String())
		return
	}

	fmt.Printf("Printer status: %s\n", status.State.Text)

	readings := status.HeaterReadings()
	heaters := make([]string, 0, len(readings))
	for name := range readings {
		heaters = append(heaters, name)
	}
	sort.Strings(heaters)

	for _, name := range heaters {
		r := readings[name]
		fmt.Printf("%-6s temp: %5.1f C; setpoint: %5.1f C\n", name, r.Actual, r.Target)
	}
}

// ShowVersion renders the server version information.
func ShowVersion(info *octoprint.VersionInfo) {
	if jsonOutput() {
		encodeJSON(info)
		return
	}
	fmt.Printf("Server: %s (API %s)\n", info.Text, info.API)
}

// ShowTemperature renders a single heater reading. A nil reading means the
// printer does not report the heater at all.
func ShowTemperature(name string, reading *octoprint.TemperatureReading) {
	if reading == nil {
		fmt.Printf("Printer reports no heater %q\n", name)
		return
	}
	if jsonOutput() {
		encodeJSON(map[string]*octoprint.TemperatureReading{name: reading})
		return
	}
	fmt.Printf("%-6s temp: %5.1f C; setpoint: %5.1f C; offset: %.1f C\n",
		name, reading.Actual, reading.Target, reading.Offset)
}

// ShowConnection renders the printer connection state.
func ShowConnection(info *octoprint.ConnectionInfo) {
	if jsonOutput() {
		encodeJSON(info)
		return
	}

	fmt.Printf("Connection state: %s\n", info.Current.State)
	if info.Current.Port != "" {
		fmt.Printf("Port:             %s\n", info.Current.Port)
	}
	if info.Current.Baudrate != 0 {
		fmt.Printf("Baudrate:         %d\n", info.Current.Baudrate)
	}
	if info.Current.PrinterProfile != "" {
		fmt.Printf("Profile:          %s\n", info.Current.PrinterProfile)
	}
}

// ShowJob renders the current print job with progress and time estimates.
func ShowJob(info *octoprint.JobInfo) {
	if jsonOutput() {
		encodeJSON(info)
		return
	}

	fmt.Printf("Job state: %s\n", info.State)
	if info.Job.File.Name == "" {
		fmt.Println("No file selected")
		return
	}

	fmt.Printf("File:      %s (%s, %s)\n", info.Job.File.Name,
		info.Job.File.Origin, humanize.Bytes(uint64(info.Job.File.Size)))
	fmt.Printf("Progress:  %.1f%%\n", info.Progress.Completion)
	fmt.Printf("Elapsed:   %s\n", utils.FormatSeconds(info.Progress.PrintTime))
	fmt.Printf("Remaining: %s\n", utils.FormatSeconds(info.Progress.PrintTimeLeft))
}

// ShowFiles renders a file listing. The short form shows name, size and
// origin; the long form adds path and upload time and the remaining free
// space when the server reports it.
func ShowFiles(list *octoprint.FileList, long bool) {
	if jsonOutput() {
		encodeJSON(list)
		return
	}

	if len(list.Files) == 0 {
		fmt.Println("No files found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if long {
		fmt.Fprintln(w, "NAME\tSIZE\tORIGIN\tPATH\tUPLOADED")
	} else {
		fmt.Fprintln(w, "NAME\tSIZE\tORIGIN")
	}

	for _, file := range list.Files {
		size := humanize.Bytes(uint64(file.Size))
		if long {
			uploaded := "-"
			if file.Date > 0 {
				uploaded = humanize.Time(time.Unix(file.Date, 0))
			}
			path := file.Path
			if path == "" {
				path = file.Name
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", file.Name, size, file.Origin, path, uploaded)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", file.Name, size, file.Origin)
		}
	}

	if long && list.Free > 0 {
		fmt.Fprintf(w, "\nFree space: %s\n", humanize.Bytes(uint64(list.Free)))
	}
}
