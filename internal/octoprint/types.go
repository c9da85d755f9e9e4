// Package octoprint implements the typed API client for the OctoPrint
// HTTP/JSON printer control protocol.
//
// This file defines the response structures mirroring the server's JSON
// schemas. Responses with a fixed documented shape decode into typed
// structs; the printer status additionally retains its raw body so the CLI
// can offer a machine-readable passthrough.
package octoprint

import "encoding/json"

// VersionInfo describes the server's API and application versions,
// returned by GET /api/version.
type VersionInfo struct {
	API    string `json:"api"`
	Server string `json:"server"`
	Text   string `json:"text"`
}

// TemperatureReading is the current state of one heater: the measured
// temperature, the setpoint, and the configured offset, all in degrees
// celsius. A zero target means the heater is off.
type TemperatureReading struct {
	Actual float64 `json:"actual"`
	Target float64 `json:"target"`
	Offset float64 `json:"offset"`
}

// PrinterState describes the printer's operational state as reported in
// the status response.
type PrinterState struct {
	Text  string          `json:"text"`
	Flags map[string]bool `json:"flags"`
}

// StatusInfo is the full printer status returned by GET /api/printer.
// Temperature holds one entry per heater (tool0, tool1, bed, ...) plus an
// optional "history" entry when history was requested; entries stay raw so
// heater readings and the history list can coexist in one map. Raw carries
// the undecoded body for machine-readable output.
type StatusInfo struct {
	State       PrinterState               `json:"state"`
	Temperature map[string]json.RawMessage `json:"temperature"`

	Raw json.RawMessage `json:"-"`
}

// HeaterReadings decodes the per-heater entries of the temperature block,
// skipping the history list and anything else that is not a heater record.
func (s *StatusInfo) HeaterReadings() map[string]TemperatureReading {
	readings := make(map[string]TemperatureReading, len(s.Temperature))
	for key, raw := range s.Temperature {
		if key == "history" {
			continue
		}
		var r TemperatureReading
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		readings[key] = r
	}
	return readings
}

// ConnectionState describes the active printer connection as reported by
// GET /api/connection.
type ConnectionState struct {
	State          string `json:"state"`
	Port           string `json:"port"`
	Baudrate       int    `json:"baudrate"`
	PrinterProfile string `json:"printerProfile"`
}

// ConnectionOptions lists the connection parameters the server offers.
type ConnectionOptions struct {
	Ports              []string `json:"ports"`
	Baudrates          []int    `json:"baudrates"`
	PortPreference     string   `json:"portPreference"`
	BaudratePreference int      `json:"baudratePreference"`
}

// ConnectionInfo is the response of GET /api/connection.
type ConnectionInfo struct {
	Current ConnectionState   `json:"current"`
	Options ConnectionOptions `json:"options"`
}

// FileInfo describes one file on printer storage.
type FileInfo struct {
	Name   string `json:"name"`
	Path   string `json:"path,omitempty"`
	Origin string `json:"origin"`
	Size   int64  `json:"size"`
	Date   int64  `json:"date,omitempty"`
}

// FileList is the response of GET /api/files and its location-scoped
// variants. Free reports remaining storage in bytes where the location
// supports it.
type FileList struct {
	Files []FileInfo `json:"files"`
	Free  int64      `json:"free,omitempty"`
}

// JobFile identifies the file associated with the current print job.
type JobFile struct {
	Name   string `json:"name"`
	Origin string `json:"origin"`
	Size   int64  `json:"size"`
	Date   int64  `json:"date"`
}

// JobDetails describes the job the server currently has loaded.
type JobDetails struct {
	File               JobFile `json:"file"`
	EstimatedPrintTime float64 `json:"estimatedPrintTime"`
}

// JobProgress tracks completion of the running print.
type JobProgress struct {
	Completion    float64 `json:"completion"`
	Filepos       int64   `json:"filepos"`
	PrintTime     float64 `json:"printTime"`
	PrintTimeLeft float64 `json:"printTimeLeft"`
}

// JobInfo is the response of GET /api/job.
type JobInfo struct {
	Job      JobDetails  `json:"job"`
	Progress JobProgress `json:"progress"`
	State    string      `json:"state"`
}

// ConnectOptions carries the optional parameters for a connect request.
// Zero values mean "not provided" and are omitted from the envelope, so
// the server falls back to its own defaults.
type ConnectOptions struct {
	Port        string
	Baudrate    int
	Profile     string
	Save        bool
	Autoconnect bool
}
