// Package octoprint implements the typed API client for the OctoPrint
// HTTP/JSON printer control protocol.
//
// This file implements the endpoint registry: the fixed set of resource
// URLs the OctoPrint REST API exposes, derived once from a base URL at
// client construction. The path suffixes are part of the wire contract and
// must match the server exactly.
package octoprint

import (
	"octoctl/internal/validate"
)

// Endpoints holds the absolute URL for every OctoPrint API resource,
// computed by concatenating fixed suffixes onto a validated base URL.
// The set is immutable; changing the base URL rebuilds it wholesale via
// Client.SetBaseURL so a partially updated registry can never be observed.
type Endpoints struct {
	Base       string
	Version    string // /api/version
	Files      string // /api/files
	FilesSD    string // /api/files/sd
	FilesLocal string // /api/files/local
	Connection string // /api/connection
	Printer    string // /api/printer
	Printhead  string // /api/printer/printhead
	Tool       string // /api/printer/tool
	Bed        string // /api/printer/bed
	SD         string // /api/printer/sd
	Command    string // /api/printer/command
	Job        string // /api/job
}

// NewEndpoints derives the complete endpoint set from baseURL. The base URL
// must be an absolute http/https URL including port information when the
// server does not listen on the scheme default. Fails fast on an empty or
// malformed base URL so misconfiguration surfaces as a configuration error
// rather than a runtime HTTP failure.
func NewEndpoints(baseURL string) (*Endpoints, error) {
	base, err := validate.BaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	return &Endpoints{
		Base:       base,
		Version:    base + "/api/version",
		Files:      base + "/api/files",
		FilesSD:    base + "/api/files/sd",
		FilesLocal: base + "/api/files/local",
		Connection: base + "/api/connection",
		Printer:    base + "/api/printer",
		Printhead:  base + "/api/printer/printhead",
		Tool:       base + "/api/printer/tool",
		Bed:        base + "/api/printer/bed",
		SD:         base + "/api/printer/sd",
		Command:    base + "/api/printer/command",
		Job:        base + "/api/job",
	}, nil
}

// All returns the registry as a map keyed by logical resource name.
// Useful for diagnostics and for asserting completeness in tests.
func (e *Endpoints) All() map[string]string {
	return map[string]string{
		"version":     e.Version,
		"files":       e.Files,
		"files-sd":    e.FilesSD,
		"files-local": e.FilesLocal,
		"connection":  e.Connection,
		"printer":     e.Printer,
		"printhead":   e.Printhead,
		"tool":        e.Tool,
		"bed":         e.Bed,
		"sd":          e.SD,
		"command":     e.Command,
		"job":         e.Job,
	}
}
