// Package octoprint implements the typed API client for the OctoPrint
// HTTP/JSON printer control protocol.
//
// This package maps printer operations onto authenticated HTTP requests
// against the fixed, versioned endpoint set, classifies server responses
// into the closed error taxonomy, and exposes one method per printer
// operation with well-defined request/response contracts.
//
// API CLIENT ARCHITECTURE:
// The Client wraps the Resty HTTP client with OctoPrint-specific behavior:
//   - Authentication: X-Api-Key header on every request, rotatable at runtime
//   - Endpoint Registry: URL set derived once from the base URL, rebuilt
//     wholesale when the base URL changes
//   - Response Classification: 401 -> authorization, 409 on POST -> printer
//     busy, other >= 400 -> http error, transport failure -> unreachable
//   - Request Envelopes: per-operation JSON bodies with a mandatory command
//     field, built fresh per call
//
// Every operation issues exactly one network round trip: no retries, no
// cross-call state beyond the configured base URL and key. POST success is
// indicated solely by a 2xx status; callers that need data follow with a GET.
package octoprint

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"octoctl/internal/logging"
	"octoctl/internal/version"
)

// Storage locations the server knows for file operations.
const (
	LocationLocal  = "local"
	LocationSDCard = "sdcard"
)

// jobCommands is the fixed set of job control commands the server accepts.
var jobCommands = map[string]bool{
	"start":   true,
	"cancel":  true,
	"restart": true,
	"pause":   true,
}

// restyLogger implements resty.Logger and routes Resty's internal logs
// through the structured logging system.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// Client is the typed OctoPrint API client. It holds the endpoint registry
// and the authentication header and is stateless across calls beyond those
// two; each CLI invocation constructs one Client and discards it at exit.
type Client struct {
	http      *resty.Client
	endpoints *Endpoints
}

// New creates an API client for the printer server at baseURL,
// authenticating every request with apiKey. The base URL is validated and
// the endpoint registry derived up front so a malformed URL fails here as
// a validation error instead of surfacing later as an HTTP failure.
// The timeout bounds each request's full round trip.
func New(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	endpoints, err := NewEndpoints(baseURL)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Err: err}
	}

	httpClient := resty.New()

	// Route Resty's internal logging through our structured logging system
	httpClient.SetLogger(restyLogger{})

	// Authentication and content negotiation headers ride on every request.
	// No retry policy: each operation is a single synchronous round trip.
	httpClient.
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Api-Key", apiKey).
		SetHeader("User-Agent", fmt.Sprintf("octoctl/%s", version.OctoctlVersion))

	// Custom request logging using structured logging
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	// Custom error logging using structured logging
	httpClient.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &Client{
		http:      httpClient,
		endpoints: endpoints,
	}, nil
}

// Endpoints returns the current endpoint registry.
func (c *Client) Endpoints() *Endpoints {
	return c.endpoints
}

// SetAPIKey rotates the API key; every subsequent request uses the new value.
func (c *Client) SetAPIKey(apiKey string) {
	c.http.SetHeader("X-Api-Key", apiKey)
}

// SetBaseURL repoints the client at a different printer server, rebuilding
// the endpoint registry wholesale. Fails with a validation error on a
// malformed URL, leaving the previous registry untouched.
func (c *Client) SetBaseURL(baseURL string) error {
	endpoints, err := NewEndpoints(baseURL)
	if err != nil {
		return &Error{Kind: KindValidation, Err: err}
	}
	c.endpoints = endpoints
	return nil
}

// doGet issues an authenticated GET, classifies the status code, and
// decodes the JSON body into out when out is non-nil. Returns the raw body
// for callers that need the undecoded payload.
func (c *Client) doGet(url string, query map[string]string, out any) ([]byte, error) {
	req := c.http.R()
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, URL: url, Err: err}
	}

	if err := classify(resp, url, false); err != nil {
		return nil, err
	}

	body := resp.Body()
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, &Error{
				Kind:       KindHTTP,
				URL:        url,
				StatusCode: resp.StatusCode(),
				Body:       string(body),
				Err:        fmt.Errorf("decoding response: %w", err),
			}
		}
	}
	return body, nil
}

// doPost issues an authenticated POST with a JSON-encoded envelope and
// classifies the status code. Success is indicated solely by a 2xx status;
// the response body (often empty) is not decoded.
func (c *Client) doPost(url string, envelope map[string]any) error {
	resp, err := c.http.R().SetBody(envelope).Post(url)
	if err != nil {
		return &Error{Kind: KindUnreachable, URL: url, Err: err}
	}
	return classify(resp, url, true)
}

// classify maps a response status code onto the error taxonomy. The 409
// busy signal only applies to POST operations; the server does not emit it
// for reads.
func classify(resp *resty.Response, url string, post bool) error {
	status := resp.StatusCode()
	switch {
	case post && status == 409:
		return &Error{Kind: KindPrinterBusy, URL: url, StatusCode: status, Body: resp.String()}
	case status == 401:
		return &Error{Kind: KindAuthorization, URL: url, StatusCode: status, Body: resp.String()}
	case status >= 400:
		return &Error{Kind: KindHTTP, URL: url, StatusCode: status, Body: resp.String()}
	}
	return nil
}

// GetStatus fetches the full printer status including the nested
// temperature block. history and limit control how much temperature
// history the server includes.
func (c *Client) GetStatus(history bool, limit int) (*StatusInfo, error) {
	query := map[string]string{
		"history": strconv.FormatBool(history),
		"limit":   strconv.Itoa(limit),
	}

	var status StatusInfo
	body, err := c.doGet(c.endpoints.Printer, query, &status)
	if err != nil {
		return nil, err
	}
	status.Raw = body
	return &status, nil
}

// GetVersion fetches the server's version information.
func (c *Client) GetVersion() (*VersionInfo, error) {
	var info VersionInfo
	if _, err := c.doGet(c.endpoints.Version, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetConnection fetches the connection state between the server and the
// printer along with the connection options the server offers.
func (c *Client) GetConnection() (*ConnectionInfo, error) {
	var info ConnectionInfo
	if _, err := c.doGet(c.endpoints.Connection, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Home homes the printhead on the requested axes. An axis is included iff
// its flag is set; axis order is always x, y, z. All flags false is valid
// and results in a no-op home on the server.
func (c *Client) Home(x, y, z bool) error {
	axes := make([]string, 0, 3)
	if x {
		axes = append(axes, "x")
	}
	if y {
		axes = append(axes, "y")
	}
	if z {
		axes = append(axes, "z")
	}
	return c.doPost(c.endpoints.Printhead, map[string]any{
		"command": "home",
		"axes":    axes,
	})
}

// Jog moves the printhead incrementally on each provided axis. A nil axis
// is omitted from the envelope entirely; zero is a provided value and
// moves that axis by 0, distinct from omission.
func (c *Client) Jog(x, y, z *float64) error {
	envelope := map[string]any{"command": "jog"}
	if x != nil {
		envelope["x"] = *x
	}
	if y != nil {
		envelope["y"] = *y
	}
	if z != nil {
		envelope["z"] = *z
	}
	return c.doPost(c.endpoints.Printhead, envelope)
}

// Extrude extrudes amount millimeters of filament on the active extruder.
// Negative amounts retract.
func (c *Client) Extrude(amount float64) error {
	return c.doPost(c.endpoints.Tool, map[string]any{
		"command": "extrude",
		"amount":  amount,
	})
}

// SelectTool makes extruder tool the active one. Extruder numbering
// starts at 0.
func (c *Client) SelectTool(tool int) error {
	if tool < 0 {
		return newValidationError("tool index must be >= 0, got %d", tool)
	}
	return c.doPost(c.endpoints.Tool, map[string]any{
		"command": "select",
		"tool":    heaterName(tool),
	})
}

// SetToolTemp sets the target temperature of extruder tool. A target of 0
// switches the heater off.
func (c *Client) SetToolTemp(temp float64, tool int) error {
	if tool < 0 {
		return newValidationError("tool index must be >= 0, got %d", tool)
	}
	return c.doPost(c.endpoints.Tool, map[string]any{
		"command": "target",
		"targets": map[string]float64{heaterName(tool): temp},
	})
}

// GetToolTemp fetches the current temperature reading for extruder tool.
// Returns nil without error when the server reports no such heater.
func (c *Client) GetToolTemp(tool int) (*TemperatureReading, error) {
	if tool < 0 {
		return nil, newValidationError("tool index must be >= 0, got %d", tool)
	}
	return c.getTemperature(c.endpoints.Tool, heaterName(tool))
}

// SetBedTemp sets the target bed temperature. A target of 0 switches the
// bed heater off.
func (c *Client) SetBedTemp(temp float64) error {
	return c.doPost(c.endpoints.Bed, map[string]any{
		"command": "target",
		"target":  temp,
	})
}

// GetBedTemp fetches the current bed temperature reading. Returns nil
// without error when the server reports no bed heater.
func (c *Client) GetBedTemp() (*TemperatureReading, error) {
	return c.getTemperature(c.endpoints.Bed, "bed")
}

// getTemperature fetches a temperature endpoint with history disabled and
// extracts the named heater entry from the flat top-level key. An absent
// key yields nil rather than an error so callers can distinguish "heater
// not fitted" from a failed request.
func (c *Client) getTemperature(url, key string) (*TemperatureReading, error) {
	query := map[string]string{"history": "false", "limit": "2"}

	var payload map[string]json.RawMessage
	if _, err := c.doGet(url, query, &payload); err != nil {
		return nil, err
	}

	raw, ok := payload[key]
	if !ok {
		return nil, nil
	}

	var reading TemperatureReading
	if err := json.Unmarshal(raw, &reading); err != nil {
		return nil, &Error{
			Kind: KindHTTP,
			URL:  url,
			Err:  fmt.Errorf("decoding %s temperature entry: %w", key, err),
		}
	}
	return &reading, nil
}

// GetJobInfo fetches information about the current print job.
func (c *Client) GetJobInfo() (*JobInfo, error) {
	var info JobInfo
	if _, err := c.doGet(c.endpoints.Job, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Job controls the current print job. The command is matched
// case-insensitively against the fixed set start, cancel, restart, pause;
// anything else fails with a validation error before any request is sent.
// The server enforces job preconditions (e.g. a file must be selected
// before start) and signals violations via the busy or http error kinds.
func (c *Client) Job(command string) error {
	normalized := strings.ToLower(command)
	if !jobCommands[normalized] {
		return newValidationError(
			"unknown job command %q: valid commands are start, cancel, pause, restart", command)
	}
	return c.doPost(c.endpoints.Job, map[string]any{"command": normalized})
}

// JobStart starts printing the currently selected file.
func (c *Client) JobStart() error {
	return c.Job("start")
}

// JobRestart restarts the current job from the beginning.
func (c *Client) JobRestart() error {
	return c.Job("restart")
}

// JobPause pauses or unpauses the current job.
func (c *Client) JobPause() error {
	return c.Job("pause")
}

// JobCancel cancels the current job.
func (c *Client) JobCancel() error {
	return c.Job("cancel")
}

// Connect asks the server to connect to the printer. Only fields set in
// opts are included in the envelope; the server falls back to its stored
// defaults for anything omitted. Booleans are sent as literal true only
// when enabled.
func (c *Client) Connect(opts ConnectOptions) error {
	envelope := map[string]any{"command": "connect"}
	if opts.Port != "" {
		envelope["port"] = opts.Port
	}
	if opts.Baudrate != 0 {
		envelope["baudrate"] = opts.Baudrate
	}
	if opts.Profile != "" {
		envelope["printerProfile"] = opts.Profile
	}
	if opts.Save {
		envelope["save"] = true
	}
	if opts.Autoconnect {
		envelope["autoconnect"] = true
	}
	return c.doPost(c.endpoints.Connection, envelope)
}

// Disconnect asks the server to disconnect from the printer.
func (c *Client) Disconnect() error {
	return c.doPost(c.endpoints.Connection, map[string]any{"command": "disconnect"})
}

// GetFiles lists files on printer storage. location may be LocationLocal,
// LocationSDCard, or empty for all locations.
func (c *Client) GetFiles(location string) (*FileList, error) {
	url := c.endpoints.Files
	switch location {
	case "":
	case LocationLocal, LocationSDCard:
		url = url + "/" + location
	default:
		return nil, newValidationError(
			"unknown storage location %q: valid locations are local, sdcard", location)
	}

	var list FileList
	if _, err := c.doGet(url, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// SelectFile selects a file for printing from the given storage location,
// optionally starting the print immediately.
func (c *Client) SelectFile(name, location string, startPrint bool) error {
	if name == "" {
		return newValidationError("file name cannot be empty")
	}
	if location != LocationLocal && location != LocationSDCard {
		return newValidationError(
			"unknown storage location %q: valid locations are local, sdcard", location)
	}
	url := fmt.Sprintf("%s/%s/%s", c.endpoints.Files, location, name)
	return c.doPost(url, map[string]any{
		"command": "select",
		"print":   startPrint,
	})
}

// heaterName builds the server's heater key for an extruder index.
func heaterName(tool int) string {
	return fmt.Sprintf("tool%d", tool)
}
