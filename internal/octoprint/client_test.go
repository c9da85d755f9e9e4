package octoprint

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// fakePrinter is a minimal OctoPrint server stand-in. It records the last
// request it saw and replies with a configurable status and body.
type fakePrinter struct {
	mu     sync.Mutex
	status int
	body   string

	lastMethod string
	lastPath   string
	lastQuery  url.Values
	lastHeader http.Header
	lastBody   []byte
}

func (fp *fakePrinter) handle(c *gin.Context) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	fp.lastMethod = c.Request.Method
	fp.lastPath = c.Request.URL.Path
	fp.lastQuery = c.Request.URL.Query()
	fp.lastHeader = c.Request.Header.Clone()
	body, _ := io.ReadAll(c.Request.Body)
	fp.lastBody = body

	c.Data(fp.status, "application/json", []byte(fp.body))
}

// respond configures the canned reply for subsequent requests.
func (fp *fakePrinter) respond(status int, body string) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.status = status
	fp.body = body
}

// envelope decodes the last recorded request body as a JSON object.
func (fp *fakePrinter) envelope(t *testing.T) map[string]any {
	t.Helper()
	fp.mu.Lock()
	defer fp.mu.Unlock()

	var envelope map[string]any
	if err := json.Unmarshal(fp.lastBody, &envelope); err != nil {
		t.Fatalf("Last request body is not a JSON object: %v (body %q)", err, fp.lastBody)
	}
	return envelope
}

// newFakePrinter starts a fake printer server and a client pointed at it.
func newFakePrinter(t *testing.T) (*fakePrinter, *Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fp := &fakePrinter{status: http.StatusOK, body: "{}"}
	router := gin.New()
	router.NoRoute(fp.handle)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := New(server.URL, "TESTKEY", 5*time.Second)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return fp, client
}

// TestNewRejectsBadBaseURL tests that client construction fails fast with
// a validation error on a malformed base URL
func TestNewRejectsBadBaseURL(t *testing.T) {
	tests := []string{"", "printer.local:5000", "gopher://printer"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := New(input, "KEY", time.Second)
			if err == nil {
				t.Fatalf("New(%q) succeeded, want error", input)
			}
			if !IsValidation(err) {
				t.Errorf("New(%q) error kind = %v, want validation", input, err)
			}
		})
	}
}

// TestAPIKeyHeader tests that every request carries the X-Api-Key header
func TestAPIKeyHeader(t *testing.T) {
	fp, client := newFakePrinter(t)
	fp.respond(http.StatusOK, `{"api": "0.1", "server": "1.9.0", "text": "OctoPrint 1.9.0"}`)

	if _, err := client.GetVersion(); err != nil {
		t.Fatalf("GetVersion returned error: %v", err)
	}
	if got := fp.lastHeader.Get("X-Api-Key"); got != "TESTKEY" {
		t.Errorf("X-Api-Key header = %q, want %q", got, "TESTKEY")
	}
	if fp.lastPath != "/api/version" {
		t.Errorf("Request path = %q, want %q", fp.lastPath, "/api/version")
	}
}

// TestSetAPIKey tests that key rotation applies to subsequent requests
func TestSetAPIKey(t *testing.T) {
	fp, client := newFakePrinter(t)
	fp.respond(http.StatusOK, `{}`)

	client.SetAPIKey("ROTATED")
	if _, err := client.GetVersion(); err != nil {
		t.Fatalf("GetVersion returned error: %v", err)
	}
	if got := fp.lastHeader.Get("X-Api-Key"); got != "ROTATED" {
		t.Errorf("X-Api-Key header after rotation = %q, want %q", got, "ROTATED")
	}
}

// TestSetBaseURL tests wholesale endpoint rebuild and rejection of bad URLs
func TestSetBaseURL(t *testing.T) {
	_, client := newFakePrinter(t)

	if err := client.SetBaseURL("http://other.local:5000"); err != nil {
		t.Fatalf("SetBaseURL returned error: %v", err)
	}
	if client.Endpoints().Job != "http://other.local:5000/api/job" {
		t.Errorf("Job endpoint after SetBaseURL = %q, want %q",
			client.Endpoints().Job, "http://other.local:5000/api/job")
	}

	before := client.Endpoints()
	err := client.SetBaseURL("not a url")
	if err == nil {
		t.Fatal("SetBaseURL accepted a malformed URL")
	}
	if !IsValidation(err) {
		t.Errorf("SetBaseURL error kind = %v, want validation", err)
	}
	if client.Endpoints() != before {
		t.Error("Endpoint registry changed despite validation failure")
	}
}

// TestGetStatus tests the status query parameters and response decoding
func TestGetStatus(t *testing.T) {
	fp, client := newFakePrinter(t)
	body := `{
		"state": {"text": "Operational", "flags": {"operational": true, "printing": false}},
		"temperature": {
			"tool0": {"actual": 214.8, "target": 215.0, "offset": 0},
			"bed": {"actual": 50.2, "target": 50.0, "offset": 0},
			"history": [{"time": 1700000000}]
		}
	}`
	fp.respond(http.StatusOK, body)

	status, err := client.GetStatus(true, 2)
	if err != nil {
		t.Fatalf("GetStatus returned error: %v", err)
	}

	if fp.lastPath != "/api/printer" {
		t.Errorf("Request path = %q, want %q", fp.lastPath, "/api/printer")
	}
	if got := fp.lastQuery.Get("history"); got != "true" {
		t.Errorf("history query = %q, want %q", got, "true")
	}
	if got := fp.lastQuery.Get("limit"); got != "2" {
		t.Errorf("limit query = %q, want %q", got, "2")
	}

	if status.State.Text != "Operational" {
		t.Errorf("State.Text = %q, want %q", status.State.Text, "Operational")
	}
	readings := status.HeaterReadings()
	if len(readings) != 2 {
		t.Errorf("HeaterReadings returned %d entries, want 2 (history must be skipped)", len(readings))
	}
	if got := readings["tool0"].Actual; got != 214.8 {
		t.Errorf("tool0 actual = %v, want 214.8", got)
	}
	if len(status.Raw) == 0 {
		t.Error("Raw body not retained on status")
	}

	// history=false must be sent as the literal string "false"
	if _, err := client.GetStatus(false, 5); err != nil {
		t.Fatalf("GetStatus returned error: %v", err)
	}
	if got := fp.lastQuery.Get("history"); got != "false" {
		t.Errorf("history query = %q, want %q", got, "false")
	}
}

// TestHomeEnvelope tests axis filtering and ordering in the home envelope
func TestHomeEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z bool
		axes    []any
	}{
		{"x and z", true, false, true, []any{"x", "z"}},
		{"all axes", true, true, true, []any{"x", "y", "z"}},
		{"no axes", false, false, false, []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, client := newFakePrinter(t)
			fp.respond(http.StatusNoContent, "")

			if err := client.Home(tt.x, tt.y, tt.z); err != nil {
				t.Fatalf("Home returned error: %v", err)
			}
			if fp.lastPath != "/api/printer/printhead" {
				t.Errorf("Request path = %q, want %q", fp.lastPath, "/api/printer/printhead")
			}

			envelope := fp.envelope(t)
			if envelope["command"] != "home" {
				t.Errorf("command = %v, want home", envelope["command"])
			}
			axes, ok := envelope["axes"].([]any)
			if !ok {
				t.Fatalf("axes field missing or not a list: %v", envelope["axes"])
			}
			if len(axes) != len(tt.axes) {
				t.Fatalf("axes = %v, want %v", axes, tt.axes)
			}
			for i := range axes {
				if axes[i] != tt.axes[i] {
					t.Errorf("axes[%d] = %v, want %v", i, axes[i], tt.axes[i])
				}
			}
		})
	}
}

// TestJogEnvelope tests that omitted axes stay absent while zero is sent
func TestJogEnvelope(t *testing.T) {
	ten := 10.0
	zero := 0.0
	minusFive := -5.0

	tests := []struct {
		name    string
		x, y, z *float64
		want    map[string]any
		absent  []string
	}{
		{
			name:   "only x provided",
			x:      &ten,
			want:   map[string]any{"command": "jog", "x": 10.0},
			absent: []string{"y", "z"},
		},
		{
			name:   "zero is a provided value",
			x:      &zero,
			want:   map[string]any{"command": "jog", "x": 0.0},
			absent: []string{"y", "z"},
		},
		{
			name:   "two axes with negative delta",
			y:      &minusFive,
			z:      &ten,
			want:   map[string]any{"command": "jog", "y": -5.0, "z": 10.0},
			absent: []string{"x"},
		},
		{
			name:   "no axes",
			want:   map[string]any{"command": "jog"},
			absent: []string{"x", "y", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, client := newFakePrinter(t)
			fp.respond(http.StatusNoContent, "")

			if err := client.Jog(tt.x, tt.y, tt.z); err != nil {
				t.Fatalf("Jog returned error: %v", err)
			}

			envelope := fp.envelope(t)
			for key, want := range tt.want {
				if envelope[key] != want {
					t.Errorf("envelope[%q] = %v, want %v", key, envelope[key], want)
				}
			}
			for _, key := range tt.absent {
				if _, present := envelope[key]; present {
					t.Errorf("envelope key %q present, want absent", key)
				}
			}
		})
	}
}

// TestToolEnvelopes tests extrude, select and target envelopes on the tool endpoint
func TestToolEnvelopes(t *testing.T) {
	t.Run("extrude", func(t *testing.T) {
		fp, client := newFakePrinter(t)
		fp.respond(http.StatusNoContent, "")

		if err := client.Extrude(-3); err != nil {
			t.Fatalf("Extrude returned error: %v", err)
		}
		if fp.lastPath != "/api/printer/tool" {
			t.Errorf("Request path = %q, want %q", fp.lastPath, "/api/printer/tool")
		}
		envelope := fp.envelope(t)
		if envelope["command"] != "extrude" || envelope["amount"] != -3.0 {
			t.Errorf("envelope = %v, want extrude with amount -3", envelope)
		}
	})

	t.Run("select tool", func(t *testing.T) {
		fp, client := newFakePrinter(t)
		fp.respond(http.StatusNoContent, "")

		if err := client.SelectTool(1); err != nil {
			t.Fatalf("SelectTool returned error: %v", err)
		}
		envelope := fp.envelope(t)
		if envelope["command"] != "select" || envelope["tool"] != "tool1" {
			t.Errorf("envelope = %v, want select of tool1", envelope)
		}
	})

	t.Run("set tool temperature", func(t *testing.T) {
		fp, client := newFakePrinter(t)
		fp.respond(http.StatusNoContent, "")

		if err := client.SetToolTemp(200, 1); err != nil {
			t.Fatalf("SetToolTemp returned error: %v", err)
		}
		envelope := fp.envelope(t)
		if envelope["command"] != "target" {
			t.Errorf("command = %v, want target", envelope["command"])
		}
		targets, ok := envelope["targets"].(map[string]any)
		if !ok {
			t.Fatalf("targets field missing or not an object: %v", envelope["targets"])
		}
		if targets["tool1"] != 200.0 {
			t.Errorf("targets = %v, want tool1: 200", targets)
		}
	})

	t.Run("negative tool index rejected", func(t *testing.T) {
		fp, client := newFakePrinter(t)

		err := client.SetToolTemp(200, -1)
		if !IsValidation(err) {
			t.Errorf("SetToolTemp(-1) error = %v, want validation", err)
		}
		if fp.lastMethod != "" {
			t.Error("Request was sent despite validation failure")
		}
	})
}

// TestSetBedTemp tests the bed target envelope
func TestSetBedTemp(t *testing.T) {
	fp, client := newFakePrinter(t)
	fp.respond(http.StatusNoContent, "")

	if err := client.SetBedTemp(60); err != nil {
		t.Fatalf("SetBedTemp returned error: %v", err)
	}
	if fp.lastPath != "/api/printer/bed" {
		t.Errorf("Request path = %q, want %q", fp.lastPath, "/api/printer/bed")
	}
	envelope := fp.envelope(t)
	if envelope["command"] != "target" || envelope["target"] != 60.0 {
		t.Errorf("envelope = %v, want target of 60", envelope)
	}
}

// TestGetToolTemp tests flat-key extraction including the absent-heater case
func TestGetToolTemp(t *testing.T) {
	fp, client := newFakePrinter(t)
	fp.respond(http.StatusOK, `{
		"tool0": {"actual": 214.8, "target": 215.0, "offset": 0},
		"bed": {"actual": 50.2, "target": 50.0, "offset": 0}
	}`)

	reading, err := client.GetToolTemp(0)
	if err != nil {
		t.Fatalf("GetToolTemp returned error: %v", err)
	}
	if reading == nil {
		t.Fatal("GetToolTemp(0) returned nil for a present heater")
	}
	if reading.Actual != 214.8 || reading.Target != 215.0 {
		t.Errorf("Reading = %+v, want actual 214.8 target 215.0", reading)
	}

	if got := fp.lastQuery.Get("history"); got != "false" {
		t.Errorf("history query = %q, want %q", got, "false")
	}
	if got := fp.lastQuery.Get("limit"); got != "2" {
		t.Errorf("limit query = %q, want %q", got, "2")
	}

	// Absent heater yields nil, not an error
	reading, err = client.GetToolTemp(9)
	if err != nil {
		t.Fatalf("GetToolTemp(9) returned error: %v", err)
	}
	if reading != nil {
		t.Errorf("GetToolTemp(9) = %+v, want nil for absent heater", reading)
	}
}

// TestGetBedTemp tests bed extraction shares the flat-key lookup
func TestGetBedTemp(t *testing.T) {
	fp, client := newFakePrinter(t)
	fp.respond(http.StatusOK, `{"bed": {"actual": 50.2, "target": 50.0, "offset": 0}}`)

	reading, err := client.GetBedTemp()
	if err != nil {
		t.Fatalf("GetBedTemp returned error: %v", err)
	}
	if reading == nil || reading.Actual != 50.2 {
		t.Errorf("Reading = %+v, want actual 50.2", reading)
	}
	if fp.lastPath != "/api/printer/bed" {
		t.Errorf("Request path = %q, want %q", fp.lastPath, "/api/printer/bed")
	}
}

// TestJobCommands tests case-insensitive normalization and validation
func TestJobCommands(t *testing.T) {
	tests := []struct {
		name        string
		command     string
		expectSent  string
		expectError bool
	}{
		{"lowercase start", "start", "start", false},
		{"uppercase start", "START", "start", false},
		{"mixed case pause", "PaUsE", "pause", false},
		{"cancel", "cancel", "cancel", false},
		{"restart", "restart", "restart", false},
		{"unknown command", "blast off", "", true},
		{"empty command", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, client := newFakePrinter(t)
			fp.respond(http.StatusNoContent, "")

			err := client.Job(tt.command)
			if tt.expectError {
				if !IsValidation(err) {
					t.Errorf("Job(%q) error = %v, want validation", tt.command, err)
				}
				if fp.lastMethod != "" {
					t.Error("Request was sent despite validation failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("Job(%q) returned error: %v", tt.command, err)
			}
			if fp.lastPath != "/api/job" {
				t.Errorf("Request path = %q, want %q", fp.lastPath, "/api/job")
			}
			envelope := fp.envelope(t)
			if envelope["command"] != tt.expectSent {
				t.Errorf("command = %v, want %q", envelope["command"], tt.expectSent)
			}
		})
	}
}

// TestConnectEnvelope tests that only provided connection fields are sent
func TestConnectEnvelope(t *testing.T) {
	t.Run("no options", func(t *testing.T) {
		fp, client := newFakePrinter(t)
		fp.respond(http.StatusNoContent, "")

		if err := client.Connect(ConnectOptions{}); err != nil {
			t.Fatalf("Connect returned error: %v", err)
		}
		envelope := fp.envelope(t)
		if len(envelope) != 1 || envelope["command"] != "connect" {
			t.Errorf("envelope = %v, want only command: connect", envelope)
		}
	})

	t.Run("all options", func(t *testing.T) {
		fp, client := newFakePrinter(t)
		fp.respond(http.StatusNoContent, "")

		opts := ConnectOptions{
			Port:        "/dev/ttyUSB0",
			Baudrate:    115200,
			Profile:     "default",
			Save:        true,
			Autoconnect: true,
		}
		if err := client.Connect(opts); err != nil {
			t.Fatalf("Connect returned error: %v", err)
		}
		envelope := fp.envelope(t)
		want := map[string]any{
			"command":        "connect",
			"port":           "/dev/ttyUSB0",
			"baudrate":       115200.0,
			"printerProfile": "default",
			"save":           true,
			"autoconnect":    true,
		}
		for key, value := range want {
			if envelope[key] != value {
				t.Errorf("envelope[%q] = %v, want %v", key, envelope[key], value)
			}
		}
	})
}

// TestDisconnect tests the disconnect envelope
func TestDisconnect(t *testing.T) {
	fp, client := newFakePrinter(t)
	fp.respond(http.StatusNoContent, "")

	if err := client.Disconnect(); err != nil {
		t.Fatalf("Disconnect returned error: %v", err)
	}
	if fp.lastPath != "/api/connection" {
		t.Errorf("Request path = %q, want %q", fp.lastPath, "/api/connection")
	}
	envelope := fp.envelope(t)
	if envelope["command"] != "disconnect" {
		t.Errorf("command = %v, want disconnect", envelope["command"])
	}
}

// TestGetFiles tests location routing for file listings
func TestGetFiles(t *testing.T) {
	tests := []struct {
		name     string
		location string
		wantPath string
	}{
		{"all locations", "", "/api/files"},
		{"local", LocationLocal, "/api/files/local"},
		{"sd card", LocationSDCard, "/api/files/sdcard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, client := newFakePrinter(t)
			fp.respond(http.StatusOK, `{"files": [{"name": "whistle.gcode", "origin": "local", "size": 1468987}], "free": 3111491}`)

			list, err := client.GetFiles(tt.location)
			if err != nil {
				t.Fatalf("GetFiles returned error: %v", err)
			}
			if fp.lastPath != tt.wantPath {
				t.Errorf("Request path = %q, want %q", fp.lastPath, tt.wantPath)
			}
			if len(list.Files) != 1 || list.Files[0].Name != "whistle.gcode" {
				t.Errorf("Files = %+v, want one entry named whistle.gcode", list.Files)
			}
		})
	}

	t.Run("unknown location rejected", func(t *testing.T) {
		fp, client := newFakePrinter(t)

		_, err := client.GetFiles("cloud")
		if !IsValidation(err) {
			t.Errorf("GetFiles(cloud) error = %v, want validation", err)
		}
		if fp.lastMethod != "" {
			t.Error("Request was sent despite validation failure")
		}
	})
}

// TestSelectFile tests the file selection URL and envelope
func TestSelectFile(t *testing.T) {
	fp, client := newFakePrinter(t)
	fp.respond(http.StatusNoContent, "")

	if err := client.SelectFile("whistle.gcode", LocationLocal, true); err != nil {
		t.Fatalf("SelectFile returned error: %v", err)
	}
	if fp.lastPath != "/api/files/local/whistle.gcode" {
		t.Errorf("Request path = %q, want %q", fp.lastPath, "/api/files/local/whistle.gcode")
	}
	envelope := fp.envelope(t)
	if envelope["command"] != "select" || envelope["print"] != true {
		t.Errorf("envelope = %v, want select with print: true", envelope)
	}

	if err := client.SelectFile("", LocationLocal, false); !IsValidation(err) {
		t.Errorf("SelectFile with empty name error = %v, want validation", err)
	}
	if err := client.SelectFile("a.gcode", "cloud", false); !IsValidation(err) {
		t.Errorf("SelectFile with bad location error = %v, want validation", err)
	}
}

// TestErrorClassification tests the status-code-to-error mapping
func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		call   func(*Client) error
		check  func(error) bool
		kind   string
	}{
		{
			name:   "401 on GET is authorization",
			status: http.StatusUnauthorized,
			call: func(c *Client) error {
				_, err := c.GetVersion()
				return err
			},
			check: IsAuthorization,
			kind:  "authorization",
		},
		{
			name:   "401 on POST is authorization",
			status: http.StatusUnauthorized,
			call:   func(c *Client) error { return c.Home(true, false, false) },
			check:  IsAuthorization,
			kind:   "authorization",
		},
		{
			name:   "409 on POST is printer busy",
			status: http.StatusConflict,
			call:   func(c *Client) error { return c.JobStart() },
			check:  IsPrinterBusy,
			kind:   "printer busy",
		},
		{
			name:   "409 on GET is a plain http error",
			status: http.StatusConflict,
			call: func(c *Client) error {
				_, err := c.GetJobInfo()
				return err
			},
			check: IsHTTP,
			kind:  "http",
		},
		{
			name:   "500 is a plain http error",
			status: http.StatusInternalServerError,
			call: func(c *Client) error {
				_, err := c.GetStatus(true, 2)
				return err
			},
			check: IsHTTP,
			kind:  "http",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, client := newFakePrinter(t)
			fp.respond(tt.status, `{"error": "nope"}`)

			// Classification must be idempotent across repeated calls
			for i := 0; i < 2; i++ {
				err := tt.call(client)
				if err == nil {
					t.Fatalf("Call succeeded with status %d, want %s error", tt.status, tt.kind)
				}
				if !tt.check(err) {
					t.Errorf("Call %d: error = %v, want kind %s", i, err, tt.kind)
				}
			}
		})
	}
}

// TestErrorContext tests that HTTP errors carry status, body and URL
func TestErrorContext(t *testing.T) {
	fp, client := newFakePrinter(t)
	fp.respond(http.StatusInternalServerError, `{"error": "firmware exploded"}`)

	_, err := client.GetVersion()
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Error type = %T, want *Error", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if apiErr.Body != `{"error": "firmware exploded"}` {
		t.Errorf("Body = %q, want raw response body", apiErr.Body)
	}
	if apiErr.URL == "" {
		t.Error("URL not recorded on error")
	}
}

// TestUnreachableServer tests transport failures map to the unreachable kind
func TestUnreachableServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := httptest.NewServer(gin.New())
	serverURL := server.URL
	server.Close()

	client, err := New(serverURL, "KEY", time.Second)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.GetVersion()
	if !IsUnreachable(err) {
		t.Errorf("Error against closed server = %v, want unreachable", err)
	}

	if err := client.Disconnect(); !IsUnreachable(err) {
		t.Errorf("POST error against closed server = %v, want unreachable", err)
	}
}
