package config

import (
	"testing"
)

// TestValidateURL tests printer URL validation and normalization
func TestValidateURL(t *testing.T) {
	originalURL := Global.URL
	defer func() { Global.URL = originalURL }()

	tests := []struct {
		name        string
		url         string
		expectError bool
		normalized  string
	}{
		{
			name:       "valid URL with port",
			url:        "http://printer.local:5000",
			normalized: "http://printer.local:5000",
		},
		{
			name:       "trailing slash normalized",
			url:        "http://printer.local:5000/",
			normalized: "http://printer.local:5000",
		},
		{
			name:        "empty URL",
			url:         "",
			expectError: true,
		},
		{
			name:        "missing scheme",
			url:         "printer.local:5000",
			expectError: true,
		},
		{
			name:        "bad scheme",
			url:         "ftp://printer.local",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global.URL = tt.url
			err := ValidateURL()

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for URL %q, got none", tt.url)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for URL %q: %v", tt.url, err)
				return
			}
			if Global.URL != tt.normalized {
				t.Errorf("Normalized URL = %q, want %q", Global.URL, tt.normalized)
			}
		})
	}
}

// TestValidateOutputFormat tests the --output flag validation
func TestValidateOutputFormat(t *testing.T) {
	originalOutput := Global.Output
	defer func() { Global.Output = originalOutput }()

	tests := []struct {
		output      string
		expectError bool
	}{
		{"table", false},
		{"json", false},
		{"yaml", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			Global.Output = tt.output
			err := ValidateOutputFormat()
			if tt.expectError && err == nil {
				t.Errorf("Expected error for output %q, got none", tt.output)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for output %q: %v", tt.output, err)
			}
		})
	}
}

// TestValidateLogLevel tests the --log-level flag validation
func TestValidateLogLevel(t *testing.T) {
	originalLevel := Global.LogLevel
	defer func() { Global.LogLevel = originalLevel }()

	tests := []struct {
		level       string
		expectError bool
	}{
		{"DEBUG", false},
		{"INFO", false},
		{"WARN", false},
		{"ERROR", false},
		{"TRACE", true},
		{"debug", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Global.LogLevel = tt.level
			err := ValidateLogLevel()
			if tt.expectError && err == nil {
				t.Errorf("Expected error for level %q, got none", tt.level)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for level %q: %v", tt.level, err)
			}
		})
	}
}

// TestValidateTimeout tests the --timeout flag validation
func TestValidateTimeout(t *testing.T) {
	originalTimeout := Global.Timeout
	defer func() { Global.Timeout = originalTimeout }()

	tests := []struct {
		name        string
		timeout     int
		expectError bool
	}{
		{"default", DefaultTimeout, false},
		{"one second", 1, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global.Timeout = tt.timeout
			err := ValidateTimeout()
			if tt.expectError && err == nil {
				t.Errorf("Expected error for timeout %d, got none", tt.timeout)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for timeout %d: %v", tt.timeout, err)
			}
		})
	}
}
