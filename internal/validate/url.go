// Package validate provides input validation utilities for octoctl,
// ensuring proper printer server addressing before any network operation.
//
// Implements base URL validation using the go-playground/validator library
// combined with net/url parsing. Prevents configuration errors from
// surfacing as confusing runtime HTTP failures by failing fast at client
// construction with clear error messages.
//
// VALIDATION FEATURES:
//   - URL format: Well-formed absolute URLs via the built-in url validator
//   - Scheme: Only http and https are accepted for printer communication
//   - Host: A host (with optional port) must be present
//   - Normalization: Trailing slashes are stripped so endpoint suffixes
//     concatenate cleanly
package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: required, url - no custom registration needed
}

// BaseURL validates a printer server base URL and returns its normalized
// form with any trailing slashes removed. The base URL must be an absolute
// http or https URL including the port when the server does not listen on
// the scheme default (e.g. http://printer.local:5000).
//
// Essential for processing user-provided addresses from configuration files
// and CLI arguments. Ensures the endpoint set derived from the base URL is
// well-formed before any request is attempted, so misconfiguration surfaces
// as a clear validation error rather than a runtime HTTP failure.
func BaseURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("base URL cannot be empty")
	}

	if err := validate.Var(raw, "required,url"); err != nil {
		return "", fmt.Errorf("invalid base URL '%s': %w", raw, err)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base URL '%s': %w", raw, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme '%s': printer servers speak http or https", parsed.Scheme)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("base URL '%s' has no host", raw)
	}

	return strings.TrimRight(raw, "/"), nil
}

// ValidateField validates individual values against specified validation
// rules using the go-playground/validator library. Provides flexible
// validation for single fields without requiring struct definitions.
//
// Example: ValidateField(timeout, "required,min=1")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}
