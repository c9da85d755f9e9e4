// Package octoprint implements the typed API client for the OctoPrint
// HTTP/JSON printer control protocol.
//
// This file defines the closed error taxonomy for printer API failures.
// Every failure mode maps to an explicit kind with context fields (status
// code, response body, URL) so callers classify errors by matching on kind
// rather than inspecting strings or a type hierarchy.
//
// ERROR KINDS:
//   - Authorization: HTTP 401 on any call (bad or missing API key)
//   - PrinterBusy:   HTTP 409 on POST (operation requires an idle printer)
//   - HTTP:          any other status >= 400, carrying status and raw body
//   - Unreachable:   transport-level failure (DNS, refused, timeout)
//   - Validation:    malformed input rejected before any request is sent
//
// All errors are terminal for the current invocation: the client never
// retries, and reporting is the caller's responsibility.
package octoprint

import (
	"errors"
	"fmt"
)

// Kind discriminates the closed set of printer API error categories.
type Kind int

const (
	// KindAuthorization indicates the server rejected the API key (HTTP 401).
	KindAuthorization Kind = iota
	// KindPrinterBusy indicates the printer was not idle for an operation
	// that requires idleness (HTTP 409 on POST).
	KindPrinterBusy
	// KindHTTP indicates any other HTTP-level failure (status >= 400).
	KindHTTP
	// KindUnreachable indicates the server could not be contacted at all.
	KindUnreachable
	// KindValidation indicates malformed input caught before any request
	// was sent.
	KindValidation
)

// String returns the human-readable name of an error kind.
func (k Kind) String() string {
	switch k {
	case KindAuthorization:
		return "authorization"
	case KindPrinterBusy:
		return "printer busy"
	case KindHTTP:
		return "http"
	case KindUnreachable:
		return "unreachable"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by all client operations.
// Kind carries the category; StatusCode, Body and URL carry whatever
// context the category has available for diagnosis.
type Error struct {
	Kind       Kind
	URL        string // Request URL, empty for validation errors
	StatusCode int    // HTTP status, zero for transport/validation errors
	Body       string // Raw response body, empty when none was received
	Err        error  // Underlying transport or validation cause
}

// Error renders a human-readable message appropriate for direct CLI output.
func (e *Error) Error() string {
	switch e.Kind {
	case KindAuthorization:
		return fmt.Sprintf("not authorized: the printer server at %s rejected the API key (status 401)", e.URL)
	case KindPrinterBusy:
		return fmt.Sprintf("printer busy: the operation requires an idle printer (status 409 from %s)", e.URL)
	case KindHTTP:
		if e.Body != "" {
			return fmt.Sprintf("printer server error: status %d from %s: %s", e.StatusCode, e.URL, e.Body)
		}
		return fmt.Sprintf("printer server error: status %d from %s", e.StatusCode, e.URL)
	case KindUnreachable:
		return fmt.Sprintf("cannot reach printer server at %s: %v", e.URL, e.Err)
	case KindValidation:
		return fmt.Sprintf("invalid input: %v", e.Err)
	default:
		return fmt.Sprintf("printer API error (%s)", e.Kind)
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// newValidationError builds a Validation-kind error from a format string.
func newValidationError(format string, v ...any) *Error {
	return &Error{Kind: KindValidation, Err: fmt.Errorf(format, v...)}
}

// isKind reports whether err is an *Error of the given kind.
func isKind(err error, kind Kind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// IsAuthorization reports whether err is an API key rejection (HTTP 401).
func IsAuthorization(err error) bool {
	return isKind(err, KindAuthorization)
}

// IsPrinterBusy reports whether err is a busy-printer rejection (HTTP 409).
func IsPrinterBusy(err error) bool {
	return isKind(err, KindPrinterBusy)
}

// IsHTTP reports whether err is an uncategorized HTTP-level failure.
func IsHTTP(err error) bool {
	return isKind(err, KindHTTP)
}

// IsUnreachable reports whether err is a transport-level connectivity failure.
func IsUnreachable(err error) bool {
	return isKind(err, KindUnreachable)
}

// IsValidation reports whether err is a local input validation failure.
func IsValidation(err error) bool {
	return isKind(err, KindValidation)
}
