// Package utils provides utility functions for the octoctl CLI.
package utils

import (
	"fmt"
	"time"
)

// FormatSeconds converts a duration reported by the printer server in
// seconds into a human-readable string for CLI output. Uses progressive
// time unit scaling so print times and remaining-time estimates display in
// the most appropriate unit, and renders non-positive values as "-" since
// the server reports zero when no estimate is available.
func FormatSeconds(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}

	d := time.Duration(seconds * float64(time.Second))
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
	return fmt.Sprintf("%dd%02dh", int(d.Hours()/24), int(d.Hours())%24)
}
