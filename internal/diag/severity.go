package diag

import (
	"fmt"
	"strings"
)

// Severity orders diagnostics from informational to fatal for the run.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError makes the stage result unusable for --strict.
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// ParseSeverity reads a threshold as written in flags and exprc.toml.
// "warn" is accepted for "warning".
func ParseSeverity(s string) (Severity, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARN" {
		name = "WARNING"
	}
	for sev, n := range severityNames {
		if n == name {
			return Severity(sev), nil
		}
	}
	return SevInfo, fmt.Errorf("unknown severity %q (expected: info|warning|error)", s)
}

// AtLeast reports whether s is as severe as floor or more.
func (s Severity) AtLeast(floor Severity) bool { return s >= floor }
