package core

import "strings"

// Severity is the level of a log message, and doubles as a logger
// threshold: a message is emitted when its severity is at or above the
// effective threshold of its logger.
type Severity int

const (
	// Debug for detailed debugging information
	Debug Severity = 0
	// Info for general informational messages (default threshold)
	Info Severity = 1
	// Warn for warning messages
	Warn Severity = 2
	// Error for error messages
	Error Severity = 3
	// Fatal for messages about unrecoverable failures
	Fatal Severity = 4

	// Unset marks the absence of an explicit threshold. It is a
	// query-result sentinel, numerically outside the real levels, and is
	// never compared against them.
	Unset Severity = 100
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	case Unset:
		return "UNSET"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a string to a Severity. It accepts the five real
// levels plus UNSET, case-insensitively.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return Debug, true
	case "INFO":
		return Info, true
	case "WARN":
		return Warn, true
	case "ERROR":
		return Error, true
	case "FATAL":
		return Fatal, true
	case "UNSET":
		return Unset, true
	default:
		return Unset, false
	}
}
