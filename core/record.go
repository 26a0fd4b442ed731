package core

import "time"

// Record is a single log message on its way to the output handler. A
// record is built only after the message has passed its directive and
// severity gates, and is not retained once the handler returns.
type Record struct {
	Time     time.Time
	Severity Severity
	// Name is the dot-separated logger name, empty for the nameless
	// root logger.
	Name    string
	Message string
	// Location is nil when the call site is unknown.
	Location *Location
}
