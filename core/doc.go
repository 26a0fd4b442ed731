// Package core holds the basic types shared by every part of the logging
// core: severities, call-site locations, the transient log record handed to
// output handlers, and the clock capability used by time-based gating.
package core
