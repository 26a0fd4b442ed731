package core

import "time"

// Clock supplies timestamps to time-based gating. The clock is a parameter
// of the directive using it, not process-wide state.
type Clock interface {
	Now() time.Time
}

// SteadyClock reads the monotonic clock. Elapsed-time comparisons between
// its readings are immune to wall-clock adjustments.
type SteadyClock struct{}

func (SteadyClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock, stripping the monotonic reading.
// Elapsed-time comparisons between its readings follow wall-clock
// adjustments, including jumps backward; a throttle window measured on it
// may over- or under-fire across such a jump.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().Round(0) }
