// Package directive gates individual log call sites independently of
// severity enablement: fire-once, skip-first, predicate-gated and
// time-throttled policies, evaluated against persistent per-call-site
// state.
package directive

import (
	"time"

	"github.com/gatelog/gatelog/core"
)

// Kind selects the gating rule a Directive applies.
type Kind uint8

const (
	// None always fires.
	None Kind = iota
	// Once fires on the first attempt and never again.
	Once
	// SkipFirst fires on every attempt except the first.
	SkipFirst
	// Expression fires when the directive's Condition is true.
	Expression
	// Function fires when the directive's Predicate returns true.
	Function
	// Throttle fires at most once per Interval; the first attempt always
	// fires.
	Throttle
	// SkipFirstThrottle suppresses the first attempt unconditionally,
	// then throttles.
	SkipFirstThrottle
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Once:
		return "Once"
	case SkipFirst:
		return "SkipFirst"
	case Expression:
		return "Expression"
	case Function:
		return "Function"
	case Throttle:
		return "Throttle"
	case SkipFirstThrottle:
		return "SkipFirstThrottle"
	default:
		return "Unknown"
	}
}

// Directive is the gating policy attached to a call site. The zero value
// always fires.
type Directive struct {
	Kind Kind
	// Condition is consulted by Expression directives, fresh per attempt.
	Condition bool
	// Predicate is consulted by Function directives, invoked fresh per
	// attempt.
	Predicate func() bool
	// Clock and Interval govern the throttled kinds.
	Clock    core.Clock
	Interval time.Duration
}

// Always returns a directive that never suppresses anything.
func Always() Directive {
	return Directive{Kind: None}
}

// FireOnce returns a directive that lets only the first attempt through.
func FireOnce() Directive {
	return Directive{Kind: Once}
}

// SkipFirstFire returns a directive that suppresses only the first attempt.
func SkipFirstFire() Directive {
	return Directive{Kind: SkipFirst}
}

// When returns a directive gated on a boolean evaluated at the call site.
func When(cond bool) Directive {
	return Directive{Kind: Expression, Condition: cond}
}

// WhenFunc returns a directive gated on a predicate invoked per attempt.
func WhenFunc(pred func() bool) Directive {
	return Directive{Kind: Function, Predicate: pred}
}

// Throttled returns a directive that fires at most once per interval as
// measured on clock.
func Throttled(clock core.Clock, interval time.Duration) Directive {
	return Directive{Kind: Throttle, Clock: clock, Interval: interval}
}

// SkipFirstThrottled returns a throttled directive whose first attempt is
// suppressed unconditionally.
func SkipFirstThrottled(clock core.Clock, interval time.Duration) Directive {
	return Directive{Kind: SkipFirstThrottle, Clock: clock, Interval: interval}
}
