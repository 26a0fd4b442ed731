package directive

import "time"

// CallSite is the stable identity of one logical log statement. Obtain one
// from RegisterCallSite exactly once per statement (typically into a
// package-level var) and pass it to every evaluation of that statement.
// The zero CallSite is shared by all ungated calls; attach stateful
// directives only to registered sites.
type CallSite uint64

// callSiteState is the persistent record behind a call site. Created on
// the site's first evaluation, mutated only by the evaluator, never
// reclaimed during the process lifetime.
type callSiteState struct {
	firedOnce   bool
	lastFire    time.Time
	hasLastFire bool
}

// Evaluator owns the state behind stateful directives and decides, per
// attempt, whether a call site may fire. It never formats or emits
// anything.
//
// The evaluator performs no locking; concurrent attempts at one call site
// may under- or over-fire.
type Evaluator struct {
	nextSite CallSite
	sites    map[CallSite]*callSiteState
}

// NewEvaluator returns an evaluator with an empty state table.
func NewEvaluator() *Evaluator {
	return &Evaluator{sites: make(map[CallSite]*callSiteState)}
}

// RegisterCallSite hands out a fresh call-site identity.
func (e *Evaluator) RegisterCallSite() CallSite {
	e.nextSite++
	return e.nextSite
}

func (e *Evaluator) state(site CallSite) *callSiteState {
	s, ok := e.sites[site]
	if !ok {
		s = &callSiteState{}
		e.sites[site] = s
	}
	return s
}

// ShouldFire reports whether the call site may proceed under d, mutating
// the site's state as the directive's kind prescribes.
func (e *Evaluator) ShouldFire(site CallSite, d Directive) bool {
	switch d.Kind {
	case None:
		return true
	case Once:
		s := e.state(site)
		if s.firedOnce {
			return false
		}
		s.firedOnce = true
		return true
	case SkipFirst:
		s := e.state(site)
		if s.firedOnce {
			return true
		}
		s.firedOnce = true
		return false
	case Expression:
		return d.Condition
	case Function:
		return d.Predicate != nil && d.Predicate()
	case Throttle:
		return e.throttle(e.state(site), d)
	case SkipFirstThrottle:
		// The throttle window opens on the first attempt even though
		// that attempt is suppressed.
		s := e.state(site)
		fired := e.throttle(s, d)
		if !s.firedOnce {
			s.firedOnce = true
			return false
		}
		return fired
	default:
		return false
	}
}

// throttle fires when no prior fire is recorded or the interval has fully
// elapsed since the last one, recording the fire time when it does.
func (e *Evaluator) throttle(s *callSiteState, d Directive) bool {
	now := d.Clock.Now()
	if s.hasLastFire && now.Sub(s.lastFire) < d.Interval {
		return false
	}
	s.lastFire = now
	s.hasLastFire = true
	return true
}
