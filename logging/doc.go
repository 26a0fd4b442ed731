// Package logging ties the pieces of the core together: an explicit
// process-wide context holding the threshold registry, the call-site
// directive evaluator and the active output handler, plus the emit path
// that couples enablement checks to lazy message formatting.
//
// The emit path checks the call site's directive first, then severity
// enablement, and only formats the message and builds a record once both
// gates pass, keeping the disabled path as cheap as possible.
//
// Nothing in this package locks. The registry, the active handler, the
// default threshold and every call site's state are shared mutable state;
// concurrent mutation is best-effort, and callers needing strict
// correctness under concurrency must serialize access externally.
package logging
