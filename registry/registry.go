// Package registry resolves severity thresholds across the dot-separated
// logger name hierarchy: a logger named x is an ancestor of x.y, and the
// nearest ancestor with an explicit threshold governs a logger that has
// none of its own.
package registry

import (
	"fmt"
	"os"
	"strings"

	"github.com/gatelog/gatelog/core"
)

// DefaultThreshold is the build-time default for the process-wide fallback
// threshold.
const DefaultThreshold = core.Info

// Registry maps logger names to explicitly-set severity thresholds and
// carries the process-wide default that every unset name falls back to.
//
// A Registry performs no internal locking. Concurrent mutation and
// resolution are best-effort; callers needing strict correctness must
// serialize access externally.
type Registry struct {
	thresholds map[string]core.Severity
	def        core.Severity
}

// New returns an empty registry with the build-time default threshold.
func New() *Registry {
	return &Registry{
		thresholds: make(map[string]core.Severity),
		def:        DefaultThreshold,
	}
}

// SetDefault replaces the process-wide fallback threshold.
func (r *Registry) SetDefault(sev core.Severity) {
	r.def = sev
}

// Default returns the process-wide fallback threshold.
func (r *Registry) Default() core.Severity {
	return r.def
}

// SetThreshold records sev as the explicit threshold for name, overwriting
// any previous value. Setting core.Unset removes the explicit entry so the
// name resolves through its ancestors again. A severity outside the known
// levels is rejected with a diagnostic. Names are taken literally; empty
// segments are not validated.
func (r *Registry) SetThreshold(name string, sev core.Severity) {
	switch sev {
	case core.Debug, core.Info, core.Warn, core.Error, core.Fatal:
		r.thresholds[name] = sev
	case core.Unset:
		delete(r.thresholds, name)
	default:
		fmt.Fprintf(os.Stderr, "gatelog: invalid severity %d specified for logger named %q\n", sev, name)
	}
}

// Threshold returns the explicit threshold set for exactly name, or
// core.Unset when none is. The root (empty) name never has an entry of its
// own and reports the default directly.
func (r *Registry) Threshold(name string) core.Severity {
	if name == "" {
		return r.def
	}
	if sev, ok := r.thresholds[name]; ok {
		return sev
	}
	return core.Unset
}

// ThresholdN is Threshold limited to the first length bytes of name. A
// length past the end of name is clamped.
func (r *Registry) ThresholdN(name string, length int) core.Severity {
	if length > len(name) {
		length = len(name)
	}
	return r.Threshold(name[:length])
}

// EffectiveThreshold resolves the threshold actually governing name: the
// explicit value for name when set, otherwise the explicit value of the
// nearest ancestor, otherwise the default. Ancestors are produced by
// truncating the name at its last '.'; the separator is treated as a plain
// delimiter, so malformed names like "x..y" walk through "x." and "x".
func (r *Registry) EffectiveThreshold(name string) core.Severity {
	for end := len(name); end > 0; {
		if sev, ok := r.thresholds[name[:end]]; ok {
			return sev
		}
		end = strings.LastIndexByte(name[:end], '.')
	}
	return r.def
}

// IsEnabledFor reports whether a message at sev from the named logger
// passes the effective threshold. The empty name is the nameless root
// logger and resolves directly to the default.
func (r *Registry) IsEnabledFor(name string, sev core.Severity) bool {
	return sev >= r.EffectiveThreshold(name)
}
