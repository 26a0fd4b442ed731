package logging

import (
	"fmt"

	"github.com/gatelog/gatelog/alloc"
	"github.com/gatelog/gatelog/core"
	"github.com/gatelog/gatelog/directive"
	"github.com/gatelog/gatelog/handler"
)

// defaultContext backs the package-level functions. Like any Context it
// initializes itself lazily on first use.
var defaultContext = NewContext()

// Default returns the process-wide context behind the package-level
// functions.
func Default() *Context {
	return defaultContext
}

// Initialize sets the process-wide context up with the default allocator.
func Initialize() {
	defaultContext.Initialize()
}

// InitializeWithAllocator sets the process-wide context up with a
// caller-supplied allocator.
func InitializeWithAllocator(a alloc.Allocator) {
	defaultContext.InitializeWithAllocator(a)
}

// Shutdown drops the process-wide context's state.
func Shutdown() {
	defaultContext.Shutdown()
}

// Initialized reports whether the process-wide context has been set up.
func Initialized() bool {
	return defaultContext.Initialized()
}

// SetOutputHandler installs the active output handler on the process-wide
// context.
func SetOutputHandler(h handler.Handler) {
	defaultContext.SetOutputHandler(h)
}

// OutputHandler returns the active output handler of the process-wide
// context.
func OutputHandler() handler.Handler {
	return defaultContext.OutputHandler()
}

// SetDefaultThreshold replaces the process-wide fallback threshold.
func SetDefaultThreshold(sev core.Severity) {
	defaultContext.SetDefaultThreshold(sev)
}

// DefaultThreshold returns the process-wide fallback threshold.
func DefaultThreshold() core.Severity {
	return defaultContext.DefaultThreshold()
}

// SetThreshold sets (or, with core.Unset, removes) the explicit threshold
// for a logger name.
func SetThreshold(name string, sev core.Severity) {
	defaultContext.SetThreshold(name, sev)
}

// Threshold returns the explicit threshold for exactly name, or core.Unset.
func Threshold(name string) core.Severity {
	return defaultContext.Threshold(name)
}

// EffectiveThreshold resolves the threshold governing name.
func EffectiveThreshold(name string) core.Severity {
	return defaultContext.EffectiveThreshold(name)
}

// IsEnabledFor reports whether a message at sev from the named logger
// would pass the severity gate.
func IsEnabledFor(name string, sev core.Severity) bool {
	return defaultContext.IsEnabledFor(name, sev)
}

// RegisterCallSite hands out a stable call-site identity on the
// process-wide context.
func RegisterCallSite() directive.CallSite {
	return defaultContext.RegisterCallSite()
}

// Log emits a printf-style message through the process-wide context.
func Log(loc *core.Location, sev core.Severity, name, format string, args ...any) {
	defaultContext.Log(loc, sev, name, format, args...)
}

// LogGated emits a directive-gated message through the process-wide
// context.
func LogGated(site directive.CallSite, d directive.Directive, loc *core.Location, sev core.Severity, name, format string, args ...any) {
	defaultContext.LogGated(site, d, loc, sev, name, format, args...)
}

// LogFunc emits through the process-wide context with a deferred message
// builder.
func LogFunc(site directive.CallSite, d directive.Directive, loc *core.Location, sev core.Severity, name string, build func() string) {
	defaultContext.LogFunc(site, d, loc, sev, name, build)
}

// logf is the shared tail of the leveled convenience functions. The
// caller's location is captured only after both gates pass, so a disabled
// call does not pay for the stack walk.
func logf(sev core.Severity, name, format string, args ...any) {
	if !defaultContext.gate(0, directive.Always(), sev, name) {
		return
	}
	defaultContext.emit(core.Here(2), sev, name, fmt.Sprintf(format, args...))
}

// Debugf logs a formatted debug message from the nameless logger,
// capturing the caller's location.
func Debugf(format string, args ...any) {
	logf(core.Debug, "", format, args...)
}

// Infof logs a formatted info message from the nameless logger.
func Infof(format string, args ...any) {
	logf(core.Info, "", format, args...)
}

// Warnf logs a formatted warning message from the nameless logger.
func Warnf(format string, args ...any) {
	logf(core.Warn, "", format, args...)
}

// Errorf logs a formatted error message from the nameless logger.
func Errorf(format string, args ...any) {
	logf(core.Error, "", format, args...)
}

// Fatalf logs a formatted fatal message from the nameless logger. Unlike
// some logging packages it does not exit the process; whether FATAL is
// survivable is the embedder's decision.
func Fatalf(format string, args ...any) {
	logf(core.Fatal, "", format, args...)
}

// DebugfNamed logs a formatted debug message from the named logger.
func DebugfNamed(name, format string, args ...any) {
	logf(core.Debug, name, format, args...)
}

// InfofNamed logs a formatted info message from the named logger.
func InfofNamed(name, format string, args ...any) {
	logf(core.Info, name, format, args...)
}

// WarnfNamed logs a formatted warning message from the named logger.
func WarnfNamed(name, format string, args ...any) {
	logf(core.Warn, name, format, args...)
}

// ErrorfNamed logs a formatted error message from the named logger.
func ErrorfNamed(name, format string, args ...any) {
	logf(core.Error, name, format, args...)
}

// FatalfNamed logs a formatted fatal message from the named logger.
func FatalfNamed(name, format string, args ...any) {
	logf(core.Fatal, name, format, args...)
}
