package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/gatelog/gatelog/alloc"
	"github.com/gatelog/gatelog/core"
	"github.com/gatelog/gatelog/directive"
	"github.com/gatelog/gatelog/handler"
	"github.com/gatelog/gatelog/registry"
)

// Context is the process-wide logging state: the threshold registry, the
// call-site evaluator, the single active output handler and the allocator
// handed to it. Every operation initializes the context on first use, so a
// zero-value-like Context from NewContext is ready to log through.
type Context struct {
	registry    *registry.Registry
	evaluator   *directive.Evaluator
	handler     handler.Handler
	allocator   alloc.Allocator
	initialized bool
}

// NewContext returns an uninitialized context; the first logging or
// configuration call initializes it with the default allocator.
func NewContext() *Context {
	return &Context{}
}

// Initialize sets the context up with the default allocator. It is a
// no-op when the context is already initialized.
func (c *Context) Initialize() {
	c.InitializeWithAllocator(alloc.Default())
}

// InitializeWithAllocator sets the context up with a caller-supplied
// allocator. An invalid allocator is reported to standard error and the
// context is left uninitialized; a later call (or autoinitialization) can
// still succeed.
func (c *Context) InitializeWithAllocator(a alloc.Allocator) {
	if c.initialized {
		return
	}
	if !a.IsValid() {
		fmt.Fprintln(os.Stderr, "gatelog: invalid allocator, logging not initialized")
		return
	}
	c.allocator = a
	c.registry = registry.New()
	c.evaluator = directive.NewEvaluator()
	c.handler = handler.NewConsole(handler.ConsoleConfig{Allocator: a})
	c.initialized = true
}

// Shutdown drops the context's state: thresholds, call-site state and the
// active handler. Logging afterwards re-initializes from scratch.
func (c *Context) Shutdown() {
	if !c.initialized {
		return
	}
	c.registry = nil
	c.evaluator = nil
	c.handler = nil
	c.allocator = alloc.ZeroInitialized()
	c.initialized = false
}

// Initialized reports whether the context has been set up.
func (c *Context) Initialized() bool {
	return c.initialized
}

func (c *Context) autoinit() {
	if !c.initialized {
		c.Initialize()
	}
}

// SetOutputHandler installs h as the single active output handler. The
// previous handler is not retained; capture it with OutputHandler first
// when it needs restoring.
func (c *Context) SetOutputHandler(h handler.Handler) {
	c.autoinit()
	c.handler = h
}

// OutputHandler returns the active output handler.
func (c *Context) OutputHandler() handler.Handler {
	c.autoinit()
	return c.handler
}

// SetDefaultThreshold replaces the process-wide fallback threshold.
func (c *Context) SetDefaultThreshold(sev core.Severity) {
	c.autoinit()
	c.registry.SetDefault(sev)
}

// DefaultThreshold returns the process-wide fallback threshold.
func (c *Context) DefaultThreshold() core.Severity {
	c.autoinit()
	return c.registry.Default()
}

// SetThreshold sets (or, with core.Unset, removes) the explicit threshold
// for a logger name.
func (c *Context) SetThreshold(name string, sev core.Severity) {
	c.autoinit()
	c.registry.SetThreshold(name, sev)
}

// Threshold returns the explicit threshold for exactly name, or core.Unset.
func (c *Context) Threshold(name string) core.Severity {
	c.autoinit()
	return c.registry.Threshold(name)
}

// EffectiveThreshold resolves the threshold governing name through the
// ancestor hierarchy and the default.
func (c *Context) EffectiveThreshold(name string) core.Severity {
	c.autoinit()
	return c.registry.EffectiveThreshold(name)
}

// IsEnabledFor reports whether a message at sev from the named logger
// would pass the severity gate.
func (c *Context) IsEnabledFor(name string, sev core.Severity) bool {
	c.autoinit()
	return c.registry.IsEnabledFor(name, sev)
}

// RegisterCallSite hands out a stable call-site identity for use with
// LogGated and LogFunc.
func (c *Context) RegisterCallSite() directive.CallSite {
	c.autoinit()
	return c.evaluator.RegisterCallSite()
}

// Log emits a printf-style message. loc may be nil and name may be empty
// (the nameless logger resolves against the default threshold).
func (c *Context) Log(loc *core.Location, sev core.Severity, name, format string, args ...any) {
	if !c.gate(0, directive.Always(), sev, name) {
		return
	}
	c.emit(loc, sev, name, fmt.Sprintf(format, args...))
}

// LogGated emits a message governed by a call-site directive. The
// directive check runs first, then severity enablement; the message is
// formatted only when both pass, so a suppressed attempt costs no
// formatting work.
func (c *Context) LogGated(site directive.CallSite, d directive.Directive, loc *core.Location, sev core.Severity, name, format string, args ...any) {
	if !c.gate(site, d, sev, name) {
		return
	}
	c.emit(loc, sev, name, fmt.Sprintf(format, args...))
}

// LogFunc is LogGated for callers that defer message construction
// entirely: build is invoked only after both gates pass.
func (c *Context) LogFunc(site directive.CallSite, d directive.Directive, loc *core.Location, sev core.Severity, name string, build func() string) {
	if !c.gate(site, d, sev, name) {
		return
	}
	c.emit(loc, sev, name, build())
}

// gate runs the two checks in their fixed order: the call-site directive,
// which may mutate per-site state, then severity enablement. A directive
// therefore consumes its state even when the severity gate would have
// suppressed the message.
func (c *Context) gate(site directive.CallSite, d directive.Directive, sev core.Severity, name string) bool {
	c.autoinit()
	if d.Kind != directive.None && !c.evaluator.ShouldFire(site, d) {
		return false
	}
	return c.registry.IsEnabledFor(name, sev)
}

func (c *Context) emit(loc *core.Location, sev core.Severity, name, msg string) {
	h := c.handler
	if h == nil {
		return
	}
	h.Handle(&core.Record{
		Time:     time.Now(),
		Severity: sev,
		Name:     name,
		Message:  msg,
		Location: loc,
	})
}
