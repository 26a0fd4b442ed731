// Package zaphandler routes records into a zap logger, so the core's
// pluggable sink surface can drive an existing zap pipeline.
package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gatelog/gatelog/core"
	"github.com/gatelog/gatelog/handler"
)

// Handler emits records through a zap logger. Records carrying a logger
// name are emitted from a correspondingly named child logger, so the
// dot-separated hierarchy shows up as zap logger names.
type Handler struct {
	base  *zap.Logger
	named map[string]*zap.Logger
}

var _ handler.Handler = (*Handler)(nil)

// New creates a handler that emits through l.
func New(l *zap.Logger) *Handler {
	return &Handler{
		base:  l,
		named: make(map[string]*zap.Logger),
	}
}

func (h *Handler) logger(name string) *zap.Logger {
	if name == "" {
		return h.base
	}
	l, ok := h.named[name]
	if !ok {
		l = h.base.Named(name)
		h.named[name] = l
	}
	return l
}

// level maps severities onto zap levels. Fatal maps to zap's error level:
// an output handler must never terminate the process, and zap's own fatal
// level calls os.Exit.
func level(sev core.Severity) zapcore.Level {
	switch sev {
	case core.Debug:
		return zapcore.DebugLevel
	case core.Info:
		return zapcore.InfoLevel
	case core.Warn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Handle emits rec at the mapped zap level, attaching the call-site
// location as fields when present.
func (h *Handler) Handle(rec *core.Record) {
	ce := h.logger(rec.Name).Check(level(rec.Severity), rec.Message)
	if ce == nil {
		return
	}
	if rec.Location == nil {
		ce.Write()
		return
	}
	ce.Write(
		zap.String("function", rec.Location.Function),
		zap.String("file", rec.Location.File),
		zap.Int("line", rec.Location.Line),
	)
}
