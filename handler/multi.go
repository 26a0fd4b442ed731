package handler

import "github.com/gatelog/gatelog/core"

// Multi fans records out to several handlers in order. It is itself a
// Handler, so a fan-out can be installed anywhere a single sink can.
type Multi struct {
	handlers []Handler
}

// NewMulti creates a handler that forwards every record to each of
// handlers in turn.
func NewMulti(handlers ...Handler) *Multi {
	return &Multi{handlers: handlers}
}

// Handle forwards rec to every child handler.
func (m *Multi) Handle(rec *core.Record) {
	for _, h := range m.handlers {
		h.Handle(rec)
	}
}
