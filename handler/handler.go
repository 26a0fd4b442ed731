// Package handler defines the pluggable output sink the emit path hands
// records to, along with the default console implementation.
package handler

import "github.com/gatelog/gatelog/core"

// Handler consumes records that passed their gates and performs the output
// side effect. Handle returns nothing and must not panic: whatever goes
// wrong inside is the handler's to recover, typically by writing a minimal
// diagnostic to the error stream instead.
type Handler interface {
	Handle(rec *core.Record)
}

// Func adapts a plain function to the Handler interface.
type Func func(rec *core.Record)

// Handle calls f(rec).
func (f Func) Handle(rec *core.Record) { f(rec) }
