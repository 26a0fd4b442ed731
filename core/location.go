package core

import "runtime"

// Location identifies the call site a log message originated from.
type Location struct {
	Function string
	File     string
	Line     int
}

// Here captures the location of the caller. skip counts additional stack
// frames to skip: 0 reports the caller of Here itself.
func Here(skip int) *Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}
	return &Location{
		Function: funcName,
		File:     file,
		Line:     line,
	}
}
