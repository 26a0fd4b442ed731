// Package formatter parses and expands the console output template, a
// plain string with {token} substitutions.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gatelog/gatelog/core"
)

// Default is the built-in output template used when no override is
// configured.
const Default = "[{severity}] [{name}]: {message} ({function_name}() at {file_name}:{line_number})"

type partKind uint8

const (
	literalPart partKind = iota
	severityPart
	namePart
	messagePart
	timePart
	functionPart
	filePart
	linePart
)

type part struct {
	kind partKind
	lit  string
}

// Template is a parsed output format. Recognized tokens are {severity},
// {name}, {message}, {time}, {function_name}, {file_name} and
// {line_number}; anything else, including stray delimiters, is reproduced
// literally.
type Template struct {
	parts []part
}

// Parse compiles a format string into a template. Parse never fails; an
// arbitrary string is a valid template that expands to itself.
func Parse(format string) *Template {
	t := &Template{}
	for len(format) > 0 {
		open := strings.IndexByte(format, '{')
		if open < 0 {
			t.literal(format)
			break
		}
		if open > 0 {
			t.literal(format[:open])
			format = format[open:]
		}
		end := strings.IndexByte(format, '}')
		if end < 0 {
			// No closing delimiter anywhere ahead; no more tokens.
			t.literal(format)
			break
		}
		kind, known := tokenKind(format[1:end])
		if !known {
			// Not a token: emit the delimiter and keep scanning, the
			// rest of the string may still contain tokens.
			t.literal(format[:1])
			format = format[1:]
			continue
		}
		t.parts = append(t.parts, part{kind: kind})
		format = format[end+1:]
	}
	return t
}

func (t *Template) literal(s string) {
	if n := len(t.parts); n > 0 && t.parts[n-1].kind == literalPart {
		t.parts[n-1].lit += s
		return
	}
	t.parts = append(t.parts, part{kind: literalPart, lit: s})
}

func tokenKind(name string) (partKind, bool) {
	switch name {
	case "severity":
		return severityPart, true
	case "name":
		return namePart, true
	case "message":
		return messagePart, true
	case "time":
		return timePart, true
	case "function_name":
		return functionPart, true
	case "file_name":
		return filePart, true
	case "line_number":
		return linePart, true
	default:
		return literalPart, false
	}
}

// expand produces the substitution text for one part. Location tokens of a
// record without a location expand to a pair of quotes, line numbers to 0.
func expand(p part, rec *core.Record) string {
	switch p.kind {
	case literalPart:
		return p.lit
	case severityPart:
		return rec.Severity.String()
	case namePart:
		return rec.Name
	case messagePart:
		return rec.Message
	case timePart:
		return fmt.Sprintf("%d.%09d", rec.Time.Unix(), rec.Time.Nanosecond())
	case functionPart:
		if rec.Location == nil {
			return `""`
		}
		return rec.Location.Function
	case filePart:
		if rec.Location == nil {
			return `""`
		}
		return rec.Location.File
	case linePart:
		if rec.Location == nil {
			return "0"
		}
		return strconv.Itoa(rec.Location.Line)
	default:
		return ""
	}
}

// Size returns the number of bytes the template expands to for rec,
// letting callers size a buffer before formatting into it.
func (t *Template) Size(rec *core.Record) int {
	n := 0
	for _, p := range t.parts {
		n += len(expand(p, rec))
	}
	return n
}

// AppendTo expands the template for rec onto dst. dst is never grown past
// its capacity: once full, the remainder of the expansion is dropped.
func (t *Template) AppendTo(dst []byte, rec *core.Record) []byte {
	for _, p := range t.parts {
		s := expand(p, rec)
		if room := cap(dst) - len(dst); room < len(s) {
			s = s[:room]
		}
		dst = append(dst, s...)
		if len(dst) == cap(dst) {
			break
		}
	}
	return dst
}
