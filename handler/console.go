package handler

import (
	"fmt"
	"io"
	"os"

	"github.com/gatelog/gatelog/alloc"
	"github.com/gatelog/gatelog/core"
	"github.com/gatelog/gatelog/formatter"
)

// FormatEnv is the environment variable consulted for an output template
// override. It is read once, when the handler is constructed; see
// ReloadTemplate.
const FormatEnv = "GATELOG_CONSOLE_OUTPUT_FORMAT"

// bufferSize is the capacity of the stack buffer a record is formatted
// into before falling back to the allocator, terminator included.
// maxContent is what remains for the formatted record once the trailing
// newline is reserved.
const (
	bufferSize = 1024
	maxContent = bufferSize - 1
)

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Stdout receives DEBUG and INFO records (default: os.Stdout).
	Stdout io.Writer
	// Stderr receives WARN, ERROR and FATAL records, plus the handler's
	// own diagnostics (default: os.Stderr).
	Stderr io.Writer
	// Allocator backs buffers for records too large for the stack
	// buffer (default: alloc.Default()).
	Allocator alloc.Allocator
}

// Console formats records through the output template and writes them to
// the standard streams: DEBUG and INFO to standard output, everything
// above to standard error.
type Console struct {
	stdout    io.Writer
	stderr    io.Writer
	allocator alloc.Allocator
	template  *formatter.Template
}

// NewConsole creates a console handler and loads the output template.
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Allocator.IsZeroInitialized() {
		cfg.Allocator = alloc.Default()
	}
	c := &Console{
		stdout:    cfg.Stdout,
		stderr:    cfg.Stderr,
		allocator: cfg.Allocator,
	}
	c.ReloadTemplate()
	return c
}

// ReloadTemplate re-reads the template override from the environment,
// falling back to the built-in default when it is unset or empty.
func (c *Console) ReloadTemplate() {
	format := os.Getenv(FormatEnv)
	if format == "" {
		format = formatter.Default
	}
	c.template = formatter.Parse(format)
}

// Handle formats rec and writes it to the stream for its severity.
// Formatting targets a fixed 1024-byte buffer; a larger record is
// formatted into a buffer of the exact required size obtained from the
// allocator and released before returning. When the allocator is invalid
// or cannot serve the request, the record is written truncated.
func (c *Console) Handle(rec *core.Record) {
	var stream io.Writer
	switch rec.Severity {
	case core.Debug, core.Info:
		stream = c.stdout
	case core.Warn, core.Error, core.Fatal:
		stream = c.stderr
	default:
		fmt.Fprintf(c.stderr, "gatelog: unknown severity level: %d\n", rec.Severity)
		return
	}

	needed := c.template.Size(rec)
	if needed > maxContent {
		if c.allocator.IsValid() {
			if dyn := c.allocator.Allocate(needed+1, c.allocator.State); dyn != nil {
				out := c.template.AppendTo(dyn[:0:needed], rec)
				dyn[len(out)] = '\n'
				stream.Write(dyn[:len(out)+1])
				c.allocator.Deallocate(dyn, c.allocator.State)
				return
			}
			fmt.Fprintln(c.stderr, "gatelog: failed to allocate buffer for logging output")
		} else {
			fmt.Fprintln(c.stderr, "gatelog: invalid allocator for logging output")
		}
		// Fall through to the stack buffer; the record comes out
		// truncated rather than not at all.
	}

	var static [bufferSize]byte
	out := c.template.AppendTo(static[:0:maxContent], rec)
	static[len(out)] = '\n'
	stream.Write(static[:len(out)+1])
}
