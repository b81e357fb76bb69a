package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Warning records a raw value a handler could not normalize.
type Warning struct {
	Field string
	Value any
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: unsupported value %v", w.Field, w.Value)
}

// Context carries per-scan state shared by every handler and rule invocation
// for one file. It lives for exactly one Describe call.
type Context struct {
	// Path is the file being described.
	Path string
	// ScanID correlates log lines and history rows for one scan.
	ScanID string
	// Logger receives handler and rule diagnostics.
	Logger *slog.Logger
	// DebugDump lazily renders the raw probe payload. Set by the provider
	// once raw data is available.
	DebugDump func() string

	warnings []Warning
}

// NewContext builds a scan context with a fresh scan ID.
func NewContext(path string, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Context{
		Path:   path,
		ScanID: uuid.NewString(),
		Logger: logger,
	}
}

// Report records that a raw value could not be normalized for the named
// output field. The field is omitted from the result; the scan continues.
func (c *Context) Report(field string, value any) {
	c.warnings = append(c.warnings, Warning{Field: field, Value: value})
	c.Logger.Debug("unsupported raw value",
		slog.String("scan_id", c.ScanID),
		slog.String("field", field),
		slog.Any("value", value))
}

// Warnings returns the warnings accumulated so far, in report order.
func (c *Context) Warnings() []Warning {
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}
