package pipeline

import (
	"errors"
	"fmt"
)

// ErrMalformedFile reports that the probe produced no classifiable tracks at
// all. A file with some track kinds missing is not malformed.
var ErrMalformedFile = errors.New("no recognizable media tracks")

// ErrProviderUnavailable reports that no usable probing tool could be
// located. The provider declares itself non-accepting for any input.
var ErrProviderUnavailable = errors.New("probing tool unavailable")

// ProbeError wraps a failure to launch or use the external probing tool.
// Surfaced to the caller as-is; the engine performs no retries.
type ProbeError struct {
	Tool string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("%s probe: %v", e.Tool, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
