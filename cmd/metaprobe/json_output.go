package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON streams v as indented JSON. Scan reports carry whole track lists,
// so the encoder writes through rather than buffering the document.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	return nil
}
