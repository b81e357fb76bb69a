package rules

import (
	"metaprobe/internal/pipeline"
	"metaprobe/internal/units"
)

// quantityInt reads a field holding a units.Quantity and returns its
// magnitude, or 0 when absent or differently typed.
func quantityInt(track *pipeline.Track, name string) int64 {
	value, ok := track.Get(name)
	if !ok {
		return 0
	}
	q, ok := value.(units.Quantity)
	if !ok {
		return 0
	}
	return q.Int64()
}

// intValues reads a field that holds either a single int or a MultiValue
// slice of ints.
func intValues(track *pipeline.Track, name string) []int {
	value, ok := track.Get(name)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case int:
		return []int{v}
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			if n, ok := item.(int); ok {
				out = append(out, n)
			}
		}
		return out
	}
	return nil
}
