package pipeline

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// RawTrack is the unordered raw field map for one track, exactly as decoded
// from the probing tool's JSON output.
type RawTrack map[string]any

// Lookup returns the value of the first present, non-empty raw field.
func (r RawTrack) Lookup(names ...string) (any, bool) {
	for _, name := range names {
		value, ok := r[name]
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return value, true
	}
	return nil, false
}

// Track is a normalized track: an insertion-ordered mapping from output
// field name to a typed value. Fields whose name starts with an underscore
// are private intermediates for rules and are stripped before assembly.
type Track struct {
	keys   []string
	values map[string]any
}

// NewTrack returns an empty track.
func NewTrack() *Track {
	return &Track{values: make(map[string]any)}
}

// Set stores a field, keeping the original position when overwriting.
func (t *Track) Set(name string, value any) {
	if _, ok := t.values[name]; !ok {
		t.keys = append(t.keys, name)
	}
	t.values[name] = value
}

// Get returns a field value.
func (t *Track) Get(name string) (any, bool) {
	value, ok := t.values[name]
	return value, ok
}

// String returns a field as a string when it holds one.
func (t *Track) String(name string) (string, bool) {
	value, ok := t.values[name]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// Strings returns a field as a list of strings: a scalar string becomes a
// one-element list, a MultiValue result is unpacked element-wise.
func (t *Track) Strings(name string) []string {
	value, ok := t.values[name]
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Int returns a field as an int when it holds one.
func (t *Track) Int(name string) (int, bool) {
	value, ok := t.values[name]
	if !ok {
		return 0, false
	}
	i, ok := value.(int)
	return i, ok
}

// Delete removes a field.
func (t *Track) Delete(name string) {
	if _, ok := t.values[name]; !ok {
		return
	}
	delete(t.values, name)
	for i, key := range t.keys {
		if key == name {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the field names in insertion order.
func (t *Track) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of fields.
func (t *Track) Len() int {
	return len(t.keys)
}

// Prune drops private (underscore-prefixed) fields. Called once per track
// during assembly, after all rules have run.
func (t *Track) Prune() {
	for _, key := range t.Keys() {
		if strings.HasPrefix(key, "_") {
			t.Delete(key)
		}
	}
}

// MarshalJSON emits the fields as a JSON object in insertion order.
// Durations render as their string form ("1h15m27s") rather than
// nanosecond counts.
func (t *Track) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(key))
		buf.WriteByte(':')
		value := t.values[key]
		if d, ok := value.(time.Duration); ok {
			value = d.String()
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
