package pipeline

import "fmt"

// TrackKind partitions tracks by their role in the container.
type TrackKind string

const (
	General  TrackKind = "general"
	Video    TrackKind = "video"
	Audio    TrackKind = "audio"
	Subtitle TrackKind = "subtitle"
)

// Schema holds the per-kind property and rule declarations for one provider.
// Immutable after construction.
type Schema struct {
	properties map[TrackKind][]Property
	rules      map[TrackKind][]RuleSpec
}

// NewSchema validates the declarations and builds a schema. It rejects
// duplicate property names and any rule whose Requires list references a
// field that is neither a property output nor the target of an earlier rule.
func NewSchema(properties map[TrackKind][]Property, rules map[TrackKind][]RuleSpec) (*Schema, error) {
	for kind, props := range properties {
		declared := make(map[string]struct{}, len(props))
		for _, p := range props {
			if p.Name == "" {
				return nil, fmt.Errorf("schema: %s: property with empty name", kind)
			}
			if _, ok := declared[p.Name]; ok {
				return nil, fmt.Errorf("schema: %s: duplicate property %q", kind, p.Name)
			}
			declared[p.Name] = struct{}{}
		}
		for _, r := range rules[kind] {
			if r.Name == "" || r.Rule == nil {
				return nil, fmt.Errorf("schema: %s: incomplete rule declaration", kind)
			}
			for _, dep := range r.Requires {
				if _, ok := declared[dep]; !ok {
					return nil, fmt.Errorf("schema: %s: rule %q requires %q which is not a property or earlier rule target", kind, r.Name, dep)
				}
			}
			declared[r.Name] = struct{}{}
		}
	}
	for kind := range rules {
		if _, ok := properties[kind]; !ok {
			return nil, fmt.Errorf("schema: rules declared for %s but no properties", kind)
		}
	}
	return &Schema{properties: properties, rules: rules}, nil
}

// Normalize applies the declared properties and rules for one track kind to
// one raw track. Handlers run first in schema order; rules follow in
// declaration order. Missing raw fields skip the handler entirely (the
// declared default, if any, is stored instead).
func (s *Schema) Normalize(kind TrackKind, raw RawTrack, ctx *Context) *Track {
	track := NewTrack()
	for _, p := range s.properties[kind] {
		value, ok := raw.Lookup(p.Raw...)
		if !ok {
			if p.Default != nil {
				track.Set(p.Name, p.Default)
			}
			continue
		}
		handler := p.Handler
		if handler == nil {
			handler = Identity
		}
		if out, ok := handler.Handle(value, ctx); ok {
			track.Set(p.Name, out)
		}
	}
	for _, r := range s.rules[kind] {
		if value, ok := r.Rule.Apply(track, raw, ctx); ok {
			track.Set(r.Name, value)
		}
	}
	return track
}
