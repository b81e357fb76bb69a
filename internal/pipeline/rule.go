package pipeline

// Rule derives one output field from already-normalized sibling fields and,
// when needed, the raw track. Rules run after every property handler for the
// track, in declaration order. A rule that cannot derive a value returns
// false and the target field stays unset; rules never abort the track.
//
// A rule may also overwrite sibling fields directly on the track (codec
// disambiguation works this way) and return false for its own target.
type Rule interface {
	Apply(track *Track, raw RawTrack, ctx *Context) (any, bool)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(track *Track, raw RawTrack, ctx *Context) (any, bool)

// Apply implements Rule.
func (f RuleFunc) Apply(track *Track, raw RawTrack, ctx *Context) (any, bool) {
	return f(track, raw, ctx)
}

// RuleSpec declares one rule in the schema.
type RuleSpec struct {
	// Name is the target field the rule sets. Underscore-prefixed names mark
	// rules run only for their side effects on sibling fields.
	Name string
	// Rule computes the target value.
	Rule Rule
	// Requires lists the fields the rule reads. Schema construction rejects
	// references to fields that are neither property outputs nor targets of
	// earlier rules, so declaration order mistakes fail fast.
	Requires []string
	// Description documents the rule.
	Description string
}
