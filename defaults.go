package elicit

// DefaultKind tags a question's default overlay.
type DefaultKind int

const (
	// DefaultNone: no pre-filled value, the user must provide input.
	DefaultNone DefaultKind = iota
	// DefaultSuggested: shown pre-filled, the user may accept or change it.
	DefaultSuggested
	// DefaultAssumed: fixed; the question is removed from collection and the
	// value used directly.
	DefaultAssumed
)

// DefaultValue is a question's effective default overlay.
type DefaultValue struct {
	kind  DefaultKind
	value Value
}

// NoDefault returns the empty overlay.
func NoDefault() DefaultValue { return DefaultValue{} }

// Suggested wraps an editable pre-filled value.
func Suggested(v Value) DefaultValue {
	return DefaultValue{kind: DefaultSuggested, value: v}
}

// Assumed wraps a fixed value that skips the question entirely.
func Assumed(v Value) DefaultValue {
	return DefaultValue{kind: DefaultAssumed, value: v}
}

// Kind returns the overlay tag.
func (d DefaultValue) Kind() DefaultKind { return d.kind }

// IsNone reports an empty overlay.
func (d DefaultValue) IsNone() bool { return d.kind == DefaultNone }

// IsSuggested reports a suggested overlay.
func (d DefaultValue) IsSuggested() bool { return d.kind == DefaultSuggested }

// IsAssumed reports an assumed overlay.
func (d DefaultValue) IsAssumed() bool { return d.kind == DefaultAssumed }

// Value returns the carried value for Suggested and Assumed overlays.
func (d DefaultValue) Value() (Value, bool) {
	if d.kind == DefaultNone {
		return Value{}, false
	}
	return d.value, true
}
