package elicit

// SelectedVariantKey is the reserved child segment under which a OneOf
// question's selection is stored: for a field "method" the chosen ordinal
// lives at method.selected_variant.
const SelectedVariantKey = "selected_variant"

// SelectedVariantsKey is the reserved child segment for AnyOf selections:
// for a field "features" the chosen ordinals live at
// features.selected_variants.
const SelectedVariantsKey = "selected_variants"

// PositionalKey is the reserved segment addressing the payload of a variant
// that carries a single unnamed value.
const PositionalKey = "0"

// Question is one unit of information to collect, possibly structural (a
// group or a choice) rather than a single scalar. Its path is absolute from
// the survey root and unique within its sibling group.
type Question struct {
	path Path
	ask  string
	kind QuestionKind
	def  DefaultValue
}

// NewQuestion builds a question with no default overlay.
func NewQuestion(path Path, ask string, kind QuestionKind) Question {
	return Question{path: path, ask: ask, kind: kind, def: NoDefault()}
}

// Path returns the question's absolute response path.
func (q *Question) Path() Path { return q.path }

// Ask returns the prompt text.
func (q *Question) Ask() string { return q.ask }

// Kind returns the question kind.
func (q *Question) Kind() QuestionKind { return q.kind }

// Default returns the current default overlay.
func (q *Question) Default() DefaultValue { return q.def }

// SetSuggestion overlays an editable pre-filled value.
func (q *Question) SetSuggestion(v Value) { q.def = Suggested(v) }

// SetAssumption overlays a fixed value; the question is removed from
// collection and the value injected into the store by ApplyDefaults.
func (q *Question) SetAssumption(v Value) { q.def = Assumed(v) }

// ClearDefault resets the overlay.
func (q *Question) ClearDefault() { q.def = NoDefault() }

// IsAssumed reports whether the question carries an assumed value.
func (q *Question) IsAssumed() bool { return q.def.IsAssumed() }

// QuestionKind determines the input shape and nested structure of a question.
// The set of implementations is closed.
type QuestionKind interface {
	isKind()
}

// UnitQuestion collects nothing (unit enum variants).
type UnitQuestion struct{}

// InputQuestion is a single-line text input.
type InputQuestion struct {
	// Default pre-fills the input when no overlay is set.
	Default string
}

// MultilineQuestion is a multi-line text input (editor or textarea).
type MultilineQuestion struct {
	Default string
}

// MaskedQuestion hides typed input, for passwords.
type MaskedQuestion struct {
	// Mask replaces echoed characters; 0 means the surface's default.
	Mask rune
}

// IntQuestion is an integer input with optional inclusive bounds.
type IntQuestion struct {
	Default *int64
	Min     *int64
	Max     *int64
}

// FloatQuestion is a floating-point input with optional inclusive bounds.
type FloatQuestion struct {
	Default *float64
	Min     *float64
	Max     *float64
}

// ConfirmQuestion is a yes/no confirmation.
type ConfirmQuestion struct {
	Default bool
}

// ListElementKind tags the element type of a ListQuestion.
type ListElementKind int

const (
	ListStrings ListElementKind = iota
	ListInts
	ListFloats
)

// ListQuestion collects repeated values of one primitive type.
type ListQuestion struct {
	Elements ListElementKind
	// Element bounds apply per item for int/float lists.
	MinElem *float64
	MaxElem *float64
	// Item count constraints.
	MinItems *int
	MaxItems *int
}

// AllOfQuestion groups child questions that are all answered, in declaration
// order (nested structs, struct enum variants).
type AllOfQuestion struct {
	Questions []Question
}

// OneOfQuestion asks for exactly one variant, then that variant's sub-tree.
type OneOfQuestion struct {
	Variants []Variant
	// Default pre-selects a variant ordinal.
	Default *int
}

// AnyOfQuestion asks for any subset of variants, then each chosen variant's
// sub-tree. Sub-values of variant i are namespaced under path.<i> so two
// selected variants carrying data cannot collide.
type AnyOfQuestion struct {
	Variants []Variant
	// Defaults pre-selects variant ordinals.
	Defaults []int
}

func (UnitQuestion) isKind()      {}
func (InputQuestion) isKind()     {}
func (MultilineQuestion) isKind() {}
func (MaskedQuestion) isKind()    {}
func (IntQuestion) isKind()       {}
func (FloatQuestion) isKind()     {}
func (ConfirmQuestion) isKind()   {}
func (ListQuestion) isKind()      {}
func (*AllOfQuestion) isKind()    {}
func (*OneOfQuestion) isKind()    {}
func (*AnyOfQuestion) isKind()    {}

// Variant is one named option inside a OneOf or AnyOf question. Identity is
// ordinal position in the enclosing list; display names carry no addressing
// weight, so renaming is safe but reordering between producing a tree and
// reconstructing from stored responses is not.
type Variant struct {
	// Name is the display label.
	Name string

	// Kind describes what the variant collects: UnitQuestion for bare
	// options, a scalar kind for single-payload options (stored under the
	// positional "0" segment), *AllOfQuestion for options with named fields.
	Kind QuestionKind
}

// UnitVariant builds a variant that collects nothing.
func UnitVariant(name string) Variant {
	return Variant{Name: name, Kind: UnitQuestion{}}
}

// IsStructural reports whether k is a group or a choice.
func IsStructural(k QuestionKind) bool {
	switch k.(type) {
	case *AllOfQuestion, *OneOfQuestion, *AnyOfQuestion:
		return true
	}
	return false
}

// IsUnit reports whether k collects nothing.
func IsUnit(k QuestionKind) bool {
	_, ok := k.(UnitQuestion)
	return ok
}
