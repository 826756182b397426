package elicit

// FieldValidator judges the value currently stored at path. It receives the
// full store so a validator for one field may read sibling fields (running
// totals, cross-field comparisons), but it is documented as validating only
// the value at path. Validators read the store, never write it.
type FieldValidator func(path Path, responses Responses) error

// CompositeValidator judges the whole survey at once and may report zero, one
// or many path-keyed failures. Form-style surfaces call it per edit,
// wizard-style surfaces once at submission.
type CompositeValidator func(responses Responses) ErrorMap

// Schema surfaces the per-type capability the core consumes: producing the
// question tree, reconstructing an instance from responses, and the two
// validation shapes. It is implemented once per collectable type, by hand or
// by a code generator.
type Schema[T any] interface {
	// Survey returns a fresh question tree for the type. Each call must
	// produce an independent tree; callers mutate it via default overlays.
	Survey() Definition

	// FromResponses reconstructs an instance from a fully populated store.
	// It is a pure projection, not a parser: provided every non-assumed
	// question was answered and every assumed value was pre-inserted, it
	// cannot fail and need not handle missing or malformed entries.
	FromResponses(responses Responses) T

	// ValidateField validates the value at path, with the full store as
	// context.
	ValidateField(path Path, responses Responses) error

	// ValidateAll runs composite validation over the whole store. Return an
	// empty map when there is nothing to report.
	ValidateAll(responses Responses) ErrorMap
}

// Decomposer is an optional capability: schemas that can flatten an existing
// instance back into path-keyed values enable Builder.SuggestInstance.
type Decomposer[T any] interface {
	Decompose(instance T) Responses
}
