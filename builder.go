package elicit

// ApplyDefaults overlays suggestions and assumptions onto a fresh definition
// and returns the store seeded with every assumed value. The walk recurses
// into AllOf groups only; a path under an unselected OneOf/AnyOf variant
// cannot be targeted before a choice exists. When a path carries both a
// suggestion and an assumption, the assumption wins: the question is pruned
// and the suggestion discarded.
//
// Assumed OneOf/AnyOf questions seed the store under their reserved
// selected_variant / selected_variants child key, where reconstruction reads
// selections. Assumption entries matching no walked question are inserted
// verbatim; that is how values under enum variant sub-trees are supplied.
//
// Re-running with the same maps against another fresh tree of the same schema
// yields an identical pruned tree and identical store contents.
func ApplyDefaults(def *Definition, suggestions, assumptions map[Path]Value) Responses {
	store := NewResponses()
	matched := map[Path]bool{}
	overlayQuestions(def.Questions, suggestions, assumptions, store, matched)
	for p, v := range assumptions {
		if !matched[p] {
			store.Insert(p, v)
		}
	}
	def.Questions = pruneAssumed(def.Questions)
	return store
}

func overlayQuestions(qs []Question, suggestions, assumptions map[Path]Value, store Responses, matched map[Path]bool) {
	for i := range qs {
		q := &qs[i]
		if v, ok := assumptions[q.path]; ok {
			matched[q.path] = true
			q.SetAssumption(v)
			store.Insert(assumedStorePath(q), v)
			continue
		}
		if v, ok := suggestions[q.path]; ok {
			q.SetSuggestion(v)
		}
		if all, ok := q.kind.(*AllOfQuestion); ok {
			overlayQuestions(all.Questions, suggestions, assumptions, store, matched)
		}
	}
}

// assumedStorePath maps a question to the store key its assumed value lives
// under. Scalar questions store at their own path; choices store at the
// reserved selection key.
func assumedStorePath(q *Question) Path {
	switch q.kind.(type) {
	case *OneOfQuestion:
		return q.path.Child(SelectedVariantKey)
	case *AnyOfQuestion:
		return q.path.Child(SelectedVariantsKey)
	}
	return q.path
}

// pruneAssumed removes assumed questions, children before parents so removing
// a child never invalidates traversal of remaining siblings.
func pruneAssumed(qs []Question) []Question {
	out := make([]Question, 0, len(qs))
	for i := range qs {
		q := qs[i]
		if all, ok := q.kind.(*AllOfQuestion); ok {
			all.Questions = pruneAssumed(all.Questions)
		}
		if q.IsAssumed() {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Builder runs a survey for one schema with caller-supplied defaults.
// Suggestions pre-fill questions the user can still change; assumptions fix
// values and remove their questions from collection entirely.
type Builder[T any] struct {
	schema      Schema[T]
	suggestions map[Path]Value
	assumptions map[Path]Value
}

// NewBuilder returns a builder over the given schema.
func NewBuilder[T any](schema Schema[T]) *Builder[T] {
	return &Builder[T]{
		schema:      schema,
		suggestions: map[Path]Value{},
		assumptions: map[Path]Value{},
	}
}

// Suggest registers an editable pre-filled value for path.
func (b *Builder[T]) Suggest(path Path, v Value) *Builder[T] {
	b.suggestions[path] = v
	return b
}

// Assume registers a fixed value for path. The question is skipped and the
// value injected directly into the store; an assumption always beats a
// suggestion on the same path.
func (b *Builder[T]) Assume(path Path, v Value) *Builder[T] {
	b.assumptions[path] = v
	return b
}

// SuggestInstance bulk-registers suggestions from an existing instance when
// the schema implements Decomposer. Schemas without that capability leave the
// builder unchanged.
func (b *Builder[T]) SuggestInstance(instance T) *Builder[T] {
	if d, ok := b.schema.(Decomposer[T]); ok {
		for p, v := range d.Decompose(instance) {
			b.suggestions[p] = v
		}
	}
	return b
}

// Run produces a fresh tree, applies the registered defaults, collects the
// remaining answers through backend, and reconstructs the instance. The only
// errors that unwind to the caller are ErrCancelled and *BackendError;
// validation failures stay inside the backend's retry loop.
func (b *Builder[T]) Run(backend Backend) (T, error) {
	def := b.schema.Survey()
	store := ApplyDefaults(&def, b.suggestions, b.assumptions)

	collected, err := backend.Collect(def, b.schema.ValidateField)
	if err != nil {
		var zero T
		return zero, WrapBackend(err)
	}
	store.Extend(collected)
	return b.schema.FromResponses(store), nil
}
