package elicit

// Responses is the flat store of collected answers for one survey run, keyed
// by structural Path equality. A nested field like address.street is stored
// under the two-segment path, not inside a nested map. Inserting the same
// path twice overwrites.
type Responses map[Path]Value

// NewResponses returns an empty store.
func NewResponses() Responses { return Responses{} }

// Get returns the value at p and whether it is present. Absence is distinct
// from presence with an empty string.
func (r Responses) Get(p Path) (Value, bool) {
	v, ok := r[p]
	return v, ok
}

// Insert stores v at p, overwriting any previous value.
func (r Responses) Insert(p Path, v Value) { r[p] = v }

// Contains reports whether p has been answered.
func (r Responses) Contains(p Path) bool {
	_, ok := r[p]
	return ok
}

// Remove deletes the entry at p, returning the removed value if any.
func (r Responses) Remove(p Path) (Value, bool) {
	v, ok := r[p]
	if ok {
		delete(r, p)
	}
	return v, ok
}

// Extend merges other into r, overwriting on key collision.
func (r Responses) Extend(other Responses) {
	for p, v := range other {
		r[p] = v
	}
}

// Clone returns an independent copy of the store.
func (r Responses) Clone() Responses {
	out := make(Responses, len(r))
	for p, v := range r {
		out[p] = v
	}
	return out
}

// FilterPrefix returns a new store holding only the entries whose path starts
// with prefix, with that prefix removed from each retained key. It hands a
// nested schema's reconstruction exactly its own sub-namespace:
//
//	sub := r.FilterPrefix(elicit.Root("address"))
//	street, err := sub.GetString(elicit.Root("street"))
func (r Responses) FilterPrefix(prefix Path) Responses {
	out := Responses{}
	for p, v := range r {
		if stripped, ok := p.StripPathPrefix(prefix); ok {
			out[stripped] = v
		}
	}
	return out
}

// Typed accessors. These are the only sanctioned way for validators and
// reconstruction to read the store; they fail with ErrTypeMismatch when the
// stored tag disagrees and ErrMissingResponse when the path is absent.

// GetString returns the text at p.
func (r Responses) GetString(p Path) (string, error) {
	v, ok := r[p]
	if !ok {
		return "", missingResponse(p)
	}
	s, ok := v.AsString()
	if !ok {
		return "", typeMismatch(p, "String", v.TypeName())
	}
	return s, nil
}

// GetInt returns the integer at p.
func (r Responses) GetInt(p Path) (int64, error) {
	v, ok := r[p]
	if !ok {
		return 0, missingResponse(p)
	}
	i, ok := v.AsInt()
	if !ok {
		return 0, typeMismatch(p, "Int", v.TypeName())
	}
	return i, nil
}

// GetFloat returns the float at p.
func (r Responses) GetFloat(p Path) (float64, error) {
	v, ok := r[p]
	if !ok {
		return 0, missingResponse(p)
	}
	f, ok := v.AsFloat()
	if !ok {
		return 0, typeMismatch(p, "Float", v.TypeName())
	}
	return f, nil
}

// GetBool returns the boolean at p.
func (r Responses) GetBool(p Path) (bool, error) {
	v, ok := r[p]
	if !ok {
		return false, missingResponse(p)
	}
	b, ok := v.AsBool()
	if !ok {
		return false, typeMismatch(p, "Bool", v.TypeName())
	}
	return b, nil
}

// GetChosenVariant returns the OneOf selection stored at p.
func (r Responses) GetChosenVariant(p Path) (int, error) {
	v, ok := r[p]
	if !ok {
		return 0, missingResponse(p)
	}
	idx, ok := v.AsChosenVariant()
	if !ok {
		return 0, typeMismatch(p, "ChosenVariant", v.TypeName())
	}
	return idx, nil
}

// GetChosenVariants returns the AnyOf selection set stored at p. The returned
// slice must not be mutated.
func (r Responses) GetChosenVariants(p Path) ([]int, error) {
	v, ok := r[p]
	if !ok {
		return nil, missingResponse(p)
	}
	set, ok := v.AsChosenVariants()
	if !ok {
		return nil, typeMismatch(p, "ChosenVariants", v.TypeName())
	}
	return set, nil
}

// GetStringList returns the string items at p.
func (r Responses) GetStringList(p Path) ([]string, error) {
	v, ok := r[p]
	if !ok {
		return nil, missingResponse(p)
	}
	items, ok := v.AsStringList()
	if !ok {
		return nil, typeMismatch(p, "StringList", v.TypeName())
	}
	return items, nil
}

// GetIntList returns the integer items at p.
func (r Responses) GetIntList(p Path) ([]int64, error) {
	v, ok := r[p]
	if !ok {
		return nil, missingResponse(p)
	}
	items, ok := v.AsIntList()
	if !ok {
		return nil, typeMismatch(p, "IntList", v.TypeName())
	}
	return items, nil
}

// GetFloatList returns the float items at p.
func (r Responses) GetFloatList(p Path) ([]float64, error) {
	v, ok := r[p]
	if !ok {
		return nil, missingResponse(p)
	}
	items, ok := v.AsFloatList()
	if !ok {
		return nil, typeMismatch(p, "FloatList", v.TypeName())
	}
	return items, nil
}

// HasValue reports whether p holds a non-empty answer. Optional fields use
// this: a missing entry or an empty string both count as "skipped".
func (r Responses) HasValue(p Path) bool {
	v, ok := r[p]
	if !ok {
		return false
	}
	if s, isStr := v.AsString(); isStr {
		return s != ""
	}
	return true
}
