package elicit

// ErrorMap collects validation failures keyed by the offending path. It is
// handled entirely within a collection surface's retry/redisplay loop and
// never propagates past Collect.
type ErrorMap map[Path]string

// Merge writes every entry of other into m, overwriting on collision
// (last-write-wins).
func (m ErrorMap) Merge(other ErrorMap) {
	for p, msg := range other {
		m[p] = msg
	}
}

// IsEmpty reports whether no failure was recorded.
func (m ErrorMap) IsEmpty() bool { return len(m) == 0 }

// RunValidators performs one full validation pass: the field validator runs
// over every active path in declaration order, then the composite validator
// runs once over the whole store, its results merged over the field results.
// A later composite failure for a path therefore overrides an earlier field
// failure for that same path. Neither validator may mutate the store; the
// core never retries; redisplay looping belongs to the surface.
func RunValidators(def Definition, r Responses, field FieldValidator, composite CompositeValidator) ErrorMap {
	errs := ErrorMap{}
	if field != nil {
		_ = WalkActive(def, r, func(p Path, _ QuestionKind) error {
			if !r.Contains(p) {
				return nil
			}
			if err := field(p, r); err != nil {
				errs[p] = err.Error()
			}
			return nil
		})
	}
	if composite != nil {
		errs.Merge(composite(r))
	}
	return errs
}
