// Package scripted provides a replay Backend for non-interactive collection:
// answers are registered up front, keyed by dotted path strings, and played
// back in the order the question tree calls for them. It drives automated
// runs and tests the same way an interactive surface would, including the
// built-in conformance checks and the caller's field validator.
package scripted

import (
	"fmt"

	elicit "github.com/elicit-go/elicit"
)

// Backend replays scripted answers. Selection answers gate which variant
// sub-trees are traversed, exactly as a live surface would only ask about
// chosen variants.
type Backend struct {
	answers  map[string]elicit.Value
	cancelAt string
}

// New returns a backend with no answers registered.
func New() *Backend {
	return &Backend{answers: map[string]elicit.Value{}}
}

// WithValue registers an answer for the dotted path.
func (b *Backend) WithValue(path string, v elicit.Value) *Backend {
	b.answers[path] = v
	return b
}

// WithString registers a text answer.
func (b *Backend) WithString(path, s string) *Backend {
	return b.WithValue(path, elicit.StringValue(s))
}

// WithInt registers an integer answer.
func (b *Backend) WithInt(path string, i int64) *Backend {
	return b.WithValue(path, elicit.IntValue(i))
}

// WithFloat registers a floating-point answer.
func (b *Backend) WithFloat(path string, f float64) *Backend {
	return b.WithValue(path, elicit.FloatValue(f))
}

// WithBool registers a confirmation answer.
func (b *Backend) WithBool(path string, v bool) *Backend {
	return b.WithValue(path, elicit.BoolValue(v))
}

// WithVariant registers a OneOf selection; path must be the question's
// selected_variant key.
func (b *Backend) WithVariant(path string, idx int) *Backend {
	return b.WithValue(path, elicit.ChosenVariant(idx))
}

// WithVariants registers an AnyOf selection; path must be the question's
// selected_variants key.
func (b *Backend) WithVariants(path string, idxs ...int) *Backend {
	return b.WithValue(path, elicit.ChosenVariants(idxs...))
}

// WithStrings registers a list-of-strings answer.
func (b *Backend) WithStrings(path string, items ...string) *Backend {
	return b.WithValue(path, elicit.StringListValue(items...))
}

// WithInts registers a list-of-integers answer.
func (b *Backend) WithInts(path string, items ...int64) *Backend {
	return b.WithValue(path, elicit.IntListValue(items...))
}

// WithFloats registers a list-of-floats answer.
func (b *Backend) WithFloats(path string, items ...float64) *Backend {
	return b.WithValue(path, elicit.FloatListValue(items...))
}

// CancelAt makes the run abort with ErrCancelled when collection reaches the
// given path, simulating a user quitting mid-survey.
func (b *Backend) CancelAt(path string) *Backend {
	b.cancelAt = path
	return b
}

// Collect implements elicit.Backend. Every path the definition activates must
// have a scripted answer; a missing or non-conforming answer fails the run
// rather than looping, since a script cannot be corrected interactively.
func (b *Backend) Collect(def elicit.Definition, validate elicit.FieldValidator) (elicit.Responses, error) {
	out := elicit.NewResponses()
	err := elicit.WalkActive(def, out, func(p elicit.Path, kind elicit.QuestionKind) error {
		if b.cancelAt != "" && p.String() == b.cancelAt {
			return elicit.ErrCancelled
		}
		v, ok := b.answers[p.String()]
		if !ok {
			return fmt.Errorf("scripted: no answer for %s", p)
		}
		if cerr := elicit.CheckValue(kind, v); cerr != nil {
			return fmt.Errorf("scripted: answer for %s: %s", p, cerr)
		}
		out.Insert(p, v)
		if validate != nil {
			if verr := validate(p, out); verr != nil {
				return fmt.Errorf("scripted: answer for %s rejected: %s", p, verr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
