// Package dsl provides the fluent builders that turn hand-written survey
// declarations into question trees. Builders assign every question its
// absolute path at Build time and reject names that would break path
// addressing: empty names, names containing the separator, reserved selection
// segments, and duplicates within a sibling group.
package dsl

import (
	"errors"
	"fmt"
	"strings"

	elicit "github.com/elicit-go/elicit"
)

// Kind is implemented by every question kind builder. build receives the
// absolute path of the question being declared so structural kinds can
// namespace their children.
type Kind interface {
	build(base elicit.Path) (elicit.QuestionKind, error)
}

type field struct {
	name string
	ask  string
	kind Kind
}

// SurveyBuilder accumulates top-level fields and framing text.
type SurveyBuilder struct {
	prelude  string
	epilogue string
	fields   []field
}

// Survey creates an empty survey builder.
func Survey() *SurveyBuilder {
	return &SurveyBuilder{}
}

// Prelude sets the text shown before collection starts.
func (b *SurveyBuilder) Prelude(msg string) *SurveyBuilder {
	b.prelude = msg
	return b
}

// Epilogue sets the text shown after collection completes.
func (b *SurveyBuilder) Epilogue(msg string) *SurveyBuilder {
	b.epilogue = msg
	return b
}

// Field declares a top-level question. name becomes the root segment of the
// question's path; ask is the prompt text.
func (b *SurveyBuilder) Field(name, ask string, kind Kind) *SurveyBuilder {
	b.fields = append(b.fields, field{name: name, ask: ask, kind: kind})
	return b
}

// Build assigns paths and produces the definition. Declaration problems are
// reported together rather than one at a time.
func (b *SurveyBuilder) Build() (elicit.Definition, error) {
	qs, err := buildFields(elicit.EmptyPath(), b.fields)
	if err != nil {
		return elicit.Definition{}, err
	}
	def := elicit.NewDefinition(qs)
	def.Prelude = b.prelude
	def.Epilogue = b.epilogue
	return def, nil
}

// MustBuild is Build that panics on declaration errors, for package-level
// survey variables.
func (b *SurveyBuilder) MustBuild() elicit.Definition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}

func buildFields(base elicit.Path, fields []field) ([]elicit.Question, error) {
	qs := make([]elicit.Question, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	var errs []error
	for _, f := range fields {
		if err := checkName(f.name); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[f.name] {
			errs = append(errs, fmt.Errorf("dsl: duplicate field name %q under %q", f.name, base))
			continue
		}
		seen[f.name] = true
		path := base.Child(f.name)
		kind, err := f.kind.build(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		qs = append(qs, elicit.NewQuestion(path, f.ask, kind))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return qs, nil
}

// checkName rejects names that would make path encoding ambiguous or collide
// with the reserved selection segments.
func checkName(name string) error {
	if name == "" {
		return errors.New("dsl: field name must not be empty")
	}
	if strings.Contains(name, ".") {
		return fmt.Errorf("dsl: field name %q must not contain '.'", name)
	}
	if name == elicit.SelectedVariantKey || name == elicit.SelectedVariantsKey {
		return fmt.Errorf("dsl: field name %q is reserved for choice selections", name)
	}
	return nil
}
