package dsl

import (
	"fmt"
	"strconv"

	elicit "github.com/elicit-go/elicit"
)

type groupKind struct{ fields []field }

// Group declares a block of named questions that are all asked, in
// declaration order. Children are addressed directly under the group's path.
func Group() *groupKind { return &groupKind{} }

// Field declares a child question inside the group.
func (k *groupKind) Field(name, ask string, kind Kind) *groupKind {
	k.fields = append(k.fields, field{name: name, ask: ask, kind: kind})
	return k
}

func (k *groupKind) build(base elicit.Path) (elicit.QuestionKind, error) {
	qs, err := buildFields(base, k.fields)
	if err != nil {
		return nil, err
	}
	return &elicit.AllOfQuestion{Questions: qs}, nil
}

type variantSpec struct {
	name string
	kind Kind // nil for bare options
}

// buildVariant produces the payload kind of one variant. Named fields live
// directly under base; a nested choice payload descends through the
// positional segment so its selection key cannot collide with the enclosing
// one; scalar payloads carry no paths of their own.
func buildVariant(spec variantSpec, base elicit.Path) (elicit.Variant, error) {
	if spec.kind == nil {
		return elicit.UnitVariant(spec.name), nil
	}
	var payloadBase elicit.Path
	switch spec.kind.(type) {
	case *oneOfKind, *anyOfKind:
		payloadBase = base.Child(elicit.PositionalKey)
	default:
		payloadBase = base
	}
	kind, err := spec.kind.build(payloadBase)
	if err != nil {
		return elicit.Variant{}, err
	}
	return elicit.Variant{Name: spec.name, Kind: kind}, nil
}

type oneOfKind struct {
	variants []variantSpec
	def      *int
}

// OneOf declares an exactly-one choice. Variant identity is ordinal position;
// names are display labels only.
func OneOf() *oneOfKind { return &oneOfKind{} }

// Option declares a variant that collects nothing.
func (k *oneOfKind) Option(name string) *oneOfKind {
	k.variants = append(k.variants, variantSpec{name: name})
	return k
}

// Variant declares a variant with a payload: a scalar kind, a Group of named
// fields, or a nested choice.
func (k *oneOfKind) Variant(name string, kind Kind) *oneOfKind {
	k.variants = append(k.variants, variantSpec{name: name, kind: kind})
	return k
}

// Default pre-selects a variant ordinal.
func (k *oneOfKind) Default(idx int) *oneOfKind {
	k.def = &idx
	return k
}

func (k *oneOfKind) build(base elicit.Path) (elicit.QuestionKind, error) {
	if len(k.variants) == 0 {
		return nil, fmt.Errorf("dsl: %s: choice needs at least one variant", base)
	}
	if k.def != nil && (*k.def < 0 || *k.def >= len(k.variants)) {
		return nil, fmt.Errorf("dsl: %s: default variant %d out of range [0,%d)", base, *k.def, len(k.variants))
	}
	vs := make([]elicit.Variant, 0, len(k.variants))
	for _, spec := range k.variants {
		v, err := buildVariant(spec, base)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return &elicit.OneOfQuestion{Variants: vs, Default: k.def}, nil
}

type anyOfKind struct {
	variants []variantSpec
	defs     []int
}

// AnyOf declares an any-subset choice. Each variant's payload is namespaced
// under the variant's ordinal so two selected variants cannot collide.
func AnyOf() *anyOfKind { return &anyOfKind{} }

// Option declares a variant that collects nothing.
func (k *anyOfKind) Option(name string) *anyOfKind {
	k.variants = append(k.variants, variantSpec{name: name})
	return k
}

// Variant declares a variant with a payload.
func (k *anyOfKind) Variant(name string, kind Kind) *anyOfKind {
	k.variants = append(k.variants, variantSpec{name: name, kind: kind})
	return k
}

// Defaults pre-selects variant ordinals.
func (k *anyOfKind) Defaults(idxs ...int) *anyOfKind {
	k.defs = append([]int(nil), idxs...)
	return k
}

func (k *anyOfKind) build(base elicit.Path) (elicit.QuestionKind, error) {
	if len(k.variants) == 0 {
		return nil, fmt.Errorf("dsl: %s: choice needs at least one variant", base)
	}
	for _, d := range k.defs {
		if d < 0 || d >= len(k.variants) {
			return nil, fmt.Errorf("dsl: %s: default variant %d out of range [0,%d)", base, d, len(k.variants))
		}
	}
	vs := make([]elicit.Variant, 0, len(k.variants))
	for i, spec := range k.variants {
		v, err := buildVariant(spec, base.Child(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return &elicit.AnyOfQuestion{Variants: vs, Defaults: k.defs}, nil
}
