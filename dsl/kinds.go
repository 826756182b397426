package dsl

import (
	"fmt"

	elicit "github.com/elicit-go/elicit"
)

// Scalar kind builders. Their build ignores the question path; only
// structural kinds namespace children.

type inputKind struct{ def string }

// Input declares a single-line text question.
func Input() *inputKind { return &inputKind{} }

// Default pre-fills the input.
func (k *inputKind) Default(s string) *inputKind {
	k.def = s
	return k
}

func (k *inputKind) build(elicit.Path) (elicit.QuestionKind, error) {
	return elicit.InputQuestion{Default: k.def}, nil
}

type multilineKind struct{ def string }

// Multiline declares a multi-line text question.
func Multiline() *multilineKind { return &multilineKind{} }

func (k *multilineKind) Default(s string) *multilineKind {
	k.def = s
	return k
}

func (k *multilineKind) build(elicit.Path) (elicit.QuestionKind, error) {
	return elicit.MultilineQuestion{Default: k.def}, nil
}

type maskedKind struct{ mask rune }

// Masked declares a hidden-input question for secrets.
func Masked() *maskedKind { return &maskedKind{} }

// Mask sets the echo replacement character.
func (k *maskedKind) Mask(r rune) *maskedKind {
	k.mask = r
	return k
}

func (k *maskedKind) build(elicit.Path) (elicit.QuestionKind, error) {
	return elicit.MaskedQuestion{Mask: k.mask}, nil
}

type intKind struct {
	def, min, max *int64
}

// Int declares an integer question.
func Int() *intKind { return &intKind{} }

func (k *intKind) Default(v int64) *intKind { k.def = &v; return k }
func (k *intKind) Min(v int64) *intKind     { k.min = &v; return k }
func (k *intKind) Max(v int64) *intKind     { k.max = &v; return k }

func (k *intKind) build(p elicit.Path) (elicit.QuestionKind, error) {
	if k.min != nil && k.max != nil && *k.min > *k.max {
		return nil, fmt.Errorf("dsl: %s: min %d exceeds max %d", p, *k.min, *k.max)
	}
	return elicit.IntQuestion{Default: k.def, Min: k.min, Max: k.max}, nil
}

type floatKind struct {
	def, min, max *float64
}

// Float declares a floating-point question.
func Float() *floatKind { return &floatKind{} }

func (k *floatKind) Default(v float64) *floatKind { k.def = &v; return k }
func (k *floatKind) Min(v float64) *floatKind     { k.min = &v; return k }
func (k *floatKind) Max(v float64) *floatKind     { k.max = &v; return k }

func (k *floatKind) build(p elicit.Path) (elicit.QuestionKind, error) {
	if k.min != nil && k.max != nil && *k.min > *k.max {
		return nil, fmt.Errorf("dsl: %s: min %g exceeds max %g", p, *k.min, *k.max)
	}
	return elicit.FloatQuestion{Default: k.def, Min: k.min, Max: k.max}, nil
}

type confirmKind struct{ def bool }

// Confirm declares a yes/no question.
func Confirm() *confirmKind { return &confirmKind{} }

func (k *confirmKind) Default(v bool) *confirmKind {
	k.def = v
	return k
}

func (k *confirmKind) build(elicit.Path) (elicit.QuestionKind, error) {
	return elicit.ConfirmQuestion{Default: k.def}, nil
}

type listKind struct {
	elems            elicit.ListElementKind
	minElem, maxElem *float64
	minItems         *int
	maxItems         *int
}

// Strings declares a list-of-strings question.
func Strings() *listKind { return &listKind{elems: elicit.ListStrings} }

// Ints declares a list-of-integers question.
func Ints() *listKind { return &listKind{elems: elicit.ListInts} }

// Floats declares a list-of-floats question.
func Floats() *listKind { return &listKind{elems: elicit.ListFloats} }

// MinElem bounds each numeric element from below.
func (k *listKind) MinElem(v float64) *listKind { k.minElem = &v; return k }

// MaxElem bounds each numeric element from above.
func (k *listKind) MaxElem(v float64) *listKind { k.maxElem = &v; return k }

func (k *listKind) MinItems(n int) *listKind { k.minItems = &n; return k }
func (k *listKind) MaxItems(n int) *listKind { k.maxItems = &n; return k }

func (k *listKind) build(p elicit.Path) (elicit.QuestionKind, error) {
	if k.minElem != nil && k.maxElem != nil && *k.minElem > *k.maxElem {
		return nil, fmt.Errorf("dsl: %s: element min %g exceeds max %g", p, *k.minElem, *k.maxElem)
	}
	if k.minItems != nil && k.maxItems != nil && *k.minItems > *k.maxItems {
		return nil, fmt.Errorf("dsl: %s: min items %d exceeds max %d", p, *k.minItems, *k.maxItems)
	}
	if k.elems == elicit.ListStrings && (k.minElem != nil || k.maxElem != nil) {
		return nil, fmt.Errorf("dsl: %s: element bounds apply to numeric lists only", p)
	}
	return elicit.ListQuestion{
		Elements: k.elems,
		MinElem:  k.minElem,
		MaxElem:  k.maxElem,
		MinItems: k.minItems,
		MaxItems: k.maxItems,
	}, nil
}
