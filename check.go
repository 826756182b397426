package elicit

import (
	"errors"
	"fmt"

	"github.com/elicit-go/elicit/i18n"
)

// CheckValue verifies that v conforms to what kind expects: the right value
// tag, numeric bounds, variant ordinals in range, list item counts. Surfaces
// run it before any custom field validator, so custom validators may take the
// shape of the value for granted. Structural kinds accept only their
// selection values (ChosenVariant for OneOf, ChosenVariants for AnyOf);
// groups and unit kinds expect no value at all.
func CheckValue(kind QuestionKind, v Value) error {
	switch k := kind.(type) {
	case InputQuestion, MultilineQuestion, MaskedQuestion:
		if _, ok := v.AsString(); !ok {
			return invalidType("String", v)
		}
		return nil
	case IntQuestion:
		i, ok := v.AsInt()
		if !ok {
			return invalidType("Int", v)
		}
		if k.Min != nil && i < *k.Min {
			return codedError(CodeTooSmall, "min", *k.Min, "got", i)
		}
		if k.Max != nil && i > *k.Max {
			return codedError(CodeTooBig, "max", *k.Max, "got", i)
		}
		return nil
	case FloatQuestion:
		f, ok := v.AsFloat()
		if !ok {
			return invalidType("Float", v)
		}
		if k.Min != nil && f < *k.Min {
			return codedError(CodeTooSmall, "min", *k.Min, "got", f)
		}
		if k.Max != nil && f > *k.Max {
			return codedError(CodeTooBig, "max", *k.Max, "got", f)
		}
		return nil
	case ConfirmQuestion:
		if _, ok := v.AsBool(); !ok {
			return invalidType("Bool", v)
		}
		return nil
	case ListQuestion:
		return checkList(k, v)
	case *OneOfQuestion:
		idx, ok := v.AsChosenVariant()
		if !ok {
			return invalidType("ChosenVariant", v)
		}
		if idx < 0 || idx >= len(k.Variants) {
			return codedError(CodeInvalidEnum, "index", idx, "variants", len(k.Variants))
		}
		return nil
	case *AnyOfQuestion:
		idxs, ok := v.AsChosenVariants()
		if !ok {
			return invalidType("ChosenVariants", v)
		}
		for _, idx := range idxs {
			if idx < 0 || idx >= len(k.Variants) {
				return codedError(CodeInvalidEnum, "index", idx, "variants", len(k.Variants))
			}
		}
		return nil
	case UnitQuestion, *AllOfQuestion:
		return errors.New(i18n.T(CodeInvalidType, map[string]string{"expected": "no value"}))
	}
	return nil
}

func checkList(k ListQuestion, v Value) error {
	var n int
	switch k.Elements {
	case ListStrings:
		items, ok := v.AsStringList()
		if !ok {
			return invalidType("StringList", v)
		}
		n = len(items)
	case ListInts:
		items, ok := v.AsIntList()
		if !ok {
			return invalidType("IntList", v)
		}
		n = len(items)
		for _, i := range items {
			if k.MinElem != nil && float64(i) < *k.MinElem {
				return codedError(CodeTooSmall, "min", *k.MinElem, "got", i)
			}
			if k.MaxElem != nil && float64(i) > *k.MaxElem {
				return codedError(CodeTooBig, "max", *k.MaxElem, "got", i)
			}
		}
	case ListFloats:
		items, ok := v.AsFloatList()
		if !ok {
			return invalidType("FloatList", v)
		}
		n = len(items)
		for _, f := range items {
			if k.MinElem != nil && f < *k.MinElem {
				return codedError(CodeTooSmall, "min", *k.MinElem, "got", f)
			}
			if k.MaxElem != nil && f > *k.MaxElem {
				return codedError(CodeTooBig, "max", *k.MaxElem, "got", f)
			}
		}
	}
	if k.MinItems != nil && n < *k.MinItems {
		return codedError(CodeTooFew, "min", *k.MinItems, "got", n)
	}
	if k.MaxItems != nil && n > *k.MaxItems {
		return codedError(CodeTooMany, "max", *k.MaxItems, "got", n)
	}
	return nil
}

func invalidType(expected string, v Value) error {
	return errors.New(i18n.T(CodeInvalidType, map[string]string{
		"expected": expected,
		"got":      v.TypeName(),
	}))
}

func codedError(code string, kv ...any) error {
	data := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		data[fmt.Sprint(kv[i])] = fmt.Sprint(kv[i+1])
	}
	return errors.New(i18n.T(code, data))
}
