package elicit

import "strconv"

// WalkActive visits, in declaration order, the store path of every answer the
// definition currently calls for: scalar question paths, OneOf/AnyOf
// selection keys, and, once a selection is present in r, the paths inside
// the chosen variants' sub-trees. Unit kinds and the sub-trees of unselected
// variants are not visited. fn stops the walk by returning an error.
func WalkActive(def Definition, r Responses, fn func(path Path, kind QuestionKind) error) error {
	return walkQuestions(def.Questions, r, fn)
}

func walkQuestions(qs []Question, r Responses, fn func(Path, QuestionKind) error) error {
	for i := range qs {
		if err := walkKind(qs[i].kind, qs[i].path, r, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkKind(k QuestionKind, base Path, r Responses, fn func(Path, QuestionKind) error) error {
	switch kind := k.(type) {
	case UnitQuestion:
		return nil
	case *AllOfQuestion:
		return walkQuestions(kind.Questions, r, fn)
	case *OneOfQuestion:
		sel := base.Child(SelectedVariantKey)
		if err := fn(sel, k); err != nil {
			return err
		}
		idx, err := r.GetChosenVariant(sel)
		if err != nil || idx < 0 || idx >= len(kind.Variants) {
			return nil
		}
		return walkVariant(kind.Variants[idx].Kind, base, r, fn)
	case *AnyOfQuestion:
		sel := base.Child(SelectedVariantsKey)
		if err := fn(sel, k); err != nil {
			return err
		}
		idxs, err := r.GetChosenVariants(sel)
		if err != nil {
			return nil
		}
		for _, idx := range idxs {
			if idx < 0 || idx >= len(kind.Variants) {
				continue
			}
			vbase := base.Child(strconv.Itoa(idx))
			if err := walkVariant(kind.Variants[idx].Kind, vbase, r, fn); err != nil {
				return err
			}
		}
		return nil
	default:
		return fn(base, k)
	}
}

// walkVariant descends into a chosen variant's payload. Named fields carry
// their own absolute paths inside an AllOf; a single positional payload
// (scalar or a nested choice) lives under the reserved "0" segment, so a
// nested choice's selection key never collides with the enclosing one.
func walkVariant(k QuestionKind, base Path, r Responses, fn func(Path, QuestionKind) error) error {
	switch k.(type) {
	case UnitQuestion:
		return nil
	case *AllOfQuestion:
		return walkKind(k, base, r, fn)
	case *OneOfQuestion, *AnyOfQuestion:
		return walkKind(k, base.Child(PositionalKey), r, fn)
	default:
		return fn(base.Child(PositionalKey), k)
	}
}
