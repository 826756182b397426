package scripted

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	elicit "github.com/elicit-go/elicit"
)

// Fixture decoding. A fixture is a flat document keyed by dotted paths.
// Plain scalars map by their own type: strings and booleans directly, whole
// numbers to Int, fractional numbers to Float. Everything else uses a
// single-key tagged form to pin the value kind:
//
//	name: Frodo
//	confirmed: true
//	age: 33
//	height: {float: 1.06}
//	method.selected_variant: {variant: 1}
//	features.selected_variants: {variants: [0, 1]}
//	tags: {strings: [brave, small]}

// FromJSON builds a backend from a JSON fixture.
func FromJSON(data []byte) (*Backend, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scripted: bad JSON fixture: %w", err)
	}
	return fromDoc(doc)
}

// FromYAML builds a backend from a YAML fixture.
func FromYAML(data []byte) (*Backend, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scripted: bad YAML fixture: %w", err)
	}
	return fromDoc(doc)
}

func fromDoc(doc map[string]any) (*Backend, error) {
	b := New()
	for path, raw := range doc {
		v, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("scripted: fixture entry %q: %w", path, err)
		}
		b.answers[path] = v
	}
	return b, nil
}

func decodeValue(raw any) (elicit.Value, error) {
	switch x := raw.(type) {
	case string:
		return elicit.StringValue(x), nil
	case bool:
		return elicit.BoolValue(x), nil
	case int:
		return elicit.IntValue(int64(x)), nil
	case int64:
		return elicit.IntValue(x), nil
	case float64:
		if x == float64(int64(x)) {
			return elicit.IntValue(int64(x)), nil
		}
		return elicit.FloatValue(x), nil
	case map[string]any:
		return decodeTagged(x)
	}
	return elicit.Value{}, fmt.Errorf("unsupported value %T", raw)
}

func decodeTagged(m map[string]any) (elicit.Value, error) {
	if len(m) != 1 {
		return elicit.Value{}, fmt.Errorf("tagged value must have exactly one key, got %d", len(m))
	}
	for tag, raw := range m {
		switch tag {
		case "string":
			s, ok := raw.(string)
			if !ok {
				return elicit.Value{}, fmt.Errorf("string tag holds %T", raw)
			}
			return elicit.StringValue(s), nil
		case "bool":
			v, ok := raw.(bool)
			if !ok {
				return elicit.Value{}, fmt.Errorf("bool tag holds %T", raw)
			}
			return elicit.BoolValue(v), nil
		case "int":
			i, err := asInt(raw)
			if err != nil {
				return elicit.Value{}, err
			}
			return elicit.IntValue(i), nil
		case "float":
			f, err := asFloat(raw)
			if err != nil {
				return elicit.Value{}, err
			}
			return elicit.FloatValue(f), nil
		case "variant":
			i, err := asInt(raw)
			if err != nil {
				return elicit.Value{}, err
			}
			return elicit.ChosenVariant(int(i)), nil
		case "variants":
			idxs, err := asIntSlice(raw)
			if err != nil {
				return elicit.Value{}, err
			}
			set := make([]int, len(idxs))
			for i, v := range idxs {
				set[i] = int(v)
			}
			return elicit.ChosenVariants(set...), nil
		case "strings":
			items, ok := raw.([]any)
			if !ok {
				return elicit.Value{}, fmt.Errorf("strings tag holds %T", raw)
			}
			out := make([]string, len(items))
			for i, it := range items {
				s, ok := it.(string)
				if !ok {
					return elicit.Value{}, fmt.Errorf("strings item %d is %T", i, it)
				}
				out[i] = s
			}
			return elicit.StringListValue(out...), nil
		case "ints":
			items, err := asIntSlice(raw)
			if err != nil {
				return elicit.Value{}, err
			}
			return elicit.IntListValue(items...), nil
		case "floats":
			items, ok := raw.([]any)
			if !ok {
				return elicit.Value{}, fmt.Errorf("floats tag holds %T", raw)
			}
			out := make([]float64, len(items))
			for i, it := range items {
				f, err := asFloat(it)
				if err != nil {
					return elicit.Value{}, fmt.Errorf("floats item %d: %w", i, err)
				}
				out[i] = f
			}
			return elicit.FloatListValue(out...), nil
		default:
			return elicit.Value{}, fmt.Errorf("unknown tag %q", tag)
		}
	}
	return elicit.Value{}, fmt.Errorf("empty tagged value")
}

func asInt(raw any) (int64, error) {
	switch x := raw.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case float64:
		if x != float64(int64(x)) {
			return 0, fmt.Errorf("expected integer, got %v", x)
		}
		return int64(x), nil
	}
	return 0, fmt.Errorf("expected integer, got %T", raw)
}

func asFloat(raw any) (float64, error) {
	switch x := raw.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case float64:
		return x, nil
	}
	return 0, fmt.Errorf("expected number, got %T", raw)
}

func asIntSlice(raw any) ([]int64, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected list, got %T", raw)
	}
	out := make([]int64, len(items))
	for i, it := range items {
		v, err := asInt(it)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
