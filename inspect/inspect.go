// Package inspect projects a question tree into a plain document structure
// for consumers that render surveys without collecting anything: static form
// generators, docs tooling, debugging output. The projection is read-only
// and loses nothing a renderer needs: paths, prompts, kinds, constraints,
// variants and default overlays.
package inspect

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	elicit "github.com/elicit-go/elicit"
)

// Document is the rendered form of one definition.
type Document struct {
	Prelude   string `json:"prelude,omitempty" yaml:"prelude,omitempty"`
	Questions []Node `json:"questions" yaml:"questions"`
	Epilogue  string `json:"epilogue,omitempty" yaml:"epilogue,omitempty"`
}

// Node describes one question. Exactly one of Children and Variants is set
// for structural kinds; both are empty for scalars.
type Node struct {
	Path      string    `json:"path,omitempty" yaml:"path,omitempty"`
	Ask       string    `json:"ask,omitempty" yaml:"ask,omitempty"`
	Kind      string    `json:"kind" yaml:"kind"`
	Min       any       `json:"min,omitempty" yaml:"min,omitempty"`
	Max       any       `json:"max,omitempty" yaml:"max,omitempty"`
	MinItems  *int      `json:"min_items,omitempty" yaml:"min_items,omitempty"`
	MaxItems  *int      `json:"max_items,omitempty" yaml:"max_items,omitempty"`
	Suggested any       `json:"suggested,omitempty" yaml:"suggested,omitempty"`
	Assumed   any       `json:"assumed,omitempty" yaml:"assumed,omitempty"`
	Children  []Node    `json:"children,omitempty" yaml:"children,omitempty"`
	Variants  []Variant `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// Variant describes one choice option; Payload is nil for bare options.
type Variant struct {
	Name    string `json:"name" yaml:"name"`
	Payload *Node  `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Describe projects the definition. The definition is not modified.
func Describe(def elicit.Definition) Document {
	doc := Document{
		Prelude:   def.Prelude,
		Epilogue:  def.Epilogue,
		Questions: describeQuestions(def.Questions),
	}
	return doc
}

// JSON renders the document as indented JSON.
func (d Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders the document as YAML.
func (d Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}

func describeQuestions(qs []elicit.Question) []Node {
	out := make([]Node, 0, len(qs))
	for i := range qs {
		out = append(out, describeQuestion(&qs[i]))
	}
	return out
}

func describeQuestion(q *elicit.Question) Node {
	n := describeKind(q.Kind())
	n.Path = q.Path().String()
	n.Ask = q.Ask()
	if v, ok := q.Default().Value(); ok {
		if q.Default().IsAssumed() {
			n.Assumed = v.Interface()
		} else {
			n.Suggested = v.Interface()
		}
	}
	return n
}

func describeKind(k elicit.QuestionKind) Node {
	switch kind := k.(type) {
	case elicit.UnitQuestion:
		return Node{Kind: "unit"}
	case elicit.InputQuestion:
		return Node{Kind: "input"}
	case elicit.MultilineQuestion:
		return Node{Kind: "multiline"}
	case elicit.MaskedQuestion:
		return Node{Kind: "masked"}
	case elicit.IntQuestion:
		n := Node{Kind: "int"}
		if kind.Min != nil {
			n.Min = *kind.Min
		}
		if kind.Max != nil {
			n.Max = *kind.Max
		}
		return n
	case elicit.FloatQuestion:
		n := Node{Kind: "float"}
		if kind.Min != nil {
			n.Min = *kind.Min
		}
		if kind.Max != nil {
			n.Max = *kind.Max
		}
		return n
	case elicit.ConfirmQuestion:
		return Node{Kind: "confirm"}
	case elicit.ListQuestion:
		n := Node{Kind: listKindName(kind.Elements)}
		if kind.MinElem != nil {
			n.Min = *kind.MinElem
		}
		if kind.MaxElem != nil {
			n.Max = *kind.MaxElem
		}
		n.MinItems = kind.MinItems
		n.MaxItems = kind.MaxItems
		return n
	case *elicit.AllOfQuestion:
		return Node{Kind: "all_of", Children: describeQuestions(kind.Questions)}
	case *elicit.OneOfQuestion:
		return Node{Kind: "one_of", Variants: describeVariants(kind.Variants)}
	case *elicit.AnyOfQuestion:
		return Node{Kind: "any_of", Variants: describeVariants(kind.Variants)}
	}
	return Node{Kind: fmt.Sprintf("%T", k)}
}

func describeVariants(vs []elicit.Variant) []Variant {
	out := make([]Variant, 0, len(vs))
	for _, v := range vs {
		dv := Variant{Name: v.Name}
		if !elicit.IsUnit(v.Kind) {
			node := describeKind(v.Kind)
			dv.Payload = &node
		}
		out = append(out, dv)
	}
	return out
}

func listKindName(k elicit.ListElementKind) string {
	switch k {
	case elicit.ListInts:
		return "int_list"
	case elicit.ListFloats:
		return "float_list"
	}
	return "string_list"
}
