package elicit_test

import (
	"testing"

	elicit "github.com/elicit-go/elicit"
)

func TestQuestionDefaultOverlay(t *testing.T) {
	q := elicit.NewQuestion(elicit.Root("name"), "Name?", elicit.InputQuestion{})
	if !q.Default().IsNone() {
		t.Fatalf("fresh question must have no overlay")
	}

	q.SetSuggestion(elicit.StringValue("Frodo"))
	if !q.Default().IsSuggested() || q.IsAssumed() {
		t.Fatalf("overlay = %v", q.Default())
	}
	if v, ok := q.Default().Value(); !ok || !v.Equal(elicit.StringValue("Frodo")) {
		t.Fatalf("value = %v, %v", v, ok)
	}

	q.SetAssumption(elicit.StringValue("Sam"))
	if !q.IsAssumed() {
		t.Fatalf("assumption must replace suggestion")
	}

	q.ClearDefault()
	if !q.Default().IsNone() {
		t.Fatalf("clear must reset the overlay")
	}
	if _, ok := q.Default().Value(); ok {
		t.Fatalf("empty overlay has no value")
	}
}

func TestKindPredicates(t *testing.T) {
	if !elicit.IsStructural(&elicit.AllOfQuestion{}) || !elicit.IsStructural(&elicit.OneOfQuestion{}) {
		t.Fatalf("groups and choices are structural")
	}
	if elicit.IsStructural(elicit.InputQuestion{}) {
		t.Fatalf("scalars are not structural")
	}
	if !elicit.IsUnit(elicit.UnitQuestion{}) || elicit.IsUnit(elicit.ConfirmQuestion{}) {
		t.Fatalf("unit predicate wrong")
	}
	v := elicit.UnitVariant("Walk")
	if v.Name != "Walk" || !elicit.IsUnit(v.Kind) {
		t.Fatalf("unit variant = %+v", v)
	}
}

func TestDefinitionFraming(t *testing.T) {
	def := elicit.NewDefinition(nil).WithPrelude("hello").WithEpilogue("bye")
	if def.Prelude != "hello" || def.Epilogue != "bye" {
		t.Fatalf("framing = %+v", def)
	}
	if !def.IsEmpty() || def.Len() != 0 {
		t.Fatalf("empty definition misreported")
	}
}
