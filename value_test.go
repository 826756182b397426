package elicit_test

import (
	"testing"

	elicit "github.com/elicit-go/elicit"
)

func TestValueAccessors(t *testing.T) {
	v := elicit.StringValue("hi")
	if s, ok := v.AsString(); !ok || s != "hi" {
		t.Fatalf("AsString = %q, %v", s, ok)
	}
	if _, ok := v.AsInt(); ok {
		t.Fatalf("wrong accessor must fail")
	}
	if v.Kind() != elicit.ValueString || v.TypeName() != "String" {
		t.Fatalf("kind = %v, name = %s", v.Kind(), v.TypeName())
	}

	if i, ok := elicit.IntValue(-3).AsInt(); !ok || i != -3 {
		t.Fatalf("AsInt = %d, %v", i, ok)
	}
	if f, ok := elicit.FloatValue(1.5).AsFloat(); !ok || f != 1.5 {
		t.Fatalf("AsFloat = %v, %v", f, ok)
	}
	if b, ok := elicit.BoolValue(true).AsBool(); !ok || !b {
		t.Fatalf("AsBool = %v, %v", b, ok)
	}
	if idx, ok := elicit.ChosenVariant(2).AsChosenVariant(); !ok || idx != 2 {
		t.Fatalf("AsChosenVariant = %d, %v", idx, ok)
	}
	if set, ok := elicit.ChosenVariants(0, 2).AsChosenVariants(); !ok || len(set) != 2 {
		t.Fatalf("AsChosenVariants = %v, %v", set, ok)
	}
}

func TestValueEqual(t *testing.T) {
	cases := []struct {
		a, b elicit.Value
		want bool
	}{
		{elicit.StringValue("x"), elicit.StringValue("x"), true},
		{elicit.StringValue("x"), elicit.StringValue("y"), false},
		{elicit.IntValue(1), elicit.FloatValue(1), false},
		{elicit.ChosenVariant(1), elicit.IntValue(1), false},
		{elicit.ChosenVariants(0, 1), elicit.ChosenVariants(0, 1), true},
		{elicit.ChosenVariants(0, 1), elicit.ChosenVariants(1, 0), false},
		{elicit.StringListValue("a"), elicit.StringListValue("a"), true},
		{elicit.IntListValue(1, 2), elicit.IntListValue(1), false},
		{elicit.FloatListValue(0.5), elicit.FloatListValue(0.5), true},
	}
	for i, tc := range cases {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Fatalf("case %d: Equal = %v, want %v", i, got, tc.want)
		}
	}
}

func TestValueConstructorsCopyInput(t *testing.T) {
	src := []int{0, 1}
	v := elicit.ChosenVariants(src...)
	src[0] = 9
	set, _ := v.AsChosenVariants()
	if set[0] != 0 {
		t.Fatalf("constructor must copy its input")
	}
}
