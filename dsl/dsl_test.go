package dsl_test

import (
	"strings"
	"testing"

	elicit "github.com/elicit-go/elicit"
	"github.com/elicit-go/elicit/dsl"
)

func TestBuild_AssignsAbsolutePaths(t *testing.T) {
	def, err := dsl.Survey().
		Prelude("welcome").
		Field("name", "Your name?", dsl.Input()).
		Field("address", "Address", dsl.Group().
			Field("street", "Street?", dsl.Input()).
			Field("zip", "Zip?", dsl.Input())).
		Epilogue("done").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if def.Prelude != "welcome" || def.Epilogue != "done" {
		t.Fatalf("framing text not carried: %+v", def)
	}
	if got := def.Questions[0].Path(); got != elicit.Root("name") {
		t.Fatalf("path = %v", got)
	}
	group, ok := def.Questions[1].Kind().(*elicit.AllOfQuestion)
	if !ok {
		t.Fatalf("expected group, got %T", def.Questions[1].Kind())
	}
	if got := group.Questions[1].Path(); got != elicit.Root("address").Child("zip") {
		t.Fatalf("nested path = %v", got)
	}
}

func TestBuild_ChoiceVariants(t *testing.T) {
	def, err := dsl.Survey().
		Field("method", "How?", dsl.OneOf().
			Option("Walk").
			Variant("Drive", dsl.Group().
				Field("car", "Which car?", dsl.Input())).
			Variant("Fly", dsl.Input()).
			Default(0)).
		Field("features", "Which features?", dsl.AnyOf().
			Option("Email").
			Variant("Push", dsl.Group().
				Field("token", "Device token?", dsl.Input()))).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	oneOf := def.Questions[0].Kind().(*elicit.OneOfQuestion)
	if len(oneOf.Variants) != 3 {
		t.Fatalf("variants = %d", len(oneOf.Variants))
	}
	if !elicit.IsUnit(oneOf.Variants[0].Kind) {
		t.Fatalf("Walk should be unit")
	}
	drive := oneOf.Variants[1].Kind.(*elicit.AllOfQuestion)
	if got := drive.Questions[0].Path(); got != elicit.Root("method").Child("car") {
		t.Fatalf("drive payload path = %v", got)
	}
	anyOf := def.Questions[1].Kind().(*elicit.AnyOfQuestion)
	push := anyOf.Variants[1].Kind.(*elicit.AllOfQuestion)
	want := elicit.Root("features").Child("1").Child("token")
	if got := push.Questions[0].Path(); got != want {
		t.Fatalf("push payload path = %v, want %v", got, want)
	}
}

func TestBuild_RejectsReservedAndBadNames(t *testing.T) {
	cases := []struct {
		name string
		b    *dsl.SurveyBuilder
		frag string
	}{
		{"reserved", dsl.Survey().Field("selected_variant", "?", dsl.Input()), "reserved"},
		{"reservedPlural", dsl.Survey().Field("selected_variants", "?", dsl.Input()), "reserved"},
		{"dotted", dsl.Survey().Field("a.b", "?", dsl.Input()), "must not contain"},
		{"empty", dsl.Survey().Field("", "?", dsl.Input()), "must not be empty"},
		{"duplicate", dsl.Survey().
			Field("x", "?", dsl.Input()).
			Field("x", "?", dsl.Input()), "duplicate"},
		{"reservedNested", dsl.Survey().
			Field("method", "?", dsl.OneOf().
				Variant("V", dsl.Group().
					Field("selected_variant", "?", dsl.Input()))), "reserved"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.b.Build(); err == nil || !strings.Contains(err.Error(), tc.frag) {
				t.Fatalf("expected error containing %q, got %v", tc.frag, err)
			}
		})
	}
}

func TestBuild_RejectsBadBoundsAndDefaults(t *testing.T) {
	if _, err := dsl.Survey().
		Field("age", "?", dsl.Int().Min(10).Max(1)).
		Build(); err == nil {
		t.Fatalf("expected min>max error")
	}
	if _, err := dsl.Survey().
		Field("scores", "?", dsl.Strings().MinElem(1)).
		Build(); err == nil {
		t.Fatalf("expected element-bounds-on-strings error")
	}
	if _, err := dsl.Survey().
		Field("method", "?", dsl.OneOf().Option("A").Default(3)).
		Build(); err == nil {
		t.Fatalf("expected default-out-of-range error")
	}
	if _, err := dsl.Survey().
		Field("features", "?", dsl.AnyOf()).
		Build(); err == nil {
		t.Fatalf("expected empty-choice error")
	}
}

func TestMustBuild_PanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	dsl.Survey().Field("", "?", dsl.Input()).MustBuild()
}

func TestBuild_NestedChoiceUsesPositionalSegment(t *testing.T) {
	def, err := dsl.Survey().
		Field("outer", "?", dsl.OneOf().
			Variant("Inner", dsl.OneOf().
				Variant("Leaf", dsl.Group().
					Field("v", "?", dsl.Input())))).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	outer := def.Questions[0].Kind().(*elicit.OneOfQuestion)
	inner := outer.Variants[0].Kind.(*elicit.OneOfQuestion)
	leaf := inner.Variants[0].Kind.(*elicit.AllOfQuestion)
	want := elicit.Root("outer").Child("0").Child("v")
	if got := leaf.Questions[0].Path(); got != want {
		t.Fatalf("nested payload path = %v, want %v", got, want)
	}
}
