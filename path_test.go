package elicit_test

import (
	"testing"

	elicit "github.com/elicit-go/elicit"
)

func TestPathEquality(t *testing.T) {
	a := elicit.Root("a").Child("b")
	b := elicit.Root("a").Child("b")
	if a != b {
		t.Fatalf("structurally equal paths must compare equal")
	}
	if a == elicit.Root("a").Child("c") {
		t.Fatalf("different paths must not compare equal")
	}

	m := map[elicit.Path]int{a: 1}
	if m[b] != 1 {
		t.Fatalf("path must work as a map key by structure")
	}
}

func TestPathSegments(t *testing.T) {
	p := elicit.Root("address").Child("street")
	segs := p.Segments()
	if len(segs) != 2 || segs[0] != "address" || segs[1] != "street" {
		t.Fatalf("segments = %v", segs)
	}
	segs[0] = "mutated"
	if p.First() != "address" {
		t.Fatalf("Segments must return a copy")
	}
	if p.Len() != 2 || p.IsEmpty() {
		t.Fatalf("len = %d", p.Len())
	}
	if p.Last() != "street" || p.Parent() != elicit.Root("address") {
		t.Fatalf("last/parent wrong")
	}
	if elicit.Root("a").Parent() != elicit.EmptyPath() {
		t.Fatalf("parent of a root is the empty path")
	}
}

func TestPathJoin(t *testing.T) {
	p := elicit.Root("a").Join(elicit.Root("b").Child("c"))
	if p != elicit.Root("a").Child("b").Child("c") {
		t.Fatalf("join = %v", p)
	}
	if elicit.EmptyPath().Join(p) != p || p.Join(elicit.EmptyPath()) != p {
		t.Fatalf("empty path must be the join identity")
	}
}

func TestPathStripPrefix(t *testing.T) {
	p := elicit.Root("x").Child("y")

	rest, ok := p.StripPrefix("x")
	if !ok || rest != elicit.Root("y") {
		t.Fatalf("StripPrefix = %v, %v", rest, ok)
	}
	if _, ok := p.StripPrefix("y"); ok {
		t.Fatalf("non-leading segment must not strip")
	}

	rest, ok = p.StripPathPrefix(elicit.Root("x").Child("y"))
	if !ok || !rest.IsEmpty() {
		t.Fatalf("full-prefix strip = %v, %v", rest, ok)
	}
	if _, ok := p.StripPathPrefix(elicit.Root("x").Child("z")); ok {
		t.Fatalf("mismatched prefix must not strip")
	}
	if !p.HasPrefix(elicit.Root("x")) {
		t.Fatalf("HasPrefix failed")
	}
}

func TestPathStripPrefixIsSegmentwise(t *testing.T) {
	// "ab" is not a prefix of "abc" at the segment level.
	p := elicit.Root("abc").Child("d")
	if _, ok := p.StripPrefix("ab"); ok {
		t.Fatalf("partial segment must not match")
	}
	if _, ok := p.StripPathPrefix(elicit.Root("ab")); ok {
		t.Fatalf("partial segment must not match")
	}
}

func TestPathString(t *testing.T) {
	if got := elicit.Root("a").Child("b").String(); got != "a.b" {
		t.Fatalf("String = %q", got)
	}
	if got := elicit.EmptyPath().String(); got != "" {
		t.Fatalf("empty String = %q", got)
	}
}
