package elicit

import "strings"

// pathSep joins segments in the canonical form. Segment names must not contain
// it; the dsl package enforces that when a tree is built.
const pathSep = "."

// Path is the structural address of one response within a survey, an ordered
// sequence of non-empty string segments. Paths are immutable values: Child and
// Join return new paths and never alias the receiver. Two paths are equal iff
// their segment sequences are equal, which is exactly Go == on this type, so a
// Path can key a map directly.
type Path struct {
	raw string
}

// Root returns a single-segment path.
func Root(name string) Path {
	return Path{raw: name}
}

// EmptyPath returns the zero path. It addresses nothing itself; it is the
// starting point for top-level enum surveys and for Join.
func EmptyPath() Path { return Path{} }

// Child appends a segment, returning a new path. Appending the empty string
// returns the receiver unchanged.
func (p Path) Child(name string) Path {
	if name == "" {
		return p
	}
	if p.raw == "" {
		return Path{raw: name}
	}
	return Path{raw: p.raw + pathSep + name}
}

// Join appends every segment of q to p.
func (p Path) Join(q Path) Path {
	if q.raw == "" {
		return p
	}
	if p.raw == "" {
		return q
	}
	return Path{raw: p.raw + pathSep + q.raw}
}

// Segments returns the ordered segment list. The returned slice is freshly
// allocated; mutating it does not affect the path.
func (p Path) Segments() []string {
	if p.raw == "" {
		return nil
	}
	return strings.Split(p.raw, pathSep)
}

// Len reports the number of segments.
func (p Path) Len() int {
	if p.raw == "" {
		return 0
	}
	return strings.Count(p.raw, pathSep) + 1
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool { return p.raw == "" }

// First returns the leading segment, or "" for the empty path.
func (p Path) First() string {
	if i := strings.Index(p.raw, pathSep); i >= 0 {
		return p.raw[:i]
	}
	return p.raw
}

// Last returns the final segment, or "" for the empty path.
func (p Path) Last() string {
	if i := strings.LastIndex(p.raw, pathSep); i >= 0 {
		return p.raw[i+1:]
	}
	return p.raw
}

// Parent returns the path with the final segment removed. The parent of a
// single-segment path is the empty path.
func (p Path) Parent() Path {
	if i := strings.LastIndex(p.raw, pathSep); i >= 0 {
		return Path{raw: p.raw[:i]}
	}
	return Path{}
}

// StripPrefix returns the path with the leading segment removed when that
// segment equals name, and reports whether it matched.
func (p Path) StripPrefix(name string) (Path, bool) {
	if name == "" {
		return p, false
	}
	if p.raw == name {
		return Path{}, true
	}
	if strings.HasPrefix(p.raw, name+pathSep) {
		return Path{raw: p.raw[len(name)+1:]}, true
	}
	return Path{}, false
}

// StripPathPrefix removes every segment of prefix from the front of p, and
// reports whether all of them matched.
func (p Path) StripPathPrefix(prefix Path) (Path, bool) {
	if prefix.raw == "" {
		return p, true
	}
	if p.raw == prefix.raw {
		return Path{}, true
	}
	if strings.HasPrefix(p.raw, prefix.raw+pathSep) {
		return Path{raw: p.raw[len(prefix.raw)+1:]}, true
	}
	return Path{}, false
}

// HasPrefix reports whether prefix names a leading run of p's segments.
func (p Path) HasPrefix(prefix Path) bool {
	_, ok := p.StripPathPrefix(prefix)
	return ok
}

// String renders the dot-joined display form. It exists for diagnostics and
// fixture keys; equality is structural, never textual comparison of this form.
func (p Path) String() string { return p.raw }
