package elicit

// ValueKind tags the payload carried by a Value.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueInt
	ValueFloat
	ValueBool
	ValueChosenVariant
	ValueChosenVariants
	ValueStringList
	ValueIntList
	ValueFloatList
)

// Value is one collected answer. The kind tag determines which accessor
// succeeds; reading through the wrong accessor is a contract violation on the
// producing side, not a user-facing condition.
type Value struct {
	kind    ValueKind
	str     string
	num     int64
	flt     float64
	boolean bool
	set     []int
	strs    []string
	nums    []int64
	flts    []float64
}

// StringValue wraps a text answer (Input, Multiline and Masked questions).
func StringValue(s string) Value { return Value{kind: ValueString, str: s} }

// IntValue wraps an integer answer.
func IntValue(i int64) Value { return Value{kind: ValueInt, num: i} }

// FloatValue wraps a floating-point answer.
func FloatValue(f float64) Value { return Value{kind: ValueFloat, flt: f} }

// BoolValue wraps a confirmation answer.
func BoolValue(b bool) Value { return Value{kind: ValueBool, boolean: b} }

// ChosenVariant wraps the ordinal of the picked variant in a OneOf question.
func ChosenVariant(idx int) Value { return Value{kind: ValueChosenVariant, num: int64(idx)} }

// ChosenVariants wraps the ordinals picked in an AnyOf question.
func ChosenVariants(idxs ...int) Value {
	set := make([]int, len(idxs))
	copy(set, idxs)
	return Value{kind: ValueChosenVariants, set: set}
}

// StringListValue wraps a list-of-strings answer.
func StringListValue(items ...string) Value {
	out := make([]string, len(items))
	copy(out, items)
	return Value{kind: ValueStringList, strs: out}
}

// IntListValue wraps a list-of-integers answer.
func IntListValue(items ...int64) Value {
	out := make([]int64, len(items))
	copy(out, items)
	return Value{kind: ValueIntList, nums: out}
}

// FloatListValue wraps a list-of-floats answer.
func FloatListValue(items ...float64) Value {
	out := make([]float64, len(items))
	copy(out, items)
	return Value{kind: ValueFloatList, flts: out}
}

// Kind returns the tag.
func (v Value) Kind() ValueKind { return v.kind }

// TypeName names the tag for error messages.
func (v Value) TypeName() string {
	switch v.kind {
	case ValueString:
		return "String"
	case ValueInt:
		return "Int"
	case ValueFloat:
		return "Float"
	case ValueBool:
		return "Bool"
	case ValueChosenVariant:
		return "ChosenVariant"
	case ValueChosenVariants:
		return "ChosenVariants"
	case ValueStringList:
		return "StringList"
	case ValueIntList:
		return "IntList"
	case ValueFloatList:
		return "FloatList"
	}
	return "Unknown"
}

// AsString returns the text payload when the tag matches.
func (v Value) AsString() (string, bool) { return v.str, v.kind == ValueString }

// AsInt returns the integer payload when the tag matches.
func (v Value) AsInt() (int64, bool) { return v.num, v.kind == ValueInt }

// AsFloat returns the float payload when the tag matches.
func (v Value) AsFloat() (float64, bool) { return v.flt, v.kind == ValueFloat }

// AsBool returns the boolean payload when the tag matches.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == ValueBool }

// AsChosenVariant returns the picked ordinal when the tag matches.
func (v Value) AsChosenVariant() (int, bool) {
	return int(v.num), v.kind == ValueChosenVariant
}

// AsChosenVariants returns the picked ordinals when the tag matches. The
// returned slice must not be mutated.
func (v Value) AsChosenVariants() ([]int, bool) {
	return v.set, v.kind == ValueChosenVariants
}

// AsStringList returns the string items when the tag matches.
func (v Value) AsStringList() ([]string, bool) { return v.strs, v.kind == ValueStringList }

// AsIntList returns the integer items when the tag matches.
func (v Value) AsIntList() ([]int64, bool) { return v.nums, v.kind == ValueIntList }

// AsFloatList returns the float items when the tag matches.
func (v Value) AsFloatList() ([]float64, bool) { return v.flts, v.kind == ValueFloatList }

// Equal reports deep equality across tags and payloads.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueString:
		return v.str == o.str
	case ValueInt, ValueChosenVariant:
		return v.num == o.num
	case ValueFloat:
		return v.flt == o.flt
	case ValueBool:
		return v.boolean == o.boolean
	case ValueChosenVariants:
		return equalInts(v.set, o.set)
	case ValueStringList:
		if len(v.strs) != len(o.strs) {
			return false
		}
		for i := range v.strs {
			if v.strs[i] != o.strs[i] {
				return false
			}
		}
		return true
	case ValueIntList:
		if len(v.nums) != len(o.nums) {
			return false
		}
		for i := range v.nums {
			if v.nums[i] != o.nums[i] {
				return false
			}
		}
		return true
	case ValueFloatList:
		if len(v.flts) != len(o.flts) {
			return false
		}
		for i := range v.flts {
			if v.flts[i] != o.flts[i] {
				return false
			}
		}
		return true
	}
	return false
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Interface exposes the payload as a plain Go value, mainly for rendering.
func (v Value) Interface() any {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueInt:
		return v.num
	case ValueFloat:
		return v.flt
	case ValueBool:
		return v.boolean
	case ValueChosenVariant:
		return int(v.num)
	case ValueChosenVariants:
		return append([]int(nil), v.set...)
	case ValueStringList:
		return append([]string(nil), v.strs...)
	case ValueIntList:
		return append([]int64(nil), v.nums...)
	case ValueFloatList:
		return append([]float64(nil), v.flts...)
	}
	return nil
}
