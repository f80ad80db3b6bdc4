package enumgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the runtime kind of a Value.
type Kind int

// Value kinds. Numeric values are split by representation so that signed,
// unsigned and floating-point domains keep their full range.
const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindEnum
	KindRef
	KindRefList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindRef:
		return "ref"
	case KindRefList:
		return "reflist"
	}
	return "invalid"
}

// VariantRef identifies one variant of one enumeration. An empty Variant
// refers to the enumeration as a whole, which is how a OneToMany annotation
// names its target before expansion.
type VariantRef struct {
	Enum    string `json:"enum" yaml:"enum" msgpack:"enum"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty" msgpack:"variant"`
}

// ParseRef parses "Enum" or "Enum::Variant" reference notation.
func ParseRef(s string) (VariantRef, error) {
	enum, variant, found := strings.Cut(s, "::")
	if enum == "" || (found && variant == "") {
		return VariantRef{}, fmt.Errorf("malformed variant reference %q", s)
	}
	return VariantRef{Enum: enum, Variant: variant}, nil
}

// String returns the reference in "Enum::Variant" notation.
func (r VariantRef) String() string {
	if r.Variant == "" {
		return r.Enum
	}
	return r.Enum + "::" + r.Variant
}

// IsZero reports whether the reference is empty.
func (r VariantRef) IsZero() bool {
	return r.Enum == "" && r.Variant == ""
}

// Value is the tagged union carried by variant annotations and resolved
// bindings: a literal string, integer, unsigned integer, float or bool, a
// plain-enum identifier, a single variant reference, or an ordered reference
// sequence. The zero Value has KindInvalid and means "absent".
type Value struct {
	Kind  Kind         `json:"kind" yaml:"kind" msgpack:"kind"`
	Str   string       `json:"str,omitempty" yaml:"str,omitempty" msgpack:"str"`
	Int   int64        `json:"int,omitempty" yaml:"int,omitempty" msgpack:"int"`
	Uint  uint64       `json:"uint,omitempty" yaml:"uint,omitempty" msgpack:"uint"`
	Float float64      `json:"float,omitempty" yaml:"float,omitempty" msgpack:"float"`
	Bool  bool         `json:"bool,omitempty" yaml:"bool,omitempty" msgpack:"bool"`
	Ref   VariantRef   `json:"ref,omitempty" yaml:"ref,omitempty" msgpack:"ref"`
	Refs  []VariantRef `json:"refs,omitempty" yaml:"refs,omitempty" msgpack:"refs"`
}

// StringValue returns a literal string Value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IntValue returns a signed integer Value.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// UintValue returns an unsigned integer Value.
func UintValue(u uint64) Value { return Value{Kind: KindUint, Uint: u} }

// FloatValue returns a floating-point Value.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// EnumValue returns a plain-enum identifier Value. The identifier is the
// target-language expression naming the enum member (e.g. "ColorRed").
func EnumValue(ident string) Value { return Value{Kind: KindEnum, Str: ident} }

// RefValue returns a single variant-reference Value.
func RefValue(r VariantRef) Value { return Value{Kind: KindRef, Ref: r} }

// RefListValue returns an ordered variant-reference sequence Value.
func RefListValue(refs []VariantRef) Value { return Value{Kind: KindRefList, Refs: refs} }

// IsZero reports whether the value is absent.
func (v Value) IsZero() bool { return v.Kind == KindInvalid }

// Equal reports whether two values are identical in kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString, KindEnum:
		return v.Str == o.Str
	case KindInt:
		return v.Int == o.Int
	case KindUint:
		return v.Uint == o.Uint
	case KindFloat:
		return v.Float == o.Float
	case KindBool:
		return v.Bool == o.Bool
	case KindRef:
		return v.Ref == o.Ref
	case KindRefList:
		if len(v.Refs) != len(o.Refs) {
			return false
		}
		for i := range v.Refs {
			if v.Refs[i] != o.Refs[i] {
				return false
			}
		}
		return true
	}
	return true
}

// String returns a human-readable form used in diagnostics.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return strconv.Quote(v.Str)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindUint:
		return strconv.FormatUint(v.Uint, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindEnum:
		return v.Str
	case KindRef:
		return v.Ref.String()
	case KindRefList:
		parts := make([]string, len(v.Refs))
		for i, r := range v.Refs {
			parts[i] = r.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "<absent>"
}
