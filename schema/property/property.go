package property

import (
	"fmt"

	"github.com/syssam/enumgen/schema/preset"
)

// Class is the type class of a property. The set is closed: values outside
// it are rejected at schema build, never inferred.
type Class int

// Type classes.
const (
	ClassInvalid Class = iota
	ClassString
	ClassNumeric
	ClassBool
	ClassEnum
	ClassRelation
)

var classNames = [...]string{
	ClassInvalid:  "invalid",
	ClassString:   "string",
	ClassNumeric:  "numeric",
	ClassBool:     "bool",
	ClassEnum:     "enum",
	ClassRelation: "relation",
}

// String returns the class name.
func (c Class) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Valid reports whether the class is a member of the closed set.
func (c Class) Valid() bool {
	return c > ClassInvalid && c <= ClassRelation
}

// ParseClass parses a class name as it appears in declaration documents.
func ParseClass(s string) (Class, error) {
	for c, name := range classNames {
		if Class(c) != ClassInvalid && name == s {
			return Class(c), nil
		}
	}
	return ClassInvalid, fmt.Errorf("unknown property class %q", s)
}

// Kind is the width and signedness of a numeric property.
type Kind int

// Numeric kinds.
const (
	KindInvalid Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// String returns the kind name, which is also its Go type name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether the kind is a supported numeric width.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= KindFloat64
}

// Signed reports whether the kind is a signed integer width.
func (k Kind) Signed() bool {
	return k >= KindInt && k <= KindInt64
}

// Unsigned reports whether the kind is an unsigned integer width.
func (k Kind) Unsigned() bool {
	return k >= KindUint && k <= KindUint64
}

// Float reports whether the kind is a floating-point width.
func (k Kind) Float() bool {
	return k == KindFloat32 || k == KindFloat64
}

// ParseKind parses a numeric kind name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if Kind(k) != KindInvalid && name == s {
			return Kind(k), nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown numeric kind %q", s)
}

// Nature is the direction and cardinality of a relation property.
type Nature int

// Relation natures. O2O and M2O resolve to a single target variant; O2M
// resolves to an ordered sequence of target variants.
const (
	NatureInvalid Nature = iota
	O2O
	O2M
	M2O
)

// String returns the nature name as declared.
func (n Nature) String() string {
	switch n {
	case O2O:
		return "OneToOne"
	case O2M:
		return "OneToMany"
	case M2O:
		return "ManyToOne"
	}
	return fmt.Sprintf("Nature(%d)", int(n))
}

// Valid reports whether the nature is one of the three supported values.
func (n Nature) Valid() bool {
	return n == O2O || n == O2M || n == M2O
}

// ParseNature parses a relation nature name.
func ParseNature(s string) (Nature, error) {
	switch s {
	case "OneToOne":
		return O2O, nil
	case "OneToMany":
		return O2M, nil
	case "ManyToOne":
		return M2O, nil
	}
	return NatureInvalid, fmt.Errorf("unknown relation nature %q", s)
}

// A Descriptor for property declarations. Builders set Err on misuse; the
// registry's Validate reports it before any other check.
type Descriptor struct {
	Name      string // property and generated method name
	Class     Class
	Kind      Kind   // numeric properties only
	Nature    Nature // relation properties only
	Target    string // relation: target interface; enum: enum type name
	Preset    string // preset identifier, string and numeric classes only
	Start     any    // Serial preset start
	Increment any    // Serial preset increment
	Default   any
	Optional  bool
	Err       error
}

// String returns a string property builder.
func String(name string) *stringBuilder {
	return &stringBuilder{desc: &Descriptor{Name: name, Class: ClassString}}
}

// Bool returns a boolean property builder.
func Bool(name string) *boolBuilder {
	return &boolBuilder{desc: &Descriptor{Name: name, Class: ClassBool}}
}

// Int returns a numeric property builder of kind int.
func Int(name string) *numericBuilder { return numeric(name, KindInt) }

// Int8 returns a numeric property builder of kind int8.
func Int8(name string) *numericBuilder { return numeric(name, KindInt8) }

// Int16 returns a numeric property builder of kind int16.
func Int16(name string) *numericBuilder { return numeric(name, KindInt16) }

// Int32 returns a numeric property builder of kind int32.
func Int32(name string) *numericBuilder { return numeric(name, KindInt32) }

// Int64 returns a numeric property builder of kind int64.
func Int64(name string) *numericBuilder { return numeric(name, KindInt64) }

// Uint returns a numeric property builder of kind uint.
func Uint(name string) *numericBuilder { return numeric(name, KindUint) }

// Uint8 returns a numeric property builder of kind uint8.
func Uint8(name string) *numericBuilder { return numeric(name, KindUint8) }

// Uint16 returns a numeric property builder of kind uint16.
func Uint16(name string) *numericBuilder { return numeric(name, KindUint16) }

// Uint32 returns a numeric property builder of kind uint32.
func Uint32(name string) *numericBuilder { return numeric(name, KindUint32) }

// Uint64 returns a numeric property builder of kind uint64.
func Uint64(name string) *numericBuilder { return numeric(name, KindUint64) }

// Float32 returns a numeric property builder of kind float32.
func Float32(name string) *numericBuilder { return numeric(name, KindFloat32) }

// Float64 returns a numeric property builder of kind float64.
func Float64(name string) *numericBuilder { return numeric(name, KindFloat64) }

func numeric(name string, kind Kind) *numericBuilder {
	return &numericBuilder{desc: &Descriptor{Name: name, Class: ClassNumeric, Kind: kind}}
}

// Enum returns a plain-enum reference property builder. Target is the
// generated-language type name of the referenced enum.
func Enum(name, target string) *enumBuilder {
	return &enumBuilder{desc: &Descriptor{Name: name, Class: ClassEnum, Target: target}}
}

// Relation returns a relation property builder. Target is the interface the
// relation points at; a nature must be declared explicitly.
func Relation(name, target string) *relationBuilder {
	return &relationBuilder{desc: &Descriptor{Name: name, Class: ClassRelation, Target: target}}
}

type stringBuilder struct {
	desc *Descriptor
}

// Preset derives the value from the variant's name when no explicit value
// is supplied.
func (b *stringBuilder) Preset(p preset.String) *stringBuilder {
	b.desc.Preset = p.String()
	return b
}

// Default sets the fallback value used when neither an explicit value nor a
// preset produces one.
func (b *stringBuilder) Default(s string) *stringBuilder {
	b.desc.Default = s
	return b
}

// Optional marks the property as not required.
func (b *stringBuilder) Optional() *stringBuilder {
	b.desc.Optional = true
	return b
}

// Descriptor returns the built descriptor.
func (b *stringBuilder) Descriptor() *Descriptor {
	return b.desc
}

type numericBuilder struct {
	desc *Descriptor
}

// Ordinal derives the value from the variant's position in declared order.
func (b *numericBuilder) Ordinal() *numericBuilder {
	b.desc.Preset = preset.Ordinal.String()
	return b
}

// Serial derives the value as start + increment * position.
func (b *numericBuilder) Serial(start, increment any) *numericBuilder {
	b.desc.Preset = preset.Serial.String()
	b.desc.Start = start
	b.desc.Increment = increment
	return b
}

// Default sets the fallback value used when neither an explicit value nor a
// preset produces one.
func (b *numericBuilder) Default(v any) *numericBuilder {
	b.desc.Default = v
	return b
}

// Optional marks the property as not required.
func (b *numericBuilder) Optional() *numericBuilder {
	b.desc.Optional = true
	return b
}

// Descriptor returns the built descriptor.
func (b *numericBuilder) Descriptor() *Descriptor {
	return b.desc
}

type boolBuilder struct {
	desc *Descriptor
}

// Default sets the fallback value.
func (b *boolBuilder) Default(v bool) *boolBuilder {
	b.desc.Default = v
	return b
}

// Optional marks the property as not required.
func (b *boolBuilder) Optional() *boolBuilder {
	b.desc.Optional = true
	return b
}

// Descriptor returns the built descriptor.
func (b *boolBuilder) Descriptor() *Descriptor {
	return b.desc
}

type enumBuilder struct {
	desc *Descriptor
}

// Default sets the fallback member identifier.
func (b *enumBuilder) Default(ident string) *enumBuilder {
	b.desc.Default = ident
	return b
}

// Optional marks the property as not required.
func (b *enumBuilder) Optional() *enumBuilder {
	b.desc.Optional = true
	return b
}

// Descriptor returns the built descriptor.
func (b *enumBuilder) Descriptor() *Descriptor {
	return b.desc
}

type relationBuilder struct {
	desc *Descriptor
}

// OneToOne declares a single-target relation.
func (b *relationBuilder) OneToOne() *relationBuilder {
	return b.nature(O2O)
}

// OneToMany declares an ordered-sequence relation over the target
// enumeration's variants.
func (b *relationBuilder) OneToMany() *relationBuilder {
	return b.nature(O2M)
}

// ManyToOne declares a single-target relation inverse to a OneToMany.
func (b *relationBuilder) ManyToOne() *relationBuilder {
	return b.nature(M2O)
}

func (b *relationBuilder) nature(n Nature) *relationBuilder {
	if b.desc.Nature.Valid() && b.desc.Nature != n {
		b.desc.Err = fmt.Errorf("relation %q declares conflicting natures %s and %s", b.desc.Name, b.desc.Nature, n)
		return b
	}
	b.desc.Nature = n
	return b
}

// Optional marks the property as not required.
func (b *relationBuilder) Optional() *relationBuilder {
	b.desc.Optional = true
	return b
}

// Descriptor returns the built descriptor.
func (b *relationBuilder) Descriptor() *Descriptor {
	return b.desc
}
