package gen

import (
	"github.com/syssam/enumgen"
	"github.com/syssam/enumgen/compiler/load"
	"github.com/syssam/enumgen/diag"
	"github.com/syssam/enumgen/schema/preset"
	"github.com/syssam/enumgen/schema/property"
)

// Provenance records which rule produced a resolved value.
type Provenance int

// Provenances, in precedence order: an explicit annotation wins over a
// preset, a preset wins over a declared default.
const (
	SourceOverride Provenance = iota
	SourcePreset
	SourceDefault
)

// String returns the provenance name.
func (p Provenance) String() string {
	switch p {
	case SourceOverride:
		return "override"
	case SourcePreset:
		return "preset"
	case SourceDefault:
		return "default"
	}
	return "invalid"
}

// ResolvedValue is one property value on one variant, with its provenance.
type ResolvedValue struct {
	Value  enumgen.Value
	Source Provenance
}

// BoundVariant is one variant with every property resolved. Optional
// properties that resolved to nothing are simply absent.
type BoundVariant struct {
	Name    string
	Ordinal int // position in declared order

	values map[string]*ResolvedValue
}

// Value returns the resolved value of the named property, if present.
func (v *BoundVariant) Value(name string) (*ResolvedValue, bool) {
	rv, ok := v.values[name]
	return rv, ok
}

// Binding is one enumeration fully resolved against its schema: every
// variant, every property, every relation target.
type Binding struct {
	Schema   *Schema
	Enum     *load.Enum
	Variants []*BoundVariant

	variants map[string]*BoundVariant
}

// Variant returns the bound variant with the given name.
func (b *Binding) Variant(name string) (*BoundVariant, bool) {
	v, ok := b.variants[name]
	return v, ok
}

// Lookup reports the completed binding of an enumeration under an interface,
// if one exists.
type Lookup func(iface, enum string) (*Binding, bool)

// Resolve binds one enumeration against its schema. Relation targets are
// resolved strictly through lookup: a target with no completed binding is an
// unresolved relation. Failures accumulate on the collector; a binding with
// any error is withheld and nil is returned alongside the joined error.
func Resolve(s *Schema, e *load.Enum, lookup Lookup, d *diag.Collector) (*Binding, error) {
	if lookup == nil {
		lookup = func(string, string) (*Binding, bool) { return nil, false }
	}
	env := &resolveEnv{
		lookup:    lookup,
		scheduled: func(string, string) bool { return false },
		declared:  func(string) (*load.Enum, bool) { return nil, false },
	}
	scratch := diag.New()
	b, _ := resolve(s, e, env, scratch)
	d.Merge(scratch)
	if scratch.HasErrors() {
		return nil, scratch.Err()
	}
	return b, nil
}

// resolveEnv is the relation context a resolution pass runs in. scheduled
// reports whether a (interface, enum) pair belongs to the unit and is still
// awaiting its binding; declared exposes the raw declarations so single
// target references can be checked before the target's binding completes.
type resolveEnv struct {
	lookup    Lookup
	scheduled func(iface, enum string) bool
	declared  func(enum string) (*load.Enum, bool)
}

// resolve computes a binding. If a OneToMany target's binding is scheduled
// but not yet available the pass defers: it returns (nil, true) and records
// nothing, so a later pass can retry from a clean slate. A completed pass
// merges its records into d and withholds the binding when any of them is an
// error.
func resolve(s *Schema, e *load.Enum, env *resolveEnv, d *diag.Collector) (*Binding, bool) {
	scratch := diag.New()
	b := &Binding{
		Schema:   s,
		Enum:     e,
		variants: make(map[string]*BoundVariant, len(e.Variants)),
	}
	for i, v := range e.Variants {
		bv := &BoundVariant{
			Name:    v.Name,
			Ordinal: i,
			values:  make(map[string]*ResolvedValue),
		}
		for _, p := range s.Properties {
			rv, deferred := resolveProperty(s, e, v, i, p, env, scratch)
			if deferred {
				return nil, true
			}
			if rv != nil {
				bv.values[p.Name] = rv
			}
		}
		b.variants[bv.Name] = bv
		b.Variants = append(b.Variants, bv)
	}
	d.Merge(scratch)
	if scratch.HasErrors() {
		return nil, false
	}
	return b, false
}

// resolveProperty applies the value rules for one property on one variant:
// explicit annotation, then preset, then default, in that order. A required
// property none of them covers is a missing value.
func resolveProperty(s *Schema, e *load.Enum, v *load.Variant, pos int, p *Property, env *resolveEnv, d *diag.Collector) (*ResolvedValue, bool) {
	if p.IsRelation() {
		return resolveRelation(s, e, v, p, env, d)
	}
	coord := diag.Coordinate{Interface: s.Name, Enum: e.Name, Variant: v.Name, Property: p.Name}
	if raw, ok := v.Values[p.Name]; ok {
		val, err := property.Coerce(raw, p.Class, p.Kind)
		if err != nil {
			d.Error(coord, enumgen.NewTypeMismatchError(e.Name, v.Name, p.Name, wantOf(p), raw))
			return nil, false
		}
		return &ResolvedValue{Value: val, Source: SourceOverride}, false
	}
	if p.HasPreset() {
		val, err := presetValue(p, v.Name, pos)
		if err != nil {
			d.Error(coord, err)
			return nil, false
		}
		return &ResolvedValue{Value: val, Source: SourcePreset}, false
	}
	if dv, ok := p.DefaultValue(); ok {
		return &ResolvedValue{Value: dv, Source: SourceDefault}, false
	}
	if p.Required() {
		d.Error(coord, enumgen.NewMissingValueError(e.Name, v.Name, p.Name))
	}
	return nil, false
}

// wantOf names the type an annotation for p must carry, for mismatch reports.
func wantOf(p *Property) string {
	if p.Class == property.ClassNumeric {
		return p.Kind.String()
	}
	return p.Class.String()
}

// presetValue computes the preset-derived value of p for the variant at the
// given declared position.
func presetValue(p *Property, name string, pos int) (enumgen.Value, error) {
	switch p.Class {
	case property.ClassString:
		sp, err := preset.ParseString(p.Preset)
		if err != nil {
			return enumgen.Value{}, enumgen.NewUnsupportedPresetError(p.Name, p.Preset, p.Class.String())
		}
		return enumgen.StringValue(sp.Convert(name)), nil
	case property.ClassNumeric:
		np, err := preset.ParseNumber(p.Preset)
		if err != nil {
			return enumgen.Value{}, enumgen.NewUnsupportedPresetError(p.Name, p.Preset, p.Class.String())
		}
		switch {
		case p.Kind.Float():
			if np == preset.Ordinal {
				return enumgen.FloatValue(float64(pos)), nil
			}
			return enumgen.FloatValue(preset.SerialFloat(pos, p.start.Float, p.increment.Float)), nil
		case p.Kind.Unsigned():
			if np == preset.Ordinal {
				return enumgen.UintValue(uint64(pos)), nil
			}
			return enumgen.UintValue(preset.SerialUint(pos, p.start.Uint, p.increment.Uint)), nil
		default:
			if np == preset.Ordinal {
				return enumgen.IntValue(preset.OrdinalOf(pos)), nil
			}
			return enumgen.IntValue(preset.SerialInt(pos, p.start.Int, p.increment.Int)), nil
		}
	}
	return enumgen.Value{}, enumgen.NewUnsupportedPresetError(p.Name, p.Preset, p.Class.String())
}

// resolveRelation resolves one relation property. The target reference comes
// from the variant's annotation or, failing that, the enumeration-level
// relations block. Single-target natures are checked against the target's
// declaration or binding; OneToMany expands over the target's completed
// binding and defers while that binding is still scheduled.
func resolveRelation(s *Schema, e *load.Enum, v *load.Variant, p *Property, env *resolveEnv, d *diag.Collector) (*ResolvedValue, bool) {
	coord := diag.Coordinate{Interface: s.Name, Enum: e.Name, Variant: v.Name, Property: p.Name}
	var ref enumgen.VariantRef
	if raw, ok := v.Values[p.Name]; ok {
		val, err := property.Coerce(raw, property.ClassRelation, property.KindInvalid)
		if err != nil {
			d.Error(coord, enumgen.NewTypeMismatchError(e.Name, v.Name, p.Name, "variant reference", raw))
			return nil, false
		}
		ref = val.Ref
	} else if target, ok := e.Relations[p.Name]; ok {
		r, err := enumgen.ParseRef(target)
		if err != nil {
			d.Error(coord, enumgen.NewTypeMismatchError(e.Name, v.Name, p.Name, "variant reference", target))
			return nil, false
		}
		ref = r
	} else {
		if p.Required() {
			d.Error(coord, enumgen.NewMissingValueError(e.Name, v.Name, p.Name))
		}
		return nil, false
	}

	if p.Nature == property.O2M {
		return expandToMany(s, e, v, p, ref, env, d)
	}

	if ref.Variant == "" {
		d.Error(coord, enumgen.NewUnresolvedRelationError(e.Name, v.Name, p.Name, ref.String(),
			"reference names no variant"))
		return nil, false
	}
	if tb, ok := env.lookup(p.Target, ref.Enum); ok {
		if _, ok := tb.Variant(ref.Variant); !ok {
			d.Error(coord, enumgen.NewUnresolvedRelationError(e.Name, v.Name, p.Name, ref.String(),
				"target variant does not exist"))
			return nil, false
		}
		return &ResolvedValue{Value: enumgen.RefValue(ref), Source: SourceOverride}, false
	}
	if env.scheduled(p.Target, ref.Enum) {
		// The target binding is still in progress. Its declaration is
		// authoritative for variant existence, so inverse pairs do not
		// deadlock on each other.
		te, _ := env.declared(ref.Enum)
		if _, ok := te.Variant(ref.Variant); !ok {
			d.Error(coord, enumgen.NewUnresolvedRelationError(e.Name, v.Name, p.Name, ref.String(),
				"target variant does not exist"))
			return nil, false
		}
		return &ResolvedValue{Value: enumgen.RefValue(ref), Source: SourceOverride}, false
	}
	d.Error(coord, enumgen.NewUnresolvedRelationError(e.Name, v.Name, p.Name, ref.String(),
		"no enumeration implementing "+p.Target+" binds this target"))
	return nil, false
}

// expandToMany resolves a OneToMany property into the ordered sequence of
// target variants belonging to the source variant. Membership follows the
// target schema's inverse relation back to the source; a target with no
// inverse contributes every variant in declared order.
func expandToMany(s *Schema, e *load.Enum, v *load.Variant, p *Property, ref enumgen.VariantRef, env *resolveEnv, d *diag.Collector) (*ResolvedValue, bool) {
	coord := diag.Coordinate{Interface: s.Name, Enum: e.Name, Variant: v.Name, Property: p.Name}
	if ref.Variant != "" {
		d.Error(coord, enumgen.NewUnresolvedRelationError(e.Name, v.Name, p.Name, ref.String(),
			"OneToMany references an enumeration, not a variant"))
		return nil, false
	}
	tb, ok := env.lookup(p.Target, ref.Enum)
	if !ok {
		if env.scheduled(p.Target, ref.Enum) {
			return nil, true
		}
		d.Error(coord, enumgen.NewUnresolvedRelationError(e.Name, v.Name, p.Name, ref.String(),
			"no enumeration implementing "+p.Target+" binds this target"))
		return nil, false
	}
	inv := tb.Schema.inverse(s.Name)
	self := enumgen.VariantRef{Enum: e.Name, Variant: v.Name}
	var refs []enumgen.VariantRef
	for _, tv := range tb.Variants {
		if inv != nil {
			rv, ok := tv.Value(inv.Name)
			if !ok || rv.Value.Kind != enumgen.KindRef || rv.Value.Ref != self {
				continue
			}
		}
		refs = append(refs, enumgen.VariantRef{Enum: ref.Enum, Variant: tv.Name})
	}
	if len(refs) == 0 && p.Required() {
		d.Error(coord, enumgen.NewMissingValueError(e.Name, v.Name, p.Name))
		return nil, false
	}
	return &ResolvedValue{Value: enumgen.RefListValue(refs), Source: SourceOverride}, false
}
