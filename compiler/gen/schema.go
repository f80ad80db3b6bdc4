package gen

import (
	"fmt"

	"github.com/syssam/enumgen"
	"github.com/syssam/enumgen/compiler/load"
	"github.com/syssam/enumgen/diag"
	"github.com/syssam/enumgen/schema/preset"
	"github.com/syssam/enumgen/schema/property"
)

// Schema is the validated form of one interface declaration: the property
// contract every implementing enumeration is bound against.
type Schema struct {
	Name       string
	Properties []*Property

	props map[string]*Property
}

// Property is one validated property with its parsed class, kind, nature and
// cached coerced settings.
type Property struct {
	Name      string
	Class     property.Class
	Kind      property.Kind   // numeric only
	Nature    property.Nature // relation only
	Target    string          // relation target interface, or enum type name
	Preset    string
	Optional  bool

	defaultValue enumgen.Value // coerced default; zero if none
	start        enumgen.Value // Serial preset, coerced to Kind
	increment    enumgen.Value // Serial preset, coerced to Kind
}

// Required reports whether every variant must resolve a value.
func (p *Property) Required() bool { return !p.Optional }

// HasPreset reports whether the property declares a preset.
func (p *Property) HasPreset() bool { return p.Preset != "" }

// IsRelation reports whether the property is a relation.
func (p *Property) IsRelation() bool { return p.Class == property.ClassRelation }

// DefaultValue returns the coerced declared default, if any.
func (p *Property) DefaultValue() (enumgen.Value, bool) {
	return p.defaultValue, !p.defaultValue.IsZero()
}

// NewSchema validates an interface declaration into a schema. Every failure
// is recorded on the collector; if any property fails, the schema as a whole
// is rejected and nil is returned.
func NewSchema(decl *load.Interface, d *diag.Collector) *Schema {
	before := d.ErrorCount()
	s := &Schema{
		Name:  decl.Name,
		props: make(map[string]*Property, len(decl.Properties)),
	}
	ordinal := ""
	for _, pd := range decl.Properties {
		coord := diag.Coordinate{Interface: decl.Name, Property: pd.Name}
		if _, ok := s.props[pd.Name]; ok {
			d.Error(coord, enumgen.NewDuplicatePropertyError(decl.Name, pd.Name))
			continue
		}
		p, err := newProperty(pd)
		if err != nil {
			d.Error(coord, err)
			continue
		}
		if p.Class == property.ClassNumeric && p.Preset == preset.Ordinal.String() {
			if ordinal != "" {
				d.Error(coord, enumgen.NewSettingError(p.Name, "preset", p.Preset,
					fmt.Sprintf("property %q already provides the Ordinal preset", ordinal)))
				continue
			}
			ordinal = p.Name
		}
		s.props[p.Name] = p
		s.Properties = append(s.Properties, p)
	}
	if d.ErrorCount() > before {
		return nil
	}
	return s
}

// BuildSchema is NewSchema with a private collector, for hosts that want a
// plain error instead of diagnostic records.
func BuildSchema(decl *load.Interface) (*Schema, error) {
	d := diag.New()
	s := NewSchema(decl, d)
	if err := d.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func newProperty(pd *load.Property) (*Property, error) {
	class, err := property.ParseClass(pd.Class)
	if err != nil {
		return nil, enumgen.NewSettingError(pd.Name, "class", pd.Class, err.Error())
	}
	desc := &property.Descriptor{
		Name:      pd.Name,
		Class:     class,
		Target:    pd.Target,
		Preset:    pd.Preset,
		Start:     pd.Start,
		Increment: pd.Increment,
		Default:   pd.Default,
		Optional:  pd.Optional,
	}
	if pd.Kind != "" {
		kind, err := property.ParseKind(pd.Kind)
		if err != nil {
			return nil, enumgen.NewSettingError(pd.Name, "kind", pd.Kind, err.Error())
		}
		desc.Kind = kind
	}
	if pd.Nature != "" {
		nature, err := property.ParseNature(pd.Nature)
		if err != nil {
			return nil, enumgen.NewSettingError(pd.Name, "nature", pd.Nature, err.Error())
		}
		desc.Nature = nature
	}
	if err := property.Validate(desc); err != nil {
		return nil, err
	}
	p := &Property{
		Name:     desc.Name,
		Class:    desc.Class,
		Kind:     desc.Kind,
		Nature:   desc.Nature,
		Target:   desc.Target,
		Preset:   desc.Preset,
		Optional: desc.Optional,
	}
	// Validate proved these coerce; cache the typed forms so resolution
	// never re-parses raw settings.
	if desc.Default != nil {
		p.defaultValue, _ = property.Coerce(desc.Default, desc.Class, desc.Kind)
	}
	if desc.Start != nil {
		p.start, _ = property.Coerce(desc.Start, property.ClassNumeric, desc.Kind)
	}
	if desc.Increment != nil {
		p.increment, _ = property.Coerce(desc.Increment, property.ClassNumeric, desc.Kind)
	}
	return p, nil
}

// Property returns the named property.
func (s *Schema) Property(name string) (*Property, bool) {
	p, ok := s.props[name]
	return p, ok
}

// Relations returns the relation properties in declared order.
func (s *Schema) Relations() []*Property {
	var out []*Property
	for _, p := range s.Properties {
		if p.IsRelation() {
			out = append(out, p)
		}
	}
	return out
}

// inverse returns the first single-target relation property pointing back at
// iface, used to expand OneToMany sequences by membership.
func (s *Schema) inverse(iface string) *Property {
	for _, p := range s.Properties {
		if !p.IsRelation() {
			continue
		}
		if (p.Nature == property.M2O || p.Nature == property.O2O) && p.Target == iface {
			return p
		}
	}
	return nil
}
