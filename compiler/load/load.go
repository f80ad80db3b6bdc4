// Package load defines the serialized declaration documents the compiler
// consumes: interfaces with their property declarations, and enumerations
// with their per-variant annotation maps. Documents are authored in YAML,
// exchanged as JSON, and round-tripped in msgpack so a compiled unit can be
// embedded by an exporting package and rehydrated by an importing one.
//
// The package is a data boundary only: schema validation and binding
// resolution happen in compiler/gen.
package load

import (
	"fmt"
	"os"

	"github.com/syssam/enumgen/schema/property"
)

// Unit is one generation unit: the closed set of interfaces and
// enumerations resolved and generated together.
type Unit struct {
	Interfaces []*Interface `yaml:"interfaces" json:"interfaces" msgpack:"interfaces"`
	Enums      []*Enum      `yaml:"enums" json:"enums" msgpack:"enums"`
}

// Interface is the declaration of one property contract.
type Interface struct {
	Name       string      `yaml:"name" json:"name" msgpack:"name"`
	Properties []*Property `yaml:"properties" json:"properties" msgpack:"properties"`
}

// Property is one declared property in serialized form. Class, kind, nature
// and preset are carried as their declaration-document names and parsed by
// the schema builder.
type Property struct {
	Name      string `yaml:"name" json:"name" msgpack:"name"`
	Class     string `yaml:"class" json:"class" msgpack:"class"`
	Kind      string `yaml:"kind,omitempty" json:"kind,omitempty" msgpack:"kind"`
	Nature    string `yaml:"nature,omitempty" json:"nature,omitempty" msgpack:"nature"`
	Target    string `yaml:"target,omitempty" json:"target,omitempty" msgpack:"target"`
	Preset    string `yaml:"preset,omitempty" json:"preset,omitempty" msgpack:"preset"`
	Start     any    `yaml:"start,omitempty" json:"start,omitempty" msgpack:"start"`
	Increment any    `yaml:"increment,omitempty" json:"increment,omitempty" msgpack:"increment"`
	Default   any    `yaml:"default,omitempty" json:"default,omitempty" msgpack:"default"`
	Optional  bool   `yaml:"optional,omitempty" json:"optional,omitempty" msgpack:"optional"`
}

// Enum is the declaration of one enumeration implementing one interface.
// Relations binds relation properties to their target once for the whole
// enumeration; per-variant annotation values override it.
type Enum struct {
	Name       string            `yaml:"name" json:"name" msgpack:"name"`
	Implements string            `yaml:"implements" json:"implements" msgpack:"implements"`
	Relations  map[string]string `yaml:"relations,omitempty" json:"relations,omitempty" msgpack:"relations"`
	Variants   []*Variant        `yaml:"variants" json:"variants" msgpack:"variants"`
}

// Variant is one enumeration member with its annotation map. Values are
// raw decoded literals keyed by property name; relation targets use
// "Enum::Variant" notation.
type Variant struct {
	Name   string         `yaml:"name" json:"name" msgpack:"name"`
	Values map[string]any `yaml:"values,omitempty" json:"values,omitempty" msgpack:"values"`
}

// Variant returns the declared variant with the given name.
func (e *Enum) Variant(name string) (*Variant, bool) {
	for _, v := range e.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// NewProperty creates a serialized property from a built descriptor.
// It returns an error if the descriptor contains one.
func NewProperty(fd *property.Descriptor) (*Property, error) {
	if fd.Err != nil {
		return nil, fmt.Errorf("property %q: %w", fd.Name, fd.Err)
	}
	if !fd.Class.Valid() {
		return nil, fmt.Errorf("property %q: missing type class", fd.Name)
	}
	p := &Property{
		Name:      fd.Name,
		Class:     fd.Class.String(),
		Target:    fd.Target,
		Preset:    fd.Preset,
		Start:     fd.Start,
		Increment: fd.Increment,
		Default:   fd.Default,
		Optional:  fd.Optional,
	}
	if fd.Kind.Valid() {
		p.Kind = fd.Kind.String()
	}
	if fd.Nature.Valid() {
		p.Nature = fd.Nature.String()
	}
	return p, nil
}

// NewInterface creates an interface declaration from built descriptors.
func NewInterface(name string, descriptors ...*property.Descriptor) (*Interface, error) {
	iface := &Interface{Name: name, Properties: make([]*Property, 0, len(descriptors))}
	for _, fd := range descriptors {
		p, err := NewProperty(fd)
		if err != nil {
			return nil, fmt.Errorf("interface %q: %w", name, err)
		}
		iface.Properties = append(iface.Properties, p)
	}
	return iface, nil
}

// ParseFile reads and parses a YAML declaration document.
func ParseFile(path string) (*Unit, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	u, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}

func (u *Unit) sanity() error {
	for i, iface := range u.Interfaces {
		if iface == nil || iface.Name == "" {
			return fmt.Errorf("interface #%d: missing name", i)
		}
		for j, p := range iface.Properties {
			if p == nil || p.Name == "" {
				return fmt.Errorf("interface %q: property #%d: missing name", iface.Name, j)
			}
		}
	}
	for i, e := range u.Enums {
		if e == nil || e.Name == "" {
			return fmt.Errorf("enum #%d: missing name", i)
		}
		if e.Implements == "" {
			return fmt.Errorf("enum %q: missing implements", e.Name)
		}
		for j, v := range e.Variants {
			if v == nil || v.Name == "" {
				return fmt.Errorf("enum %q: variant #%d: missing name", e.Name, j)
			}
		}
	}
	return nil
}
