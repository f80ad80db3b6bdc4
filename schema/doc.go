// Package schema provides the building blocks for declaring enumeration
// property contracts.
//
// This package is the entry point for schema definition through its
// subpackages:
//
//   - [property]: typed property builders and the setting registry
//   - [preset]: name- and position-derived value presets
//
// # Quick Start
//
// Declare an interface by building property descriptors and handing them to
// the loader:
//
//	iface, err := load.NewInterface("Column",
//	    property.String("header").Preset(preset.Title).Descriptor(),
//	    property.Uint16("width").Default(100).Descriptor(),
//	    property.Int("weight").Serial(1, 100).Descriptor(),
//	    property.Bool("sortable").Optional().Descriptor(),
//	)
//
// # Property Classes
//
// The property package covers five type classes:
//
//	property.String("label")             // string, with case presets
//	property.Int("weight")               // numeric, int through float64
//	property.Bool("sortable")            // bool
//	property.Enum("color", "Color")      // reference to a host enum type
//	property.Relation("parent", "Node")  // cross-enumeration relation
//
// # Presets
//
// String presets derive a value from the variant's name, numeric presets
// from its declared position:
//
//	property.String("slug").Preset(preset.Kebab)  // EchoFoxtrot -> echo-foxtrot
//	property.Int("position").Ordinal()            // 0, 1, 2, ...
//	property.Int("weight").Serial(100, 10)        // 100, 110, 120, ...
//
// # Relations
//
// Relations declare exactly one nature:
//
//	property.Relation("parent", "Parent").ManyToOne()
//	property.Relation("children", "Child").OneToMany()
//
// Every setting a class does not accept is rejected by the registry at
// schema build, never silently ignored.
package schema
