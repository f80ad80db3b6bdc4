package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/enumgen"
	"github.com/syssam/enumgen/compiler/load"
	"github.com/syssam/enumgen/diag"
	"github.com/syssam/enumgen/schema/preset"
	"github.com/syssam/enumgen/schema/property"
)

// parentChildUnit declares the canonical two-sided relation pair: a Parent
// with a OneToMany over Child, and a Child pointing back with a ManyToOne.
func parentChildUnit(t *testing.T) *load.Unit {
	t.Helper()
	parent := mustInterface(t, "Parent",
		property.String("label").Preset(preset.Snake).Descriptor(),
		property.Relation("children", "Child").OneToMany().Optional().Descriptor(),
	)
	child := mustInterface(t, "Child",
		property.Relation("parent", "Parent").ManyToOne().Descriptor(),
	)
	return &load.Unit{
		Interfaces: []*load.Interface{parent, child},
		Enums: []*load.Enum{
			{
				Name:       "ParentEnum",
				Implements: "Parent",
				Relations:  map[string]string{"children": "ChildEnum"},
				Variants:   []*load.Variant{{Name: "First"}, {Name: "Second"}},
			},
			{
				Name:       "ChildEnum",
				Implements: "Child",
				Variants: []*load.Variant{
					{Name: "X", Values: map[string]any{"parent": "ParentEnum::First"}},
					{Name: "Y", Values: map[string]any{"parent": "ParentEnum::Second"}},
					{Name: "Z", Values: map[string]any{"parent": "ParentEnum::First"}},
				},
			},
		},
	}
}

func TestGraphResolveRelationPair(t *testing.T) {
	d := diag.New()
	g := NewGraph(parentChildUnit(t), d)
	require.NoError(t, g.Resolve(d))
	require.False(t, d.HasErrors())
	assert.Len(t, g.Bindings, 2)

	pb, ok := g.Lookup("Parent", "ParentEnum")
	require.True(t, ok)

	// Membership follows the child's inverse relation, in the child's
	// declared order.
	first, _ := pb.Variant("First")
	rv, ok := first.Value("children")
	require.True(t, ok)
	assert.Equal(t, []enumgen.VariantRef{
		{Enum: "ChildEnum", Variant: "X"},
		{Enum: "ChildEnum", Variant: "Z"},
	}, rv.Value.Refs)

	second, _ := pb.Variant("Second")
	rv, _ = second.Value("children")
	assert.Equal(t, []enumgen.VariantRef{{Enum: "ChildEnum", Variant: "Y"}}, rv.Value.Refs)

	cb, ok := g.Lookup("Child", "ChildEnum")
	require.True(t, ok)
	x, _ := cb.Variant("X")
	rv, _ = x.Value("parent")
	assert.Equal(t, enumgen.RefValue(enumgen.VariantRef{Enum: "ParentEnum", Variant: "First"}), rv.Value)
}

func TestGraphResolveIsIdempotent(t *testing.T) {
	unit := parentChildUnit(t)

	d1 := diag.New()
	g1 := NewGraph(unit, d1)
	require.NoError(t, g1.Resolve(d1))

	d2 := diag.New()
	g2 := NewGraph(unit, d2)
	require.NoError(t, g2.Resolve(d2))

	b1, _ := g1.Lookup("Parent", "ParentEnum")
	b2, _ := g2.Lookup("Parent", "ParentEnum")
	require.Len(t, b2.Variants, len(b1.Variants))
	for i, v1 := range b1.Variants {
		v2 := b2.Variants[i]
		assert.Equal(t, v1.Name, v2.Name)
		for _, p := range b1.Schema.Properties {
			rv1, ok1 := v1.Value(p.Name)
			rv2, ok2 := v2.Value(p.Name)
			require.Equal(t, ok1, ok2)
			if ok1 {
				assert.True(t, rv1.Value.Equal(rv2.Value), "property %s on %s", p.Name, v1.Name)
				assert.Equal(t, rv1.Source, rv2.Source)
			}
		}
	}
}

func TestGraphExpandWithoutInverse(t *testing.T) {
	// A target schema with no relation back to the source contributes every
	// variant in declared order.
	parent := mustInterface(t, "Parent",
		property.Relation("children", "Child").OneToMany().Descriptor(),
	)
	child := mustInterface(t, "Child",
		property.String("label").Preset(preset.Snake).Descriptor(),
	)
	unit := &load.Unit{
		Interfaces: []*load.Interface{parent, child},
		Enums: []*load.Enum{
			{
				Name:       "ParentEnum",
				Implements: "Parent",
				Relations:  map[string]string{"children": "ChildEnum"},
				Variants:   []*load.Variant{{Name: "Only"}},
			},
			{
				Name:       "ChildEnum",
				Implements: "Child",
				Variants:   []*load.Variant{{Name: "A"}, {Name: "B"}},
			},
		},
	}

	d := diag.New()
	g := NewGraph(unit, d)
	require.NoError(t, g.Resolve(d))

	pb, _ := g.Lookup("Parent", "ParentEnum")
	only, _ := pb.Variant("Only")
	rv, _ := only.Value("children")
	assert.Equal(t, []enumgen.VariantRef{
		{Enum: "ChildEnum", Variant: "A"},
		{Enum: "ChildEnum", Variant: "B"},
	}, rv.Value.Refs)
}

func TestGraphOneToManyCycle(t *testing.T) {
	// Two OneToMany relations aimed at each other can never expand: each
	// needs the other's completed binding. Both members report unresolved
	// relations instead of looping.
	a := mustInterface(t, "A",
		property.Relation("bees", "B").OneToMany().Descriptor(),
	)
	b := mustInterface(t, "B",
		property.Relation("ayes", "A").OneToMany().Descriptor(),
	)
	unit := &load.Unit{
		Interfaces: []*load.Interface{a, b},
		Enums: []*load.Enum{
			{
				Name:       "AEnum",
				Implements: "A",
				Relations:  map[string]string{"bees": "BEnum"},
				Variants:   []*load.Variant{{Name: "One"}},
			},
			{
				Name:       "BEnum",
				Implements: "B",
				Relations:  map[string]string{"ayes": "AEnum"},
				Variants:   []*load.Variant{{Name: "One"}},
			},
		},
	}

	d := diag.New()
	g := NewGraph(unit, d)
	err := g.Resolve(d)
	require.Error(t, err)
	assert.True(t, enumgen.IsUnresolvedRelation(err))
	assert.Empty(t, g.Bindings)

	// Both cycle members are reported, each once.
	require.Len(t, d.Errors(), 2)
	assert.Equal(t, "AEnum", d.Errors()[0].Coord.Enum)
	assert.Equal(t, "BEnum", d.Errors()[1].Coord.Enum)
}

func TestGraphRequiredEmptyExpansion(t *testing.T) {
	parent := mustInterface(t, "Parent",
		property.Relation("children", "Child").OneToMany().Descriptor(),
	)
	child := mustInterface(t, "Child",
		property.Relation("parent", "Parent").ManyToOne().Descriptor(),
	)
	unit := &load.Unit{
		Interfaces: []*load.Interface{parent, child},
		Enums: []*load.Enum{
			{
				Name:       "ParentEnum",
				Implements: "Parent",
				Relations:  map[string]string{"children": "ChildEnum"},
				Variants:   []*load.Variant{{Name: "Lonely"}, {Name: "Busy"}},
			},
			{
				Name:       "ChildEnum",
				Implements: "Child",
				Variants: []*load.Variant{
					{Name: "X", Values: map[string]any{"parent": "ParentEnum::Busy"}},
				},
			},
		},
	}

	d := diag.New()
	g := NewGraph(unit, d)
	err := g.Resolve(d)
	require.Error(t, err)
	assert.True(t, enumgen.IsMissingValue(err))

	require.Len(t, d.Errors(), 1)
	assert.Equal(t, "Lonely", d.Errors()[0].Coord.Variant)
	assert.Equal(t, "children", d.Errors()[0].Coord.Property)

	// The child side still published; only the parent binding is withheld.
	_, ok := g.Lookup("Child", "ChildEnum")
	assert.True(t, ok)
	_, ok = g.Lookup("Parent", "ParentEnum")
	assert.False(t, ok)
}

func TestNewGraphDeclarationChecks(t *testing.T) {
	column := mustInterface(t, "Column",
		property.String("header").Preset(preset.Title).Descriptor(),
	)

	t.Run("unknown interface", func(t *testing.T) {
		d := diag.New()
		g := NewGraph(&load.Unit{
			Interfaces: []*load.Interface{column},
			Enums:      []*load.Enum{{Name: "E", Implements: "Row", Variants: []*load.Variant{{Name: "A"}}}},
		}, d)
		g.Resolve(d)

		require.True(t, d.HasErrors())
		assert.Contains(t, d.Errors()[0].Err.Error(), `unknown interface "Row"`)
		assert.Empty(t, g.Bindings)
	})

	t.Run("duplicate enum", func(t *testing.T) {
		d := diag.New()
		NewGraph(&load.Unit{
			Interfaces: []*load.Interface{column},
			Enums: []*load.Enum{
				{Name: "E", Implements: "Column", Variants: []*load.Variant{{Name: "A"}}},
				{Name: "E", Implements: "Column", Variants: []*load.Variant{{Name: "A"}}},
			},
		}, d)

		require.True(t, d.HasErrors())
		assert.Contains(t, d.Errors()[0].Err.Error(), `duplicate enum "E"`)
	})

	t.Run("duplicate variant", func(t *testing.T) {
		d := diag.New()
		NewGraph(&load.Unit{
			Interfaces: []*load.Interface{column},
			Enums: []*load.Enum{
				{Name: "E", Implements: "Column", Variants: []*load.Variant{{Name: "A"}, {Name: "A"}}},
			},
		}, d)

		require.True(t, d.HasErrors())
		assert.Contains(t, d.Errors()[0].Err.Error(), `duplicate variant "A"`)
	})

	t.Run("annotation names unknown property", func(t *testing.T) {
		d := diag.New()
		NewGraph(&load.Unit{
			Interfaces: []*load.Interface{column},
			Enums: []*load.Enum{
				{
					Name:       "E",
					Implements: "Column",
					Variants:   []*load.Variant{{Name: "A", Values: map[string]any{"footer": "x"}}},
				},
			},
		}, d)

		require.True(t, d.HasErrors())
		assert.Contains(t, d.Errors()[0].Err.Error(), `unknown property "footer"`)
	})

	t.Run("relations block names non-relation property", func(t *testing.T) {
		d := diag.New()
		NewGraph(&load.Unit{
			Interfaces: []*load.Interface{column},
			Enums: []*load.Enum{
				{
					Name:       "E",
					Implements: "Column",
					Relations:  map[string]string{"header": "X::Y"},
					Variants:   []*load.Variant{{Name: "A"}},
				},
			},
		}, d)

		require.True(t, d.HasErrors())
		assert.Contains(t, d.Errors()[0].Err.Error(), "non-relation property")
	})

	t.Run("enum colliding with interface name", func(t *testing.T) {
		d := diag.New()
		NewGraph(&load.Unit{
			Interfaces: []*load.Interface{column},
			Enums: []*load.Enum{
				{Name: "Column", Implements: "Column", Variants: []*load.Variant{{Name: "A"}}},
			},
		}, d)

		require.True(t, d.HasErrors())
		assert.Contains(t, d.Errors()[0].Err.Error(), "collides with an interface")
	})
}
