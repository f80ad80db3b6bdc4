package gen

import (
	"fmt"
	"testing"

	"github.com/syssam/enumgen/compiler/load"
	"github.com/syssam/enumgen/diag"
	"github.com/syssam/enumgen/schema/preset"
	"github.com/syssam/enumgen/schema/property"
)

// benchUnit builds a unit with n variants per enumeration, exercising the
// preset, default and relation paths together.
func benchUnit(b *testing.B, n int) *load.Unit {
	b.Helper()
	parent, err := load.NewInterface("Parent",
		property.String("label").Preset(preset.Snake).Descriptor(),
		property.Int("weight").Serial(1, 100).Descriptor(),
		property.Relation("children", "Child").OneToMany().Optional().Descriptor(),
	)
	if err != nil {
		b.Fatal(err)
	}
	child, err := load.NewInterface("Child",
		property.Relation("parent", "Parent").ManyToOne().Descriptor(),
	)
	if err != nil {
		b.Fatal(err)
	}

	pe := &load.Enum{Name: "ParentEnum", Implements: "Parent", Relations: map[string]string{"children": "ChildEnum"}}
	ce := &load.Enum{Name: "ChildEnum", Implements: "Child"}
	for i := 0; i < n; i++ {
		pe.Variants = append(pe.Variants, &load.Variant{Name: fmt.Sprintf("P%d", i)})
		ce.Variants = append(ce.Variants, &load.Variant{
			Name:   fmt.Sprintf("C%d", i),
			Values: map[string]any{"parent": fmt.Sprintf("ParentEnum::P%d", i)},
		})
	}
	return &load.Unit{
		Interfaces: []*load.Interface{parent, child},
		Enums:      []*load.Enum{pe, ce},
	}
}

func BenchmarkGraphResolve(b *testing.B) {
	for _, n := range []int{10, 100} {
		b.Run(fmt.Sprintf("variants-%d", n), func(b *testing.B) {
			unit := benchUnit(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d := diag.New()
				g := NewGraph(unit, d)
				if err := g.Resolve(d); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEmit(b *testing.B) {
	unit := benchUnit(b, 100)
	d := diag.New()
	g := NewGraph(unit, d)
	if err := g.Resolve(d); err != nil {
		b.Fatal(err)
	}
	gen := NewGenerator(g, "enums")
	bind, _ := g.Lookup("Parent", "ParentEnum")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := fmt.Sprintf("%#v", gen.Emit(bind)); len(got) == 0 {
			b.Fatal("empty output")
		}
	}
}
