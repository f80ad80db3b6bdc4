package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/enumgen/compiler/load"
	"github.com/syssam/enumgen/diag"
	"github.com/syssam/enumgen/schema/preset"
	"github.com/syssam/enumgen/schema/property"
)

func resolvedGraph(t *testing.T, unit *load.Unit) *Graph {
	t.Helper()
	d := diag.New()
	g := NewGraph(unit, d)
	require.NoError(t, g.Resolve(d))
	return g
}

func columnUnit(t *testing.T) *load.Unit {
	t.Helper()
	column := mustInterface(t, "Column",
		property.String("header").Preset(preset.Title).Descriptor(),
		property.Uint16("width").Default(100).Descriptor(),
		property.Int("weight").Serial(1, 100).Descriptor(),
		property.Bool("sortable").Optional().Descriptor(),
	)
	return &load.Unit{
		Interfaces: []*load.Interface{column},
		Enums: []*load.Enum{
			{
				Name:       "ReportColumn",
				Implements: "Column",
				Variants: []*load.Variant{
					{Name: "CreatedAt", Values: map[string]any{"header": "Created", "sortable": true}},
					{Name: "Amount", Values: map[string]any{"width": 80}},
				},
			},
		},
	}
}

func TestEmit(t *testing.T) {
	g := resolvedGraph(t, columnUnit(t))
	gen := NewGenerator(g, "enums")

	b, ok := g.Lookup("Column", "ReportColumn")
	require.True(t, ok)
	src := fmt.Sprintf("%#v", gen.Emit(b))

	assert.Contains(t, src, "Code generated by enumgen. DO NOT EDIT.")
	assert.Contains(t, src, "type ReportColumn int")
	assert.Contains(t, src, "ReportColumnCreatedAt ReportColumn = iota")
	assert.Contains(t, src, "ReportColumnAmount")

	// Override beats preset; preset fills the rest.
	assert.Contains(t, src, `return "Created"`)
	assert.Contains(t, src, `return "Amount"`)

	// Default and serial values per variant.
	assert.Contains(t, src, "func (x ReportColumn) Width() (v uint16)")
	assert.Contains(t, src, "return 100")
	assert.Contains(t, src, "return 80")
	assert.Contains(t, src, "return 1")
	assert.Contains(t, src, "return 101")

	// Optional property without a value falls through to the zero result.
	assert.Contains(t, src, "func (x ReportColumn) Sortable() (v bool)")
	assert.Contains(t, src, "return true")
}

func TestEmitInterfaces(t *testing.T) {
	g := resolvedGraph(t, columnUnit(t))
	src := fmt.Sprintf("%#v", NewGenerator(g, "enums").EmitInterfaces())

	assert.Contains(t, src, "type Column interface")
	assert.Contains(t, src, "Header() string")
	assert.Contains(t, src, "Width() uint16")
	assert.Contains(t, src, "Sortable() bool")
}

func TestEmitRelations(t *testing.T) {
	g := resolvedGraph(t, parentChildUnit(t))
	gen := NewGenerator(g, "enums")

	pb, ok := g.Lookup("Parent", "ParentEnum")
	require.True(t, ok)
	src := fmt.Sprintf("%#v", gen.Emit(pb))

	// OneToMany renders the expanded constant list in target order.
	assert.Contains(t, src, "func (x ParentEnum) Children() (v []Child)")
	assert.Contains(t, src, "[]Child{ChildEnumX, ChildEnumZ}")
	assert.Contains(t, src, "[]Child{ChildEnumY}")

	cb, _ := g.Lookup("Child", "ChildEnum")
	src = fmt.Sprintf("%#v", gen.Emit(cb))
	assert.Contains(t, src, "func (x ChildEnum) Parent() (v Parent)")
	assert.Contains(t, src, "return ParentEnumFirst")
}

func TestEmitIsDeterministic(t *testing.T) {
	unit := columnUnit(t)
	g1 := resolvedGraph(t, unit)
	g2 := resolvedGraph(t, unit)

	b1, _ := g1.Lookup("Column", "ReportColumn")
	b2, _ := g2.Lookup("Column", "ReportColumn")

	gen := NewGenerator(g1, "enums")
	assert.Equal(t,
		fmt.Sprintf("%#v", gen.Emit(b1)),
		fmt.Sprintf("%#v", gen.Emit(b2)),
	)
	assert.Equal(t,
		fmt.Sprintf("%#v", gen.Emit(b1)),
		fmt.Sprintf("%#v", gen.Emit(b1)),
	)
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "enums")

	err := Generate(context.Background(), columnUnit(t), out, "")
	require.NoError(t, err)

	buf, err := os.ReadFile(filepath.Join(out, "report_column.go"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "package enums")
	assert.Contains(t, string(buf), "type ReportColumn int")

	buf, err = os.ReadFile(filepath.Join(out, "interfaces.go"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "type Column interface")
}

func TestGenerateRefusesBrokenUnit(t *testing.T) {
	unit := columnUnit(t)
	unit.Enums[0].Variants = append(unit.Enums[0].Variants, &load.Variant{
		Name:   "Bad",
		Values: map[string]any{"width": "wide"},
	})

	dir := t.TempDir()
	out := filepath.Join(dir, "enums")
	err := Generate(context.Background(), unit, out, "")
	require.Error(t, err)

	// Nothing was written.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGeneratorOptions(t *testing.T) {
	g := resolvedGraph(t, columnUnit(t))
	gen := NewGenerator(g, filepath.Join("out", "mypkg")).WithWorkers(2).WithPackage("enums")

	assert.Equal(t, 2, gen.workers)
	assert.Equal(t, "enums", gen.pkg)

	gen = NewGenerator(g, filepath.Join("out", "mypkg"))
	assert.Equal(t, "mypkg", gen.pkg)

	err := NewGenerator(g, "").Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing output directory")
}
