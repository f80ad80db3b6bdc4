package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/enumgen"
	"github.com/syssam/enumgen/compiler/load"
	"github.com/syssam/enumgen/diag"
	"github.com/syssam/enumgen/schema/property"
)

// Generator emits Go source for a resolved graph using Jennifer, which
// tracks imports and formatting itself so no post-processing pass is needed.
// Files are written in parallel with streaming writes; emission is
// deterministic, so regenerating an unchanged unit reproduces every file
// byte for byte.
type Generator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string
}

// NewGenerator creates a generator writing into outDir. The output package
// name defaults to the directory's base name.
func NewGenerator(g *Graph, outDir string) *Generator {
	return &Generator{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		outDir:  outDir,
		pkg:     filepath.Base(outDir),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *Generator) WithPackage(pkg string) *Generator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// Generate writes one file per bound enumeration plus a shared file
// declaring every interface. The caller gates on an error-free collector
// first; generating from a graph with withheld bindings emits only the
// bindings that resolved.
func (g *Generator) Generate(ctx context.Context) error {
	if g.outDir == "" {
		return fmt.Errorf("enumgen: missing output directory")
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return err
	}

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	if len(g.graph.Schemas) > 0 {
		errg.Go(func() error {
			return g.writeFile(g.EmitInterfaces(), "interfaces.go")
		})
	}
	for _, b := range g.graph.Bindings {
		b := b
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return g.writeFile(g.Emit(b), snake(b.Enum.Name)+".go")
			}
		})
	}
	return errg.Wait()
}

// EmitInterfaces renders the shared file declaring one Go interface per
// schema, in declaration order.
func (g *Generator) EmitInterfaces() *jen.File {
	f := g.newFile()
	for _, s := range g.graph.Schemas {
		f.Commentf("%s is the property contract implemented by its enumerations.", s.Name)
		f.Type().Id(s.Name).InterfaceFunc(func(grp *jen.Group) {
			for _, p := range s.Properties {
				grp.Id(pascal(p.Name)).Params().Add(g.returnType(p))
			}
		})
	}
	return f
}

// Emit renders one bound enumeration: the enum type, its variant constants
// in declared order, and one accessor method per schema property.
func (g *Generator) Emit(b *Binding) *jen.File {
	f := g.newFile()
	name := pascal(b.Enum.Name)

	f.Commentf("%s implements %s.", name, b.Schema.Name)
	f.Type().Id(name).Int()

	f.Commentf("%s variants, in declared order.", name)
	f.Const().DefsFunc(func(grp *jen.Group) {
		for i, v := range b.Variants {
			if i == 0 {
				grp.Id(constName(b.Enum.Name, v.Name)).Id(name).Op("=").Iota()
			} else {
				grp.Id(constName(b.Enum.Name, v.Name))
			}
		}
	})

	for _, p := range b.Schema.Properties {
		g.emitAccessor(f, b, name, p)
	}
	return f
}

// emitAccessor renders one property accessor: a switch over the variant
// constants returning each resolved value. Variants without a value fall
// through to the named result's zero value, which is how optional absence
// reads at the call site.
func (g *Generator) emitAccessor(f *jen.File, b *Binding, name string, p *Property) {
	f.Func().
		Params(jen.Id("x").Id(name)).
		Id(pascal(p.Name)).
		Params().
		Params(jen.Id("v").Add(g.returnType(p))).
		Block(
			jen.Switch(jen.Id("x")).BlockFunc(func(grp *jen.Group) {
				for _, v := range b.Variants {
					rv, ok := v.Value(p.Name)
					if !ok {
						continue
					}
					grp.Case(jen.Id(constName(b.Enum.Name, v.Name))).Block(
						jen.Return(g.valueCode(p, rv.Value)),
					)
				}
			}),
			jen.Return(),
		)
}

// returnType renders the Go result type of a property accessor.
func (g *Generator) returnType(p *Property) jen.Code {
	switch p.Class {
	case property.ClassString:
		return jen.String()
	case property.ClassNumeric:
		return jen.Id(p.Kind.String())
	case property.ClassBool:
		return jen.Bool()
	case property.ClassEnum:
		return jen.Id(p.Target)
	case property.ClassRelation:
		if p.Nature == property.O2M {
			return jen.Index().Id(p.Target)
		}
		return jen.Id(p.Target)
	}
	return jen.Id("any")
}

// valueCode renders one resolved value as a Go expression. Numeric literals
// are formatted through strconv so unsigned values stay decimal; Jennifer's
// Lit renders large uints in hex.
func (g *Generator) valueCode(p *Property, v enumgen.Value) jen.Code {
	switch v.Kind {
	case enumgen.KindString:
		return jen.Lit(v.Str)
	case enumgen.KindInt:
		return jen.Id(strconv.FormatInt(v.Int, 10))
	case enumgen.KindUint:
		return jen.Id(strconv.FormatUint(v.Uint, 10))
	case enumgen.KindFloat:
		return jen.Id(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case enumgen.KindBool:
		return jen.Lit(v.Bool)
	case enumgen.KindEnum:
		return jen.Id(v.Str)
	case enumgen.KindRef:
		return jen.Id(constName(v.Ref.Enum, v.Ref.Variant))
	case enumgen.KindRefList:
		return jen.Index().Id(p.Target).ValuesFunc(func(grp *jen.Group) {
			for _, r := range v.Refs {
				grp.Id(constName(r.Enum, r.Variant))
			}
		})
	}
	return jen.Nil()
}

// writeFile renders one Jennifer file into the output directory.
func (g *Generator) writeFile(f *jen.File, filename string) error {
	path := filepath.Join(g.outDir, filename)
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return f.Render(out)
}

// newFile creates a Jennifer file with the standard header comment.
func (g *Generator) newFile() *jen.File {
	f := jen.NewFile(g.pkg)
	f.HeaderComment("Code generated by enumgen. DO NOT EDIT.")
	return f
}

// Generate resolves a unit and writes its generated code in one call. Any
// schema or binding failure aborts before a single file is written.
func Generate(ctx context.Context, unit *load.Unit, outDir, pkg string) error {
	d := diag.New()
	graph := NewGraph(unit, d)
	graph.Resolve(d)
	if err := d.Err(); err != nil {
		return err
	}
	return NewGenerator(graph, outDir).WithPackage(pkg).Generate(ctx)
}

// constName returns the generated constant for one variant.
func constName(enum, variant string) string {
	return pascal(enum) + pascal(variant)
}

func snake(s string) string {
	return inflect.Underscore(s)
}

func pascal(s string) string {
	return inflect.Camelize(inflect.Underscore(s))
}
