package gen

import (
	"fmt"
	"sort"

	"github.com/syssam/enumgen/compiler/load"
	"github.com/syssam/enumgen/diag"
)

// Graph is one generation unit resolved as a whole: every schema, every
// enumeration, and after Resolve every error-free binding.
type Graph struct {
	Schemas  []*Schema
	Enums    []*load.Enum
	Bindings []*Binding

	schemas  map[string]*Schema
	enums    map[string]*load.Enum
	bindings map[bindingKey]*Binding
	state    map[bindingKey]bindingState
}

type bindingKey struct {
	Iface string
	Enum  string
}

type bindingState int

const (
	statePending bindingState = iota
	stateDone
	stateFailed
)

// NewGraph builds the schemas of a unit and indexes its enumerations.
// Declaration-level failures (duplicate names, unknown interfaces, unknown
// properties in annotations) are recorded on the collector; the graph is
// returned regardless so every diagnostic in the unit surfaces in one pass.
func NewGraph(unit *load.Unit, d *diag.Collector) *Graph {
	g := &Graph{
		schemas:  make(map[string]*Schema, len(unit.Interfaces)),
		enums:    make(map[string]*load.Enum, len(unit.Enums)),
		bindings: make(map[bindingKey]*Binding),
		state:    make(map[bindingKey]bindingState),
	}
	for _, decl := range unit.Interfaces {
		coord := diag.Coordinate{Interface: decl.Name}
		if _, ok := g.schemas[decl.Name]; ok {
			d.Error(coord, fmt.Errorf("duplicate interface %q", decl.Name))
			continue
		}
		s := NewSchema(decl, d)
		if s == nil {
			continue
		}
		g.schemas[s.Name] = s
		g.Schemas = append(g.Schemas, s)
	}
	for _, e := range unit.Enums {
		coord := diag.Coordinate{Enum: e.Name}
		if _, ok := g.enums[e.Name]; ok {
			d.Error(coord, fmt.Errorf("duplicate enum %q", e.Name))
			continue
		}
		g.enums[e.Name] = e
		g.Enums = append(g.Enums, e)
		if _, ok := g.schemas[e.Name]; ok {
			// References could not distinguish the two.
			d.Error(coord, fmt.Errorf("enum %q collides with an interface of the same name", e.Name))
			continue
		}
		schema, ok := g.schemas[e.Implements]
		if !ok {
			d.Error(coord, fmt.Errorf("enum %q implements unknown interface %q", e.Name, e.Implements))
			continue
		}
		before := d.ErrorCount()
		g.checkDecl(schema, e, d)
		if d.ErrorCount() == before {
			g.state[bindingKey{Iface: schema.Name, Enum: e.Name}] = statePending
		}
	}
	return g
}

// checkDecl validates the declaration-level shape of one enumeration:
// variant names are unique and every annotation names a schema property.
func (g *Graph) checkDecl(s *Schema, e *load.Enum, d *diag.Collector) {
	seen := make(map[string]bool, len(e.Variants))
	for _, v := range e.Variants {
		coord := diag.Coordinate{Interface: s.Name, Enum: e.Name, Variant: v.Name}
		if seen[v.Name] {
			d.Error(coord, fmt.Errorf("duplicate variant %q", v.Name))
			continue
		}
		seen[v.Name] = true
		for _, name := range sortedKeys(v.Values) {
			if _, ok := s.Property(name); !ok {
				coord.Property = name
				d.Error(coord, fmt.Errorf("annotation names unknown property %q", name))
			}
		}
	}
	for _, name := range sortedKeys(e.Relations) {
		p, ok := s.Property(name)
		coord := diag.Coordinate{Interface: s.Name, Enum: e.Name, Property: name}
		if !ok {
			d.Error(coord, fmt.Errorf("relations block names unknown property %q", name))
			continue
		}
		if !p.IsRelation() {
			d.Error(coord, fmt.Errorf("relations block names non-relation property %q", name))
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Schema returns the schema with the given interface name.
func (g *Graph) Schema(name string) (*Schema, bool) {
	s, ok := g.schemas[name]
	return s, ok
}

// Enum returns the declared enumeration with the given name.
func (g *Graph) Enum(name string) (*load.Enum, bool) {
	e, ok := g.enums[name]
	return e, ok
}

// Lookup returns the completed binding of enum under iface. Only bindings
// that resolved without errors are published.
func (g *Graph) Lookup(iface, enum string) (*Binding, bool) {
	b, ok := g.bindings[bindingKey{Iface: iface, Enum: enum}]
	return b, ok
}

// scheduled reports whether the pair belongs to this unit and its binding is
// still pending.
func (g *Graph) scheduled(iface, enum string) bool {
	st, ok := g.state[bindingKey{Iface: iface, Enum: enum}]
	return ok && st == statePending
}

// Resolve binds every enumeration in the unit. Bindings that only depend on
// completed targets resolve immediately; OneToMany expansions over targets
// still in progress defer and retry once those targets complete. When no
// pass makes progress the remaining enumerations form a dependency cycle and
// resolve once more strictly, reporting their relations as unresolved.
// Resolve returns the collector's joined error for convenience.
func (g *Graph) Resolve(d *diag.Collector) error {
	type task struct {
		s *Schema
		e *load.Enum
	}
	var pending []task
	for _, e := range g.Enums {
		if !g.scheduled(e.Implements, e.Name) {
			continue
		}
		pending = append(pending, task{s: g.schemas[e.Implements], e: e})
	}
	env := &resolveEnv{
		lookup:    g.Lookup,
		scheduled: g.scheduled,
		declared:  g.Enum,
	}
	for len(pending) > 0 {
		progress := false
		var next []task
		for _, t := range pending {
			b, deferred := resolve(t.s, t.e, env, d)
			if deferred {
				next = append(next, t)
				continue
			}
			progress = true
			g.complete(t.s.Name, t.e.Name, b)
		}
		pending = next
		if !progress {
			break
		}
	}
	if len(pending) > 0 {
		// Dependency cycle: resolve strictly so every member reports the
		// relation that could not be satisfied.
		strict := &resolveEnv{
			lookup:    g.Lookup,
			scheduled: func(string, string) bool { return false },
			declared:  g.Enum,
		}
		for _, t := range pending {
			b, _ := resolve(t.s, t.e, strict, d)
			g.complete(t.s.Name, t.e.Name, b)
		}
	}
	return d.Err()
}

func (g *Graph) complete(iface, enum string, b *Binding) {
	key := bindingKey{Iface: iface, Enum: enum}
	if b == nil {
		g.state[key] = stateFailed
		return
	}
	g.state[key] = stateDone
	g.bindings[key] = b
	g.Bindings = append(g.Bindings, b)
}
