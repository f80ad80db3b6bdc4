// Package gen turns declared units into generated Go enumerations.
//
// # Pipeline
//
// The compilation pipeline follows this flow:
//
//	Declaration documents (compiler/load)
//	        ↓
//	   Schema (validated property contracts)
//	        ↓
//	   Binding (variants resolved against a schema)
//	        ↓
//	   Graph (unit-wide resolution with relation ordering)
//	        ↓
//	   Generated code (Jennifer)
//
// # Key Types
//
//   - Schema: one interface's validated property contract
//   - Binding: one enumeration with every property resolved per variant
//   - Graph: the unit as a whole; owns cross-enumeration relation resolution
//   - Generator: Jennifer-based emitter with parallel file writes
//
// # Value Resolution
//
// Each property on each variant resolves through three rules in order: an
// explicit annotation wins, then a declared preset, then a declared default.
// A required property none of the rules covers is a missing-value error.
// ResolvedValue carries the winning rule as its Provenance.
//
// # Relations
//
// Single-target relations (OneToOne, ManyToOne) are checked against the
// target's declaration, so mutually referencing enumerations resolve without
// deadlock. OneToMany expands over the target's completed binding and
// defers until it is available; units whose OneToMany dependencies form a
// cycle fail with unresolved-relation diagnostics on every member.
//
// # Diagnostics
//
// Nothing in this package aborts on first failure. Schema building and
// resolution accumulate structured records on a diag.Collector; a binding
// that collected any error is withheld, and hosts gate generation on an
// error-free collector:
//
//	d := diag.New()
//	graph := gen.NewGraph(unit, d)
//	graph.Resolve(d)
//	if d.HasErrors() {
//	    for _, r := range d.Records() {
//	        fmt.Fprintln(os.Stderr, r)
//	    }
//	    return d.Err()
//	}
//	err := gen.NewGenerator(graph, outDir).Generate(ctx)
package gen
