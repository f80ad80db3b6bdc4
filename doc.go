// Package enumgen generates interface implementations for closed,
// fixed-variant enumerations from declarative schemas.
//
// An interface declares typed properties (string, numeric, boolean,
// plain-enum reference, or relation); each enumeration implementing the
// interface supplies per-variant values. The compiler resolves every
// property of every variant through an override -> preset -> default
// precedence chain, binds relation targets across independently declared
// enumerations, and emits deterministic Go implementations.
//
// The root package holds the value model and the error taxonomy shared by
// the schema, resolution and generation layers:
//
//   - schema/property: property descriptors, builders and the type registry.
//   - schema/preset: name and ordinal based value presets.
//   - compiler/load: serializable declaration documents (YAML/JSON/msgpack).
//   - compiler/gen: schema model, binding resolver and code generator.
//   - diag: accumulated, coordinate-keyed diagnostics.
package enumgen
