// Package lenses is the root of a small optics library for immutable
// data access in Go.
//
// The typed core lives in the optics package: Lens, Optional and Prism
// over concrete Go types, with composition and operator-style
// view/set/over application. The dyn package applies the same model to
// untyped document trees (map[string]any / []any) addressed by field
// names, indexes and dotted paths, reporting absent values as
// functional.Option and shape mismatches as typed errors. The jsondoc
// package offers the same surface over raw JSON text, and cmd/lenses is
// a command-line demonstration over JSON and YAML files.
//
// Every operation is pure: optics hold no state, setters never mutate
// their input, and results share untouched substructure with the
// original value.
package lenses
