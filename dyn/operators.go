package dyn

import "github.com/OlehSarnovskyi/lenses-go/functional"

// Operator-style application mirroring the optics package, plus curried
// builders for callers who bind an optic (or an optic and a value) once
// and apply it across many documents.

// View reads the focused value from whole.
func View(o Optic, whole any) (functional.Option[any], error) {
	return o.Get(whole)
}

// Set returns a new document with the focus replaced by part.
func Set(o Optic, part, whole any) (any, error) {
	return o.Set(whole, part)
}

// Over transforms the focused value with fn. An absent focus returns the
// document unchanged.
func Over(o Optic, fn func(any) any, whole any) (any, error) {
	return o.Modify(whole, fn)
}

// Viewer binds an optic to View, returning a reusable reader.
func Viewer(o Optic) func(any) (functional.Option[any], error) {
	return func(whole any) (functional.Option[any], error) {
		return o.Get(whole)
	}
}

// Setter binds an optic to Set, currying the replacement value first.
func Setter(o Optic) func(part any) func(whole any) (any, error) {
	return func(part any) func(any) (any, error) {
		return func(whole any) (any, error) {
			return o.Set(whole, part)
		}
	}
}

// Modifier binds an optic to Over, currying the transform first.
func Modifier(o Optic) func(fn func(any) any) func(whole any) (any, error) {
	return func(fn func(any) any) func(any) (any, error) {
		return func(whole any) (any, error) {
			return o.Modify(whole, fn)
		}
	}
}
