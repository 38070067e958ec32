package optics

// Operator-style application functions, plus the curried builders used
// where an operator is partially applied once and reused many times.
// A bound closure holds no mutable state and may be shared freely.

// View reads the focused part of whole.
func View[S, A any](l Lens[S, A], whole S) A {
	return l.Get(whole)
}

// Set returns a new whole with the focused part replaced by value.
// The input whole is never modified.
func Set[S, A any](l Lens[S, A], value A, whole S) S {
	return l.Set(whole, value)
}

// Over transforms the focused part with fn, returning a new whole.
// Equivalent to Set(l, fn(View(l, whole)), whole).
func Over[S, A any](l Lens[S, A], fn func(A) A, whole S) S {
	return l.Modify(whole, fn)
}

// Viewer binds a lens to View, returning a reusable reader.
func Viewer[S, A any](l Lens[S, A]) func(S) A {
	return func(whole S) A {
		return l.Get(whole)
	}
}

// Setter binds a lens to Set. The returned function takes the new part
// and yields a second function awaiting the whole, so a setter for one
// value can be applied to any number of wholes.
func Setter[S, A any](l Lens[S, A]) func(A) func(S) S {
	return func(value A) func(S) S {
		return func(whole S) S {
			return l.Set(whole, value)
		}
	}
}

// Modifier binds a lens to Over, currying the transform first.
func Modifier[S, A any](l Lens[S, A]) func(func(A) A) func(S) S {
	return func(fn func(A) A) func(S) S {
		return func(whole S) S {
			return l.Modify(whole, fn)
		}
	}
}
