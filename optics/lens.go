// Package optics provides generic lens optics for reading and rewriting
// parts of immutable data structures. A lens pairs a getter with a setter;
// the setter never mutates its argument, it returns a new whole that shares
// every untouched part with the original.
//
// Construction is always total: building or composing a lens performs no
// work against data. Failures can only surface when an optic is applied,
// and only for the partial optics in this module's dyn counterpart.
package optics

// Lens focuses on one part of a larger structure.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from get and set functions. The caller is
// responsible for supplying pure functions; no validation is performed.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify applies a function to the focused value, returning a new whole.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.set(source, fn(l.get(source)))
}

// Compose creates a lens focusing deeper: the part focused by outer
// becomes the whole seen by inner. Composition is associative and does
// not touch any data until the composed lens is applied.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// Compose3 chains three lenses.
func Compose3[S, A, B, C any](first Lens[S, A], second Lens[A, B], third Lens[B, C]) Lens[S, C] {
	return Compose(Compose(first, second), third)
}

// Identity creates an identity lens.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}

// First creates a lens for the first element of a pair.
func First[A, B any]() Lens[struct {
	First  A
	Second B
}, A] {
	type Pair = struct {
		First  A
		Second B
	}
	return Lens[Pair, A]{
		get: func(p Pair) A { return p.First },
		set: func(p Pair, a A) Pair { return Pair{First: a, Second: p.Second} },
	}
}

// Second creates a lens for the second element of a pair.
func Second[A, B any]() Lens[struct {
	First  A
	Second B
}, B] {
	type Pair = struct {
		First  A
		Second B
	}
	return Lens[Pair, B]{
		get: func(p Pair) B { return p.Second },
		set: func(p Pair, b B) Pair { return Pair{First: p.First, Second: b} },
	}
}

// MapAt creates a lens for a map value at a specific key. Get returns
// defaultVal when the key is missing; Set shallow-copies the map and
// rebinds the key, creating it if absent.
func MapAt[K comparable, V any](key K, defaultVal V) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		get: func(m map[K]V) V {
			if v, ok := m[key]; ok {
				return v
			}
			return defaultVal
		},
		set: func(m map[K]V, v V) map[K]V {
			result := make(map[K]V, len(m)+1)
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return result
		},
	}
}

// SliceAt creates a lens for a slice element at a specific index. Get
// returns defaultVal when the index is out of bounds. Set on an
// out-of-bounds index returns the source unchanged: the typed core is
// total and cannot fail. Callers who need an explicit out-of-range
// failure should use the dyn package's index optic.
func SliceAt[T any](index int, defaultVal T) Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T {
			if index >= 0 && index < len(s) {
				return s[index]
			}
			return defaultVal
		},
		set: func(s []T, v T) []T {
			if index < 0 || index >= len(s) {
				return s
			}
			result := make([]T, len(s))
			copy(result, s)
			result[index] = v
			return result
		},
	}
}
