package optics

import "github.com/OlehSarnovskyi/lenses-go/functional"

// Optional is a lens whose focus may be absent. GetOption reports the
// absence as functional.None instead of failing.
type Optional[S, A any] struct {
	getOption func(S) functional.Option[A]
	set       func(S, A) S
}

// NewOptional creates an Optional from getOption and set functions.
func NewOptional[S, A any](getOption func(S) functional.Option[A], set func(S, A) S) Optional[S, A] {
	return Optional[S, A]{getOption: getOption, set: set}
}

// GetOption retrieves the focused value if present.
func (o Optional[S, A]) GetOption(source S) functional.Option[A] {
	return o.getOption(source)
}

// Set returns a new structure with the focused value replaced.
func (o Optional[S, A]) Set(source S, value A) S {
	return o.set(source, value)
}

// Modify applies a function to the focused value if present; an absent
// focus leaves the source unchanged.
func (o Optional[S, A]) Modify(source S, fn func(A) A) S {
	opt := o.getOption(source)
	if opt.IsNone() {
		return source
	}
	return o.set(source, fn(opt.Unwrap()))
}

// ModifyOption applies a function that may itself decline; the source is
// returned unchanged when either the focus is absent or fn returns None.
func (o Optional[S, A]) ModifyOption(source S, fn func(A) functional.Option[A]) S {
	opt := o.getOption(source)
	if opt.IsNone() {
		return source
	}
	result := fn(opt.Unwrap())
	if result.IsNone() {
		return source
	}
	return o.set(source, result.Unwrap())
}

// FromLens converts a total Lens into an Optional whose focus is always
// present.
func FromLens[S, A any](l Lens[S, A]) Optional[S, A] {
	return Optional[S, A]{
		getOption: func(s S) functional.Option[A] {
			return functional.Some(l.Get(s))
		},
		set: l.Set,
	}
}

// ComposeOptional chains two optionals; the composed focus is present
// only when both levels are.
func ComposeOptional[S, A, B any](outer Optional[S, A], inner Optional[A, B]) Optional[S, B] {
	return Optional[S, B]{
		getOption: func(s S) functional.Option[B] {
			return functional.FlatMapOption(outer.getOption(s), inner.getOption)
		},
		set: func(s S, b B) S {
			opt := outer.getOption(s)
			if opt.IsNone() {
				return s
			}
			return outer.set(s, inner.set(opt.Unwrap(), b))
		},
	}
}

// ComposeLensOptional chains a lens with an optional.
func ComposeLensOptional[S, A, B any](outer Lens[S, A], inner Optional[A, B]) Optional[S, B] {
	return ComposeOptional(FromLens(outer), inner)
}

// ComposeOptionalLens chains an optional with a lens.
func ComposeOptionalLens[S, A, B any](outer Optional[S, A], inner Lens[A, B]) Optional[S, B] {
	return ComposeOptional(outer, FromLens(inner))
}

// At creates a lens for map access whose focus is the optional presence
// of the key: setting None deletes the key, setting Some binds it.
func At[K comparable, V any](key K) Lens[map[K]V, functional.Option[V]] {
	return Lens[map[K]V, functional.Option[V]]{
		get: func(m map[K]V) functional.Option[V] {
			if v, ok := m[key]; ok {
				return functional.Some(v)
			}
			return functional.None[V]()
		},
		set: func(m map[K]V, opt functional.Option[V]) map[K]V {
			result := make(map[K]V, len(m)+1)
			for k, v := range m {
				result[k] = v
			}
			if opt.IsSome() {
				result[key] = opt.Unwrap()
			} else {
				delete(result, key)
			}
			return result
		},
	}
}

// Index creates an optional for slice access. Get is None out of bounds;
// Set out of bounds returns the source unchanged.
func Index[T any](i int) Optional[[]T, T] {
	return Optional[[]T, T]{
		getOption: func(s []T) functional.Option[T] {
			if i >= 0 && i < len(s) {
				return functional.Some(s[i])
			}
			return functional.None[T]()
		},
		set: func(s []T, v T) []T {
			if i < 0 || i >= len(s) {
				return s
			}
			result := make([]T, len(s))
			copy(result, s)
			result[i] = v
			return result
		},
	}
}
