package optics

import (
	"strconv"

	"github.com/OlehSarnovskyi/lenses-go/functional"
)

// Prism is the sum-type counterpart of Lens: it focuses on one variant
// of the source, which may not be the variant currently held.
type Prism[S, A any] struct {
	getOption  func(S) functional.Option[A]
	reverseGet func(A) S
}

// NewPrism creates a prism from getOption and reverseGet functions.
func NewPrism[S, A any](getOption func(S) functional.Option[A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{getOption: getOption, reverseGet: reverseGet}
}

// GetOption attempts to extract the focused variant.
func (p Prism[S, A]) GetOption(source S) functional.Option[A] {
	return p.getOption(source)
}

// ReverseGet constructs the source from the focused variant.
func (p Prism[S, A]) ReverseGet(value A) S {
	return p.reverseGet(value)
}

// Modify applies a function to the focused variant if present.
func (p Prism[S, A]) Modify(source S, fn func(A) A) S {
	opt := p.getOption(source)
	if opt.IsNone() {
		return source
	}
	return p.reverseGet(fn(opt.Unwrap()))
}

// Set replaces the focused variant if the prism matches.
func (p Prism[S, A]) Set(source S, value A) S {
	if p.getOption(source).IsNone() {
		return source
	}
	return p.reverseGet(value)
}

// ComposePrism creates a prism focusing deeper.
func ComposePrism[S, A, B any](outer Prism[S, A], inner Prism[A, B]) Prism[S, B] {
	return Prism[S, B]{
		getOption: func(s S) functional.Option[B] {
			return functional.FlatMapOption(outer.getOption(s), inner.getOption)
		},
		reverseGet: func(b B) S {
			return outer.reverseGet(inner.reverseGet(b))
		},
	}
}

// SomePrism focuses on the Some case of an Option.
func SomePrism[T any]() Prism[functional.Option[T], T] {
	return Prism[functional.Option[T], T]{
		getOption: func(o functional.Option[T]) functional.Option[T] {
			return o
		},
		reverseGet: func(t T) functional.Option[T] {
			return functional.Some(t)
		},
	}
}

// StringToInt matches strings that parse as integers.
func StringToInt() Prism[string, int] {
	return Prism[string, int]{
		getOption: func(s string) functional.Option[int] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return functional.None[int]()
			}
			return functional.Some(n)
		},
		reverseGet: strconv.Itoa,
	}
}
