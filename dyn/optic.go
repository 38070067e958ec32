// Package dyn provides optics over untyped document trees: objects are
// map[string]any, sequences are []any, exactly what encoding/json and
// yaml.v3 decode into. Unlike the typed core in the optics package these
// optics are partial: a missing key or index is reported as
// functional.None, and applying an optic to a value of the wrong
// container kind fails with a TYPE_MISMATCH error.
//
// Every set is copy-on-write. The containers on the focused path are
// shallow-copied; all other substructure is shared with the input, which
// is never modified.
package dyn

import (
	"github.com/OlehSarnovskyi/lenses-go/errors"
	"github.com/OlehSarnovskyi/lenses-go/functional"
)

// Optic pairs a getter with a setter over document trees. An Optic is a
// pure value: it holds no state, costs nothing to build, and may be
// shared and reused freely.
type Optic struct {
	get func(whole any) (functional.Option[any], error)
	set func(whole, part any) (any, error)
}

// New creates an optic from raw get and set functions. No validation is
// performed; the caller supplies pure functions.
func New(get func(any) (functional.Option[any], error), set func(whole, part any) (any, error)) Optic {
	return Optic{get: get, set: set}
}

// Get retrieves the focused value. An absent focus is None, not an
// error; errors report shape mismatches only.
func (o Optic) Get(whole any) (functional.Option[any], error) {
	return o.get(whole)
}

// Set returns a new document with the focused value replaced. The input
// document is never modified.
func (o Optic) Set(whole, part any) (any, error) {
	return o.set(whole, part)
}

// Modify applies fn to the focused value if present; an absent focus
// returns the document unchanged.
func (o Optic) Modify(whole any, fn func(any) any) (any, error) {
	opt, err := o.get(whole)
	if err != nil {
		return nil, err
	}
	if opt.IsNone() {
		return whole, nil
	}
	return o.set(whole, fn(opt.Unwrap()))
}

// Prop creates an optic focusing on a field of an object. Get returns
// None when the field is missing or the whole is nil. Set shallow-copies
// the object and binds the field, creating it if absent; a nil whole
// materializes a fresh object.
func Prop(name string) Optic {
	return Optic{
		get: func(whole any) (functional.Option[any], error) {
			if whole == nil {
				return functional.None[any](), nil
			}
			obj, ok := whole.(map[string]any)
			if !ok {
				return functional.None[any](), errors.TypeMismatch("prop "+name, "object", whole)
			}
			if v, present := obj[name]; present {
				return functional.Some(v), nil
			}
			return functional.None[any](), nil
		},
		set: func(whole, part any) (any, error) {
			if whole == nil {
				return map[string]any{name: part}, nil
			}
			obj, ok := whole.(map[string]any)
			if !ok {
				return nil, errors.TypeMismatch("prop "+name, "object", whole)
			}
			result := make(map[string]any, len(obj)+1)
			for k, v := range obj {
				result[k] = v
			}
			result[name] = part
			return result, nil
		},
	}
}

// Index creates an optic focusing on position i of a sequence. Get
// returns None when the index is out of bounds or the whole is nil.
//
// Set policy: replacing within an existing sequence copies it with the
// one element swapped; an index at or past the end of an existing
// sequence fails with INDEX_OUT_OF_RANGE rather than padding. A nil
// whole materializes a fresh sequence of length i+1 with nil filler, so
// paths can build documents from nothing. Negative indexes always fail.
func Index(i int) Optic {
	return Optic{
		get: func(whole any) (functional.Option[any], error) {
			if whole == nil {
				return functional.None[any](), nil
			}
			seq, ok := whole.([]any)
			if !ok {
				return functional.None[any](), errors.TypeMismatch("index", "sequence", whole)
			}
			if i < 0 || i >= len(seq) {
				return functional.None[any](), nil
			}
			return functional.Some(seq[i]), nil
		},
		set: func(whole, part any) (any, error) {
			if i < 0 {
				return nil, errors.IndexOutOfRange(i, 0)
			}
			if whole == nil {
				result := make([]any, i+1)
				result[i] = part
				return result, nil
			}
			seq, ok := whole.([]any)
			if !ok {
				return nil, errors.TypeMismatch("index", "sequence", whole)
			}
			if i >= len(seq) {
				return nil, errors.IndexOutOfRange(i, len(seq))
			}
			result := make([]any, len(seq))
			copy(result, seq)
			result[i] = part
			return result, nil
		},
	}
}

// ForSegment creates the optic for a single path segment.
func ForSegment(s Segment) Optic {
	if s.IsIndex {
		return Index(s.Index)
	}
	return Prop(s.Key)
}

// Path creates an optic focusing along segments, outermost first.
// Equivalent to composing one Prop or Index optic per segment. Get
// short-circuits to None when any intermediate level is absent; Set
// materializes absent intermediate containers according to the segment
// that addresses them.
func Path(segments ...Segment) Optic {
	optics := make([]Optic, len(segments))
	for i, s := range segments {
		optics[i] = ForSegment(s)
	}
	return Compose(optics...)
}

// ParsePath is Path over a dotted expression parsed with Parse.
func ParsePath(raw string) (Optic, error) {
	segments, err := Parse(raw)
	if err != nil {
		return Optic{}, err
	}
	return Path(segments...), nil
}

// Identity creates the optic focusing on the whole document itself.
func Identity() Optic {
	return Optic{
		get: func(whole any) (functional.Option[any], error) {
			return functional.Some(whole), nil
		},
		set: func(_, part any) (any, error) {
			return part, nil
		},
	}
}

// Compose chains optics outermost first: the part focused by each optic
// becomes the whole seen by the next. Composition is associative and
// evaluates nothing until the composed optic is applied. With no
// arguments it returns Identity.
func Compose(optics ...Optic) Optic {
	composed := Identity()
	for _, o := range optics {
		composed = compose2(composed, o)
	}
	return composed
}

func compose2(outer, inner Optic) Optic {
	return Optic{
		get: func(whole any) (functional.Option[any], error) {
			opt, err := outer.get(whole)
			if err != nil {
				return functional.None[any](), err
			}
			if opt.IsNone() {
				return functional.None[any](), nil
			}
			return inner.get(opt.Unwrap())
		},
		set: func(whole, part any) (any, error) {
			opt, err := outer.get(whole)
			if err != nil {
				return nil, err
			}
			// An absent intermediate is handed to the inner optic as
			// nil, which its setter may materialize.
			var outerPart any
			if opt.IsSome() {
				outerPart = opt.Unwrap()
			}
			newPart, err := inner.set(outerPart, part)
			if err != nil {
				return nil, err
			}
			return outer.set(whole, newPart)
		},
	}
}
