// Package jsondoc applies the same view/set/over surface to raw JSON
// documents without decoding them into Go trees. Reads go through gjson,
// writes through sjson; sjson returns a fresh document, so the input
// bytes are never modified.
package jsondoc

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/OlehSarnovskyi/lenses-go/dyn"
	"github.com/OlehSarnovskyi/lenses-go/errors"
	"github.com/OlehSarnovskyi/lenses-go/functional"
)

// Optic focuses on one location of a JSON document, addressed by a
// gjson/sjson path expression such as "phones.0.number".
type Optic struct {
	path string
}

// New creates a JSON optic for the given path expression.
func New(path string) Optic {
	return Optic{path: path}
}

// FromSegments builds a JSON optic from dyn path segments.
func FromSegments(segments []dyn.Segment) Optic {
	return Optic{path: dyn.FormatPath(segments)}
}

// Path returns the path expression the optic focuses on.
func (o Optic) Path() string {
	return o.path
}

// Get reads the focused value. A missing path is None; a document that
// is not valid JSON fails with TYPE_MISMATCH.
func (o Optic) Get(doc []byte) (functional.Option[any], error) {
	if !gjson.ValidBytes(doc) {
		return functional.None[any](), errors.TypeMismatch("get "+o.path, "json document", string(doc))
	}
	result := gjson.GetBytes(doc, o.path)
	if !result.Exists() {
		return functional.None[any](), nil
	}
	return functional.Some(result.Value()), nil
}

// Set returns a new document with the focus replaced by value. Missing
// intermediate levels are materialized, matching dyn.Path set semantics.
func (o Optic) Set(doc []byte, value any) ([]byte, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.TypeMismatch("set "+o.path, "json document", string(doc))
	}
	updated, err := sjson.SetBytes(doc, o.path, value)
	if err != nil {
		return nil, errors.Wrapf(err, "set %s", o.path)
	}
	return updated, nil
}

// Modify applies fn to the focused value if present; an absent focus
// returns the document unchanged.
func (o Optic) Modify(doc []byte, fn func(any) any) ([]byte, error) {
	opt, err := o.Get(doc)
	if err != nil {
		return nil, err
	}
	if opt.IsNone() {
		return doc, nil
	}
	return o.Set(doc, fn(opt.Unwrap()))
}
