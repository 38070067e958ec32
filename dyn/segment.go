package dyn

import (
	"strconv"
	"strings"

	"github.com/OlehSarnovskyi/lenses-go/errors"
)

// Segment is one step in a path through a document tree: either a field
// name into an object or a non-negative ordinal into a sequence.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Field creates a field-name segment.
func Field(name string) Segment {
	return Segment{Key: name}
}

// Element creates an index segment.
func Element(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

// String renders the segment the way Parse reads it.
func (s Segment) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

// Parse splits a dotted path expression into segments. Tokens consisting
// solely of digits become index segments, everything else a field name.
// Empty expressions and empty tokens are rejected with InvalidPath.
func Parse(raw string) ([]Segment, error) {
	if raw == "" {
		return nil, errors.InvalidPath(raw)
	}
	tokens := strings.Split(raw, ".")
	segments := make([]Segment, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			return nil, errors.InvalidPath(raw)
		}
		if i, err := strconv.Atoi(token); err == nil && i >= 0 {
			segments = append(segments, Element(i))
			continue
		}
		segments = append(segments, Field(token))
	}
	return segments, nil
}

// FormatPath renders segments back into a dotted expression.
func FormatPath(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}
