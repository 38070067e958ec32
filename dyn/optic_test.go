package dyn

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OlehSarnovskyi/lenses-go/errors"
)

// deepClone copies a document tree so mutations of the original would be
// observable against the clone.
func deepClone(v any) any {
	switch node := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(node))
		for k, child := range node {
			result[k] = deepClone(child)
		}
		return result
	case []any:
		result := make([]any, len(node))
		for i, child := range node {
			result[i] = deepClone(child)
		}
		return result
	default:
		return v
	}
}

func contactDoc() map[string]any {
	return map[string]any{
		"name": map[string]any{
			"first": "John",
			"last":  "Doe",
		},
		"phones": []any{
			map[string]any{"number": "111"},
			map[string]any{"number": "222"},
		},
	}
}

func TestPropOptic(t *testing.T) {
	first := Compose(Prop("name"), Prop("first"))

	t.Run("set replaces exactly the focus", func(t *testing.T) {
		doc := contactDoc()
		before := deepClone(doc)

		updated, err := first.Set(doc, "Jane")
		require.NoError(t, err)

		got := updated.(map[string]any)
		assert.Equal(t, "Jane", got["name"].(map[string]any)["first"])
		assert.Equal(t, "Doe", got["name"].(map[string]any)["last"])
		assert.Equal(t, before, doc, "original document must be unchanged")
	})

	t.Run("untouched siblings are shared, not copied", func(t *testing.T) {
		doc := contactDoc()
		updated, err := first.Set(doc, "Jane")
		require.NoError(t, err)

		got := updated.(map[string]any)
		assert.True(t, reflect.ValueOf(got["phones"]).Pointer() == reflect.ValueOf(doc["phones"]).Pointer(),
			"sibling subtree should be structurally shared")
	})

	t.Run("get of a missing key is None", func(t *testing.T) {
		opt, err := Prop("missing").Get(contactDoc())
		require.NoError(t, err)
		assert.True(t, opt.IsNone())
	})

	t.Run("get on a non-object is a type mismatch", func(t *testing.T) {
		_, err := Prop("x").Get("not an object")
		require.Error(t, err)
		assert.True(t, errors.IsTypeMismatch(err))
	})

	t.Run("set on a non-object is a type mismatch", func(t *testing.T) {
		_, err := Prop("x").Set([]any{}, 1)
		require.Error(t, err)
		assert.True(t, errors.IsTypeMismatch(err))
	})

	t.Run("set creates a missing key", func(t *testing.T) {
		updated, err := Prop("age").Set(map[string]any{"name": "John"}, 33)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "John", "age": 33}, updated)
	})

	t.Run("set on nil materializes an object", func(t *testing.T) {
		updated, err := Prop("a").Set(nil, 1)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1}, updated)
	})
}

func TestIndexOptic(t *testing.T) {
	seq := []any{
		map[string]any{"n": "a"},
		map[string]any{"n": "b"},
	}

	t.Run("set replaces one element", func(t *testing.T) {
		before := deepClone(seq)
		updated, err := Index(0).Set(seq, map[string]any{"n": "x"})
		require.NoError(t, err)
		assert.Equal(t, []any{
			map[string]any{"n": "x"},
			map[string]any{"n": "b"},
		}, updated)
		assert.Equal(t, before, any(seq), "original sequence must be unchanged")
	})

	t.Run("get out of bounds is None", func(t *testing.T) {
		opt, err := Index(5).Get(seq)
		require.NoError(t, err)
		assert.True(t, opt.IsNone())
		opt, err = Index(-1).Get(seq)
		require.NoError(t, err)
		assert.True(t, opt.IsNone())
	})

	t.Run("set past the end of an existing sequence fails", func(t *testing.T) {
		_, err := Index(2).Set(seq, "x")
		require.Error(t, err)
		assert.True(t, errors.IsIndexOutOfRange(err))
	})

	t.Run("negative set always fails", func(t *testing.T) {
		_, err := Index(-1).Set(seq, "x")
		require.Error(t, err)
		assert.True(t, errors.IsIndexOutOfRange(err))
	})

	t.Run("set on nil materializes a padded sequence", func(t *testing.T) {
		updated, err := Index(2).Set(nil, "x")
		require.NoError(t, err)
		assert.Equal(t, []any{nil, nil, "x"}, updated)
	})

	t.Run("non-sequence is a type mismatch", func(t *testing.T) {
		_, err := Index(0).Get(map[string]any{})
		require.Error(t, err)
		assert.True(t, errors.IsTypeMismatch(err))
		_, err = Index(0).Set("str", 1)
		require.Error(t, err)
		assert.True(t, errors.IsTypeMismatch(err))
	})
}

func TestPathOptic(t *testing.T) {
	number := Path(Field("phones"), Element(0), Field("number"))

	t.Run("deep set copies only the focused path", func(t *testing.T) {
		doc := contactDoc()
		before := deepClone(doc)

		updated, err := number.Set(doc, "333")
		require.NoError(t, err)

		got := updated.(map[string]any)
		phones := got["phones"].([]any)
		assert.Equal(t, "333", phones[0].(map[string]any)["number"])
		assert.Equal(t, "222", phones[1].(map[string]any)["number"])
		assert.Equal(t, before, doc, "original document must be unchanged")

		// The second phone entry is shared with the original.
		assert.True(t, reflect.ValueOf(phones[1]).Pointer() == reflect.ValueOf(doc["phones"].([]any)[1]).Pointer())
	})

	t.Run("view of an absent path is None, not a failure", func(t *testing.T) {
		opt, err := Path(Field("a"), Field("b")).Get(map[string]any{"a": map[string]any{}})
		require.NoError(t, err)
		assert.True(t, opt.IsNone())
	})

	t.Run("view short-circuits through missing intermediates", func(t *testing.T) {
		opt, err := Path(Field("a"), Field("b"), Element(3), Field("c")).Get(map[string]any{})
		require.NoError(t, err)
		assert.True(t, opt.IsNone())
	})

	t.Run("set materializes missing intermediate objects", func(t *testing.T) {
		updated, err := Path(Field("a"), Field("b")).Set(map[string]any{}, 1)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, updated)
	})

	t.Run("set materializes missing intermediate sequences", func(t *testing.T) {
		updated, err := Path(Field("xs"), Element(1), Field("n")).Set(map[string]any{}, "v")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"xs": []any{nil, map[string]any{"n": "v"}},
		}, updated)
	})

	t.Run("type mismatch deep in the path surfaces", func(t *testing.T) {
		doc := map[string]any{"a": "scalar"}
		_, err := Path(Field("a"), Field("b")).Get(doc)
		require.Error(t, err)
		assert.True(t, errors.IsTypeMismatch(err))
	})

	t.Run("ParsePath wires parsing and focusing together", func(t *testing.T) {
		optic, err := ParsePath("phones.1.number")
		require.NoError(t, err)
		opt, err := optic.Get(contactDoc())
		require.NoError(t, err)
		assert.Equal(t, "222", opt.Unwrap())
	})

	t.Run("Modify leaves an absent focus untouched", func(t *testing.T) {
		doc := contactDoc()
		updated, err := Path(Field("nope")).Modify(doc, func(any) any { return "x" })
		require.NoError(t, err)
		assert.Equal(t, any(doc), updated)
	})
}

func TestComposeIdentityAndAssociativity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	docGen := gen.AnyString().Map(func(s string) map[string]any {
		return map[string]any{
			"a": map[string]any{"b": []any{map[string]any{"c": s}}},
		}
	})

	a, b, c := Prop("a"), Prop("b"), Compose(Index(0), Prop("c"))

	properties.Property("(a∘b)∘c == a∘(b∘c) under view", prop.ForAll(
		func(doc map[string]any) bool {
			left, errL := Compose(Compose(a, b), c).Get(doc)
			right, errR := Compose(a, Compose(b, c)).Get(doc)
			if errL != nil || errR != nil {
				return false
			}
			return reflect.DeepEqual(left, right)
		},
		docGen,
	))

	properties.Property("(a∘b)∘c == a∘(b∘c) under set", prop.ForAll(
		func(doc map[string]any, v string) bool {
			left, errL := Compose(Compose(a, b), c).Set(doc, v)
			right, errR := Compose(a, Compose(b, c)).Set(doc, v)
			if errL != nil || errR != nil {
				return false
			}
			return reflect.DeepEqual(left, right)
		},
		docGen,
		gen.AnyString(),
	))

	properties.Property("empty compose is identity", prop.ForAll(
		func(s string) bool {
			opt, err := Compose().Get(s)
			if err != nil || opt.Unwrap() != s {
				return false
			}
			updated, err := Compose().Set("old", s)
			return err == nil && updated == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestDocumentLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	number := Path(Field("phones"), Element(0), Field("number"))

	properties.Property("view after set yields the written value", prop.ForAll(
		func(v string) bool {
			updated, err := number.Set(contactDoc(), v)
			if err != nil {
				return false
			}
			opt, err := number.Get(updated)
			return err == nil && opt.IsSome() && opt.Unwrap() == v
		},
		gen.AnyString(),
	))

	properties.Property("setting the viewed value is a no-op", prop.ForAll(
		func(last string) bool {
			doc := contactDoc()
			doc["name"].(map[string]any)["last"] = last
			opt, err := number.Get(doc)
			if err != nil || opt.IsNone() {
				return false
			}
			updated, err := number.Set(doc, opt.Unwrap())
			return err == nil && reflect.DeepEqual(updated, any(doc))
		},
		gen.AnyString(),
	))

	properties.Property("set never mutates the input document", prop.ForAll(
		func(v string) bool {
			doc := contactDoc()
			before := deepClone(doc)
			if _, err := number.Set(doc, v); err != nil {
				return false
			}
			return reflect.DeepEqual(before, any(doc))
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
