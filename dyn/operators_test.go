package dyn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorForms(t *testing.T) {
	first := Path(Field("name"), Field("first"))

	t.Run("View reads the focus", func(t *testing.T) {
		opt, err := View(first, contactDoc())
		require.NoError(t, err)
		assert.Equal(t, "John", opt.Unwrap())
	})

	t.Run("Set replaces the focus", func(t *testing.T) {
		updated, err := Set(first, "Jane", contactDoc())
		require.NoError(t, err)
		assert.Equal(t, "Jane", updated.(map[string]any)["name"].(map[string]any)["first"])
	})

	t.Run("Over transforms the focus", func(t *testing.T) {
		updated, err := Over(first, func(v any) any {
			return strings.ToUpper(v.(string))
		}, contactDoc())
		require.NoError(t, err)
		assert.Equal(t, "JOHN", updated.(map[string]any)["name"].(map[string]any)["first"])
	})
}

func TestCurriedOperatorForms(t *testing.T) {
	first := Path(Field("name"), Field("first"))
	john := contactDoc()
	jane, err := Set(first, "Jane", contactDoc())
	require.NoError(t, err)

	t.Run("Viewer is reusable across documents", func(t *testing.T) {
		read := Viewer(first)
		opt, err := read(john)
		require.NoError(t, err)
		assert.Equal(t, "John", opt.Unwrap())
		opt, err = read(jane)
		require.NoError(t, err)
		assert.Equal(t, "Jane", opt.Unwrap())
	})

	t.Run("Setter binds the value once", func(t *testing.T) {
		anonymize := Setter(first)("anon")
		for _, doc := range []any{john, jane} {
			updated, err := anonymize(doc)
			require.NoError(t, err)
			assert.Equal(t, "anon", updated.(map[string]any)["name"].(map[string]any)["first"])
		}
	})

	t.Run("Modifier binds the transform once", func(t *testing.T) {
		shout := Modifier(first)(func(v any) any {
			return strings.ToUpper(v.(string))
		})
		updated, err := shout(jane)
		require.NoError(t, err)
		assert.Equal(t, "JANE", updated.(map[string]any)["name"].(map[string]any)["first"])
	})
}
