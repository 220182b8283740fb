package changeset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statusguard/pkg/changeset"
	"github.com/dmitrymomot/statusguard/pkg/validator"
)

func TestChangeset(t *testing.T) {
	t.Parallel()

	t.Run("tracks current values and changes", func(t *testing.T) {
		t.Parallel()
		data := map[string]any{"status": "draft", "title": "Hello"}
		cs := changeset.New(data).Change("title", "Hello, world")

		data["status"] = "mutated"
		v, ok := cs.Get("status")
		require.True(t, ok)
		assert.Equal(t, "draft", v)

		_, changed := cs.GetChange("status")
		assert.False(t, changed)

		v, changed = cs.GetChange("title")
		require.True(t, changed)
		assert.Equal(t, "Hello, world", v)

		v, ok = cs.Fetch("title")
		require.True(t, ok)
		assert.Equal(t, "Hello, world", v)

		v, ok = cs.Fetch("status")
		require.True(t, ok)
		assert.Equal(t, "draft", v)

		assert.Equal(t, map[string]any{"title": "Hello, world"}, cs.Changes())
	})

	t.Run("setting the current value is not a change", func(t *testing.T) {
		t.Parallel()
		cs := changeset.New(map[string]any{"status": "draft"}).
			Change("status", "review").
			Change("status", "draft")

		_, changed := cs.GetChange("status")
		assert.False(t, changed)
	})

	t.Run("new fields are changes", func(t *testing.T) {
		t.Parallel()
		cs := changeset.New(nil).Change("status", "draft")
		v, changed := cs.GetChange("status")
		require.True(t, changed)
		assert.Equal(t, "draft", v)
	})

	t.Run("collects errors", func(t *testing.T) {
		t.Parallel()
		cs := changeset.New(map[string]any{"status": "draft"})
		assert.True(t, cs.Valid())
		assert.NoError(t, cs.Err())

		cs.AddError(validator.ValidationError{Field: "status", Message: "bad"})
		cs.Apply(
			validator.Required("title", false),
			validator.InList("status", "draft", []string{"draft"}),
		)

		assert.False(t, cs.Valid())
		assert.Equal(t, []string{"status", "title"}, cs.Errors().Fields())

		err := cs.Err()
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()
		cs := changeset.New(map[string]any{"status": "draft"}).Change("status", "review")
		clone := cs.Clone()

		clone.AddError(validator.ValidationError{Field: "status", Message: "bad"})
		clone.Change("title", "x")

		assert.True(t, cs.Valid())
		_, changed := cs.GetChange("title")
		assert.False(t, changed)
		assert.False(t, clone.Valid())
	})
}
