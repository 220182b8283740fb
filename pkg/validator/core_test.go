package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statusguard/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "status", Message: "is required"})
		assert.Equal(t, "validation failed: status: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "status", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "title", Message: "too short"})

		msg := errs.Error()
		assert.Equal(t, "validation failed: status: is required; title: too short", msg)
	})
}

func TestNewError(t *testing.T) {
	t.Parallel()

	t.Run("collects translation values in pairs", func(t *testing.T) {
		err := validator.NewError("status", "bad", "transition.invalid", "from", "draft", "to", "archived")
		assert.Equal(t, "status", err.Field)
		assert.Equal(t, "bad", err.Message)
		assert.Equal(t, "transition.invalid", err.TranslationKey)
		assert.Equal(t, map[string]any{"from": "draft", "to": "archived"}, err.TranslationValues)
	})

	t.Run("ignores dangling key and non-string keys", func(t *testing.T) {
		err := validator.NewError("status", "bad", "k", "from", "draft", 42, "x", "to")
		assert.Equal(t, map[string]any{"from": "draft"}, err.TranslationValues)
	})

	t.Run("no values leaves map nil", func(t *testing.T) {
		err := validator.NewError("status", "bad", "k")
		assert.Nil(t, err.TranslationValues)
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	first := validator.NewError("status", "is required", "validation.required", "field", "status")
	second := validator.NewError("status", "invalid transition", "transition.invalid")
	third := validator.NewError("title", "too short", "validation.min_length")
	errs.Add(first)
	errs.Add(second)
	errs.Add(third)

	assert.True(t, errs.Has("status"))
	assert.False(t, errs.Has("body"))
	assert.Equal(t, []string{"is required", "invalid transition"}, errs.Get("status"))
	assert.Empty(t, errs.Get("body"))
	assert.Equal(t, []validator.ValidationError{first, second}, errs.GetErrors("status"))
	assert.Equal(t, []string{"status", "title"}, errs.Fields())
	assert.False(t, errs.IsEmpty())

	var empty validator.ValidationErrors
	assert.True(t, empty.IsEmpty())
	assert.Empty(t, empty.Fields())
}

func TestValidationErrors_Merge(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "status", Message: "a"})
	errs.Merge(validator.ValidationErrors{
		{Field: "title", Message: "b"},
		{Field: "status", Message: "c"},
	})

	require.Len(t, errs, 3)
	assert.Equal(t, []string{"a", "c"}, errs.Get("status"))
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("status", true),
			validator.InList("status", "draft", []string{"draft", "published"}),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failing rules", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("title", false),
			validator.InList("status", "deleted", []string{"draft", "published"}),
			validator.InList("status", "deleted", []string{"archived"}),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("title"))
		assert.Len(t, verrs.Get("status"), 2)
		assert.Equal(t, "validation.in_list", verrs.GetErrors("status")[0].TranslationKey)
	})

	t.Run("skips rules without check", func(t *testing.T) {
		err := validator.Apply(validator.Rule{Error: validator.ValidationError{Field: "status"}})
		assert.NoError(t, err)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("extracts from wrapped error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "status", Message: "is required"})
		wrapped := fmt.Errorf("update post: %w", errs)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("status"))
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("returns nil for regular error", func(t *testing.T) {
		err := errors.New("regular error")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})
}
