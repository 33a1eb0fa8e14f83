package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.Required("handle", "gopher")
		assert.True(t, rule.Check())
		assert.Equal(t, "handle", rule.Error.Field)
		assert.Equal(t, "field is required", rule.Error.Message)
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "handle"}, rule.Error.TranslationValues)
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, validator.Required("handle", "   ").Check())
		assert.False(t, validator.Required("handle", "").Check())
	})
}

func TestMinLen(t *testing.T) {
	t.Run("passes at the minimum", func(t *testing.T) {
		rule := validator.MinLen("password", "12345", 5)
		assert.True(t, rule.Check())
		assert.Equal(t, "must be at least 5 characters long", rule.Error.Message)
		assert.Equal(t, "validation.min_length", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "password", "min": 5, "unit": "runes"}, rule.Error.TranslationValues)
	})

	t.Run("fails below the minimum", func(t *testing.T) {
		assert.False(t, validator.MinLen("password", "1234", 5).Check())
	})

	t.Run("counts code points", func(t *testing.T) {
		assert.True(t, validator.MinLen("name", "ééé", 3).Check())
		assert.False(t, validator.MinLen("name", "ééé", 4).Check())
	})
}

func TestMaxLen(t *testing.T) {
	t.Run("passes at the maximum", func(t *testing.T) {
		rule := validator.MaxLen("username", "12345", 5)
		assert.True(t, rule.Check())
		assert.Equal(t, "must be at most 5 characters long", rule.Error.Message)
		assert.Equal(t, "validation.max_length", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "username", "max": 5, "unit": "runes"}, rule.Error.TranslationValues)
	})

	t.Run("fails above the maximum", func(t *testing.T) {
		assert.False(t, validator.MaxLen("username", "123456", 5).Check())
	})

	t.Run("counts code points", func(t *testing.T) {
		assert.True(t, validator.MaxLen("name", "ééé", 3).Check())
	})
}
