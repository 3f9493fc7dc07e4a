package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	t.Run("should include field and message", func(t *testing.T) {
		err := NewConfigError("github_token", "token inválido", nil)

		assert.Contains(t, err.Error(), "github_token")
		assert.Contains(t, err.Error(), "token inválido")
	})

	t.Run("should unwrap the underlying error", func(t *testing.T) {
		cause := errors.New("causa original")
		err := NewConfigError("lang", "no soportado", cause)

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "causa original")
	})
}

func TestInterpretationError(t *testing.T) {
	t.Run("should name the provider and unwrap", func(t *testing.T) {
		cause := errors.New("sin choices")
		err := NewInterpretationError("deepseek", cause)

		assert.Contains(t, err.Error(), "deepseek")
		assert.ErrorIs(t, err, cause)
	})
}

func TestPublishError(t *testing.T) {
	t.Run("should carry the PR number and unwrap", func(t *testing.T) {
		cause := errors.New("forbidden")
		err := NewPublishError(123, cause)

		assert.Equal(t, 123, err.PRNumber)
		assert.Contains(t, err.Error(), "123")
		assert.ErrorIs(t, err, cause)
	})
}
