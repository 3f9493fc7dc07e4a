package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunResult(t *testing.T) {
	t.Run("should build a succeeded result with the interpretation", func(t *testing.T) {
		result := Succeeded("todo en orden")

		assert.True(t, result.Succeeded())
		assert.Equal(t, "todo en orden", result.Interpretation)
		assert.Empty(t, result.FailureMessage)
	})

	t.Run("should build a failed result keeping the message verbatim", func(t *testing.T) {
		result := Failed("API error test")

		assert.False(t, result.Succeeded())
		assert.Equal(t, "API error test", result.FailureMessage)
		assert.Empty(t, result.Interpretation)
	})
}

func TestRunContext_HasPR(t *testing.T) {
	t.Run("should report a PR only when the number is present", func(t *testing.T) {
		number := 123

		assert.True(t, RunContext{PRNumber: &number}.HasPR())
		assert.False(t, RunContext{}.HasPR())
	})
}
