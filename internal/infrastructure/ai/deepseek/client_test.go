package deepseek

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	domainerrors "github.com/Tomas-vilte/MateLogs/internal/domain/errors"
	"github.com/Tomas-vilte/MateLogs/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func requestBody(t *testing.T, req *http.Request) chatRequest {
	t.Helper()
	reader, err := req.GetBody()
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)

	var body chatRequest
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestClient_InterpretLog(t *testing.T) {
	t.Run("should send the fixed model and the system+user message pair", func(t *testing.T) {
		mockHTTP := &MockHTTPClient{}
		client := NewClientWithHTTP("test-key", DefaultBaseURL, mockHTTP)

		var captured *http.Request
		mockHTTP.On("Do", mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(0).(*http.Request)
			}).
			Return(jsonResponse(http.StatusOK,
				`{"choices":[{"message":{"role":"assistant","content":"Test response from Deepseek"}}]}`), nil)

		interpretation, err := client.InterpretLog(context.Background(), "sample log content")

		require.NoError(t, err)
		assert.Equal(t, "Test response from Deepseek", interpretation.Text)

		require.NotNil(t, captured)
		assert.Equal(t, "https://api.deepseek.com/chat/completions", captured.URL.String())
		assert.Equal(t, "Bearer test-key", captured.Header.Get("Authorization"))

		body := requestBody(t, captured)
		assert.Equal(t, "deepseek-chat", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, models.RoleSystem, body.Messages[0].Role)
		assert.Contains(t, body.Messages[0].Content, "expert in interpreting computer system logs")
		assert.Equal(t, models.RoleUser, body.Messages[1].Role)
		assert.Equal(t, "sample log content", body.Messages[1].Content)
	})

	t.Run("should surface the API error message unmodified", func(t *testing.T) {
		mockHTTP := &MockHTTPClient{}
		client := NewClientWithHTTP("test-key", DefaultBaseURL, mockHTTP)

		mockHTTP.On("Do", mock.Anything).
			Return(jsonResponse(http.StatusUnauthorized, `{"error":{"message":"API error test"}}`), nil)

		_, err := client.InterpretLog(context.Background(), "sample log content")

		require.Error(t, err)
		assert.Equal(t, "API error test", err.Error())
	})

	t.Run("should fail when the response has no choices", func(t *testing.T) {
		mockHTTP := &MockHTTPClient{}
		client := NewClientWithHTTP("test-key", DefaultBaseURL, mockHTTP)

		mockHTTP.On("Do", mock.Anything).
			Return(jsonResponse(http.StatusOK, `{"choices":[]}`), nil)

		_, err := client.InterpretLog(context.Background(), "sample log content")

		require.Error(t, err)
		var interpErr *domainerrors.InterpretationError
		assert.True(t, errors.As(err, &interpErr))
	})

	t.Run("should fail on transport errors", func(t *testing.T) {
		mockHTTP := &MockHTTPClient{}
		client := NewClientWithHTTP("test-key", DefaultBaseURL, mockHTTP)

		mockHTTP.On("Do", mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := client.InterpretLog(context.Background(), "sample log content")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestNewClient(t *testing.T) {
	t.Run("should use the fixed base URL and model with the resolved API key", func(t *testing.T) {
		client := NewClient("resolved-key")

		assert.Equal(t, "https://api.deepseek.com", client.baseURL)
		assert.Equal(t, "deepseek-chat", client.model)
		assert.Equal(t, "resolved-key", client.apiKey)
	})
}
