package github

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainerrors "github.com/Tomas-vilte/MateLogs/internal/domain/errors"
	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGitHubClient_CreateComment(t *testing.T) {
	t.Run("should create a comment on the PR with the given body", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := NewGitHubClientWithServices(mockIssues, "test-owner", "test-repo")

		mockIssues.On("CreateComment", mock.Anything, "test-owner", "test-repo", 123,
			mock.MatchedBy(func(comment *github.IssueComment) bool {
				return strings.Contains(comment.GetBody(), "Test response from Deepseek")
			})).
			Return(&github.IssueComment{}, &github.Response{}, nil).Once()

		err := client.CreateComment(context.Background(), 123, "## 🤖 Log Interpretation\n\nTest response from Deepseek")

		assert.NoError(t, err)
		mockIssues.AssertExpectations(t)
	})

	t.Run("should wrap API failures as publish errors", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := NewGitHubClientWithServices(mockIssues, "test-owner", "test-repo")

		mockIssues.On("CreateComment", mock.Anything, "test-owner", "test-repo", 42, mock.Anything).
			Return(nil, nil, errors.New("resource not accessible by integration"))

		err := client.CreateComment(context.Background(), 42, "body")

		assert.Error(t, err)
		var publishErr *domainerrors.PublishError
		assert.True(t, errors.As(err, &publishErr))
		assert.Equal(t, 42, publishErr.PRNumber)
		assert.Contains(t, err.Error(), "resource not accessible by integration")
	})
}
