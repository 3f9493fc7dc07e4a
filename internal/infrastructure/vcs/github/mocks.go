package github

import (
	"context"

	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/mock"
)

type MockIssuesService struct {
	mock.Mock
}

func (m *MockIssuesService) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, comment)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*github.IssueComment), args.Get(1).(*github.Response), args.Error(2)
}
