package github

import (
	"context"
	"net/http"

	domainerrors "github.com/Tomas-vilte/MateLogs/internal/domain/errors"
	"github.com/Tomas-vilte/MateLogs/internal/domain/ports"
	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

// IssuesService acota la API de issues de go-github a lo que usamos, para poder
// mockearla en los tests. Los comentarios de PR son comentarios de issue en GitHub.
type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

type GitHubClient struct {
	issuesService IssuesService
	owner         string
	repo          string
}

func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		issuesService: client.Issues,
		owner:         owner,
		repo:          repo,
	}
}

func NewGitHubClientWithServices(issuesService IssuesService, owner, repo string) *GitHubClient {
	return &GitHubClient{
		issuesService: issuesService,
		owner:         owner,
		repo:          repo,
	}
}

// CreateComment crea un comentario en el issue/PR indicado del repositorio configurado.
func (ghc *GitHubClient) CreateComment(ctx context.Context, prNumber int, body string) error {
	comment := &github.IssueComment{
		Body: github.Ptr(body),
	}

	_, _, err := ghc.issuesService.CreateComment(ctx, ghc.owner, ghc.repo, prNumber, comment)
	if err != nil {
		return domainerrors.NewPublishError(prNumber, err)
	}

	return nil
}
