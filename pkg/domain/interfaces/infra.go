package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient

import (
	"context"

	"github.com/secmon-lab/octoclone/pkg/domain/model"
)

// GitHubClient is the set of GitHub REST API calls the clone flow needs.
// Implementations translate HTTP statuses into the domain error taxonomy.
type GitHubClient interface {
	// ValidateToken checks the configured token against the current-user
	// endpoint. It never returns an error; any failure means "invalid".
	ValidateToken(ctx context.Context) bool

	// GetAuthenticatedUser returns the login of the token owner.
	GetAuthenticatedUser(ctx context.Context) (string, error)

	// CheckIssuesEnabled fetches repository metadata and returns the
	// has_issues flag. A missing repository yields types.ErrNotFound.
	CheckIssuesEnabled(ctx context.Context, owner, repo string) (bool, error)

	GetIssue(ctx context.Context, owner, repo string, number int) (*model.Issue, error)

	// ListIssues returns the first page (100 items, state=all) of issues in
	// the repository. Titles beyond the first page are not visible to the
	// duplicate check; this is documented behavior.
	ListIssues(ctx context.Context, owner, repo string) ([]*model.Issue, error)

	CreateIssue(ctx context.Context, owner, repo string, payload *model.IssuePayload) (*model.Issue, error)
}
