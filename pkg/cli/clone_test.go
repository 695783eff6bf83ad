package cli_test

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclone/pkg/cli"
	"github.com/secmon-lab/octoclone/pkg/domain/mock"
	"github.com/secmon-lab/octoclone/pkg/domain/model"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
	"github.com/secmon-lab/octoclone/pkg/infra"
	"github.com/secmon-lab/octoclone/pkg/usecase"
)

func newCloneMock() *mock.GitHubClientMock {
	return &mock.GitHubClientMock{
		ValidateTokenFunc: func(ctx context.Context) bool { return true },
		GetAuthenticatedUserFunc: func(ctx context.Context) (string, error) {
			return "octocat", nil
		},
		CheckIssuesEnabledFunc: func(ctx context.Context, owner, repo string) (bool, error) {
			return true, nil
		},
		GetIssueFunc: func(ctx context.Context, owner, repo string, number int) (*model.Issue, error) {
			return &model.Issue{
				Number:  1,
				Title:   "flaky test",
				Body:    "sometimes fails",
				State:   "open",
				HTMLURL: "https://github.com/source/repo/issues/1",
			}, nil
		},
		ListIssuesFunc: func(ctx context.Context, owner, repo string) ([]*model.Issue, error) {
			return nil, nil
		},
		CreateIssueFunc: func(ctx context.Context, owner, repo string, payload *model.IssuePayload) (*model.Issue, error) {
			return &model.Issue{
				Number:  9,
				Title:   payload.Title,
				HTMLURL: "https://github.com/" + owner + "/" + repo + "/issues/9",
			}, nil
		},
	}
}

func newCloneUseCase(ghMock *mock.GitHubClientMock) *usecase.UseCase {
	return usecase.New(infra.New(infra.WithGitHubClient(ghMock)))
}

func TestRunClone(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit target clones without prompting", func(t *testing.T) {
		uc := newCloneUseCase(newCloneMock())
		var out bytes.Buffer

		gt.NoError(t, cli.RunClone(ctx, uc, strings.NewReader(""), &out,
			"https://github.com/source/repo/issues/1",
			"https://github.com/octocat/repo",
		))

		gt.True(t, strings.Contains(out.String(), "Issue successfully cloned!"))
		gt.True(t, strings.Contains(out.String(), "https://github.com/octocat/repo/issues/9"))
	})

	t.Run("issue URL is prompted when not given", func(t *testing.T) {
		uc := newCloneUseCase(newCloneMock())
		var out bytes.Buffer

		gt.NoError(t, cli.RunClone(ctx, uc, strings.NewReader("https://github.com/source/repo/issues/1\n"), &out,
			"", "https://github.com/octocat/repo",
		))

		gt.True(t, strings.Contains(out.String(), "Enter the URL of the issue to clone:"))
		gt.True(t, strings.Contains(out.String(), "Issue successfully cloned!"))
	})

	t.Run("invalid issue URL fails before any API call", func(t *testing.T) {
		ghMock := newCloneMock()
		uc := newCloneUseCase(ghMock)
		var out bytes.Buffer

		err := cli.RunClone(ctx, uc, strings.NewReader(""), &out,
			"https://gitlab.com/source/repo/issues/1",
			"https://github.com/octocat/repo",
		)
		gt.True(t, err != nil)
		gt.A(t, ghMock.ValidateTokenCalls()).Length(0)
	})

	t.Run("missing fork guides the user to create one", func(t *testing.T) {
		ghMock := newCloneMock()
		var probes atomic.Int64
		ghMock.CheckIssuesEnabledFunc = func(ctx context.Context, owner, repo string) (bool, error) {
			// The first fork probe misses, every later call sees the fork.
			if probes.Add(1) == 1 {
				return false, types.ErrNotFound
			}
			return true, nil
		}
		uc := newCloneUseCase(ghMock)
		var out bytes.Buffer

		gt.NoError(t, cli.RunClone(ctx, uc, strings.NewReader("\n"), &out,
			"https://github.com/source/repo/issues/1", "",
		))

		gt.True(t, strings.Contains(out.String(), "https://github.com/source/repo/fork"))
		gt.True(t, strings.Contains(out.String(), "Using fork octocat/repo"))
		gt.True(t, strings.Contains(out.String(), "https://github.com/octocat/repo/issues/9"))
	})

	t.Run("disabled issues prompts for settings and retries", func(t *testing.T) {
		ghMock := newCloneMock()
		var checks atomic.Int64
		ghMock.CheckIssuesEnabledFunc = func(ctx context.Context, owner, repo string) (bool, error) {
			return checks.Add(1) > 1, nil
		}
		uc := newCloneUseCase(ghMock)
		var out bytes.Buffer

		gt.NoError(t, cli.RunClone(ctx, uc, strings.NewReader("\n"), &out,
			"https://github.com/source/repo/issues/1",
			"https://github.com/octocat/repo",
		))

		gt.True(t, strings.Contains(out.String(), "https://github.com/octocat/repo/settings"))
		gt.True(t, strings.Contains(out.String(), "Issue successfully cloned!"))
	})
}
