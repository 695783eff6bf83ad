package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclone/pkg/controller/server"
	"github.com/secmon-lab/octoclone/pkg/domain/mock"
	"github.com/secmon-lab/octoclone/pkg/domain/model"
	"github.com/secmon-lab/octoclone/pkg/infra"
	"github.com/secmon-lab/octoclone/pkg/usecase"
)

// newGitHubMock returns a GitHub mock representing the happy path: valid
// token, issues enabled, one source issue and no title collisions.
func newGitHubMock() *mock.GitHubClientMock {
	return &mock.GitHubClientMock{
		ValidateTokenFunc: func(ctx context.Context) bool { return true },
		CheckIssuesEnabledFunc: func(ctx context.Context, owner, repo string) (bool, error) {
			return true, nil
		},
		GetIssueFunc: func(ctx context.Context, owner, repo string, number int) (*model.Issue, error) {
			return &model.Issue{
				Number:  42,
				Title:   "broken build on main",
				Body:    "details",
				State:   "open",
				HTMLURL: "https://github.com/source/repo/issues/42",
			}, nil
		},
		ListIssuesFunc: func(ctx context.Context, owner, repo string) ([]*model.Issue, error) {
			return nil, nil
		},
		CreateIssueFunc: func(ctx context.Context, owner, repo string, payload *model.IssuePayload) (*model.Issue, error) {
			return &model.Issue{
				Number:  7,
				Title:   payload.Title,
				HTMLURL: "https://github.com/target/repo/issues/7",
			}, nil
		},
	}
}

func newTestServer(ghMock *mock.GitHubClientMock) *server.Server {
	clients := infra.New(infra.WithGitHubClient(ghMock))
	return server.New(usecase.New(clients))
}

func TestCloneEndToEnd(t *testing.T) {
	t.Run("valid request clones the issue", func(t *testing.T) {
		ghMock := newGitHubMock()
		srv := newTestServer(ghMock)

		rec := postClone(t, srv, []byte(`{"issue_url":"https://github.com/source/repo/issues/42","target_fork_url":"https://github.com/target/repo"}`))

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Message     string `json:"message"`
			NewIssueURL string `json:"new_issue_url"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.Message).Equal("Issue successfully cloned!")
		gt.V(t, resp.NewIssueURL).Equal("https://github.com/target/repo/issues/7")

		gt.A(t, ghMock.CreateIssueCalls()).Length(1)
		gt.V(t, ghMock.CreateIssueCalls()[0].Owner).Equal("target")
		gt.V(t, ghMock.CreateIssueCalls()[0].Repo).Equal("repo")
	})

	t.Run("duplicate title yields 409 and no create call", func(t *testing.T) {
		ghMock := newGitHubMock()
		ghMock.ListIssuesFunc = func(ctx context.Context, owner, repo string) ([]*model.Issue, error) {
			return []*model.Issue{{Number: 3, Title: "broken build on main"}}, nil
		}
		srv := newTestServer(ghMock)

		rec := postClone(t, srv, []byte(`{"issue_url":"https://github.com/source/repo/issues/42","target_fork_url":"https://github.com/target/repo"}`))

		gt.V(t, rec.Code).Equal(http.StatusConflict)
		gt.A(t, ghMock.CreateIssueCalls()).Length(0)
	})

	t.Run("non-github target URL fails before any API call", func(t *testing.T) {
		ghMock := newGitHubMock()
		srv := newTestServer(ghMock)

		rec := postClone(t, srv, []byte(`{"issue_url":"https://github.com/source/repo/issues/42","target_fork_url":"http://invalid.com"}`))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, ghMock.ValidateTokenCalls()).Length(0)
		gt.A(t, ghMock.CreateIssueCalls()).Length(0)
	})

	t.Run("missing fields fail before any API call", func(t *testing.T) {
		ghMock := newGitHubMock()
		srv := newTestServer(ghMock)

		rec := postClone(t, srv, []byte(`{"issue_url":"https://github.com/source/repo/issues/42"}`))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, ghMock.ValidateTokenCalls()).Length(0)
	})

	t.Run("clone shows up in history", func(t *testing.T) {
		srv := newTestServer(newGitHubMock())

		rec := postClone(t, srv, []byte(`{"issue_url":"https://github.com/source/repo/issues/42","target_fork_url":"https://github.com/target/repo"}`))
		gt.V(t, rec.Code).Equal(http.StatusOK)

		req := httptest.NewRequest(http.MethodGet, "/api/clones", nil)
		lrec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(lrec, req)

		gt.V(t, lrec.Code).Equal(http.StatusOK)

		var resp struct {
			Clones []*model.CloneRecord `json:"clones"`
		}
		gt.NoError(t, json.Unmarshal(lrec.Body.Bytes(), &resp))
		gt.A(t, resp.Clones).Length(1)
		gt.V(t, resp.Clones[0].SourceIssueURL).Equal("https://github.com/source/repo/issues/42")
		gt.V(t, resp.Clones[0].NewIssueURL).Equal("https://github.com/target/repo/issues/7")
	})
}
