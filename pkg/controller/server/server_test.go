package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclone/pkg/controller/server"
	"github.com/secmon-lab/octoclone/pkg/domain/mock"
	"github.com/secmon-lab/octoclone/pkg/domain/model"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
	"github.com/secmon-lab/octoclone/pkg/repository"
)

func postClone(t *testing.T, srv *server.Server, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/clone", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})
}

func TestCloneHandler(t *testing.T) {
	t.Run("successful clone returns 200 with new issue URL", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			CloneIssueFunc: func(ctx context.Context, input *model.CloneIssueInput) (*model.CloneIssueOutput, error) {
				gt.V(t, input.IssueURL).Equal("https://github.com/source/repo/issues/1")
				gt.V(t, input.TargetRepoURL).Equal("https://github.com/target/repo")
				return &model.CloneIssueOutput{NewIssueURL: "https://github.com/target/repo/issues/1"}, nil
			},
		}
		srv := server.New(mockUC)

		rec := postClone(t, srv, []byte(`{"issue_url":"https://github.com/source/repo/issues/1","target_fork_url":"https://github.com/target/repo"}`))

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Message     string `json:"message"`
			NewIssueURL string `json:"new_issue_url"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.NewIssueURL).Equal("https://github.com/target/repo/issues/1")
	})

	t.Run("invalid JSON body returns 400", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		rec := postClone(t, srv, []byte("not json"))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("error taxonomy maps to status codes", func(t *testing.T) {
		cases := []struct {
			name     string
			err      error
			expected int
		}{
			{"invalid format", types.ErrInvalidFormat, http.StatusBadRequest},
			{"unauthorized", types.ErrUnauthorized, http.StatusUnauthorized},
			{"capability disabled", types.ErrCapabilityDisabled, http.StatusBadRequest},
			{"not found", types.ErrNotFound, http.StatusBadRequest},
			{"permission or rate limit", types.ErrPermissionOrRateLimit, http.StatusBadRequest},
			{"rate limit exceeded", types.ErrRateLimitExceeded, http.StatusBadRequest},
			{"duplicate issue", types.ErrDuplicateIssue, http.StatusConflict},
			{"api error", types.ErrAPI, http.StatusBadRequest},
			{"network error", types.ErrNetwork, http.StatusBadRequest},
			{"timeout", types.ErrTimeout, http.StatusBadRequest},
			{"unclassified", context.Canceled, http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mockUC := &mock.UseCaseMock{
					CloneIssueFunc: func(ctx context.Context, input *model.CloneIssueInput) (*model.CloneIssueOutput, error) {
						return nil, tc.err
					},
				}
				srv := server.New(mockUC)

				rec := postClone(t, srv, []byte(`{"issue_url":"https://github.com/s/r/issues/1","target_fork_url":"https://github.com/t/r"}`))
				gt.V(t, rec.Code).Equal(tc.expected)
			})
		}
	})

	t.Run("unclassified error hides details", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			CloneIssueFunc: func(ctx context.Context, input *model.CloneIssueInput) (*model.CloneIssueOutput, error) {
				return nil, context.Canceled
			},
		}
		srv := server.New(mockUC)

		rec := postClone(t, srv, []byte(`{"issue_url":"https://github.com/s/r/issues/1","target_fork_url":"https://github.com/t/r"}`))

		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)

		var resp struct {
			Error string `json:"error"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.Error).Equal("an unexpected error occurred")
	})

	t.Run("oversized body returns 400", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithMaxBodySize(16))

		rec := postClone(t, srv, bytes.Repeat([]byte("x"), 64))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestHistoryHandlers(t *testing.T) {
	t.Run("GET /api/clones lists records", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListCloneRecordsFunc: func(ctx context.Context) ([]*model.CloneRecord, error) {
				return []*model.CloneRecord{
					{ID: "id-1", NewIssueURL: "https://github.com/t/r/issues/1"},
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/clones", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Clones []*model.CloneRecord `json:"clones"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.A(t, resp.Clones).Length(1)
		gt.V(t, resp.Clones[0].NewIssueURL).Equal("https://github.com/t/r/issues/1")
	})

	t.Run("GET /api/clones/{id} returns 404 for unknown record", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			GetCloneRecordFunc: func(ctx context.Context, id string) (*model.CloneRecord, error) {
				gt.V(t, id).Equal("missing")
				return nil, repository.ErrNotFound
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/clones/missing", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestRequestLimiter(t *testing.T) {
	t.Run("requests over the limit get 429", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListCloneRecordsFunc: func(ctx context.Context) ([]*model.CloneRecord, error) {
				return nil, nil
			},
		}
		srv := server.New(mockUC, server.WithRequestLimit(2))

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/clones", nil)
			rec := httptest.NewRecorder()
			srv.Mux().ServeHTTP(rec, req)
			gt.V(t, rec.Code).Equal(http.StatusOK)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/clones", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusTooManyRequests)
	})

	t.Run("health endpoint is not limited", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithRequestLimit(1))

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			srv.Mux().ServeHTTP(rec, req)
			gt.V(t, rec.Code).Equal(http.StatusOK)
		}
	})
}
