package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclone/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclone/pkg/domain/model"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
	"github.com/secmon-lab/octoclone/pkg/repository"
	"github.com/secmon-lab/octoclone/pkg/utils/errutil"
	"github.com/secmon-lab/octoclone/pkg/utils/logging"
	"github.com/secmon-lab/octoclone/pkg/utils/safe"
)

type cloneIssueResponse struct {
	Message     string `json:"message"`
	NewIssueURL string `json:"new_issue_url"`
}

type listClonesResponse struct {
	Clones []*model.CloneRecord `json:"clones"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func handleCloneIssue(uc interfaces.UseCase, maxBodySize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := http.MaxBytesReader(w, r.Body, maxBodySize)
		defer safe.Close(body)

		var input model.CloneIssueInput
		if err := json.NewDecoder(body).Decode(&input); err != nil {
			respondError(w, r, goerr.Wrap(types.ErrInvalidFormat, "request body must be JSON"))
			return
		}

		out, err := uc.CloneIssue(r.Context(), &input)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, cloneIssueResponse{
			Message:     "Issue successfully cloned!",
			NewIssueURL: out.NewIssueURL,
		})
	}
}

func handleListClones(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := uc.ListCloneRecords(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, listClonesResponse{Clones: records})
	}
}

func handleGetClone(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := uc.GetCloneRecord(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, record)
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFromError(err)

	if code == http.StatusInternalServerError {
		// Internal details are logged, never returned to the caller
		errutil.HandleError(r.Context(), "unexpected error while handling request", err)
		respondJSON(w, code, errorResponse{Error: "an unexpected error occurred"})
		return
	}

	logging.From(r.Context()).Warn("request failed", "error", err, "status_code", code)
	respondJSON(w, code, errorResponse{Error: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrDuplicateIssue):
		return http.StatusConflict
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrInvalidFormat),
		errors.Is(err, types.ErrCapabilityDisabled),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrPermissionOrRateLimit),
		errors.Is(err, types.ErrRateLimitExceeded),
		errors.Is(err, types.ErrAPI),
		errors.Is(err, types.ErrNetwork),
		errors.Is(err, types.ErrTimeout):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
