package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclone/pkg/controller/server"
	"github.com/secmon-lab/octoclone/pkg/domain/mock"
	"github.com/secmon-lab/octoclone/pkg/utils/logging"
)

func TestAccessLogRequestID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "access.log")
	gt.NoError(t, logging.Configure("json", "info", logPath))
	t.Cleanup(func() {
		gt.NoError(t, logging.Configure("text", "info", "stdout"))
	})

	srv := server.New(&mock.UseCaseMock{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)

	data := gt.R1(os.ReadFile(logPath)).NoError(t)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	gt.A(t, lines).Longer(0)

	var entry struct {
		Msg       string `json:"msg"`
		RequestID string `json:"request_id"`
	}
	gt.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	gt.V(t, entry.Msg).Equal("http access")
	gt.NoError(t, uuid.Validate(entry.RequestID))
}
