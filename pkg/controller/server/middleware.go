package server

import (
	"net/http"
	"sync"
	"time"

	"log/slog"

	"github.com/secmon-lab/octoclone/pkg/domain/types"
	"github.com/secmon-lab/octoclone/pkg/utils/logging"
)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.Default().With(slog.Any("request_id", types.NewRequestID()))

		ctx := logging.With(r.Context(), logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

// requestLimiter counts requests in a fixed one-minute window and rejects
// anything over the limit with 429. The counter is the only mutable state
// shared between concurrent requests besides the clone history.
func requestLimiter(perMinute int64) func(http.Handler) http.Handler {
	var (
		mu          sync.Mutex
		windowStart time.Time
		count       int64
	)

	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			now := time.Now()
			if now.Sub(windowStart) >= time.Minute {
				windowStart = now
				count = 0
			}
			count++
			over := count > perMinute
			mu.Unlock()

			if over {
				respondJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
