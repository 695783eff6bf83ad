package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/octoclone/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclone/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	requestsPerMinute int64
	maxBodySize       int64
}

type Option func(*config)

// WithRequestLimit caps the number of API requests accepted per minute.
// Zero or negative disables the limiter.
func WithRequestLimit(perMinute int64) Option {
	return func(cfg *config) {
		cfg.requestsPerMinute = perMinute
	}
}

// WithMaxBodySize caps the accepted request body size in bytes.
func WithMaxBodySize(size int64) Option {
	return func(cfg *config) {
		cfg.maxBodySize = size
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		requestsPerMinute: 60,
		maxBodySize:       1 << 20,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(requestLimiter(cfg.requestsPerMinute))
		r.Post("/clone", handleCloneIssue(uc, cfg.maxBodySize))
		r.Get("/clones", handleListClones(uc))
		r.Get("/clones/{id}", handleGetClone(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
