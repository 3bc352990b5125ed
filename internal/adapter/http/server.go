package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/storm-bulletin-etl/internal/adapter/webpage"
	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
	"github.com/couchcryptid/storm-bulletin-etl/internal/pipeline"
)

const maxBodyBytes = 1 << 20

// Normalizer turns one bulletin into a record. *pipeline.BulletinTransformer
// satisfies it.
type Normalizer interface {
	Normalize(ctx context.Context, msg domain.RawMessage) (domain.Record, error)
}

// Server exposes health, readiness, metrics, and on-demand normalization.
type Server struct {
	httpServer *http.Server
	normalizer Normalizer
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// POST /v1/bulletins/normalize routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, normalizer Normalizer, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		normalizer: normalizer,
		logger:     logger,
	}

	r.Get("/healthz", sharedobs.LivenessHandler())
	r.Get("/readyz", sharedobs.ReadinessHandler(ready))
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/v1/bulletins/normalize", s.handleNormalize)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleNormalize accepts a bulletin as plain text, an HTML product page, or
// the JSON envelope form used on the source topic.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		writeError(w, http.StatusBadRequest, "empty body")
		return
	}

	if isHTMLRequest(r, body) {
		text, err := webpage.ExtractBulletinText(strings.NewReader(string(body)))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		body = []byte(text)
	}

	msg := pipeline.DecodeMessage(body, r.URL.Query().Get("id"), s.logger)
	rec, err := s.normalizer.Normalize(r.Context(), msg)
	if rej, ok := domain.AsRejection(err); ok {
		s.logger.Info("bulletin rejected", "id", msg.ID, "reason", rej.Reason)
		resp := map[string]string{"status": "rejected", "reason": string(rej.Reason)}
		if rej.Detail != "" {
			resp["detail"] = rej.Detail
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	if err != nil {
		s.logger.Error("normalize failed", "id", msg.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "normalize failed")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func isHTMLRequest(r *http.Request, body []byte) bool {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil && mt == "text/html" {
			return true
		}
	}
	return webpage.IsHTML(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"status": "error", "error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client may have gone away
}
