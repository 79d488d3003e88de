package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/bnema/claude-agentcore-cli/internal/application"
)

const (
	DefaultAddr = ":8080"

	defaultPrompt   = "hello world"
	maxPayloadBytes = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Server implements the AgentCore runtime HTTP contract: POST /invocations
// runs the agent workflow, GET /ping reports health.
type Server struct {
	service *application.Service
	logger  *zap.Logger
	http    *http.Server
}

func New(addr string, service *application.Service, logger *zap.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{service: service, logger: logger}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("agentcore runtime listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Get("/ping", s.handlePing)
	r.Post("/invocations", s.handleInvocation)

	return r
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "Healthy"})
}

func (s *Server) handleInvocation(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "read payload"})
		return
	}

	prompt := ExtractPrompt(body)

	result, err := s.service.InvokeWithDelegation(r.Context(), prompt)
	if err != nil {
		s.logger.Error("invocation failed", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, result.FinalResponse)
}

// ExtractPrompt accepts the payload forms the runtime may deliver: a JSON
// object with a "prompt" field, a JSON-encoded string, or a raw string body.
func ExtractPrompt(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return defaultPrompt
	}

	if gjson.Valid(trimmed) {
		parsed := gjson.Parse(trimmed)
		switch {
		case parsed.IsObject():
			if prompt := parsed.Get("prompt"); prompt.Exists() && prompt.String() != "" {
				return prompt.String()
			}
			return defaultPrompt
		case parsed.Type == gjson.String:
			if parsed.String() == "" {
				return defaultPrompt
			}
			return parsed.String()
		}
	}

	return trimmed
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("write response", zap.Error(err))
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
