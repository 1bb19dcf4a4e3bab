package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/mkoval/plotline/internal/service"
)

type ServerConfig struct {
	Addr string
}

// Server maps the REST surface onto the services. Handlers are stateless;
// any internal failure is logged and answered with a generic 500 body so
// storage details never reach the client.
type Server struct {
	cfg      ServerConfig
	nodes    service.NodeService
	todos    service.TodoService
	settings service.SettingsService
	logger   *slog.Logger
}

func NewServer(cfg ServerConfig, nodes service.NodeService, todos service.TodoService, settings service.SettingsService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:      cfg,
		nodes:    nodes,
		todos:    todos,
		settings: settings,
		logger:   logger,
	}
}

// Handler returns the routed handler, exported so tests can drive the
// server through httptest without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /nodes", s.handleListNodes)
	mux.HandleFunc("POST /nodes", s.handleCreateNode)
	mux.HandleFunc("PUT /nodes", s.handleUpdateNode)
	mux.HandleFunc("DELETE /nodes/{id}", s.handleDeleteNode)
	mux.HandleFunc("DELETE /nodes", s.handleDeleteNode)

	mux.HandleFunc("GET /todos", s.handleListTodos)
	mux.HandleFunc("POST /todos", s.handleCreateTodo)
	mux.HandleFunc("PUT /todos", s.handleUpdateTodo)
	mux.HandleFunc("DELETE /todos", s.handleDeleteTodo)

	mux.HandleFunc("GET /timeline-settings", s.handleGetSettings)
	mux.HandleFunc("POST /timeline-settings", s.handleSaveSettings)

	return s.logRequests(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
