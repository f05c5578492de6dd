// Package server serves the static portfolio site.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jonathan/portfolio/internal/content"
	"github.com/jonathan/portfolio/internal/types"
	"github.com/jonathan/portfolio/internal/watch"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds the graceful shutdown of Run.
const ShutdownTimeout = 30 * time.Second

// Server represents the HTTP server
type Server struct {
	cfg        Config
	router     chi.Router
	broker     *Broker
	logger     *zap.Logger
	httpServer *http.Server
}

// Config holds server configuration
type Config struct {
	Port int
	// Site is the site root: index.html, content/, assets.
	Site fs.FS
	// AllowedOrigins defaults to every origin.
	AllowedOrigins []string
	Logger         *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Site == nil {
		return nil, errors.New("site filesystem is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	s := &Server{
		cfg:    cfg,
		broker: NewBroker(),
		logger: cfg.Logger,
	}
	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.withLogging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/events", s.handleEvents)
	r.Get("/"+content.Dir+"/{file}", s.handleContent)
	r.Handle("/*", http.FileServer(http.FS(s.cfg.Site)))

	return r
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Broker returns the content event broker behind /events.
func (s *Server) Broker() *Broker {
	return s.broker
}

// Notify publishes a content watch result to /events subscribers.
func (s *Server) Notify(ev watch.Event) {
	s.broker.Publish(newContentEvent(ev))
}

// Run listens on the configured port until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", ln.Addr().String()))
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	// open event streams would otherwise hold Shutdown until the timeout
	s.broker.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	<-errCh
	s.logger.Info("Server stopped")
	return nil
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("Request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleContent serves a language bundle only if it parses and validates.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	name, ok := strings.CutSuffix(file, ".json")
	if !ok || !types.IsSupported(name) {
		s.errorResponse(w, http.StatusNotFound, "unknown content bundle: "+file)
		return
	}
	lang := types.Lang(name)

	src := &content.FSSource{FS: s.cfg.Site}
	data, err := src.Fetch(r.Context(), lang)
	if errors.Is(err, fs.ErrNotExist) {
		s.errorResponse(w, http.StatusNotFound, "content bundle not found: "+file)
		return
	}
	if err != nil {
		s.logger.Error("Failed to read content bundle", zap.String("lang", name), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to read content bundle")
		return
	}
	if _, err := content.Parse(data); err != nil {
		s.logger.Warn("Refusing invalid content bundle", zap.String("lang", name), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("Failed to write content bundle", zap.Error(err))
	}
}

// handleEvents streams content change events.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	events, unsubscribe := s.broker.Subscribe()
	defer unsubscribe()

	if err := sse.WriteEvent("ready", map[string]string{"status": "subscribed"}); err != nil {
		return
	}
	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := sse.WriteEvent(EventContentChanged, ev); err != nil {
				s.logger.Debug("Event stream closed", zap.Error(err))
				return
			}
		}
	}
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("Error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
