package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tusklore/tuskbot/internal/boar"
	"github.com/tusklore/tuskbot/internal/logger"
	"github.com/tusklore/tuskbot/internal/metrics"
	"github.com/tusklore/tuskbot/internal/store"
)

// Server is the ops/API surface: health, metrics, dataset reads, and the
// draw trigger for non-chat integrations.
type Server struct {
	httpServer  *http.Server
	boarService *boar.Service
	store       *store.Store
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, boarService *boar.Service, st *store.Store) *Server {
	s := &Server{
		boarService: boarService,
		store:       st,
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware(PublicPaths...))
	r.Use(loggingMiddleware)

	// Health check route (unversioned)
	r.Get("/healthz", s.handleHealthz)

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/daily", s.handleDaily)
		r.Route("/leaderboards", func(r chi.Router) {
			r.Get("/", s.handleGetBoards)
			r.Get("/{metric}", s.handleGetBoard)
		})
		r.Get("/market", s.handleGetMarket)
		r.Get("/quests", s.handleGetQuests)
	})

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      r,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}
	return s
}

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// loggingMiddleware attaches a request ID and logs request lifecycle.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for the public ops endpoints
		for _, path := range PublicPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		next.ServeHTTP(w, r)

		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
