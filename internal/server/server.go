package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"flvkit/internal/config"
	"flvkit/internal/svc/api"
	"flvkit/internal/svc/health"
	"flvkit/internal/svc/repairhttp"
	"flvkit/internal/svc/wsanalyze"
)

// Server wraps two HTTP listeners: a minimal health server for orchestrator
// probes, and the main server carrying the engine-facing endpoints.
type Server struct {
	healthServer *http.Server
	mainServer   *http.Server
}

// New creates a new server instance with the given configuration.
// The server is not started until Start is called.
func New(cfg *config.Config) *Server {
	healthMux := http.NewServeMux()
	health.New().RegisterRoutes(healthMux)

	mainMux := http.NewServeMux()
	api.NewService(cfg.Server.MaxUploadSize).RegisterRoutes(mainMux)
	repairhttp.NewService(cfg.Server.MaxUploadSize).RegisterRoutes(mainMux)
	wsanalyze.NewService(cfg.Server.MaxUploadSize).RegisterRoutes(mainMux)

	return &Server{
		healthServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HealthPort),
			Handler: healthMux,
		},
		mainServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler: mainMux,
		},
	}
}

// Start begins serving HTTP requests on both listeners.
// This method blocks until either server is stopped or encounters an error.
func (s *Server) Start() error {
	errCh := make(chan error, 2)
	go func() { errCh <- s.healthServer.ListenAndServe() }()
	go func() { errCh <- s.mainServer.ListenAndServe() }()
	return <-errCh
}

// Shutdown gracefully stops both servers with the given timeout context.
// Returns the first non-nil error encountered, if any.
func (s *Server) Shutdown(ctx context.Context) error {
	healthErr := s.healthServer.Shutdown(ctx)
	mainErr := s.mainServer.Shutdown(ctx)
	if healthErr != nil {
		return healthErr
	}
	return mainErr
}

// ShutdownWithTimeout stops the server with a fixed 5-second timeout.
// This is a convenience wrapper around Shutdown.
func (s *Server) ShutdownWithTimeout() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}
