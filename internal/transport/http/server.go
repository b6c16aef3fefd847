package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sgrewal/tinylink/internal/service"
)

// Server represents the HTTP server
type Server struct {
	handler *Handler
	server  *http.Server
	port    string
}

// NewServer creates a new HTTP server
func NewServer(links service.LinkService, port, baseURL string, verbose bool) *Server {
	handler := NewHandler(links, baseURL)

	registry := prometheus.NewRegistry()
	metrics := NewMetricsMiddleware(registry)

	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/links", handler.LinksHandler)
	mux.HandleFunc("/api/links/", handler.LinksDetailHandler)

	// Operational endpoints
	mux.HandleFunc("/healthz", handler.Healthz)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Dashboard at the root, redirect everywhere else (catch-all)
	mux.HandleFunc("/", handler.Redirect)

	var finalHandler http.Handler = metrics.Middleware(mux)

	// Logging middleware goes outermost
	if verbose {
		loggingMiddleware := NewLoggingMiddleware(verbose)
		finalHandler = loggingMiddleware.Middleware(finalHandler)
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		handler: handler,
		server:  server,
		port:    port,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Printf("Server starting on port %s", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Server shutting down...")
	return s.server.Shutdown(ctx)
}

// Port returns the server port
func (s *Server) Port() string {
	return s.port
}

// Handler returns the server handler (useful for testing)
func (s *Server) Handler() *Handler {
	return s.handler
}
