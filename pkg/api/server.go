// Package api exposes MimirDB's operational surface over HTTP: health,
// Prometheus metrics, the cached catalog, and row log statistics.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/ssargent/mimirdb/pkg/meta"
	"github.com/ssargent/mimirdb/pkg/rowlog"
)

// Server serves the operational endpoints.
type Server struct {
	catalog *meta.Cache
	log     *rowlog.Writer
	config  ServerConfig
}

// NewServer creates a server over the given catalog cache and row log
// writer. A nil catalog lists no tables; a nil log writer makes /v1/stats
// report unavailable.
func NewServer(catalog *meta.Cache, logWriter *rowlog.Writer, config ServerConfig) *Server {
	return &Server{
		catalog: catalog,
		log:     logWriter,
		config:  config,
	}
}

// Routes builds the router with all endpoints configured.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Get("/tables", s.handleTables)
		r.Get("/stats", s.handleStats)
	})

	return r
}

// Start runs the server until it fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Bind, s.config.Port)
	log.WithField("addr", addr).Info("starting stats server")
	return http.ListenAndServe(addr, s.Routes())
}
