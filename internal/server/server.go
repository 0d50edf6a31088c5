package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quantfeed/stock-data/internal/config"
	"github.com/quantfeed/stock-data/internal/model"
	"github.com/quantfeed/stock-data/internal/query"
	"github.com/quantfeed/stock-data/internal/store"
)

// ObservationReader is the read-side store surface the handlers need.
type ObservationReader interface {
	List(ctx context.Context, filter store.ListFilter, sort []query.SortField, page query.Page) ([]model.Observation, int, int, error)
	Stats(ctx context.Context, filter store.StatsFilter) (store.Stats, error)
}

// Pinger reports store connectivity for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server serves the read API over HTTP.
type Server struct {
	cfg    config.ServerConfig
	reader ObservationReader
	pinger Pinger
	logger *slog.Logger

	httpServer *http.Server
}

// NewServer creates a Server.
func NewServer(cfg config.ServerConfig, reader ObservationReader, pinger Pinger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		reader: reader,
		pinger: pinger,
		logger: logger,
	}
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/financial_data", s.handleFinancialData).Methods(http.MethodGet)
	r.HandleFunc("/api/statistics", s.handleStatistics).Methods(http.MethodGet)
	r.HandleFunc("/livez", s.handleLivez).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	return r
}

// Start begins serving; it blocks until the listener fails or Stop runs.
func (s *Server) Start() error {
	s.logger.Info("read API listening", "addr", s.cfg.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping read API")
	return s.httpServer.Shutdown(ctx)
}
