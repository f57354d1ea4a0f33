// Package app wires the planner, timezone resolver, metric sinks and
// HTTP surface into a runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apischedule "github.com/robdg22/jetshift/api/schedule"
	"github.com/robdg22/jetshift/config"
	coremetrics "github.com/robdg22/jetshift/core/metrics"
	"github.com/robdg22/jetshift/core/schedule"
	"github.com/robdg22/jetshift/infra/logger"
	"github.com/robdg22/jetshift/infra/metrics"
	"github.com/robdg22/jetshift/infra/tz"
)

// Service hosts the planner API and its metric sinks.
type Service struct {
	Planner *schedule.Planner

	handler     http.Handler
	sink        coremetrics.Sink
	log         logger.Logger
	apiAddr     string
	promEnabled bool
	promAddr    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetGlobalLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("logging config: %w", err)
	}
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	planner := schedule.New(tz.NewResolver())
	handler := apischedule.New(planner, sink, logger.New("api"))

	return &Service{
		Planner:     planner,
		handler:     handler,
		sink:        sink,
		log:         logg,
		apiAddr:     cfg.API.Addr,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promAddr:    cfg.Metrics.PrometheusAddr,
	}, nil
}

// Run starts the API server (and the Prometheus server when enabled)
// and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: s.apiAddr, Handler: s.handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api server shutdown: %v", err)
		}
	}()
	s.log.Infof("planner API listening on %s", s.apiAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
