package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/scoreboard-service/internal/app/matches"
	"github.com/preston-bernstein/scoreboard-service/internal/config"
	"github.com/preston-bernstein/scoreboard-service/internal/fixture"
	"github.com/preston-bernstein/scoreboard-service/internal/logging"
	"github.com/preston-bernstein/scoreboard-service/internal/metrics"
	"github.com/preston-bernstein/scoreboard-service/internal/replay"
	"github.com/preston-bernstein/scoreboard-service/internal/scoreboard"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	service       *matches.Service
	metricsServer httpServer
	replayer      Replayer
	metricsStop   func(context.Context) error
}

// New constructs a server with a fresh board, metrics and replay wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)
	svc := matches.NewService(scoreboard.NewBoard(), logger, recorder)

	var rp Replayer
	if cfg.Replay.Enabled {
		rp = replay.New(fixture.New(), svc, logger, recorder, cfg.Replay.Scenario, cfg.Replay.Interval)
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		service:       svc,
		metricsServer: metricsSrv,
		replayer:      rp,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *matches.Service, metricsSrv httpServer, rp Replayer) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		service:       svc,
		metricsServer: metricsSrv,
		replayer:      rp,
	}
}

// Run starts the metrics listener and the replayer, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	ctx = logging.WithLogger(ctx, s.logger)
	s.startMetrics(stop)
	if s.replayer != nil {
		s.replayer.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

// Service exposes the match service.
func (s *Server) Service() *matches.Service {
	return s.service
}

func (s *Server) startMetrics(stop context.CancelFunc) {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.replayer != nil {
		if err := s.replayer.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop replay", err)
		}
		status := s.replayer.Status()
		logging.Info(s.logger, "replay status",
			"applied", status.Applied,
			"failed", status.Failed,
			"finished", status.Finished,
		)
	}

	if s.service != nil {
		replay.LogSummary(s.logger, s.service.Summary())
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newMetricsServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}
