package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"emissions/internal/emissions/handler"
	emissionsmetrics "emissions/internal/emissions/metrics"
	"emissions/internal/emissions/service"
	"emissions/internal/ingest"
	"emissions/internal/platform/config"
	"emissions/internal/platform/httpserver"
	"emissions/internal/platform/logger"
	"emissions/internal/platform/metrics"
	httptransport "emissions/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Aggregation logic lives in internal/emissions.
func main() {
	cfg, err := config.FromEnv()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	emissionsMetrics := emissionsmetrics.New(promReg)

	dataset, err := ingest.NewLoader(ingest.Source{
		DataFile:       cfg.Data.File,
		ContinentsFile: cfg.Data.ContinentsFile,
		RawInput:       cfg.Data.RawInput,
	}, log).Load(ctx)
	if err != nil {
		return err
	}

	reg, err := service.LoadRegistry(ctx, dataset.Records, service.LoadOptions{
		Strict:  cfg.Data.StrictIngest,
		Logger:  log.With("load_id", dataset.ID),
		Metrics: emissionsMetrics,
	})
	if err != nil {
		return err
	}

	svc, err := service.New(reg,
		service.WithLogger(log),
		service.WithMetrics(emissionsMetrics),
		service.WithMaxTopN(cfg.MaxTopN),
	)
	if err != nil {
		return err
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		Metrics:        metrics.New(promReg),
		Gatherer:       promReg,
		RequestTimeout: cfg.RequestTimeout,
	}, handler.New(svc, log))

	srv := httpserver.New(cfg.Addr, router)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting emissions server", "addr", cfg.Addr, "countries", reg.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
