// Command camprofile-server serves the cam profile generator over HTTP.
//
// Usage:
//
//	camprofile-server -config camprofile.yaml
//	camprofile-server -addr :8080 -v
//
// Endpoints: GET / lists the motion profiles, POST /generate/ returns a
// preview and plots, GET /export_csv/ downloads the last generated table of
// the session, and the metrics path serves Prometheus metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/tphakala/go-cam-profile/internal/config"
	"github.com/tphakala/go-cam-profile/internal/server"
	"github.com/tphakala/go-cam-profile/internal/simdops"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "YAML configuration file (defaults when empty)")
		addr       = flag.String("addr", "", "Listen address (overrides server.addr)")
		verbose    = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.New(cfg, server.Options{Registry: reg, Verbose: *verbose}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s (metrics at %s)", cfg.Server.Addr, cfg.Metrics.Path)
		if *verbose {
			log.Printf("SIMD: %s", simdops.Info())
			log.Printf("Points per segment: %d (max %d), parallel: %v",
				cfg.Generator.DefaultPointsPerSegment, cfg.Generator.MaxPointsPerSegment, cfg.Generator.EnableParallel)
		}
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

	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
