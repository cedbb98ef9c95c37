package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/logger"
	"github.com/lixenwraith/vi-pong/metrics"
	"github.com/lixenwraith/vi-pong/physics"
)

var (
	headlessFlag = flag.Bool("headless", false, "Run both paddles automatically without a terminal")
	durationFlag = flag.Duration("duration", 60*time.Second, "Simulated time for headless runs")
	physicsFlag  = flag.String("physics", "", "Physics engine override: boundary, chipmunk")
)

func main() {
	defer core.Recover()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

// run owns every resource; deferred cleanup completes before main exits
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *physicsFlag != "" {
		cfg.Physics = *physicsFlag
	}

	log, closeLog, err := openLogger(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Warn("sentry init failed", logger.Error(err))
		} else {
			core.EnableCrashReporting()
			defer sentry.Flush(2 * time.Second)
		}
	}

	mm := serveMetrics(cfg, log)
	if cfg.StatsviewAddr != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(cfg.StatsviewAddr))
		mgr := statsview.New()
		core.Go(func() { mgr.Start() })
		defer mgr.Stop()
	}

	eng, err := physics.New(cfg.Physics)
	if err != nil {
		return fmt.Errorf("create physics engine: %w", err)
	}
	match, err := game.New(cfg.Tuning, eng, game.WithLogger(log), game.WithMetrics(mm))
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	log.Info("match created",
		logger.String("session", match.Session().String()),
		logger.String("physics", cfg.Physics))

	if *headlessFlag {
		if err := runHeadless(match, *durationFlag, os.Stdout); err != nil {
			return fmt.Errorf("headless run: %w", err)
		}
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	if err := runTerminal(screen, match, cfg, log); err != nil {
		log.Error("game failed", logger.Error(err))
		return err
	}
	return nil
}

// openLogger writes to the configured file, the terminal owns stdout
func openLogger(cfg *config.Config) (logger.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	log, err := logger.New(w, cfg.LogLevel)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return log, closeFn, nil
}

func serveMetrics(cfg *config.Config, log logger.Logger) *metrics.Manager {
	if cfg.MetricsAddr == "" {
		return nil
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mm := metrics.NewManager(metrics.WithPrometheusRegistry(registry))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	core.Go(func() {
		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
			log.Error("metrics server stopped", logger.Error(err))
		}
	})
	return mm
}
