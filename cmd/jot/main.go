package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mchmarny/jot/pkg/config"
	"github.com/mchmarny/jot/pkg/dispatch"
	"github.com/mchmarny/jot/pkg/logger"
	"github.com/mchmarny/jot/pkg/menu"
	"github.com/mchmarny/jot/pkg/metric"
	"github.com/mchmarny/jot/pkg/server"
	"github.com/mchmarny/jot/pkg/shell"
)

var (
	version = "dev"     // Set at build time via -ldflags "-X main.version=version"
	commit  = "none"    // Set at build time via -ldflags "-X main.commit=commit"
	date    = "unknown" // Set at build time via -ldflags "-X main.date=date"

	configPath = flag.String("config", "", "Path to the TOML config file")
	port       = flag.Int("port", -1, "Bridge port, overrides the config file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *port >= 0 {
		cfg.Server.Port = *port
	}

	logger.SetDefaultLogger("jot", version, cfg.Log.Level)
	slog.Info("starting jot", "commit", commit, "date", date)

	// The menu must be complete before the window is shown.
	m, err := menu.Build(menu.Platform(cfg.Menu.Platform))
	if err != nil {
		slog.Error("failed to build menu", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	events := shell.NewBroadcaster(cfg.Events.Buffer,
		metric.NewCounter(reg, "events", "dropped_total", "Notifications dropped for slow subscribers."))
	d := dispatch.New(events, dispatch.WithMetrics(reg))
	sh := shell.New(m, d, events)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sh.Run(ctx,
		server.WithPort(cfg.Server.Port),
		server.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		server.WithMetrics(reg),
		server.WithErrorLog(logger.NewLogLogger(slog.LevelError)),
	); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
