// Command stormctl runs the storm controller against a headless host
// simulation. Console commands are read from stdin and answered on stderr,
// leaving stdout to the logs. SIGHUP reloads the tunables file.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/storm-controller/internal/adapter/audio"
	"github.com/couchcryptid/storm-controller/internal/adapter/console"
	"github.com/couchcryptid/storm-controller/internal/adapter/httpadapter"
	"github.com/couchcryptid/storm-controller/internal/adapter/tunablefile"
	"github.com/couchcryptid/storm-controller/internal/config"
	"github.com/couchcryptid/storm-controller/internal/controller"
	"github.com/couchcryptid/storm-controller/internal/hostsim"
	"github.com/couchcryptid/storm-controller/internal/observability"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Confirmation chime (feature-flagged via AUDIO_ENABLED).
	var sound controller.SoundPlayer
	if cfg.AudioEnabled {
		chime, err := audio.NewChime(logger)
		if err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			sound = chime
			defer chime.Close()
		}
	}

	loader := tunablefile.NewLoader(cfg.TunablesPath, logger, metrics)
	ctrl := controller.New(loader, sound, cfg.TunablesKeyMatch, logger, metrics)
	ctrl.SetEnabled(cfg.Enabled)

	host := hostsim.New(ctrl, clockwork.NewRealClock(), cfg.DistanceToLand, logger)

	con := console.New(os.Stdin, os.Stderr)
	con.HandleLocal("status", func() { printStatus(con, ctrl, host) })
	con.HandleLocal("reload", ctrl.Reload)
	con.HandleLocal("eyes", func() { host.SetVisibilityImpaired(!host.Snapshot().VisibilityImpaired) })

	ctrl.StartSession()
	ctrl.BindConsole(con)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				logger.Info("reload requested", "path", loader.Path())
				ctrl.Reload()
			}
		}
	}()

	// Optional health/metrics server (HTTP_ADDR).
	var srv *httpadapter.Server
	if cfg.HTTPAddr != "" {
		srv = httpadapter.NewServer(cfg.HTTPAddr, ctrl, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	// Start host tick loop.
	go func() {
		if err := host.Run(ctx, cfg.TickInterval); err != nil {
			logger.Error("host simulation error", "error", err)
		}
	}()

	// Start console reader. EOF on stdin leaves the simulation running.
	go func() {
		if err := con.Run(ctx); err != nil {
			logger.Error("console error", "error", err)
			return
		}
		logger.Info("console input closed")
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
	}
	metrics.SessionActive.Set(0)

	logger.Info("shutdown complete")
}

func printStatus(con *console.Console, ctrl *controller.Controller, host *hostsim.Host) {
	st := ctrl.Status()
	snap := host.Snapshot()

	con.Printf("tick %d  enabled=%t  blend=%.2f  rising=%.3f  falling=%.3f\n",
		snap.Tick, st.Enabled, snap.Blend, snap.RisingWeight, snap.FallingWeight)
	con.Printf("storm active=%t radius=%.0f at (%.0f, %.0f, %.0f)\n",
		snap.Storm.Active, snap.Storm.Radius, snap.Storm.Position.X, snap.Storm.Position.Y, snap.Storm.Position.Z)
	for _, f := range ctrl.Tunables().Fields() {
		con.Printf("  %-28s %g\n", f.Key, f.Value)
	}
	if st.PendingStorm != nil {
		con.Printf("pending storm radius=%.0f\n", st.PendingStorm.Radius)
	}
}
