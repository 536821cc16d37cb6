// Package hostsim is a headless stand-in for the host simulation. It owns an
// ocean, a wandering storm and a camera, and calls the controller hooks on
// every tick the way the host update loop would.
package hostsim

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/storm-controller/internal/controller"
	"github.com/couchcryptid/storm-controller/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Hooks are the per-tick callbacks the host invokes.
type Hooks interface {
	OnWaveTick(host controller.WaveHost)
	OnStormTick(entity domain.StormEntity, observer domain.Observer)
}

// Snapshot is a copy of the host state between ticks.
type Snapshot struct {
	Tick               int64
	RisingWeight       float64
	FallingWeight      float64
	Blend              float64
	VisibilityImpaired bool
	Storm              Storm
	Camera             domain.Vec3
}

// Host drives the hooks from a fixed-rate tick loop.
type Host struct {
	hooks  Hooks
	clock  clockwork.Clock
	logger *slog.Logger

	mu     sync.Mutex
	ocean  *Ocean
	storm  *Storm
	camera *Camera

	ticks atomic.Int64
}

// New creates a Host at the given distance to land.
func New(hooks Hooks, clock clockwork.Clock, distanceToLand float64, logger *slog.Logger) *Host {
	return &Host{
		hooks:  hooks,
		clock:  clock,
		logger: logger,
		ocean:  NewOcean(distanceToLand),
		storm:  NewStorm(),
		camera: &Camera{},
	}
}

// Run ticks every interval until the context is cancelled.
func (h *Host) Run(ctx context.Context, interval time.Duration) error {
	h.logger.Info("host simulation started", "tick_interval", interval)

	ticker := h.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("host simulation stopping", "reason", ctx.Err(), "ticks", h.ticks.Load())
			return nil
		case <-ticker.Chan():
			h.Tick(interval.Seconds())
		}
	}
}

// Tick advances the simulation by dt seconds and runs both hooks once.
func (h *Host) Tick(dt float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ocean.Step(dt)
	h.camera.Pos.Z += dt // the boat drifts north
	h.hooks.OnWaveTick(h.ocean)
	h.hooks.OnStormTick(h.storm, h.camera)
	h.ticks.Add(1)
}

// Ticks returns how many ticks have run.
func (h *Host) Ticks() int64 { return h.ticks.Load() }

// SetVisibilityImpaired toggles the eyes-closed state fed to the wave hook.
func (h *Host) SetVisibilityImpaired(impaired bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ocean.VisibilityImpaired = impaired
}

// Snapshot copies the current host state.
func (h *Host) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Snapshot{
		Tick:               h.ticks.Load(),
		RisingWeight:       h.ocean.Channels[h.ocean.WavesUp].Weight,
		FallingWeight:      h.ocean.Channels[h.ocean.WavesDown].Weight,
		Blend:              h.ocean.Blend,
		VisibilityImpaired: h.ocean.VisibilityImpaired,
		Storm:              *h.storm,
		Camera:             h.camera.Pos,
	}
}
