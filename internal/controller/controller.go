package controller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/couchcryptid/storm-controller/internal/domain"
	"github.com/couchcryptid/storm-controller/internal/observability"
)

// EntrySource supplies the entries of the tunables file.
type EntrySource interface {
	LoadEntries() ([]domain.ConfigEntry, error)
}

// WaveHost exposes the host ocean state the wave hook reads and writes.
type WaveHost interface {
	WaveInput() domain.WaveInput
	ApplyWaves(out domain.WaveOutput)
}

// ConsoleInput is the host console text field. The controller registers a
// submit callback once and writes command responses back through SetText.
type ConsoleInput interface {
	OnSubmit(fn func(text string))
	SetText(text string)
}

// SoundPlayer plays the confirmation sound for a granted storm.
type SoundPlayer interface {
	PlayConfirmation()
}

// Controller owns the active tunables and the pending storm request. Its
// methods are the hooks the host calls from its update loop.
type Controller struct {
	source    EntrySource
	sound     SoundPlayer
	matchMode domain.MatchMode
	logger    *slog.Logger
	metrics   *observability.Metrics

	loadMu   sync.Mutex // serializes StartSession and Reload
	tunables atomic.Pointer[domain.Tunables]
	storm    domain.StormTrigger
	enabled  atomic.Bool
	started  atomic.Bool

	consoleMu sync.Mutex
	console   ConsoleInput
}

// New creates an enabled Controller holding the default tunables. A nil
// sound player disables the confirmation sound.
func New(source EntrySource, sound SoundPlayer, matchMode domain.MatchMode, logger *slog.Logger, metrics *observability.Metrics) *Controller {
	c := &Controller{
		source:    source,
		sound:     sound,
		matchMode: matchMode,
		logger:    logger,
		metrics:   metrics,
	}
	c.enabled.Store(true)
	c.storeTunables(domain.DefaultTunables())
	return c
}

// SetEnabled toggles the controller. While disabled every hook is a no-op.
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled.Store(enabled)
	c.logger.Info("storm controller toggled", "enabled", enabled)
}

// Enabled reports whether hooks are active.
func (c *Controller) Enabled() bool { return c.enabled.Load() }

// Tunables returns a snapshot of the active tunables.
func (c *Controller) Tunables() domain.Tunables {
	return *c.tunables.Load()
}

// PendingStorm reports the storm request waiting for the next storm tick.
func (c *Controller) PendingStorm() (domain.StormRequest, bool) {
	return c.storm.Pending()
}

// CheckReadiness returns nil once a session has started.
func (c *Controller) CheckReadiness(_ context.Context) error {
	if !c.started.Load() {
		return errors.New("session has not started yet")
	}
	return nil
}

func (c *Controller) storeTunables(t domain.Tunables) {
	c.tunables.Store(&t)
	for _, f := range t.Fields() {
		c.metrics.TunableValue.WithLabelValues(f.Key).Set(f.Value)
	}
}

// Status is a point-in-time view of the controller for operators.
type Status struct {
	Enabled      bool                 `json:"enabled"`
	Started      bool                 `json:"session_started"`
	Tunables     map[string]float64   `json:"tunables"`
	PendingStorm *domain.StormRequest `json:"pending_storm,omitempty"`
}

// Status reports the current controller state.
func (c *Controller) Status() Status {
	fields := c.Tunables().Fields()
	st := Status{
		Enabled:  c.Enabled(),
		Started:  c.started.Load(),
		Tunables: make(map[string]float64, len(fields)),
	}
	for _, f := range fields {
		st.Tunables[f.Key] = f.Value
	}
	if req, ok := c.PendingStorm(); ok {
		st.PendingStorm = &req
	}
	return st
}
