package controller

import (
	"errors"

	"github.com/couchcryptid/storm-controller/internal/domain"
)

// StartSession is the session-start hook. It reads the tunables file and
// applies it on top of the defaults. A missing or unreadable file leaves the
// defaults in place; the session starts either way.
func (c *Controller) StartSession() {
	if !c.Enabled() {
		return
	}
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	next := domain.DefaultTunables()
	if entries, ok := c.loadEntries(); ok {
		next = c.apply(next, entries)
	}
	c.storeTunables(next)

	c.started.Store(true)
	c.metrics.SessionActive.Set(1)
	c.logger.Info("session started", tunableAttrs(next)...)
}

// Reload re-reads the tunables file and swaps the whole parameter set. The
// current values serve as the base, so keys absent from the file keep their
// value. If the file cannot be read the current set stays active. Concurrent
// reloads run one after another, each on top of the previous result.
func (c *Controller) Reload() {
	if !c.Enabled() {
		return
	}
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	entries, ok := c.loadEntries()
	if !ok {
		c.logger.Warn("tunables reload skipped, keeping current values")
		return
	}
	next := c.apply(c.Tunables(), entries)
	c.storeTunables(next)
	c.logger.Info("tunables reloaded", tunableAttrs(next)...)
}

// loadEntries reads the tunables file. It reports false when nothing should
// be applied.
func (c *Controller) loadEntries() ([]domain.ConfigEntry, bool) {
	entries, err := c.source.LoadEntries()
	switch {
	case errors.Is(err, domain.ErrConfigMissing):
		c.logger.Warn("tunables file missing, using defaults", "error", err)
		c.metrics.ConfigReloads.WithLabelValues("missing").Inc()
		return nil, false
	case err != nil:
		c.logger.Error("tunables file unreadable, using defaults", "error", err)
		c.metrics.ConfigReloads.WithLabelValues("error").Inc()
		return nil, false
	}
	c.metrics.ConfigReloads.WithLabelValues("applied").Inc()
	return entries, true
}

func (c *Controller) apply(base domain.Tunables, entries []domain.ConfigEntry) domain.Tunables {
	next, rejected := domain.ApplyEntries(base, entries, c.matchMode, c.logger)
	c.metrics.ConfigValuesRejected.Add(float64(len(rejected)))
	return next
}

func tunableAttrs(t domain.Tunables) []any {
	fields := t.Fields()
	attrs := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		attrs = append(attrs, f.Key, f.Value)
	}
	return attrs
}
