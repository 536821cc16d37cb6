package controller

import (
	"github.com/couchcryptid/storm-controller/internal/domain"
)

// OnWaveTick is the per-tick wave hook. It blends the host's two inertia
// wave channels using the active tunables.
func (c *Controller) OnWaveTick(host WaveHost) {
	if !c.Enabled() {
		return
	}
	c.metrics.Ticks.WithLabelValues("wave").Inc()

	host.ApplyWaves(domain.ComputeWaves(c.Tunables(), host.WaveInput()))
}

// OnStormTick is the per-tick storm hook. A pending storm request is applied
// to entity at the observer's position and then cleared.
func (c *Controller) OnStormTick(entity domain.StormEntity, observer domain.Observer) {
	if !c.Enabled() {
		return
	}
	c.metrics.Ticks.WithLabelValues("storm").Inc()

	req, applied := c.storm.Apply(entity, observer)
	if !applied {
		return
	}
	c.metrics.StormsApplied.Inc()
	c.logger.Info("storm applied",
		"radius", req.Radius,
		"requested_at", req.RequestedAt,
	)
}

// BindConsole is the one-time UI binding hook. It registers the submit
// callback on the first console it sees and reports whether it bound.
func (c *Controller) BindConsole(console ConsoleInput) bool {
	if !c.Enabled() || console == nil {
		return false
	}

	c.consoleMu.Lock()
	if c.console != nil {
		c.consoleMu.Unlock()
		return false
	}
	c.console = console
	c.consoleMu.Unlock()

	console.OnSubmit(func(text string) {
		c.Submit(text)
	})
	c.logger.Info("console bound")
	return true
}

// Submit handles text entered in the console. Recognized commands update the
// pending storm request and their response is rendered to the bound console.
func (c *Controller) Submit(text string) domain.Command {
	if !c.Enabled() {
		return domain.Command{Kind: domain.CommandNone}
	}

	cmd, response := domain.ParseCommand(text)
	switch cmd.Kind {
	case domain.CommandNone:
		return cmd
	case domain.CommandGrant:
		c.storm.Request(0)
		c.playConfirmation()
		c.logger.Info("storm granted")
	case domain.CommandGrantWithRadius:
		c.storm.Request(float64(cmd.Radius))
		c.playConfirmation()
		c.logger.Info("storm granted", "radius", cmd.Radius)
	case domain.CommandInvalid:
		c.storm.ClearRadius()
		c.logger.Warn("storm command rejected", "text", text, "error", cmd.Err)
	}
	c.metrics.Commands.WithLabelValues(cmd.Kind.String()).Inc()

	c.render(response)
	return cmd
}

func (c *Controller) render(text string) {
	c.consoleMu.Lock()
	console := c.console
	c.consoleMu.Unlock()

	if console != nil {
		console.SetText(text)
	}
}

func (c *Controller) playConfirmation() {
	if c.sound != nil {
		c.sound.PlayConfirmation()
	}
}
