package hostsim

import (
	"math"

	"github.com/couchcryptid/storm-controller/internal/domain"
)

// WaveChannel is one of the two opposing inertia wave slots.
type WaveChannel struct {
	Weight            float64
	SpectrumWindSpeed float64
	SmallWavesMult    float64
}

// Ocean is a minimal stand-in for the host ocean updater. It blends two
// inertia channels and swaps them whenever a transition completes.
// It implements controller.WaveHost.
type Ocean struct {
	Channels    [2]WaveChannel
	WavesUp     int
	WavesDown   int
	Blend       float64
	BlendPerSec float64

	DistanceToLand     float64
	VisibilityImpaired bool

	// Inertia follows a slow swell so weights move between ticks.
	BaseMagnitude float64
	SwellPeriod   float64 // seconds
	elapsed       float64

	// Host multipliers last written by the wave hook.
	WindSpeedMult    float64
	InertiaWindScale float64
	SmallWavesMult   float64
}

// NewOcean returns an ocean at the given distance to land.
func NewOcean(distanceToLand float64) *Ocean {
	return &Ocean{
		WavesUp:        0,
		WavesDown:      1,
		BlendPerSec:    0.05,
		DistanceToLand: distanceToLand,
		BaseMagnitude:  8,
		SwellPeriod:    60,
	}
}

// Step advances the blend and the swell by dt seconds.
func (o *Ocean) Step(dt float64) {
	o.elapsed += dt
	o.Blend += o.BlendPerSec * dt
	if o.Blend >= 1 {
		o.Blend = 0
		o.WavesUp, o.WavesDown = o.WavesDown, o.WavesUp
	}
}

// Inertia returns the current inertia value.
func (o *Ocean) Inertia() float64 {
	if o.SwellPeriod <= 0 {
		return o.BaseMagnitude
	}
	return o.BaseMagnitude * (1 + 0.25*math.Sin(2*math.Pi*o.elapsed/o.SwellPeriod))
}

// WaveInput reports the ocean state to the wave hook.
func (o *Ocean) WaveInput() domain.WaveInput {
	inertia := o.Inertia()
	return domain.WaveInput{
		Blend:              o.Blend,
		DistanceToLand:     o.DistanceToLand,
		VisibilityImpaired: o.VisibilityImpaired,
		InertiaMagnitude:   math.Abs(inertia),
		Inertia:            inertia,
	}
}

// ApplyWaves writes the hook output to the rising and falling channels and
// regenerates the rising channel's small-wave spectrum.
func (o *Ocean) ApplyWaves(out domain.WaveOutput) {
	o.WindSpeedMult = out.WindSpeedMult
	o.InertiaWindScale = out.InertiaWindScale
	o.SmallWavesMult = out.SmallWavesMult

	o.Channels[o.WavesUp].Weight = out.RisingWeight
	o.Channels[o.WavesDown].Weight = out.FallingWeight
	o.Channels[o.WavesUp].SpectrumWindSpeed = out.SpectrumWindSpeed
	o.Channels[o.WavesUp].SmallWavesMult = out.SmallWavesMult
}
