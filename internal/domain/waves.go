package domain

// Distance-to-land bands used to size inertia waves.
const (
	nearShoreStart = 150.0
	nearShoreEnd   = 600.0
	nearShoreMin   = 0.15
	nearShoreMax   = 0.65
	farShoreStart  = 1300.0
	farShoreEnd    = 2200.0
	farShoreScale  = 0.35

	impairedVisibilityDampener = 0.1
)

// WaveInput is the host state read at each wave tick.
type WaveInput struct {
	Blend              float64 // progress of the current channel transition, 0..1
	DistanceToLand     float64
	VisibilityImpaired bool
	InertiaMagnitude   float64
	Inertia            float64
}

// WaveOutput is written back to the host after each wave tick.
type WaveOutput struct {
	RisingWeight  float64
	FallingWeight float64

	// Host multipliers overridden from the tunables.
	WindSpeedMult    float64
	InertiaWindScale float64
	SmallWavesMult   float64

	// SpectrumWindSpeed drives regeneration of the rising channel's
	// small-wave spectrum together with SmallWavesMult.
	SpectrumWindSpeed float64
}

// ComputeWaves derives both inertia channel weights from the host state:
//
//	near     = clamp(inverseLerp(150, 600, d), 0.15, 0.65)
//	far      = inverseLerp(1300, 2200, d) * 0.35
//	combined = magnitude * inertiaWindScale * (near + far) * dampener
//	rising   = lerp(0, combined, t) * waveWeight
//	falling  = lerp(combined, 0, t) * waveWeight
//
// where d is the distance to land plus WaveDistanceToLandIncrease and the
// dampener is 0.1 while visibility is impaired.
func ComputeWaves(p Tunables, in WaveInput) WaveOutput {
	d := in.DistanceToLand + p.WaveDistanceToLandIncrease

	near := clamp(inverseLerp(nearShoreStart, nearShoreEnd, d), nearShoreMin, nearShoreMax)
	far := inverseLerp(farShoreStart, farShoreEnd, d) * farShoreScale

	dampener := 1.0
	if in.VisibilityImpaired {
		dampener = impairedVisibilityDampener
	}

	combined := in.InertiaMagnitude * p.InertiaWindScale * (near + far) * dampener
	t := clamp(in.Blend, 0, 1)

	return WaveOutput{
		RisingWeight:      lerp(0, combined, t) * p.WaveWeight,
		FallingWeight:     lerp(combined, 0, t) * p.WaveWeight,
		WindSpeedMult:     p.WindSpeedWaveFactor,
		InertiaWindScale:  p.InertiaWindScale,
		SmallWavesMult:    p.SmallWavesValueMultiplier,
		SpectrumWindSpeed: in.Inertia * p.WindSpeedWaveFactor,
	}
}

// inverseLerp returns where v sits between a and b, clamped to 0..1.
func inverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return clamp((v-a)/(b-a), 0, 1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
