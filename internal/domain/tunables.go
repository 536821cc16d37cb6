package domain

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Tunables file keys.
const (
	KeyWindSpeedWaveFactor        = "windSpeedWaveFactor"
	KeyInertiaWindScale           = "waveInertiaWindScale"
	KeyWaveWeight                 = "waveWeight"
	KeyWaveDistanceToLandIncrease = "waveDistanceToLandIncrease"
	KeySmallWavesValueMultiplier  = "smallWavesValueMultiplier"
)

// Tunables is the set of wave parameters overridable from the tunables file.
type Tunables struct {
	WindSpeedWaveFactor        float64 // wind effect on wave strength
	InertiaWindScale           float64 // wind effect on wave inertia
	WaveWeight                 float64 // applied to both inertia wave channels
	WaveDistanceToLandIncrease float64 // added to the host's distance to land
	SmallWavesValueMultiplier  float64 // waves in between the swells
}

// DefaultTunables returns the host's stock wave parameters.
func DefaultTunables() Tunables {
	return Tunables{
		WindSpeedWaveFactor:        0.2,
		InertiaWindScale:           0.3,
		WaveWeight:                 1.0,
		WaveDistanceToLandIncrease: 0.0,
		SmallWavesValueMultiplier:  0.3,
	}
}

// Fields returns the tunables keyed by their file key, in file order.
func (t Tunables) Fields() []TunableField {
	return []TunableField{
		{Key: KeyWindSpeedWaveFactor, Value: t.WindSpeedWaveFactor},
		{Key: KeyInertiaWindScale, Value: t.InertiaWindScale},
		{Key: KeyWaveWeight, Value: t.WaveWeight},
		{Key: KeyWaveDistanceToLandIncrease, Value: t.WaveDistanceToLandIncrease},
		{Key: KeySmallWavesValueMultiplier, Value: t.SmallWavesValueMultiplier},
	}
}

// TunableField pairs a tunables file key with its current value.
type TunableField struct {
	Key   string
	Value float64
}

// ApplyEntries overrides each tunable of base whose key resolves to a finite
// float in entries. Missing or unparsable values keep the base value and are
// returned as rejected keys. ApplyEntries does not modify base.
func ApplyEntries(base Tunables, entries []ConfigEntry, mode MatchMode, logger *slog.Logger) (Tunables, []string) {
	out := base
	var rejected []string

	targets := []struct {
		key   string
		field *float64
	}{
		{KeyWindSpeedWaveFactor, &out.WindSpeedWaveFactor},
		{KeyInertiaWindScale, &out.InertiaWindScale},
		{KeyWaveWeight, &out.WaveWeight},
		{KeyWaveDistanceToLandIncrease, &out.WaveDistanceToLandIncrease},
		{KeySmallWavesValueMultiplier, &out.SmallWavesValueMultiplier},
	}

	for _, tgt := range targets {
		raw, found := GetValue(entries, tgt.key, mode)
		if !found {
			logger.Warn("tunable not set, keeping current value", "key", tgt.key, "value", *tgt.field)
			rejected = append(rejected, tgt.key)
			continue
		}
		v, ok := ParseTunable(raw)
		if !ok {
			logger.Warn("bad tunable value, keeping current value", "key", tgt.key, "raw", raw, "value", *tgt.field)
			rejected = append(rejected, tgt.key)
			continue
		}
		*tgt.field = v
	}

	return out, rejected
}

// ParseTunable parses a tunable value. Surrounding whitespace is ignored;
// NaN and infinities are rejected.
func ParseTunable(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
