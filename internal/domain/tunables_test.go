package domain

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseAll(t *testing.T, input string) []ConfigEntry {
	t.Helper()
	entries, _, err := ParseEntries(strings.NewReader(input))
	require.NoError(t, err)
	return entries
}

func TestDefaultTunables(t *testing.T) {
	d := DefaultTunables()

	values := make([]float64, 0, 5)
	for _, f := range d.Fields() {
		values = append(values, f.Value)
	}
	assert.Equal(t, []float64{0.2, 0.3, 1.0, 0.0, 0.3}, values)
}

func TestApplyEntries_SingleOverride(t *testing.T) {
	entries := parseAll(t, "windSpeedWaveFactor:0.42")

	got, rejected := ApplyEntries(DefaultTunables(), entries, MatchContains, discardLogger())

	want := DefaultTunables()
	want.WindSpeedWaveFactor = 0.42
	assert.Equal(t, want, got)
	assert.ElementsMatch(t, []string{
		KeyInertiaWindScale, KeyWaveWeight, KeyWaveDistanceToLandIncrease, KeySmallWavesValueMultiplier,
	}, rejected)
}

func TestApplyEntries_AllKeys(t *testing.T) {
	entries := parseAll(t, strings.Join([]string{
		"windSpeedWaveFactor:0.5",
		"waveInertiaWindScale:0.9",
		"waveWeight:2",
		"waveDistanceToLandIncrease:1200",
		"smallWavesValueMultiplier:0.05",
	}, "\n"))

	got, rejected := ApplyEntries(DefaultTunables(), entries, MatchExact, discardLogger())

	assert.Empty(t, rejected)
	assert.Equal(t, Tunables{
		WindSpeedWaveFactor:        0.5,
		InertiaWindScale:           0.9,
		WaveWeight:                 2,
		WaveDistanceToLandIncrease: 1200,
		SmallWavesValueMultiplier:  0.05,
	}, got)
}

func TestApplyEntries_MalformedLineDoesNotAbort(t *testing.T) {
	entries := parseAll(t, strings.Join([]string{
		"windSpeedWaveFactor:0.5",
		"waveInertiaWindScale 0.9",
		"waveWeight:2",
		"waveDistanceToLandIncrease:100",
		"smallWavesValueMultiplier:0.05",
	}, "\n"))

	got, rejected := ApplyEntries(DefaultTunables(), entries, MatchContains, discardLogger())

	assert.Equal(t, []string{KeyInertiaWindScale}, rejected)
	assert.InDelta(t, 0.5, got.WindSpeedWaveFactor, 1e-9)
	assert.InDelta(t, 0.3, got.InertiaWindScale, 1e-9)
	assert.InDelta(t, 2.0, got.WaveWeight, 1e-9)
	assert.InDelta(t, 100.0, got.WaveDistanceToLandIncrease, 1e-9)
	assert.InDelta(t, 0.05, got.SmallWavesValueMultiplier, 1e-9)
}

func TestApplyEntries_BadValuesKeepPrevious(t *testing.T) {
	base := DefaultTunables()
	base.WaveWeight = 4

	entries := parseAll(t, "waveWeight:heavy\nwindSpeedWaveFactor:NaN\nsmallWavesValueMultiplier:+Inf")
	got, rejected := ApplyEntries(base, entries, MatchContains, discardLogger())

	assert.Equal(t, base, got)
	assert.Len(t, rejected, 5)
}

func TestApplyEntries_Idempotent(t *testing.T) {
	entries := parseAll(t, "waveWeight:1.7\nwaveDistanceToLandIncrease:50")

	once, _ := ApplyEntries(DefaultTunables(), entries, MatchContains, discardLogger())
	twice, _ := ApplyEntries(once, entries, MatchContains, discardLogger())

	assert.Equal(t, once, twice)
}

func TestApplyEntries_NoEntriesKeepsDefaults(t *testing.T) {
	got, rejected := ApplyEntries(DefaultTunables(), nil, MatchContains, discardLogger())

	assert.Equal(t, DefaultTunables(), got)
	assert.Len(t, rejected, 5)
}
