package tunablefile

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/storm-controller/internal/domain"
	"github.com/couchcryptid/storm-controller/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ReadsEntries(t *testing.T) {
	path := writeFile(t, "windSpeedWaveFactor:0.42\nwaveWeight:1.5\n")

	entries, skipped, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, []domain.ConfigEntry{
		{Key: "windSpeedWaveFactor", RawValue: "0.42"},
		{Key: "waveWeight", RawValue: "1.5"},
	}, entries)
}

func TestLoad_MissingFile(t *testing.T) {
	entries, _, err := Load(filepath.Join(t.TempDir(), "absent.txt"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigMissing))
	assert.Empty(t, entries)
}

func TestLoad_DirectoryIsReadError(t *testing.T) {
	_, _, err := Load(t.TempDir())

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrConfigMissing))
}

func TestLoader_CountsSkippedLines(t *testing.T) {
	path := writeFile(t, "waveWeight:2\nbroken line\nalso broken\n")
	metrics := observability.NewMetricsForTesting()
	loader := NewLoader(path, discardLogger(), metrics)

	entries, err := loader.LoadEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ConfigLinesSkipped))
	assert.Equal(t, path, loader.Path())
}
