package tunablefile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/couchcryptid/storm-controller/internal/domain"
	"github.com/couchcryptid/storm-controller/internal/observability"
)

// Loader reads the tunables file from disk.
// It implements controller.EntrySource.
type Loader struct {
	path    string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader for the file at path.
func NewLoader(path string, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{path: path, logger: logger, metrics: metrics}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string { return l.path }

// LoadEntries reads and parses the whole file. A missing file returns
// domain.ErrConfigMissing. Malformed lines are logged, counted and skipped.
func (l *Loader) LoadEntries() ([]domain.ConfigEntry, error) {
	entries, skipped, err := Load(l.path)
	for _, s := range skipped {
		l.logger.Warn("skipping malformed tunables line",
			"path", l.path,
			"line", s.Line,
			"text", s.Text,
		)
		l.metrics.ConfigLinesSkipped.Inc()
	}
	if err != nil {
		return nil, err
	}
	l.logger.Info("tunables file read", "path", l.path, "entries", len(entries))
	return entries, nil
}

// Load opens path and parses it in full.
func Load(path string) ([]domain.ConfigEntry, []domain.LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrConfigMissing, path)
		}
		return nil, nil, fmt.Errorf("open tunables file: %w", err)
	}
	defer f.Close()

	entries, skipped, err := domain.ParseEntries(f)
	if err != nil {
		return nil, nil, err
	}
	return entries, skipped, nil
}
