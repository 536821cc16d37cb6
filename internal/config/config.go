package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/couchcryptid/storm-controller/internal/domain"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// DefaultTunablesPath is where the host keeps the mod's tunables file,
// relative to the host working directory.
const DefaultTunablesPath = "Mods/SailwindStormController/config.txt"

// Config holds all controller settings, populated from environment variables.
type Config struct {
	TunablesPath     string
	TunablesKeyMatch domain.MatchMode
	Enabled          bool

	// Host harness settings.
	TickInterval   time.Duration
	DistanceToLand float64
	AudioEnabled   bool

	HTTPAddr        string // empty disables the health/metrics listener
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	keyMatch, err := domain.ParseMatchMode(sharedcfg.EnvOrDefault("TUNABLES_KEY_MATCH", "contains"))
	if err != nil {
		return nil, fmt.Errorf("invalid TUNABLES_KEY_MATCH: %w", err)
	}

	tickInterval, err := time.ParseDuration(sharedcfg.EnvOrDefault("TICK_INTERVAL", "50ms"))
	if err != nil || tickInterval <= 0 {
		return nil, errors.New("invalid TICK_INTERVAL")
	}

	enabled, err := parseBool("CONTROLLER_ENABLED", "true")
	if err != nil {
		return nil, err
	}

	audioEnabled, err := parseBool("AUDIO_ENABLED", "false")
	if err != nil {
		return nil, err
	}

	distanceToLand, err := strconv.ParseFloat(sharedcfg.EnvOrDefault("DISTANCE_TO_LAND", "800"), 64)
	if err != nil || distanceToLand < 0 {
		return nil, errors.New("invalid DISTANCE_TO_LAND")
	}

	cfg := &Config{
		TunablesPath:     sharedcfg.EnvOrDefault("TUNABLES_PATH", DefaultTunablesPath),
		TunablesKeyMatch: keyMatch,
		Enabled:          enabled,
		TickInterval:     tickInterval,
		DistanceToLand:   distanceToLand,
		AudioEnabled:     audioEnabled,
		HTTPAddr:         sharedcfg.EnvOrDefault("HTTP_ADDR", ""),
		LogLevel:         sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		ShutdownTimeout:  shutdownTimeout,
	}

	if cfg.TunablesPath == "" {
		return nil, errors.New("TUNABLES_PATH is required")
	}

	return cfg, nil
}

func parseBool(key, def string) (bool, error) {
	v, err := strconv.ParseBool(sharedcfg.EnvOrDefault(key, def))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
