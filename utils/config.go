package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	SpeedStep           time.Duration `json:"speed_step"`
	Pattern             string        `json:"pattern"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	RefreshEvery        int           `json:"refresh_every"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Seed                int64         `json:"seed"`
	Interactive         bool          `json:"interactive"`
	CellSize            int           `json:"cell_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              40,
		FrameRate:           100 * time.Millisecond,
		SpeedStep:           10 * time.Millisecond,
		Pattern:             "gosper_glider_gun",
		AutoRestart:         true,
		StagnationThreshold: 5,
		RefreshEvery:        0, // never
		UseMemoryPool:       true,
		MaxGenerations:      0, // unlimited
		RandomDensity:       0.15,
		InjectionCount:      3,
		Seed:                42,
		Interactive:         true,
		CellSize:            12,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid settings in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the settings can drive a simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must be positive, got %v", c.FrameRate)
	case c.SpeedStep <= 0:
		return errors.Wrapf(ErrInvalidConfig, "speed_step must be positive, got %v", c.SpeedStep)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density must be in [0,1], got %v", c.RandomDensity)
	case c.Pattern == "":
		return errors.Wrap(ErrInvalidConfig, "pattern must be set")
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell_size must be positive, got %d", c.CellSize)
	}
	return nil
}
