package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Seeding policy names accepted in configuration
const (
	SeedPolicyUniform = "uniform"
	SeedPolicyNoise   = "noise"
)

// Config holds the configuration for the game
type Config struct {
	Size                int           `json:"size"`
	Seed                int64         `json:"seed"`
	SeedPolicy          string        `json:"seed_policy"`
	RandomDensity       float64       `json:"random_density"`
	NoiseThreshold      float64       `json:"noise_threshold"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:                40,
		Seed:                time.Now().UnixNano(),
		SeedPolicy:          SeedPolicyUniform,
		RandomDensity:       0.15,
		NoiseThreshold:      0.2,
		FrameRate:           100 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseParallel:         true,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
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
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the core would fail fast on anyway
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Errorf("[Validate] size must be positive, got %d", c.Size)
	}
	if c.SeedPolicy != SeedPolicyUniform && c.SeedPolicy != SeedPolicyNoise {
		return errors.Errorf("[Validate] unknown seed policy: %q", c.SeedPolicy)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame rate must be positive, got %v", c.FrameRate)
	}
	return nil
}
