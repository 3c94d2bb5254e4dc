package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a simulation run
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	Seed                int64         `json:"seed"`
	PercentAlive        float64       `json:"percent_alive"`
	BoundaryMode        string        `json:"boundary_mode"`
	FrameRate           time.Duration `json:"frame_rate"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	SweepSeeds          int           `json:"sweep_seeds"`
	SweepGenerations    int           `json:"sweep_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                60,
		Seed:                42,
		PercentAlive:        0.15,
		BoundaryMode:        "periodic",
		FrameRate:           150 * time.Millisecond,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		SweepSeeds:          0,
		SweepGenerations:    500,
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

	return config, nil
}
