package terrain

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the full terrain generation surface. Zero or missing fields in
// a loaded file keep the defaults from DefaultConfig.
type Config struct {
	GridSize               int     `json:"grid_size"`                // grid resolution per axis
	CubeSize               float64 `json:"cube_size"`                // world units per cell
	CubeHeight             float64 `json:"cube_height"`              // nominal voxel column height
	NoiseScale             float64 `json:"noise_scale"`              // frequency of the primary noise layer
	DetailNoiseScale       float64 `json:"detail_noise_scale"`       // frequency of the detail noise layer
	HeightMultiplier       float64 `json:"height_multiplier"`        // amplitude of the primary layer
	DetailHeightMultiplier float64 `json:"detail_height_multiplier"` // amplitude of the detail layer
	BaseElevation          float64 `json:"base_elevation"`           // additive height offset
	GlitchChance           float64 `json:"glitch_chance"`            // per-cell chance of a stretched column, [0,1]
	ObstacleThreshold      float64 `json:"obstacle_threshold"`       // heights above this mark obstacle cells
	Seed                   *int64  `json:"seed,omitempty"`           // nil means the canonical unseeded table
}

// DefaultConfig returns a config that generates a reasonable mid-size map.
func DefaultConfig() Config {
	return Config{
		GridSize:               64,
		CubeSize:               1,
		CubeHeight:             1,
		NoiseScale:             0.05,
		DetailNoiseScale:       0.2,
		HeightMultiplier:       6,
		DetailHeightMultiplier: 1.5,
		BaseElevation:          0,
		GlitchChance:           0,
		ObstacleThreshold:      4,
	}
}

// Validate rejects configurations before any buffer is allocated.
func (c Config) Validate() error {
	if c.GridSize < 1 {
		return fmt.Errorf("grid_size must be at least 1, got %d", c.GridSize)
	}
	if c.CubeSize <= 0 {
		return fmt.Errorf("cube_size must be positive, got %g", c.CubeSize)
	}
	if c.CubeHeight < 0 {
		return fmt.Errorf("cube_height must not be negative, got %g", c.CubeHeight)
	}
	if c.GlitchChance < 0 || c.GlitchChance > 1 {
		return fmt.Errorf("glitch_chance must be within [0,1], got %g", c.GlitchChance)
	}
	return nil
}

// LoadConfig reads a JSON config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
