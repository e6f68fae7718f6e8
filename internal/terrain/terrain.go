// Package terrain generates deterministic, seedable height fields and
// serves interpolated height and obstacle queries over them.
package terrain

import (
	"time"

	"go.uber.org/zap"

	"TerraVox/internal/logger"
	"TerraVox/internal/noise"
)

// Terrain owns one generated height field and its query sampler.
// Rebuilding terrain means constructing a new instance; nothing mutates
// the field after New returns.
type Terrain struct {
	cfg     Config
	noise   *noise.Perlin
	field   *HeightField
	sampler *Sampler
}

// New validates the config, binds a noise source (seeded when cfg.Seed is
// set, the canonical table otherwise) and generates the height field.
func New(cfg Config) (*Terrain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var src *noise.Perlin
	if cfg.Seed != nil {
		src = noise.New(*cfg.Seed)
	} else {
		src = noise.Canonical()
	}

	start := time.Now()
	field := generateHeightField(cfg, src)

	logger.Log.Info("height field generated",
		zap.Int("grid_size", cfg.GridSize),
		zap.Int("cells", len(field.Heights)),
		zap.Bool("seeded", cfg.Seed != nil),
		zap.Duration("took", time.Since(start)))

	return &Terrain{
		cfg:     cfg,
		noise:   src,
		field:   field,
		sampler: newSampler(field),
	}, nil
}

// Config returns the configuration the terrain was built with.
func (t *Terrain) Config() Config {
	return t.cfg
}

// Field exposes the read-only height field for downstream consumers such
// as the mesh builder.
func (t *Terrain) Field() *HeightField {
	return t.field
}

// Noise exposes the bound noise source for collaborators that layer
// additional patterns (cellular decoration, 3D turbulence) on the same
// permutation table.
func (t *Terrain) Noise() *noise.Perlin {
	return t.noise
}

// HeightAt returns the interpolated terrain height at world (x, z).
func (t *Terrain) HeightAt(x, z float64) float64 {
	return t.sampler.HeightAt(x, z)
}

// IsObstacle reports whether the cell containing world (x, z) is
// obstacle-eligible.
func (t *Terrain) IsObstacle(x, z float64) bool {
	return t.sampler.IsObstacle(x, z)
}
