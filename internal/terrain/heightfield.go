package terrain

import (
	"runtime"

	"github.com/alitto/pond/v2"

	"TerraVox/internal/noise"
)

// Grids at or above this many cells fan row generation out to a worker
// pool. Cells are independent, so rows can be filled in any order.
const parallelCells = 64 * 64

// HeightField is a row-major gridSize x gridSize grid of height samples
// plus a parallel obstacle bitmap. It is written once during generation
// and read-only afterward, so downstream consumers share it freely.
type HeightField struct {
	Size      int
	CubeSize  float64
	Heights   []float64
	Obstacles []bool
}

// At returns the height sample of cell (x, z). Indices must be in range.
func (f *HeightField) At(x, z int) float64 {
	return f.Heights[z*f.Size+x]
}

// ObstacleAt reports whether cell (x, z) exceeded the obstacle threshold.
func (f *HeightField) ObstacleAt(x, z int) bool {
	return f.Obstacles[z*f.Size+x]
}

func generateHeightField(cfg Config, src *noise.Perlin) *HeightField {
	size := cfg.GridSize
	field := &HeightField{
		Size:      size,
		CubeSize:  cfg.CubeSize,
		Heights:   make([]float64, size*size),
		Obstacles: make([]bool, size*size),
	}

	if size*size >= parallelCells {
		pool := pond.NewPool(runtime.NumCPU())
		for z := 0; z < size; z++ {
			z := z
			pool.Submit(func() {
				fillRow(field, cfg, src, z)
			})
		}
		pool.StopAndWait()
	} else {
		for z := 0; z < size; z++ {
			fillRow(field, cfg, src, z)
		}
	}

	return field
}

// fillRow computes one grid row. Each cell is a pure function of its own
// coordinates, which is what makes the rows safe to run concurrently.
func fillRow(field *HeightField, cfg Config, src *noise.Perlin, z int) {
	half := float64(cfg.GridSize) / 2
	worldZ := (float64(z) - half) * cfg.CubeSize

	for x := 0; x < cfg.GridSize; x++ {
		worldX := (float64(x) - half) * cfg.CubeSize

		primary := src.Noise2D(worldX*cfg.NoiseScale, worldZ*cfg.NoiseScale)
		detail := src.Noise2D(worldX*cfg.DetailNoiseScale, worldZ*cfg.DetailNoiseScale)
		h := primary*cfg.HeightMultiplier + detail*cfg.DetailHeightMultiplier + cfg.BaseElevation

		i := z*cfg.GridSize + x
		field.Heights[i] = h
		field.Obstacles[i] = h > cfg.ObstacleThreshold
	}
}
