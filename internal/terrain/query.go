package terrain

import "math"

// Sampler answers smooth height queries at arbitrary world coordinates.
// It is a computation wrapper over the height field, not a copy of it.
type Sampler struct {
	field  *HeightField
	offset float64
}

func newSampler(field *HeightField) *Sampler {
	return &Sampler{
		field:  field,
		offset: float64(field.Size) / 2 * field.CubeSize,
	}
}

// clampCell clamps a floored grid coordinate into [0, size-1] while it is
// still a float. Converting first would overflow int for coordinates far
// outside the grid and wrap huge positive queries onto cell (0,0).
func clampCell(f float64, size int) int {
	if f < 0 {
		return 0
	}
	if f > float64(size-1) {
		return size - 1
	}
	return int(f)
}

// HeightAt bilinearly interpolates the height field at world (x, z).
// Coordinates outside the grid clamp to the nearest edge cell. The
// fractional weights come from the unclamped floor so interpolation stays
// correct right up to the boundary.
func (s *Sampler) HeightAt(x, z float64) float64 {
	f := s.field

	gx := (x + s.offset) / f.CubeSize
	gz := (z + s.offset) / f.CubeSize

	fx := math.Floor(gx)
	fz := math.Floor(gz)
	tx := gx - fx
	tz := gz - fz

	x0 := clampCell(fx, f.Size)
	x1 := clampCell(fx+1, f.Size)
	z0 := clampCell(fz, f.Size)
	z1 := clampCell(fz+1, f.Size)

	h00 := f.At(x0, z0)
	h10 := f.At(x1, z0)
	h01 := f.At(x0, z1)
	h11 := f.At(x1, z1)

	h0 := h00 + (h10-h00)*tx
	h1 := h01 + (h11-h01)*tx
	return h0 + (h1-h0)*tz
}

// IsObstacle reports the obstacle flag of the cell containing world (x, z).
// No interpolation: the flag belongs to the floor cell. Out-of-bounds
// coordinates are simply not obstacles.
func (s *Sampler) IsObstacle(x, z float64) bool {
	f := s.field

	fx := math.Floor((x + s.offset) / f.CubeSize)
	fz := math.Floor((z + s.offset) / f.CubeSize)

	// Bounds-check before converting for the same overflow reason as
	// clampCell.
	if fx < 0 || fx > float64(f.Size-1) || fz < 0 || fz > float64(f.Size-1) {
		return false
	}
	return f.ObstacleAt(int(fx), int(fz))
}
