// Package mesh turns a generated height field into flat render buffers:
// one voxel column per cell with a top quad and neighbor-culled side quads.
package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"TerraVox/internal/logger"
	"TerraVox/internal/noise"
	"TerraVox/internal/terrain"
)

// Options control the voxel column construction.
type Options struct {
	CubeHeight   float64 // nominal column height
	GlitchChance float64 // per-cell chance of a stretched column, [0,1]
	Seed         int64   // seeds the glitch stream, independent of the noise tables
}

// Mesh is the flat-buffer geometry handed to the rendering collaborator.
// Every quad contributes 4 positions, 4 identical face normals, 4 UV pairs
// and 6 indices (two triangles).
type Mesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []int32
}

// QuadCount returns the number of emitted quads.
func (m *Mesh) QuadCount() int {
	return len(m.Indices) / 6
}

// VertexCount returns the number of emitted vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Build converts the height field into a solid voxel mesh. A side face is
// emitted only when the neighbor's base height sits below the column's
// midpoint; neighbors outside the grid count as infinitely low, so border
// cells always close their outer walls. The midpoint rule is a deliberate
// O(1) approximation of occlusion and must not be "corrected": changing it
// changes the mesh topology downstream.
func Build(field *terrain.HeightField, opts Options) *Mesh {
	m := &Mesh{}
	size := field.Size
	if size <= 0 {
		return m
	}

	// Worst case is a top plus four sides per cell.
	maxQuads := size * size * 5
	m.Positions = make([]float32, 0, maxQuads*12)
	m.Normals = make([]float32, 0, maxQuads*12)
	m.UVs = make([]float32, 0, maxQuads*8)
	m.Indices = make([]int32, 0, maxQuads*6)

	rng := noise.NewLCG(opts.Seed)
	half := float64(size) / 2
	cube := field.CubeSize

	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			base := field.At(x, z)

			// One glitch roll per cell keeps the stream aligned no
			// matter which cells trigger.
			columnHeight := opts.CubeHeight
			if rng.Float64() < opts.GlitchChance {
				columnHeight *= 1.5 + rng.Float64()*0.5
			}

			cx := (float64(x) - half) * cube
			cz := (float64(z) - half) * cube
			x0 := cx - cube/2
			x1 := cx + cube/2
			z0 := cz - cube/2
			z1 := cz + cube/2
			top := base + columnHeight

			m.addQuad(
				vec(x0, top, z1), vec(x1, top, z1), vec(x1, top, z0), vec(x0, top, z0),
				mgl32.Vec3{0, 1, 0})

			cull := base + columnHeight*0.5
			if neighborHeight(field, x, z-1) < cull {
				m.addQuad(
					vec(x1, base, z0), vec(x0, base, z0), vec(x0, top, z0), vec(x1, top, z0),
					mgl32.Vec3{0, 0, -1})
			}
			if neighborHeight(field, x, z+1) < cull {
				m.addQuad(
					vec(x0, base, z1), vec(x1, base, z1), vec(x1, top, z1), vec(x0, top, z1),
					mgl32.Vec3{0, 0, 1})
			}
			if neighborHeight(field, x-1, z) < cull {
				m.addQuad(
					vec(x0, base, z0), vec(x0, base, z1), vec(x0, top, z1), vec(x0, top, z0),
					mgl32.Vec3{-1, 0, 0})
			}
			if neighborHeight(field, x+1, z) < cull {
				m.addQuad(
					vec(x1, base, z1), vec(x1, base, z0), vec(x1, top, z0), vec(x1, top, z1),
					mgl32.Vec3{1, 0, 0})
			}
		}
	}

	logger.Log.Info("voxel mesh built",
		zap.Int("cells", size*size),
		zap.Int("quads", m.QuadCount()),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", len(m.Indices)/3))

	return m
}

func neighborHeight(field *terrain.HeightField, x, z int) float64 {
	if x < 0 || x >= field.Size || z < 0 || z >= field.Size {
		return math.Inf(-1)
	}
	return field.At(x, z)
}

func vec(x, y, z float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

// addQuad appends four vertices in counter-clockwise order as seen from
// the outward normal, plus corner UVs and two triangles (0,1,2)(0,2,3).
func (m *Mesh) addQuad(a, b, c, d, normal mgl32.Vec3) {
	base := int32(len(m.Positions) / 3)

	for _, v := range [4]mgl32.Vec3{a, b, c, d} {
		m.Positions = append(m.Positions, v.X(), v.Y(), v.Z())
		m.Normals = append(m.Normals, normal.X(), normal.Y(), normal.Z())
	}
	m.UVs = append(m.UVs,
		0, 0,
		1, 0,
		1, 1,
		0, 1)
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base, base+2, base+3)
}
