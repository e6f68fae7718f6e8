package terrain

import (
	"math"
	"testing"
)

func buildTerrain(t *testing.T, seed int64) *Terrain {
	t.Helper()
	ter, err := New(testConfig(seed))
	if err != nil {
		t.Fatal(err)
	}
	return ter
}

func TestHeightAtGridAligned(t *testing.T) {
	ter := buildTerrain(t, 9)
	f := ter.Field()
	half := float64(f.Size) / 2

	for z := 0; z < f.Size; z++ {
		for x := 0; x < f.Size; x++ {
			wx := (float64(x) - half) * f.CubeSize
			wz := (float64(z) - half) * f.CubeSize
			got := ter.HeightAt(wx, wz)
			want := f.At(x, z)
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("HeightAt(%g, %g) = %g, want raw sample %g", wx, wz, got, want)
			}
		}
	}
}

func TestHeightAtInterpolatesBetweenCells(t *testing.T) {
	ter := buildTerrain(t, 9)
	f := ter.Field()
	half := float64(f.Size) / 2

	// Halfway between two laterally adjacent cell centers the height must
	// be the average of the two samples.
	wx := (0.5 - half) * f.CubeSize
	wz := (0.0 - half) * f.CubeSize
	want := (f.At(0, 0) + f.At(1, 0)) / 2
	if got := ter.HeightAt(wx, wz); math.Abs(got-want) > 1e-9 {
		t.Errorf("midpoint HeightAt = %g, want %g", got, want)
	}
}

func TestBoundaryClamp(t *testing.T) {
	ter := buildTerrain(t, 11)
	f := ter.Field()
	size := f.Size

	// 1e30 and MaxFloat64 map to grid coordinates far beyond int range;
	// the clamp must happen before any float-to-int conversion or huge
	// positive queries wrap onto cell (0,0).
	for _, far := range []float64{1e6, 1e30, math.MaxFloat64} {
		cases := []struct {
			x, z float64
			cx   int
			cz   int
		}{
			{-far, -far, 0, 0},
			{far, -far, size - 1, 0},
			{-far, far, 0, size - 1},
			{far, far, size - 1, size - 1},
		}

		for _, tc := range cases {
			want := f.At(tc.cx, tc.cz)
			if got := ter.HeightAt(tc.x, tc.z); got != want {
				t.Errorf("HeightAt(%g, %g) = %g, want edge cell sample %g", tc.x, tc.z, got, want)
			}
			if ter.IsObstacle(tc.x, tc.z) {
				t.Errorf("IsObstacle(%g, %g) = true, want false out of bounds", tc.x, tc.z)
			}
		}
	}
}

func TestIsObstacleMatchesCell(t *testing.T) {
	ter := buildTerrain(t, 13)
	f := ter.Field()
	half := float64(f.Size) / 2

	for z := 0; z < f.Size; z++ {
		for x := 0; x < f.Size; x++ {
			wx := (float64(x) - half) * f.CubeSize
			wz := (float64(z) - half) * f.CubeSize
			if got, want := ter.IsObstacle(wx, wz), f.ObstacleAt(x, z); got != want {
				t.Fatalf("IsObstacle(%g, %g) = %v, want %v", wx, wz, got, want)
			}
		}
	}
}

func TestSingleCellGrid(t *testing.T) {
	cfg := testConfig(3)
	cfg.GridSize = 1

	ter, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	want := ter.Field().At(0, 0)
	for _, w := range []float64{-100, -1, 0, 1, 100} {
		if got := ter.HeightAt(w, -w); got != want {
			t.Errorf("HeightAt(%g, %g) = %g, want %g on 1x1 grid", w, -w, got, want)
		}
	}
}
