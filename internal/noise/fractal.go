package noise

import "math"

// Defaults for the fractal combinators.
const (
	DefaultOctaves     = 4
	DefaultLacunarity  = 2.0
	DefaultPersistence = 0.5
)

// FBM2D sums octaves of 2D noise, doubling frequency by lacunarity and
// scaling amplitude by persistence each layer. The sum is divided by the
// total amplitude so the output range is comparable for any octave count.
func (p *Perlin) FBM2D(x, y float64, octaves int, lacunarity, persistence float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	total := 0.0

	for i := 0; i < octaves; i++ {
		sum += p.Noise2D(x*frequency, y*frequency) * amplitude
		total += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	if total == 0 {
		return 0
	}
	return sum / total
}

// FBM3D is the 3D counterpart of FBM2D.
func (p *Perlin) FBM3D(x, y, z float64, octaves int, lacunarity, persistence float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	total := 0.0

	for i := 0; i < octaves; i++ {
		sum += p.Noise3D(x*frequency, y*frequency, z*frequency) * amplitude
		total += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	if total == 0 {
		return 0
	}
	return sum / total
}

// Ridge2D accumulates 1-|n| per octave, turning smooth hills into sharp
// ridge lines. Amplitude halves every octave; persistence is not a knob here.
func (p *Perlin) Ridge2D(x, y float64, octaves int, lacunarity float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	total := 0.0

	for i := 0; i < octaves; i++ {
		n := p.Noise2D(x*frequency, y*frequency)
		sum += (1 - math.Abs(n)) * amplitude
		total += amplitude
		amplitude *= 0.5
		frequency *= lacunarity
	}

	if total == 0 {
		return 0
	}
	return sum / total
}

// Turbulence2D accumulates |n|*amplitude per octave. The result is
// non-negative and intentionally not normalized; callers scale it.
func (p *Perlin) Turbulence2D(x, y float64, octaves int, lacunarity, persistence float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0

	for i := 0; i < octaves; i++ {
		sum += math.Abs(p.Noise2D(x*frequency, y*frequency)) * amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return sum
}

// Turbulence3D is the 3D counterpart of Turbulence2D.
func (p *Perlin) Turbulence3D(x, y, z float64, octaves int, lacunarity, persistence float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0

	for i := 0; i < octaves; i++ {
		sum += math.Abs(p.Noise3D(x*frequency, y*frequency, z*frequency)) * amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return sum
}
