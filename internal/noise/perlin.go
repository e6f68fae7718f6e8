// Package noise implements seeded 2D/3D gradient noise and the fractal
// combinators built on top of it. The construction follows Ken Perlin's
// improved noise: a doubled 256-entry permutation table hashes integer
// lattice corners into one of 12 cube-edge gradient vectors, and the
// corner dot products are blended with a quintic fade curve.
package noise

import "math"

// gradients are the edge centers of a cube, giving an even statistical
// distribution for both 2D (z ignored) and 3D noise. Indexed by hash % 12.
var gradients = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// canonicalTable is Ken Perlin's reference permutation of 0..255. It backs
// every unseeded generator and is the starting order for seeded shuffles.
var canonicalTable = [256]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// Perlin is a gradient noise generator bound to one permutation table.
// It is immutable after construction and safe for concurrent use.
type Perlin struct {
	perm [512]int
}

var canonical = newFromTable(canonicalTable)

// Canonical returns the shared generator backed by the fixed reference
// table. All unseeded noise goes through this instance.
func Canonical() *Perlin {
	return canonical
}

// New returns an independent generator whose table is a Fisher-Yates
// shuffle of the canonical table, driven by the reproducible LCG. The same
// seed always yields a byte-identical table and therefore identical noise.
func New(seed int64) *Perlin {
	table := canonicalTable
	rng := NewLCG(seed)
	for i := 255; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		table[i], table[j] = table[j], table[i]
	}
	return newFromTable(table)
}

func newFromTable(table [256]int) *Perlin {
	p := &Perlin{}
	for i, v := range table {
		p.perm[i] = v
		p.perm[i+256] = v
	}
	return p
}

// fade is the quintic interpolant 6t^5 - 15t^4 + 10t^3. A linear blend
// here leaks visible grid-axis artifacts into the terrain.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad2(hash int, x, y float64) float64 {
	g := gradients[hash%12]
	return g[0]*x + g[1]*y
}

func grad3(hash int, x, y, z float64) float64 {
	g := gradients[hash%12]
	return g[0]*x + g[1]*y + g[2]*z
}

// floorInt floors toward negative infinity, which keeps cell coordinates
// continuous across zero. Plain truncation breaks negative-coordinate noise.
func floorInt(x float64) int {
	return int(math.Floor(x))
}

// Noise2D evaluates 2D gradient noise at (x, y). The result is centered
// near zero and stays roughly within [-1, 1]; integer-aligned inputs
// return exactly 0.
func (p *Perlin) Noise2D(x, y float64) float64 {
	xi := floorInt(x)
	yi := floorInt(y)
	X := xi & 255
	Y := yi & 255

	xf := x - float64(xi)
	yf := y - float64(yi)

	u := fade(xf)
	v := fade(yf)

	// Hash the four cell corners.
	aa := p.perm[p.perm[X]+Y]
	ab := p.perm[p.perm[X]+Y+1]
	ba := p.perm[p.perm[X+1]+Y]
	bb := p.perm[p.perm[X+1]+Y+1]

	x1 := lerp(u, grad2(aa, xf, yf), grad2(ba, xf-1, yf))
	x2 := lerp(u, grad2(ab, xf, yf-1), grad2(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// Noise3D evaluates 3D gradient noise at (x, y, z).
func (p *Perlin) Noise3D(x, y, z float64) float64 {
	xi := floorInt(x)
	yi := floorInt(y)
	zi := floorInt(z)
	X := xi & 255
	Y := yi & 255
	Z := zi & 255

	xf := x - float64(xi)
	yf := y - float64(yi)
	zf := z - float64(zi)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	// Hash the eight cube corners.
	a := p.perm[X] + Y
	aa := p.perm[a] + Z
	ab := p.perm[a+1] + Z
	b := p.perm[X+1] + Y
	ba := p.perm[b] + Z
	bb := p.perm[b+1] + Z

	return lerp(w,
		lerp(v,
			lerp(u,
				grad3(p.perm[aa], xf, yf, zf),
				grad3(p.perm[ba], xf-1, yf, zf)),
			lerp(u,
				grad3(p.perm[ab], xf, yf-1, zf),
				grad3(p.perm[bb], xf-1, yf-1, zf))),
		lerp(v,
			lerp(u,
				grad3(p.perm[aa+1], xf, yf, zf-1),
				grad3(p.perm[ba+1], xf-1, yf, zf-1)),
			lerp(u,
				grad3(p.perm[ab+1], xf, yf-1, zf-1),
				grad3(p.perm[bb+1], xf-1, yf-1, zf-1))))
}
