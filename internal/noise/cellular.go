package noise

import "math"

// Cellular2D returns Worley-style cellular noise: the distance from the
// query point to the nearest feature point in the surrounding 3x3 block of
// cells. cellSize scales the feature-cell grid in input units; values at
// or below zero fall back to unit cells. Each cell's feature point comes
// from two chained permutation lookups of the cell coordinates, so the
// pattern is as reproducible as the gradient noise sharing the table.
func (p *Perlin) Cellular2D(x, y, cellSize float64) float64 {
	if cellSize <= 0 {
		cellSize = 1
	}
	x /= cellSize
	y /= cellSize

	xi := floorInt(x)
	yi := floorInt(y)

	minDist := math.MaxFloat64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cx := xi + dx
			cy := yi + dy

			hx := p.perm[(p.perm[cx&255]+cy)&255]
			hy := p.perm[(p.perm[cy&255]+cx)&255]

			fx := float64(cx) + float64(hx)/256
			fy := float64(cy) + float64(hy)/256

			ddx := x - fx
			ddy := y - fy
			if d := math.Sqrt(ddx*ddx + ddy*ddy); d < minDist {
				minDist = d
			}
		}
	}
	return minDist
}
