package terrain

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Noise returns a heightfield of smoothed random terrain with heights in
// [0, amplitude]. The same seed always produces the same terrain.
func Noise(origin mgl64.Vec2, cell float64, cols, rows int, amplitude float64, seed int64) (*Heightfield, error) {
	if !(cell > 0) || math.IsInf(cell, 0) {
		return nil, ErrBadCell
	}
	if cols < 2 || rows < 2 {
		return nil, ErrBadGrid
	}

	rng := rand.New(rand.NewSource(seed))
	heights := make([]float64, cols*rows)
	for i := range heights {
		heights[i] = amplitude * rng.Float64()
	}

	// Two blur passes knock down single-node spikes.
	for pass := 0; pass < 2; pass++ {
		heights = boxBlur(heights, cols, rows)
	}
	return New(origin, cell, cols, rows, heights)
}

// boxBlur averages each node with its 3x3 neighborhood, shrinking the
// window at grid edges.
func boxBlur(heights []float64, cols, rows int) []float64 {
	out := make([]float64, len(heights))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			sum, n := 0.0, 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= cols || ny >= rows {
						continue
					}
					sum += heights[ny*cols+nx]
					n++
				}
			}
			out[y*cols+x] = sum / float64(n)
		}
	}
	return out
}
