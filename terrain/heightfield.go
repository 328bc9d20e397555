// Package terrain provides heightfield terrain for corridor clamping.
//
// A Heightfield is a regular grid of height samples over an XY region.
// Heights between grid nodes interpolate bilinearly, so the extremes over
// any region occur at grid nodes and range queries reduce to node scans.
package terrain

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/groundgeom/stripe"
)

var (
	// ErrBadCell reports a cell size that is not a positive finite number.
	ErrBadCell = errors.New("terrain: cell size must be a positive finite number")
	// ErrBadGrid reports grid dimensions that disagree with the sample count.
	ErrBadGrid = errors.New("terrain: grid needs at least 2x2 nodes and cols*rows samples")
)

// Heightfield is a regular grid of height samples. Node (col, row) sits at
// origin + (col*cell, row*cell); samples are stored row-major.
type Heightfield struct {
	origin  mgl64.Vec2
	cell    float64
	cols    int
	rows    int
	heights []float64
	min     float64
	max     float64
}

// New builds a heightfield from row-major height samples. The samples are
// copied, so the caller may reuse the slice.
func New(origin mgl64.Vec2, cell float64, cols, rows int, heights []float64) (*Heightfield, error) {
	if !(cell > 0) || math.IsInf(cell, 0) {
		return nil, ErrBadCell
	}
	if cols < 2 || rows < 2 || len(heights) != cols*rows {
		return nil, ErrBadGrid
	}

	h := &Heightfield{
		origin:  origin,
		cell:    cell,
		cols:    cols,
		rows:    rows,
		heights: append([]float64(nil), heights...),
		min:     math.Inf(1),
		max:     math.Inf(-1),
	}
	for _, v := range h.heights {
		h.min = math.Min(h.min, v)
		h.max = math.Max(h.max, v)
	}
	return h, nil
}

// Bounds returns the XY extent covered by the grid.
func (h *Heightfield) Bounds() stripe.Rectangle {
	span := mgl64.Vec2{float64(h.cols-1) * h.cell, float64(h.rows-1) * h.cell}
	return stripe.Rect(h.origin, h.origin.Add(span))
}

// SampleHeight returns the bilinearly interpolated height at p. Points
// outside the grid clamp to the nearest edge.
func (h *Heightfield) SampleHeight(p mgl64.Vec2) float64 {
	gx := (p[0] - h.origin[0]) / h.cell
	gy := (p[1] - h.origin[1]) / h.cell

	x0 := int(math.Floor(gx))
	y0 := int(math.Floor(gy))
	tx := gx - float64(x0)
	ty := gy - float64(y0)

	// Clamp to the grid; the fraction clamps with the cell so edge
	// samples hold their node values.
	if x0 < 0 {
		x0, tx = 0, 0
	}
	if y0 < 0 {
		y0, ty = 0, 0
	}
	if x0 >= h.cols-1 {
		x0, tx = h.cols-2, 1
	}
	if y0 >= h.rows-1 {
		y0, ty = h.rows-2, 1
	}

	v00 := h.at(x0, y0)
	v10 := h.at(x0+1, y0)
	v01 := h.at(x0, y0+1)
	v11 := h.at(x0+1, y0+1)
	return lerp2D(v00, v10, v01, v11, tx, ty)
}

// MinMaxHeights returns the extreme heights under r. The scan covers every
// node of every cell the rectangle touches. Rectangles that miss the grid
// entirely fall back to the extremes of the whole grid.
func (h *Heightfield) MinMaxHeights(r stripe.Rectangle) stripe.TerrainHeights {
	x0 := int(math.Floor((r.Min[0] - h.origin[0]) / h.cell))
	y0 := int(math.Floor((r.Min[1] - h.origin[1]) / h.cell))
	x1 := int(math.Ceil((r.Max[0] - h.origin[0]) / h.cell))
	y1 := int(math.Ceil((r.Max[1] - h.origin[1]) / h.cell))

	if r.Empty() || x1 < 0 || y1 < 0 || x0 > h.cols-1 || y0 > h.rows-1 {
		return stripe.TerrainHeights{Minimum: h.min, Maximum: h.max}
	}

	x0 = clamp(x0, 0, h.cols-1)
	y0 = clamp(y0, 0, h.rows-1)
	x1 = clamp(x1, 0, h.cols-1)
	y1 = clamp(y1, 0, h.rows-1)

	out := stripe.TerrainHeights{Minimum: math.Inf(1), Maximum: math.Inf(-1)}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v := h.at(x, y)
			out.Minimum = math.Min(out.Minimum, v)
			out.Maximum = math.Max(out.Maximum, v)
		}
	}
	return out
}

// at returns the sample at node (x, y).
func (h *Heightfield) at(x, y int) float64 {
	return h.heights[y*h.cols+x]
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
