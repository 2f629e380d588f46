package term

import (
	"math"

	"springbox/internal/geom"
)

// Viewport maps terminal cells to world units. Cell (0,0) covers the world
// rectangle from the origin to (CellW, CellH).
type Viewport struct {
	CellW, CellH float64
}

// ToWorld returns the world point at the centre of cell (x, y).
func (v Viewport) ToWorld(x, y int) geom.Vec2 {
	return geom.V((float64(x)+0.5)*v.CellW, (float64(y)+0.5)*v.CellH)
}

// ToCell returns the cell containing world point p.
func (v Viewport) ToCell(p geom.Vec2) (int, int) {
	return int(math.Floor(p.X / v.CellW)), int(math.Floor(p.Y / v.CellH))
}

// cellSpace returns p in fractional cell units.
func (v Viewport) cellSpace(p geom.Vec2) (float64, float64) {
	return p.X / v.CellW, p.Y / v.CellH
}

// CellOnScreen returns the cell containing p when it lies on a w×h screen.
// Non-finite and off-screen points report false.
func (v Viewport) CellOnScreen(p geom.Vec2, w, h int) (int, int, bool) {
	if !p.IsFinite() {
		return 0, 0, false
	}
	fx, fy := v.cellSpace(p)
	if fx < 0 || fy < 0 || fx >= float64(w) || fy >= float64(h) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// ClipSegment clips the segment a-b to a w×h screen in cell space
// (Liang-Barsky) and returns the cell endpoints of the visible part. It
// reports false when nothing is visible or either endpoint is not finite.
func (v Viewport) ClipSegment(a, b geom.Vec2, w, h int) (x0, y0, x1, y1 int, ok bool) {
	if !a.IsFinite() || !b.IsFinite() || w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	ax, ay := v.cellSpace(a)
	bx, by := v.cellSpace(b)
	dx, dy := bx-ax, by-ay

	// Stay a hair inside the far edges so flooring lands on the last cell.
	maxX := math.Nextafter(float64(w), 0)
	maxY := math.Nextafter(float64(h), 0)

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, ax},       // left
		{dx, maxX - ax}, // right
		{-dy, ay},       // top
		{dy, maxY - ay}, // bottom
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	x0, y0 = clampCell(ax+t0*dx, w), clampCell(ay+t0*dy, h)
	x1, y1 = clampCell(ax+t1*dx, w), clampCell(ay+t1*dy, h)
	return x0, y0, x1, y1, true
}

func clampCell(f float64, n int) int {
	c := int(math.Floor(f))
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}

// Line calls plot for every cell on the segment from (x0,y0) to (x1,y1),
// endpoints included.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lineRune picks a glyph approximating the slope of a segment in cells.
func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
