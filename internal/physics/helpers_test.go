package physics

import (
	"math"
	"testing"

	"springbox/internal/geom"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func approxVec(a, b geom.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

// newTestWorld returns a simulating world with default params.
func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(DefaultParams())
	w.SetSimulating(true)
	return w
}

func mustNode(t *testing.T, w *World, x, y float64, locked bool) *Node {
	t.Helper()
	n, err := w.AddNode(geom.V(x, y), locked, 0)
	if err != nil {
		t.Fatalf("AddNode(%v, %v): %v", x, y, err)
	}
	return n
}
