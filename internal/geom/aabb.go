package geom

// AABB is an axis-aligned box in world units.
type AABB struct {
	Min Vec2
	Max Vec2
}

// BoundsOf returns the smallest box containing both points, in any order.
func BoundsOf(a, b Vec2) AABB {
	box := AABB{Min: a, Max: b}
	if b.X < a.X {
		box.Min.X, box.Max.X = b.X, a.X
	}
	if b.Y < a.Y {
		box.Min.Y, box.Max.Y = b.Y, a.Y
	}
	return box
}

// Expand grows the box by margin on every side.
func (a AABB) Expand(margin float64) AABB {
	return AABB{
		Min: Vec2{a.Min.X - margin, a.Min.Y - margin},
		Max: Vec2{a.Max.X + margin, a.Max.Y + margin},
	}
}

// Contains reports whether p lies inside the box or on its edge.
func (a AABB) Contains(p Vec2) bool {
	return a.Min.X <= p.X && p.X <= a.Max.X &&
		a.Min.Y <= p.Y && p.Y <= a.Max.Y
}
