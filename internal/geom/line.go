package geom

// LineDistance returns the signed perpendicular distance from p to the infinite
// line through a and b: cross(a-b, a-p) / |a-b|. The sign tells which side of
// the line p is on. A degenerate line (a == b) collapses to the point a.
func LineDistance(a, b, p Vec2) float64 {
	line := a.Sub(b)
	l := line.Len()
	if l == 0 {
		return p.Dist(a)
	}
	return line.Cross(a.Sub(p)) / l
}

// NearSegment reports whether p is within threshold of the line through a and b
// while also lying inside the segment's bounds grown by margin. It returns the
// absolute perpendicular distance for ranking candidates.
func NearSegment(a, b, p Vec2, threshold, margin float64) (float64, bool) {
	d := LineDistance(a, b, p)
	if d < 0 {
		d = -d
	}
	if d > threshold {
		return d, false
	}
	return d, BoundsOf(a, b).Expand(margin).Contains(p)
}

// WithinRadius reports whether p lies strictly inside the circle of radius r.
func WithinRadius(center, p Vec2, r float64) bool {
	return center.Dist(p) < r
}
