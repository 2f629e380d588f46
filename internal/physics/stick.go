package physics

import "springbox/internal/geom"

// Stick is a linear spring between two nodes. The rest length is the distance
// between the endpoints at the moment the stick was created.
type Stick struct {
	A, B       NodeID
	RestLength float64
	K          float64
}

// Force returns the spring force acting on a (b receives the negation).
// Stretched springs pull the endpoints together, compressed springs push them
// apart, with magnitude K*|RestLength-d|. Coincident endpoints yield zero.
func (s *Stick) Force(a, b *Node) geom.Vec2 {
	delta := b.Position.Sub(a.Position)
	displacement := s.RestLength - delta.Len()
	magnitude := -s.K * displacement
	return delta.Normalize().Scale(magnitude)
}

// Apply pushes the Newton's-third-law pair onto both endpoints, then the
// damping impulse on each. The force is computed once, before either node moves.
func (s *Stick) Apply(a, b *Node, damping float64) {
	f := s.Force(a, b)
	a.ApplyForce(f)
	b.ApplyForce(f.Neg())
	a.ApplyDamping(f, damping)
	b.ApplyDamping(f.Neg(), damping)
}

// Connects reports whether the stick joins x and y, in either order.
func (s *Stick) Connects(x, y NodeID) bool {
	return (s.A == x && s.B == y) || (s.A == y && s.B == x)
}

// edgeKey identifies an undirected edge; the smaller id always comes first.
type edgeKey struct {
	lo, hi NodeID
}

func makeEdge(a, b NodeID) edgeKey {
	if a > b {
		return edgeKey{lo: b, hi: a}
	}
	return edgeKey{lo: a, hi: b}
}
