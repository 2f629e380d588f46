package physics

import "springbox/internal/geom"

// NodeID is a stable handle for a node. IDs are never reused within a World,
// not even across Clear.
type NodeID uint64

// Node is a point mass. Forces are applied as per-frame impulses with a unit
// time step, so simulation speed is tied to the frame rate.
type Node struct {
	ID       NodeID
	Position geom.Vec2
	Velocity geom.Vec2
	Locked   bool    // anchors ignore every applied force
	Radius   float64 // pick tolerance is twice this
}

func (n *Node) ApplyGravity(g float64) {
	n.ApplyForce(geom.Vec2{Y: g})
}

// ApplyForce integrates one semi-implicit Euler step: velocity first, then
// position from the new velocity.
func (n *Node) ApplyForce(force geom.Vec2) {
	if n.Locked {
		return
	}
	n.Velocity = n.Velocity.Add(force)
	n.Position = n.Position.Add(n.Velocity)
}

// ApplyDamping applies force scaled by c as a second, separate impulse through
// the same update as ApplyForce. It is not a velocity decay.
func (n *Node) ApplyDamping(force geom.Vec2, c float64) {
	n.ApplyForce(force.Scale(c))
}

// HitRadius is the pick tolerance used for pointer hit tests.
func (n *Node) HitRadius() float64 {
	return 2 * n.Radius
}

// Hit reports whether p is close enough to select the node.
func (n *Node) Hit(p geom.Vec2) bool {
	return geom.WithinRadius(n.Position, p, n.HitRadius())
}
