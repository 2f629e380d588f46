package physics

import (
	"errors"

	"springbox/internal/engine"
	"springbox/internal/geom"
)

// ErrNonFinite is returned when a node would be created at NaN or Inf.
var ErrNonFinite = errors.New("non-finite node value")

// RejectReason explains why AddStick refused to create a stick.
type RejectReason int

const (
	RejectDuplicate RejectReason = iota // an edge already joins the pair
	RejectSelfLoop                      // both ends are the same node
	RejectUnknown                       // an endpoint is not in the world
)

func (r RejectReason) String() string {
	switch r {
	case RejectDuplicate:
		return "duplicate"
	case RejectSelfLoop:
		return "self-loop"
	case RejectUnknown:
		return "unknown node"
	default:
		return "unknown"
	}
}

// Rejection is the payload of Events.StickRejected.
type Rejection struct {
	A, B   NodeID
	Reason RejectReason
}

// ClearInfo is the payload of Events.Cleared.
type ClearInfo struct {
	Nodes, Sticks int
}

// Events are fired synchronously after the mutation they describe. They are
// presentation hooks only; no listener can change a physics outcome.
type Events struct {
	NodeAdded         engine.Event[*Node]
	StickAdded        engine.Event[*Stick]
	StickRejected     engine.Event[Rejection]
	StickCut          engine.Event[*Stick]
	Cleared           engine.Event[ClearInfo]
	SimulationToggled engine.Event[bool]
}

// World owns every node and stick. It is not safe for concurrent use; the
// frame loop that drives it is expected to be single-threaded.
type World struct {
	Params     Params
	Simulating bool
	Tick       int // steps actually advanced
	Events     Events

	nodes  []*Node
	sticks []*Stick
	byID   map[NodeID]*Node
	edges  map[edgeKey]*Stick
	nextID NodeID
}

func NewWorld(p Params) *World {
	return &World{
		Params: p,
		nodes:  make([]*Node, 0),
		sticks: make([]*Stick, 0),
		byID:   make(map[NodeID]*Node),
		edges:  make(map[edgeKey]*Stick),
	}
}

// Nodes returns the nodes in creation order. Callers must not modify the slice.
func (w *World) Nodes() []*Node {
	return w.nodes
}

// Sticks returns the sticks in creation order. Callers must not modify the slice.
func (w *World) Sticks() []*Stick {
	return w.sticks
}

// Node looks up a node by id, returning nil if it does not exist.
func (w *World) Node(id NodeID) *Node {
	return w.byID[id]
}

// Endpoints returns the current positions of both ends of s.
func (w *World) Endpoints(s *Stick) (a, b geom.Vec2) {
	na, nb := w.byID[s.A], w.byID[s.B]
	if na != nil {
		a = na.Position
	}
	if nb != nil {
		b = nb.Position
	}
	return a, b
}

// AddNode appends a node at pos. A radius of zero or less uses Params.NodeRadius.
func (w *World) AddNode(pos geom.Vec2, locked bool, radius float64) (*Node, error) {
	if radius <= 0 {
		radius = w.Params.NodeRadius
	}
	if !pos.IsFinite() || !geom.IsFinite(radius) {
		return nil, ErrNonFinite
	}

	w.nextID++
	n := &Node{
		ID:       w.nextID,
		Position: pos,
		Locked:   locked,
		Radius:   radius,
	}
	w.nodes = append(w.nodes, n)
	w.byID[n.ID] = n
	w.Events.NodeAdded.Invoke(n)
	return n, nil
}

// AddStick links a and b with a spring whose rest length is their current
// distance. It returns false, leaving the world untouched, for self loops,
// unknown nodes, and pairs that are already linked in either order.
func (w *World) AddStick(a, b NodeID) (*Stick, bool) {
	if reason, ok := w.canLink(a, b); !ok {
		w.Events.StickRejected.Invoke(Rejection{A: a, B: b, Reason: reason})
		return nil, false
	}

	na, nb := w.byID[a], w.byID[b]
	s := &Stick{
		A:          a,
		B:          b,
		RestLength: na.Position.Dist(nb.Position),
		K:          w.Params.SpringConstant,
	}
	w.sticks = append(w.sticks, s)
	w.edges[makeEdge(a, b)] = s
	w.Events.StickAdded.Invoke(s)
	return s, true
}

func (w *World) canLink(a, b NodeID) (RejectReason, bool) {
	if a == b {
		return RejectSelfLoop, false
	}
	if w.byID[a] == nil || w.byID[b] == nil {
		return RejectUnknown, false
	}
	if w.HasStick(a, b) {
		return RejectDuplicate, false
	}
	return 0, true
}

// HasStick reports whether a stick joins a and b in either order.
func (w *World) HasStick(a, b NodeID) bool {
	_, ok := w.edges[makeEdge(a, b)]
	return ok
}

// RemoveStick removes s by identity. It returns false if s is not in the world.
func (w *World) RemoveStick(s *Stick) bool {
	if s == nil {
		return false
	}
	for i, st := range w.sticks {
		if st == s {
			w.sticks = append(w.sticks[:i], w.sticks[i+1:]...)
			delete(w.edges, makeEdge(s.A, s.B))
			return true
		}
	}
	return false
}

// Clear drops every node and stick. Node ids keep counting up so stale
// handles held by callers never resolve to a new node.
func (w *World) Clear() {
	info := ClearInfo{Nodes: len(w.nodes), Sticks: len(w.sticks)}
	w.nodes = make([]*Node, 0)
	w.sticks = make([]*Stick, 0)
	w.byID = make(map[NodeID]*Node)
	w.edges = make(map[edgeKey]*Stick)
	w.Events.Cleared.Invoke(info)
}

// SetSimulating gates whether Step advances physics.
func (w *World) SetSimulating(on bool) {
	if w.Simulating == on {
		return
	}
	w.Simulating = on
	w.Events.SimulationToggled.Invoke(on)
}

func (w *World) ToggleSimulation() {
	w.SetSimulating(!w.Simulating)
}

// Step advances physics by one frame: gravity on every node, then the spring
// force of every stick. It does nothing and returns false while not simulating.
func (w *World) Step() bool {
	if !w.Simulating {
		return false
	}
	for _, n := range w.nodes {
		n.ApplyGravity(w.Params.Gravity)
	}
	for _, s := range w.sticks {
		a, b := w.byID[s.A], w.byID[s.B]
		if a == nil || b == nil {
			continue
		}
		s.Apply(a, b, w.Params.Damping)
	}
	w.Tick++
	return true
}

// NodeAt returns the first node, in creation order, whose pick circle
// contains p.
func (w *World) NodeAt(p geom.Vec2) *Node {
	for _, n := range w.nodes {
		if n.Hit(p) {
			return n
		}
	}
	return nil
}

// MoveNode overwrites a node's position, ignoring Locked and leaving its
// velocity as it was. Used for dragging.
func (w *World) MoveNode(id NodeID, p geom.Vec2) bool {
	n := w.byID[id]
	if n == nil || !p.IsFinite() {
		return false
	}
	n.Position = p
	return true
}
