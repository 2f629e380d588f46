package physics

// NodeState is a value copy of a node for renderers and the network stream.
type NodeState struct {
	ID     NodeID  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Locked bool    `json:"locked,omitempty"`
	Radius float64 `json:"r"`
}

// StickState carries the current endpoint positions of a stick.
type StickState struct {
	A  NodeID  `json:"a"`
	B  NodeID  `json:"b"`
	AX float64 `json:"ax"`
	AY float64 `json:"ay"`
	BX float64 `json:"bx"`
	BY float64 `json:"by"`
}

type Snapshot struct {
	Tick       int          `json:"tick"`
	Simulating bool         `json:"simulating"`
	Nodes      []NodeState  `json:"nodes"`
	Sticks     []StickState `json:"sticks"`
}

// Snapshot copies the current state. The result shares nothing with the world.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       w.Tick,
		Simulating: w.Simulating,
		Nodes:      make([]NodeState, len(w.nodes)),
		Sticks:     make([]StickState, len(w.sticks)),
	}
	for i, n := range w.nodes {
		snap.Nodes[i] = NodeState{
			ID:     n.ID,
			X:      n.Position.X,
			Y:      n.Position.Y,
			Locked: n.Locked,
			Radius: n.Radius,
		}
	}
	for i, s := range w.sticks {
		a, b := w.Endpoints(s)
		snap.Sticks[i] = StickState{A: s.A, B: s.B, AX: a.X, AY: a.Y, BX: b.X, BY: b.Y}
	}
	return snap
}
