package interact

import (
	"springbox/internal/engine"
	"springbox/internal/geom"
	"springbox/internal/physics"
)

// Controller turns pointer and command input into World mutations. It holds
// at most one in-progress action (a stick chain, a drag, or a cut gesture),
// always belonging to the current mode.
type Controller struct {
	World  *physics.World
	Policy physics.CutPolicy

	// ModeChanged fires after a mode switch with the new mode.
	ModeChanged engine.Event[Mode]

	mode    Mode
	pointer geom.Vec2

	chaining  bool
	chainHead physics.NodeID

	dragging bool
	dragNode physics.NodeID

	cutting bool
}

func NewController(w *physics.World) *Controller {
	return &Controller{
		World: w,
		mode:  ModeDraw,
	}
}

// Mode returns the current mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Pointer returns the last pointer position seen by the controller.
func (c *Controller) Pointer() geom.Vec2 {
	return c.pointer
}

// SetMode switches modes, cancelling whatever the previous mode had in
// progress. Selecting the current mode again changes nothing.
func (c *Controller) SetMode(m Mode) {
	if m == c.mode {
		return
	}
	c.reset()
	c.mode = m
	c.ModeChanged.Invoke(m)
}

func (c *Controller) reset() {
	c.chaining = false
	c.dragging = false
	c.cutting = false
}

// Exec runs a discrete command.
func (c *Controller) Exec(cmd Command) {
	switch cmd {
	case CmdToggleSimulation:
		c.World.ToggleSimulation()
	case CmdDraw:
		c.SetMode(ModeDraw)
	case CmdMove:
		c.SetMode(ModeMove)
	case CmdCut:
		c.SetMode(ModeCut)
	case CmdCancel:
		c.Cancel()
	case CmdClear:
		c.ClearAll()
	case CmdTogglePolicy:
		if c.Policy == physics.CutSweep {
			c.Policy = physics.CutNearest
		} else {
			c.Policy = physics.CutSweep
		}
	}
}

// Cancel aborts an in-progress stick chain. Nothing else is affected.
func (c *Controller) Cancel() {
	c.chaining = false
}

// ClearAll empties the world and drops any action that referenced it.
func (c *Controller) ClearAll() {
	c.reset()
	c.World.Clear()
}

// Chain returns the node the next stick will start from, if a chain is in
// progress.
func (c *Controller) Chain() (physics.NodeID, bool) {
	return c.chainHead, c.chaining
}

// Dragging returns the node being dragged, if any.
func (c *Controller) Dragging() (physics.NodeID, bool) {
	return c.dragNode, c.dragging
}

// Cutting reports whether a cut gesture is active.
func (c *Controller) Cutting() bool {
	return c.cutting
}

// PointerDown handles a button press at p. modifier is the state of the key
// that makes newly placed nodes anchors.
func (c *Controller) PointerDown(p geom.Vec2, modifier bool) {
	c.pointer = p
	switch c.mode {
	case ModeDraw:
		c.drawClick(p, modifier)
	case ModeMove:
		if c.dragging {
			return
		}
		if n := c.World.NodeAt(p); n != nil {
			c.BeginDrag(n.ID)
		}
	case ModeCut:
		c.BeginCut(p)
	}
}

// PointerMove records the pointer and, during a sweep cut, samples it.
func (c *Controller) PointerMove(p geom.Vec2) {
	c.pointer = p
	if c.mode == ModeCut && c.cutting {
		c.UpdateCut(p)
	}
}

// PointerUp ends any drag or cut gesture. Chains survive releases.
func (c *Controller) PointerUp(p geom.Vec2) {
	c.pointer = p
	c.EndDrag()
	c.EndCut()
}

func (c *Controller) drawClick(p geom.Vec2, modifier bool) {
	n := c.World.NodeAt(p)
	switch {
	case n != nil && !c.chaining:
		c.chainHead = n.ID
		c.chaining = true
	case n != nil:
		// On rejection the head stays so the user can pick another target.
		if _, ok := c.World.AddStick(c.chainHead, n.ID); ok {
			c.chainHead = n.ID
		}
	case !c.chaining:
		// Only non-finite input can fail here, and that is dropped like a miss.
		_, _ = c.World.AddNode(p, modifier, 0)
	}
}

// BeginDrag starts dragging node id. It reports false if no such node exists.
func (c *Controller) BeginDrag(id physics.NodeID) bool {
	if c.World.Node(id) == nil {
		return false
	}
	c.dragNode = id
	c.dragging = true
	return true
}

// UpdateDrag moves the dragged node to p. Velocity is left alone, so letting
// go mid-swing keeps whatever velocity the node had.
func (c *Controller) UpdateDrag(p geom.Vec2) {
	if !c.dragging {
		return
	}
	if !c.World.MoveNode(c.dragNode, p) {
		c.dragging = false
	}
}

func (c *Controller) EndDrag() {
	c.dragging = false
}

// BeginCut starts a cut gesture at p. Under CutNearest the single closest
// stick is removed right away and later samples are ignored.
func (c *Controller) BeginCut(p geom.Vec2) []*physics.Stick {
	c.cutting = true
	if c.Policy == physics.CutNearest {
		return c.World.Cut(p, physics.CutNearest)
	}
	return nil
}

// UpdateCut samples p during a sweep cut, removing every stick under it.
func (c *Controller) UpdateCut(p geom.Vec2) []*physics.Stick {
	if !c.cutting || c.Policy != physics.CutSweep {
		return nil
	}
	return c.World.Cut(p, physics.CutSweep)
}

func (c *Controller) EndCut() {
	c.cutting = false
}

// Update runs the per-frame part of interaction: a held drag follows p.
func (c *Controller) Update(p geom.Vec2) {
	c.pointer = p
	c.UpdateDrag(p)
}

// Frame is one full frame: interaction first, then one physics step. It
// reports whether physics advanced.
func (c *Controller) Frame(p geom.Vec2) bool {
	c.Update(p)
	return c.World.Step()
}
