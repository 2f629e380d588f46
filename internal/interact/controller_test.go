package interact

import (
	"testing"

	"springbox/internal/geom"
	"springbox/internal/physics"
)

func newTestController() *Controller {
	return NewController(physics.NewWorld(physics.DefaultParams()))
}

// place creates a node by clicking empty space in draw mode.
func place(t *testing.T, c *Controller, x, y float64, locked bool) *physics.Node {
	t.Helper()
	before := len(c.World.Nodes())
	c.PointerDown(geom.V(x, y), locked)
	c.PointerUp(geom.V(x, y))
	nodes := c.World.Nodes()
	if len(nodes) != before+1 {
		t.Fatalf("Expected a node at (%v,%v), have %d nodes", x, y, len(nodes))
	}
	return nodes[len(nodes)-1]
}

func click(c *Controller, n *physics.Node) {
	c.PointerDown(n.Position, false)
	c.PointerUp(n.Position)
}

func TestInitialModeIsDraw(t *testing.T) {
	c := newTestController()
	if c.Mode() != ModeDraw {
		t.Errorf("Expected DRAW, got %s", c.Mode())
	}
}

func TestDrawPlacesNodesWithModifierLock(t *testing.T) {
	c := newTestController()
	free := place(t, c, 100, 100, false)
	anchor := place(t, c, 300, 100, true)

	if free.Locked {
		t.Error("Node placed without modifier should be free")
	}
	if !anchor.Locked {
		t.Error("Node placed with modifier should be locked")
	}
	if free.Radius != physics.DefaultParams().NodeRadius {
		t.Errorf("Expected default radius, got %f", free.Radius)
	}
}

func TestDrawChainsConsecutiveClicks(t *testing.T) {
	c := newTestController()
	a := place(t, c, 100, 100, false)
	b := place(t, c, 200, 100, false)
	d := place(t, c, 300, 100, false)

	click(c, a)
	if head, ok := c.Chain(); !ok || head != a.ID {
		t.Fatalf("Expected chain from a, got %v %v", head, ok)
	}
	click(c, b)
	click(c, d)

	if !c.World.HasStick(a.ID, b.ID) || !c.World.HasStick(b.ID, d.ID) {
		t.Error("Expected sticks a-b and b-d")
	}
	if head, _ := c.Chain(); head != d.ID {
		t.Errorf("Expected chain head d, got %v", head)
	}
	if len(c.World.Sticks()) != 2 {
		t.Errorf("Expected 2 sticks, got %d", len(c.World.Sticks()))
	}
}

func TestDrawDuplicateKeepsChainHead(t *testing.T) {
	c := newTestController()
	a := place(t, c, 100, 100, false)
	b := place(t, c, 200, 100, false)

	click(c, a)
	click(c, b) // a-b, head b
	click(c, a) // b-a duplicate, head stays b

	if len(c.World.Sticks()) != 1 {
		t.Errorf("Expected 1 stick, got %d", len(c.World.Sticks()))
	}
	if head, ok := c.Chain(); !ok || head != b.ID {
		t.Errorf("Expected chain head b after rejection, got %v %v", head, ok)
	}

	// Clicking the head itself is a rejected self loop
	click(c, b)
	if len(c.World.Sticks()) != 1 {
		t.Errorf("Self loop created a stick")
	}
	if head, _ := c.Chain(); head != b.ID {
		t.Errorf("Expected chain head b after self loop, got %v", head)
	}
}

func TestDrawEmptyClickDuringChainDoesNothing(t *testing.T) {
	c := newTestController()
	a := place(t, c, 100, 100, false)
	click(c, a)

	c.PointerDown(geom.V(500, 500), false)
	if len(c.World.Nodes()) != 1 {
		t.Errorf("Empty click during a chain should not place a node, have %d", len(c.World.Nodes()))
	}
	if _, ok := c.Chain(); !ok {
		t.Error("Empty click should not end the chain")
	}
}

func TestCancelAbortsChain(t *testing.T) {
	c := newTestController()
	a := place(t, c, 100, 100, false)
	b := place(t, c, 200, 100, false)
	click(c, a)

	c.Exec(CmdCancel)
	if _, ok := c.Chain(); ok {
		t.Error("Cancel should end the chain")
	}
	click(c, b)
	if len(c.World.Sticks()) != 0 {
		t.Error("Click after cancel should start a new chain, not link")
	}
}

func TestModeSwitchCancelsChain(t *testing.T) {
	c := newTestController()
	a := place(t, c, 100, 100, false)
	click(c, a)

	c.SetMode(ModeDraw) // same mode: nothing happens
	if _, ok := c.Chain(); !ok {
		t.Error("Re-selecting draw mode should keep the chain")
	}

	c.Exec(CmdMove)
	c.Exec(CmdDraw)
	if _, ok := c.Chain(); ok {
		t.Error("Leaving draw mode should cancel the chain")
	}
}

func TestModeChangedEvent(t *testing.T) {
	c := newTestController()
	var seen []Mode
	c.ModeChanged.AddListener(func(m Mode) { seen = append(seen, m) })

	c.Exec(CmdCut)
	c.Exec(CmdCut)
	c.Exec(CmdMove)

	if len(seen) != 2 || seen[0] != ModeCut || seen[1] != ModeMove {
		t.Errorf("Expected [CUT MOVE], got %v", seen)
	}
}

func TestMoveDragsAnchorAndKeepsVelocity(t *testing.T) {
	c := newTestController()
	anchor := place(t, c, 100, 100, true)
	anchor.Velocity = geom.V(2, 0)

	c.SetMode(ModeMove)
	c.PointerDown(geom.V(105, 100), false)
	if id, ok := c.Dragging(); !ok || id != anchor.ID {
		t.Fatalf("Expected drag of anchor, got %v %v", id, ok)
	}

	c.Update(geom.V(150, 160))
	if anchor.Position != geom.V(150, 160) {
		t.Errorf("Expected anchor at (150,160), got %v", anchor.Position)
	}
	c.Update(geom.V(170, 180))
	if anchor.Position != geom.V(170, 180) {
		t.Errorf("Expected anchor at (170,180), got %v", anchor.Position)
	}
	if anchor.Velocity != geom.V(2, 0) {
		t.Errorf("Drag changed velocity: %v", anchor.Velocity)
	}

	c.PointerUp(geom.V(170, 180))
	c.Update(geom.V(400, 400))
	if anchor.Position != geom.V(170, 180) {
		t.Errorf("Node followed the pointer after release: %v", anchor.Position)
	}
}

// A node released mid-drag keeps the velocity it had before the drag and the
// next step applies it. This flick is accepted behaviour.
func TestReleasedDragKeepsStaleVelocity(t *testing.T) {
	p := physics.DefaultParams()
	p.Gravity = 0
	c := NewController(physics.NewWorld(p))
	n := place(t, c, 100, 100, false)
	n.Velocity = geom.V(6, 0)

	c.SetMode(ModeMove)
	c.PointerDown(n.Position, false)
	c.Update(geom.V(200, 200))
	c.PointerUp(geom.V(200, 200))

	c.World.SetSimulating(true)
	c.Frame(geom.V(200, 200))

	if n.Position != geom.V(206, 200) {
		t.Errorf("Expected flick to (206,200), got %v", n.Position)
	}
}

func TestMovePressOnEmptySpaceDoesNothing(t *testing.T) {
	c := newTestController()
	place(t, c, 100, 100, false)
	c.SetMode(ModeMove)

	c.PointerDown(geom.V(400, 400), false)
	if _, ok := c.Dragging(); ok {
		t.Error("Drag started on empty space")
	}
	if len(c.World.Nodes()) != 1 {
		t.Error("Move mode placed a node")
	}
}

func TestSweepCutRemovesEverythingCrossed(t *testing.T) {
	c := newTestController()
	a := place(t, c, 100, 100, false)
	b := place(t, c, 100, 300, false)
	d := place(t, c, 300, 100, false)
	e := place(t, c, 300, 300, false)
	c.World.AddStick(a.ID, b.ID)
	c.World.AddStick(d.ID, e.ID)

	c.SetMode(ModeCut)
	c.PointerDown(geom.V(50, 200), false)
	if !c.Cutting() {
		t.Fatal("Expected cut gesture to be active")
	}
	for x := 50.0; x <= 350; x += 5 {
		c.PointerMove(geom.V(x, 200))
	}
	c.PointerUp(geom.V(350, 200))

	if len(c.World.Sticks()) != 0 {
		t.Errorf("Expected both sticks cut, %d left", len(c.World.Sticks()))
	}
}

func TestCutOnlyWhileGestureActive(t *testing.T) {
	c := newTestController()
	a := place(t, c, 100, 100, false)
	b := place(t, c, 100, 300, false)
	c.World.AddStick(a.ID, b.ID)

	c.SetMode(ModeCut)
	c.PointerMove(geom.V(100, 200)) // hovering, no press
	if len(c.World.Sticks()) != 1 {
		t.Error("Hover without press cut a stick")
	}

	c.PointerDown(geom.V(20, 200), false)
	c.PointerUp(geom.V(20, 200))
	c.PointerMove(geom.V(100, 200)) // released
	if len(c.World.Sticks()) != 1 {
		t.Error("Move after release cut a stick")
	}
}

func TestNearestPolicyCutsOneOnPress(t *testing.T) {
	c := newTestController()
	a := place(t, c, 100, 100, false)
	b := place(t, c, 100, 300, false)
	// Too close to place by clicking; the second click would hit a
	d, _ := c.World.AddNode(geom.V(106, 100), false, 0)
	e, _ := c.World.AddNode(geom.V(106, 300), false, 0)
	c.World.AddStick(a.ID, b.ID)
	c.World.AddStick(d.ID, e.ID)

	c.SetMode(ModeCut)
	c.Exec(CmdTogglePolicy)
	if c.Policy != physics.CutNearest {
		t.Fatalf("Expected nearest policy, got %s", c.Policy)
	}

	c.PointerDown(geom.V(104, 200), false)
	c.PointerMove(geom.V(101, 200)) // ignored under nearest
	c.PointerUp(geom.V(101, 200))

	if len(c.World.Sticks()) != 1 {
		t.Fatalf("Expected 1 stick left, got %d", len(c.World.Sticks()))
	}
	if !c.World.HasStick(a.ID, b.ID) {
		t.Error("Expected the farther stick a-b to survive")
	}
}

func TestClearResetsWorldAndChain(t *testing.T) {
	c := newTestController()
	a := place(t, c, 100, 100, false)
	place(t, c, 200, 100, false)
	click(c, a)

	c.Exec(CmdClear)
	if len(c.World.Nodes()) != 0 || len(c.World.Sticks()) != 0 {
		t.Error("Clear left state behind")
	}
	if _, ok := c.Chain(); ok {
		t.Error("Clear should drop the chain")
	}

	// Next click places a node instead of resuming a dead chain
	c.PointerDown(geom.V(50, 50), false)
	if len(c.World.Nodes()) != 1 {
		t.Errorf("Expected 1 node after clear, got %d", len(c.World.Nodes()))
	}
}

func TestDragOfClearedNodeEnds(t *testing.T) {
	c := newTestController()
	n := place(t, c, 100, 100, false)
	c.SetMode(ModeMove)
	c.PointerDown(n.Position, false)

	c.World.Clear() // behind the controller's back
	c.Update(geom.V(10, 10))
	if _, ok := c.Dragging(); ok {
		t.Error("Drag should end once its node is gone")
	}
}

func TestToggleSimulationCommand(t *testing.T) {
	c := newTestController()
	c.Exec(CmdToggleSimulation)
	if !c.World.Simulating {
		t.Error("Expected simulation on")
	}
	if !c.Frame(geom.V(0, 0)) {
		t.Error("Frame should report a step while simulating")
	}
	c.Exec(CmdToggleSimulation)
	if c.Frame(geom.V(0, 0)) {
		t.Error("Frame should not step while paused")
	}
}

func TestParseCommand(t *testing.T) {
	for cmd := CmdToggleSimulation; cmd <= CmdTogglePolicy; cmd++ {
		got, ok := ParseCommand(cmd.String())
		if !ok || got != cmd {
			t.Errorf("ParseCommand(%q) = %v %v", cmd.String(), got, ok)
		}
	}
	if _, ok := ParseCommand("explode"); ok {
		t.Error("Unknown command parsed")
	}
}
