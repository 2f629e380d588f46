package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"springbox/internal/geom"
	"springbox/internal/interact"
	"springbox/internal/physics"
)

var (
	colorBackground = rl.NewColor(51, 51, 51, 255)
	colorNode       = rl.NewColor(255, 250, 250, 255) // snow
	colorLocked     = rl.NewColor(230, 90, 90, 255)
	colorStick      = rl.NewColor(255, 250, 250, 255)
	colorChain      = rl.NewColor(255, 250, 250, 140)
	colorDragged    = rl.NewColor(167, 139, 250, 255)
	colorCutCursor  = rl.NewColor(230, 90, 90, 120)
	colorHUD        = rl.NewColor(255, 250, 250, 255)
	colorHUDMuted   = rl.NewColor(150, 150, 150, 255)
)

const stickWidth = 2

// drawScene draws sticks below nodes, then whatever the controller has in
// progress on top.
func drawScene(w *physics.World, c *interact.Controller) {
	for _, s := range w.Sticks() {
		a, b := w.Endpoints(s)
		rl.DrawLineEx(vec(a), vec(b), stickWidth, colorStick)
	}

	dragID, dragging := c.Dragging()
	for _, n := range w.Nodes() {
		col := colorNode
		if n.Locked {
			col = colorLocked
		}
		if dragging && n.ID == dragID {
			col = colorDragged
		}
		rl.DrawCircleV(vec(n.Position), float32(n.Radius), col)
	}

	pointer := c.Pointer()
	if head, ok := c.Chain(); ok {
		if n := w.Node(head); n != nil {
			rl.DrawLineEx(vec(n.Position), vec(pointer), stickWidth, colorChain)
			rl.DrawCircleLines(int32(n.Position.X), int32(n.Position.Y), float32(n.HitRadius()), colorChain)
		}
	}
	if c.Mode() == interact.ModeCut {
		rl.DrawCircleLines(int32(pointer.X), int32(pointer.Y), float32(w.Params.CutThreshold), colorCutCursor)
	}
}

func vec(v geom.Vec2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}
