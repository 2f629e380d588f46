package game

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"springbox/internal/geom"
	"springbox/internal/interact"
	"springbox/internal/physics"
)

const (
	toolbarHeight  = 36
	toolbarPadding = 6
	buttonWidth    = 92
)

// Theme colors, dark with an indigo accent.
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

// initRayguiStyle sets up the dark toolbar theme.
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

type toolbarButton struct {
	Command interact.Command
	Bounds  geom.AABB
}

// Toolbar is a strip of buttons along the top of the window. Pointer presses
// inside it never reach the controller.
type Toolbar struct {
	buttons []toolbarButton
}

func NewToolbar() *Toolbar {
	cmds := []interact.Command{
		interact.CmdToggleSimulation,
		interact.CmdDraw,
		interact.CmdMove,
		interact.CmdCut,
		interact.CmdTogglePolicy,
		interact.CmdClear,
	}
	t := &Toolbar{}
	x := float64(toolbarPadding)
	for _, cmd := range cmds {
		t.buttons = append(t.buttons, toolbarButton{
			Command: cmd,
			Bounds: geom.AABB{
				Min: geom.V(x, toolbarPadding),
				Max: geom.V(x+buttonWidth, toolbarHeight-toolbarPadding/2),
			},
		})
		x += buttonWidth + toolbarPadding
	}
	return t
}

// Contains reports whether p is over the toolbar strip.
func (t *Toolbar) Contains(p geom.Vec2) bool {
	if len(t.buttons) == 0 {
		return false
	}
	last := t.buttons[len(t.buttons)-1].Bounds
	strip := geom.AABB{Min: geom.V(0, 0), Max: geom.V(last.Max.X+toolbarPadding, toolbarHeight)}
	return strip.Contains(p)
}

// Draw draws the toolbar and returns the command of a clicked button.
func (t *Toolbar) Draw(c *interact.Controller) (interact.Command, bool) {
	last := t.buttons[len(t.buttons)-1].Bounds
	rl.DrawRectangle(0, 0, int32(last.Max.X+toolbarPadding), toolbarHeight, colorBgPanel)

	var clicked interact.Command
	var ok bool
	for _, b := range t.buttons {
		label := buttonLabel(b.Command, c)
		if t.active(b.Command, c) {
			rl.DrawRectangleRec(rect(b.Bounds.Expand(1)), colorAccent)
		}
		if gui.Button(rect(b.Bounds), label) {
			clicked, ok = b.Command, true
		}
	}
	return clicked, ok
}

func (t *Toolbar) active(cmd interact.Command, c *interact.Controller) bool {
	switch cmd {
	case interact.CmdDraw:
		return c.Mode() == interact.ModeDraw
	case interact.CmdMove:
		return c.Mode() == interact.ModeMove
	case interact.CmdCut:
		return c.Mode() == interact.ModeCut
	case interact.CmdToggleSimulation:
		return c.World.Simulating
	}
	return false
}

func buttonLabel(cmd interact.Command, c *interact.Controller) string {
	switch cmd {
	case interact.CmdToggleSimulation:
		if c.World.Simulating {
			return "Pause"
		}
		return "Simulate"
	case interact.CmdDraw:
		return "Draw"
	case interact.CmdMove:
		return "Move"
	case interact.CmdCut:
		return "Cut"
	case interact.CmdTogglePolicy:
		if c.Policy == physics.CutNearest {
			return "Nearest"
		}
		return "Sweep"
	case interact.CmdClear:
		return "Clear"
	}
	return cmd.String()
}

func rect(b geom.AABB) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(b.Min.X),
		Y:      float32(b.Min.Y),
		Width:  float32(b.Max.X - b.Min.X),
		Height: float32(b.Max.Y - b.Min.Y),
	}
}
