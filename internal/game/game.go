package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"springbox/internal/audio"
	"springbox/internal/config"
	"springbox/internal/geom"
	"springbox/internal/interact"
	"springbox/internal/physics"
)

// Game is the raylib window front end. It owns nothing physical: the world
// and controller are shared with whoever built them.
type Game struct {
	World      *physics.World
	Controller *interact.Controller
	Config     *config.Config
	DebugMode  bool

	audio   *audio.Manager
	toolbar *Toolbar

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg *config.Config, w *physics.World, c *interact.Controller) *Game {
	return &Game{
		World:      w,
		Controller: c,
		Config:     cfg,
		toolbar:    NewToolbar(),
	}
}

func (g *Game) Run() {
	win := g.Config.Window
	if win.HighDPI {
		rl.SetConfigFlags(rl.FlagWindowHighdpi)
	}
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	// Esc cancels a chain; it must not close the window.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)
	initRayguiStyle()

	// Audio needs the window's context first.
	g.audio = audio.NewManager(g.Config.Audio, float64(win.Width))
	defer g.audio.Close()
	unbind := g.audio.Bind(g.World)
	defer unbind()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()

	pointer := mouseWorld()
	g.handleKeys()

	if !g.toolbar.Contains(pointer) {
		g.handleMouse(pointer)
	} else if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		g.Controller.PointerUp(pointer)
	}

	if rl.IsWindowResized() {
		g.audio.SetWidth(float64(rl.GetScreenWidth()))
	}

	g.Controller.Frame(pointer)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handleKeys() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if cmd, ok := commandForKey(key); ok {
			g.Controller.Exec(cmd)
		}
	}
}

func (g *Game) handleMouse(p geom.Vec2) {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		modifier := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		g.Controller.PointerDown(p, modifier)
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		g.Controller.PointerMove(p)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		g.Controller.PointerUp(p)
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	drawStart := time.Now()
	drawScene(g.World, g.Controller)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	if cmd, ok := g.toolbar.Draw(g.Controller); ok {
		g.Controller.Exec(cmd)
	}
	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	screenH := int32(rl.GetScreenHeight())
	state := "PAUSED"
	if g.World.Simulating {
		state = "RUNNING"
	}
	status := fmt.Sprintf("%s  %s  cut:%s", g.Controller.Mode(), state, g.Controller.Policy)
	rl.DrawText(status, 10, screenH-30, 20, colorHUD)
	rl.DrawText("Space simulate, D/M/X modes, Shift locks, Esc cancels, C clears, P policy", 10, screenH-55, 16, colorHUDMuted)

	if g.DebugMode {
		s := g.World.Stats()
		rl.DrawFPS(10, toolbarHeight+10)
		rl.DrawText(fmt.Sprintf("Tick:    %d", s.Tick), 10, toolbarHeight+35, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Nodes:   %d (%d locked)", s.Nodes, s.Locked), 10, toolbarHeight+55, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Sticks:  %d", s.Sticks), 10, toolbarHeight+75, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Energy:  %.2f", s.KineticEnergy), 10, toolbarHeight+95, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Strain:  %.3f / %.3f", s.MeanStrain, s.MaxStrain), 10, toolbarHeight+115, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), 10, toolbarHeight+135, 16, rl.Lime)
		rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), 10, toolbarHeight+155, 16, rl.Lime)
	}
}

func mouseWorld() geom.Vec2 {
	m := rl.GetMousePosition()
	return geom.V(float64(m.X), float64(m.Y))
}
