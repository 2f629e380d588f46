package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"springbox/internal/config"
	"springbox/internal/geom"
	"springbox/internal/interact"
	"springbox/internal/physics"
)

var (
	styleBase   = tcell.StyleDefault.Background(tcell.NewRGBColor(51, 51, 51)).Foreground(tcell.NewRGBColor(255, 250, 250))
	styleLocked = styleBase.Foreground(tcell.NewRGBColor(230, 90, 90))
	styleChain  = styleBase.Foreground(tcell.NewRGBColor(150, 150, 150))
	styleStatus = styleBase.Reverse(true)
)

// Terminal runs the sandbox inside a tcell screen. All world access happens on
// the goroutine that called Run.
type Terminal struct {
	World      *physics.World
	Controller *interact.Controller
	View       Viewport
	Tick       time.Duration

	screen tcell.Screen
	mouse  mouseTracker
}

func New(cfg config.TerminalConfig, w *physics.World, c *interact.Controller) *Terminal {
	tick := time.Duration(cfg.TickMillis) * time.Millisecond
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}
	return &Terminal{
		World:      w,
		Controller: c,
		View:       Viewport{CellW: cfg.CellWidth, CellH: cfg.CellHeight},
		Tick:       tick,
	}
}

// Run takes over the terminal until q, Ctrl-C, or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer s.Fini()

	s.SetStyle(styleBase)
	s.EnableMouse()
	s.HideCursor()
	t.screen = s

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	ticker := time.NewTicker(t.Tick)
	defer ticker.Stop()

	pointer := t.Controller.Pointer()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if cmd, ok := keyCommand(ev); ok {
					t.Controller.Exec(cmd)
				}
			case *tcell.EventMouse:
				x, y := ev.Position()
				pointer = t.View.ToWorld(x, y)
				switch t.mouse.feed(x, y, ev.Buttons()) {
				case edgeDown:
					t.Controller.PointerDown(pointer, ev.Modifiers()&tcell.ModShift != 0)
				case edgeMove:
					t.Controller.PointerMove(pointer)
				case edgeUp:
					t.Controller.PointerUp(pointer)
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-ticker.C:
			t.Controller.Frame(pointer)
			t.draw(pointer)
		}
	}
}

func (t *Terminal) draw(pointer geom.Vec2) {
	s := t.screen
	s.Clear()

	for _, st := range t.World.Sticks() {
		a, b := t.World.Endpoints(st)
		t.segment(a, b, styleBase)
	}
	if head, ok := t.Controller.Chain(); ok {
		if n := t.World.Node(head); n != nil {
			t.segment(n.Position, pointer, styleChain)
		}
	}
	w, h := s.Size()
	for _, n := range t.World.Nodes() {
		x, y, ok := t.View.CellOnScreen(n.Position, w, h)
		if !ok {
			continue
		}
		if n.Locked {
			s.SetContent(x, y, '◆', nil, styleLocked)
		} else {
			s.SetContent(x, y, '●', nil, styleBase)
		}
	}

	t.status()
	s.Show()
}

func (t *Terminal) segment(a, b geom.Vec2, style tcell.Style) {
	w, h := t.screen.Size()
	x0, y0, x1, y1, ok := t.View.ClipSegment(a, b, w, h)
	if !ok {
		return
	}
	r := lineRune(x1-x0, y1-y0)
	Line(x0, y0, x1, y1, func(x, y int) {
		t.screen.SetContent(x, y, r, nil, style)
	})
}

func (t *Terminal) status() {
	w, h := t.screen.Size()
	state := "paused"
	if t.World.Simulating {
		state = "running"
	}
	st := t.World.Stats()
	line := fmt.Sprintf(" %s | %s | cut:%s | nodes %d sticks %d | space d m x c p esc q ",
		t.Controller.Mode(), state, t.Controller.Policy, st.Nodes, st.Sticks)
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		t.screen.SetContent(col, h-1, r, nil, styleStatus)
		col++
	}
	for ; col < w; col++ {
		t.screen.SetContent(col, h-1, ' ', nil, styleStatus)
	}
}
