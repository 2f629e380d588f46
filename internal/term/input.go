package term

import (
	"github.com/gdamore/tcell/v2"

	"springbox/internal/interact"
)

// keyCommand maps a key event to a controller command.
func keyCommand(ev *tcell.EventKey) (interact.Command, bool) {
	if ev.Key() == tcell.KeyEscape {
		return interact.CmdCancel, true
	}
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	switch ev.Rune() {
	case ' ':
		return interact.CmdToggleSimulation, true
	case 'd', 'D':
		return interact.CmdDraw, true
	case 'm', 'M':
		return interact.CmdMove, true
	case 'x', 'X':
		return interact.CmdCut, true
	case 'c', 'C':
		return interact.CmdClear, true
	case 'p', 'P':
		return interact.CmdTogglePolicy, true
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'))
}

// pointerEdge is what a mouse event means for the controller.
type pointerEdge int

const (
	edgeNone pointerEdge = iota
	edgeDown
	edgeMove
	edgeUp
)

// mouseTracker turns tcell's button-state mouse events into press, move, and
// release edges for the primary button.
type mouseTracker struct {
	down       bool
	lastX      int
	lastY      int
	seenCursor bool
}

func (m *mouseTracker) feed(x, y int, buttons tcell.ButtonMask) pointerEdge {
	pressed := buttons&tcell.Button1 != 0
	moved := !m.seenCursor || x != m.lastX || y != m.lastY
	m.lastX, m.lastY, m.seenCursor = x, y, true

	switch {
	case pressed && !m.down:
		m.down = true
		return edgeDown
	case !pressed && m.down:
		m.down = false
		return edgeUp
	case moved:
		return edgeMove
	}
	return edgeNone
}
