package interact

// Mode is the controller's current interpretation of pointer gestures.
type Mode int

const (
	ModeDraw Mode = iota // place nodes and chain sticks between them
	ModeMove             // drag nodes, anchors included
	ModeCut              // remove sticks under the pointer
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "DRAW"
	case ModeMove:
		return "MOVE"
	case ModeCut:
		return "CUT"
	default:
		return "UNKNOWN"
	}
}

// Command is a discrete, non-pointer input.
type Command int

const (
	CmdToggleSimulation Command = iota
	CmdDraw
	CmdMove
	CmdCut
	CmdCancel
	CmdClear
	CmdTogglePolicy
)

func (c Command) String() string {
	switch c {
	case CmdToggleSimulation:
		return "toggle-simulation"
	case CmdDraw:
		return "draw"
	case CmdMove:
		return "move"
	case CmdCut:
		return "cut"
	case CmdCancel:
		return "cancel"
	case CmdClear:
		return "clear"
	case CmdTogglePolicy:
		return "toggle-policy"
	default:
		return "unknown"
	}
}

// ParseCommand maps a command name, as produced by String, back to a Command.
func ParseCommand(s string) (Command, bool) {
	for c := CmdToggleSimulation; c <= CmdTogglePolicy; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}
