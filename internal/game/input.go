package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"springbox/internal/interact"
)

// KeyBinding maps a key press to a controller command.
type KeyBinding struct {
	Key     int32
	Command interact.Command
}

var keyBindings = []KeyBinding{
	{rl.KeyEscape, interact.CmdCancel},
	{rl.KeySpace, interact.CmdToggleSimulation},
	{rl.KeyD, interact.CmdDraw},
	{rl.KeyM, interact.CmdMove},
	{rl.KeyX, interact.CmdCut},
	{rl.KeyC, interact.CmdClear},
	{rl.KeyP, interact.CmdTogglePolicy},
}

// commandForKey returns the command bound to key, if any.
func commandForKey(key int32) (interact.Command, bool) {
	for _, b := range keyBindings {
		if b.Key == key {
			return b.Command, true
		}
	}
	return 0, false
}
