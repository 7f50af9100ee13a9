package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// Command is a logical input understood by the selector and the player.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandUp
	CommandRight
	CommandDown
	CommandHelp
	CommandEnter
	CommandPause
	CommandQuit
)

var commandNames = map[Command]string{
	CommandLeft:  "left",
	CommandUp:    "up",
	CommandRight: "right",
	CommandDown:  "down",
	CommandHelp:  "help",
	CommandEnter: "enter",
	CommandPause: "pause",
	CommandQuit:  "quit",
}

// String returns the command name as used in key maps.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// ParseCommand maps a command name to a Command.
// Unknown names yield CommandNone, which every handler ignores.
func ParseCommand(name string) Command {
	for c, n := range commandNames {
		if n == name {
			return c
		}
	}
	return CommandNone
}

// commandForAction translates a platform action into a game command.
func commandForAction(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return CommandLeft
	case core.ActionUp:
		return CommandUp
	case core.ActionRight:
		return CommandRight
	case core.ActionDown:
		return CommandDown
	case core.ActionHelp:
		return CommandHelp
	case core.ActionConfirm:
		return CommandEnter
	case core.ActionPause:
		return CommandPause
	case core.ActionBack:
		return CommandQuit
	default:
		return CommandNone
	}
}
