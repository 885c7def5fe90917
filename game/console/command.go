package console

import (
	"strings"

	"github.com/wricardo/fifteen-puzzle/game/engine"
)

// CommandKind classifies a line of player input
type CommandKind int

const (
	CommandInvalid CommandKind = iota
	CommandMove
	CommandQuit
)

// Command is a parsed line of player input
type Command struct {
	Kind      CommandKind
	Direction engine.Direction
}

// ParseCommand trims and upper-cases line, then matches it against keys
func ParseCommand(line string, keys engine.KeyBindings) Command {
	token := normalizeKey(line)
	if token == "" {
		return Command{Kind: CommandInvalid}
	}

	switch token {
	case normalizeKey(keys.Quit):
		return Command{Kind: CommandQuit}
	case normalizeKey(keys.Up):
		return Command{Kind: CommandMove, Direction: engine.Up}
	case normalizeKey(keys.Down):
		return Command{Kind: CommandMove, Direction: engine.Down}
	case normalizeKey(keys.Left):
		return Command{Kind: CommandMove, Direction: engine.Left}
	case normalizeKey(keys.Right):
		return Command{Kind: CommandMove, Direction: engine.Right}
	}

	return Command{Kind: CommandInvalid}
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
