package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/fifteen-puzzle/game/engine"
	"github.com/wricardo/fifteen-puzzle/game/service"
)

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	solved := "no"
	if state.Solved {
		solved = "yes"
	}
	result.WriteString(fmt.Sprintf("Blank: (%d,%d) | Moves: %d | Solved: %s | Config: %s\n",
		state.Blank.Row, state.Blank.Col, state.Moves, solved, state.ConfigName))
	result.WriteString(fmt.Sprintf("Misplaced: %d | Manhattan: %d\n\n",
		engine.MisplacedTiles(state.Grid), engine.TotalManhattan(state.Grid)))

	// Grid, blank shown as "__" so agents can spot it
	for _, row := range state.Grid {
		for _, cell := range row {
			if cell == engine.Blank {
				result.WriteString("__ ")
			} else {
				result.WriteString(engine.FormatCell(cell))
			}
		}
		result.WriteString("\n")
	}

	if pm := computePossibleMoves(state); len(pm) > 0 && !state.Solved {
		result.WriteString("\nPossible moves: ")
		result.WriteString(strings.Join(pm, ","))
		result.WriteString("\n")
	}

	if state.Solved {
		result.WriteString(fmt.Sprintf("\n🎉 SOLVED in %d moves!", state.Moves))
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Move successful\n"
		response += fmt.Sprintf("Step: blank %s, tile %d slid\n", result.Direction, result.Tile)
	} else {
		response = "✗ Move failed\n"
	}

	if result.AttemptedTo != nil {
		a := result.AttemptedTo
		response += fmt.Sprintf("Blocked: attempted (%d,%d) is off the board\n", a.Row, a.Col)
	}

	if result.Message != "" {
		response += fmt.Sprintf("Message: %s\n", result.Message)
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatBulkMoveResult(result *service.BulkMoveResult) string {
	var b strings.Builder

	configName := ""
	if result.GameState != nil {
		configName = result.GameState.ConfigName
	}
	b.WriteString(fmt.Sprintf("Config: %s\n", configName))

	b.WriteString(fmt.Sprintf("Executed %d/%d moves\n", result.MovesExecuted, result.RequestedMoves))
	if result.Truncated {
		b.WriteString(fmt.Sprintf("Truncated: only the first %d moves were considered\n", result.Limit))
	}
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped: %s\n", result.StoppedReason))
	}
	if result.AttemptedTo != nil {
		b.WriteString(fmt.Sprintf("Blocked: attempted (%d,%d) is off the board\n",
			result.AttemptedTo.Row, result.AttemptedTo.Col))
	}
	b.WriteString(fmt.Sprintf("Blank: (%d,%d) → (%d,%d)\n",
		result.StartBlank.Row, result.StartBlank.Col, result.EndBlank.Row, result.EndBlank.Col))

	// Recent steps: last N history entries where N = moves executed
	if result.GameState != nil && result.MovesExecuted > 0 {
		steps := getRecentSteps(result.GameState, result.MovesExecuted)
		if len(steps) > 0 {
			b.WriteString("\nRecent steps (this call):\n")
			for i, step := range steps {
				b.WriteString(formatStepLine(i+1, step))
			}
		}
	}

	if result.Message != "" {
		b.WriteString(fmt.Sprintf("\nMessage: %s\n", result.Message))
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

// getRecentSteps returns the last n entries of the move history
func getRecentSteps(state *engine.GameState, n int) []engine.MoveHistoryEntry {
	total := len(state.MoveHistory)
	if total == 0 || n <= 0 {
		return nil
	}
	if n > total {
		n = total
	}
	return state.MoveHistory[total-n:]
}

func formatStepLine(idx int, entry engine.MoveHistoryEntry) string {
	return fmt.Sprintf("%d. %s tile=%d (%d,%d)→(%d,%d)\n", idx, entry.Action, entry.Tile,
		entry.BlankFrom.Row, entry.BlankFrom.Col, entry.BlankTo.Row, entry.BlankTo.Col)
}

func computePossibleMoves(state *engine.GameState) []string {
	var moves []string
	for _, d := range engine.Directions {
		if state.Grid.CanApply(d) {
			moves = append(moves, d.String())
		}
	}
	return moves
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Move History (Page %d/%d) | Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves))

	if len(history.Moves) == 0 {
		b.WriteString("(no moves)\n")
		return b.String()
	}

	for _, move := range history.Moves {
		b.WriteString(fmt.Sprintf("#%d %s tile=%d blank (%d,%d)→(%d,%d)\n",
			move.MoveNumber, move.Action, move.Tile,
			move.BlankFrom.Row, move.BlankFrom.Col, move.BlankTo.Row, move.BlankTo.Col))
	}

	return b.String()
}
