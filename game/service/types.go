package service

import (
	"github.com/wricardo/fifteen-puzzle/game/engine"
)

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success       bool              `json:"success"`
	Direction     string            `json:"direction"`
	Tile          uint8             `json:"tile,omitempty"`
	Moves         int               `json:"moves"`
	Solved        bool              `json:"solved"`
	Message       string            `json:"message"`
	GameState     *engine.GameState `json:"game_state"`
	PossibleMoves []string          `json:"possible_moves,omitempty"`
	AttemptedTo   *AttemptInfo      `json:"attempted_to,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	RequestedMoves int               `json:"requested_moves"`
	MovesExecuted  int               `json:"moves_executed"`
	Success        bool              `json:"success"`
	Solved         bool              `json:"solved"`
	Message        string            `json:"message,omitempty"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`   // Human-readable reason
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // blocked_boundary|solved
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based index of the move that caused stop
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`
	StartBlank     engine.Position   `json:"start_blank"`
	EndBlank       engine.Position   `json:"end_blank"`
	GameState      *engine.GameState `json:"game_state"`
	AttemptedTo    *AttemptInfo      `json:"attempted_to,omitempty"`
}

// AttemptInfo details the off-board cell a rejected move aimed at
type AttemptInfo struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string             `json:"filename"`
	ConfigID    string             `json:"config_id"` // The identifier to pass to NewGame
	Name        string             `json:"name"`      // Display name
	Description string             `json:"description"`
	Keys        engine.KeyBindings `json:"keys"`
}
