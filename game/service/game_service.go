package service

import (
	"context"
	"errors"

	"github.com/wricardo/fifteen-puzzle/game/engine"
)

var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrNoConfigManager  = errors.New("no configuration manager")
)

// GameService defines all game-related operations
type GameService interface {
	// Game lifecycle
	NewGame(ctx context.Context, configName string) (*engine.GameState, error)

	// Game Operations
	Move(ctx context.Context, direction string) (*MoveResult, error)
	BulkMove(ctx context.Context, moves []string) (*BulkMoveResult, error)

	// Game State
	GetGameState(ctx context.Context) (*engine.GameState, error)
	GetMoveHistory(ctx context.Context, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
}
