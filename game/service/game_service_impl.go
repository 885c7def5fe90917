package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wricardo/fifteen-puzzle/game/engine"
)

// gameServiceImpl implements GameService over a single engine
type gameServiceImpl struct {
	engine  engine.Engine
	configs ConfigManager
	rng     *rand.Rand
	logger  zerolog.Logger
	mu      sync.RWMutex
}

// NewGameService creates a game service with a freshly shuffled puzzle using
// the manager's default configuration. A nil rng is seeded from the clock.
func NewGameService(configs ConfigManager, rng *rand.Rand, logger zerolog.Logger) (GameService, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cfg := engine.DefaultConfig()
	if configs != nil {
		cfg = configs.GetDefault()
	}

	eng, err := engine.NewEngine(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return &gameServiceImpl{
		engine:  eng,
		configs: configs,
		rng:     rng,
		logger:  logger,
	}, nil
}

// NewGameServiceWithEngine wraps an existing engine
func NewGameServiceWithEngine(eng engine.Engine, configs ConfigManager, logger zerolog.Logger) GameService {
	return &gameServiceImpl{
		engine:  eng,
		configs: configs,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  logger,
	}
}

// NewGame deals a new puzzle. An empty configName keeps the current
// configuration.
func (s *gameServiceImpl) NewGame(ctx context.Context, configName string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if configName == "" {
		state := s.engine.Reset()
		s.logger.Debug().Str("config", state.ConfigName).Msg("new game")
		return state, nil
	}

	if s.configs == nil {
		return nil, ErrNoConfigManager
	}

	cfg, err := s.configs.LoadConfig(configName)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
	}

	eng, err := engine.NewEngine(cfg, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	s.engine = eng

	s.logger.Debug().Str("config", cfg.Name).Msg("new game")
	return s.engine.GetState(), nil
}

// Move slides one tile. Rejected and post-solve moves are reported in the
// result, not as errors; only an unparseable direction is an error.
func (s *gameServiceImpl) Move(ctx context.Context, direction string) (*MoveResult, error) {
	dir, err := engine.ParseDirection(direction)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.engine.GetConfig()
	result := &MoveResult{Direction: dir.String()}

	if s.engine.IsSolved() {
		result.Solved = true
		result.Moves = s.engine.GetMoveCount()
		result.Message = "Puzzle already solved. Start a new game to keep playing."
		result.GameState = s.engine.GetState()
		return result, nil
	}

	blank := s.engine.GetBlankPosition()
	result.Success = s.engine.Move(dir)
	result.Moves = s.engine.GetMoveCount()
	result.Solved = s.engine.IsSolved()

	if result.Success {
		last := s.engine.GetLastMove()
		result.Tile = last.Tile
		result.Message = fmt.Sprintf("Tile %d slid into (%d,%d).", last.Tile, last.BlankFrom.Row, last.BlankFrom.Col)
		if result.Solved {
			result.Message = fmt.Sprintf(cfg.Messages.Victory, result.Moves)
		}
	} else {
		result.Message = cfg.Messages.InvalidMove
		dr, dc := dir.Delta()
		result.AttemptedTo = &AttemptInfo{Row: blank.Row + dr, Col: blank.Col + dc}
	}

	result.PossibleMoves = directionNames(s.engine.GetPossibleMoves())
	result.GameState = s.engine.GetState()

	s.logger.Debug().
		Str("direction", result.Direction).
		Bool("success", result.Success).
		Int("moves", result.Moves).
		Bool("solved", result.Solved).
		Msg("move")

	return result, nil
}

// BulkMove executes up to engine.MaxBulkMoves moves in order. Every direction
// is parsed before any is applied.
func (s *gameServiceImpl) BulkMove(ctx context.Context, moves []string) (*BulkMoveResult, error) {
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: no moves provided", ErrInvalidDirection)
	}

	result := &BulkMoveResult{RequestedMoves: len(moves)}
	if len(moves) > engine.MaxBulkMoves {
		moves = moves[:engine.MaxBulkMoves]
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
	}

	dirs := make([]engine.Direction, len(moves))
	for i, m := range moves {
		dir, err := engine.ParseDirection(m)
		if err != nil {
			return nil, fmt.Errorf("%w: move %d %q", ErrInvalidDirection, i+1, m)
		}
		dirs[i] = dir
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := s.engine.GetConfig()
	result.StartBlank = s.engine.GetBlankPosition()

	results := s.engine.BulkMove(dirs)
	for _, ok := range results {
		if ok {
			result.MovesExecuted++
		}
	}

	result.Solved = s.engine.IsSolved()
	result.EndBlank = s.engine.GetBlankPosition()

	switch {
	case len(results) == 0:
		result.StopReasonCode = "solved"
		result.StoppedReason = "puzzle already solved"
		result.Message = "Puzzle already solved. Start a new game to keep playing."
	case len(results) > 0 && !results[len(results)-1]:
		idx := len(results)
		dr, dc := dirs[idx-1].Delta()
		result.StopReasonCode = "blocked_boundary"
		result.StoppedOnMove = idx
		result.StoppedReason = fmt.Sprintf("move %d (%s) would take the blank off the board", idx, dirs[idx-1])
		result.AttemptedTo = &AttemptInfo{Row: result.EndBlank.Row + dr, Col: result.EndBlank.Col + dc}
		result.Message = cfg.Messages.InvalidMove
	case result.Solved && len(results) < len(dirs):
		result.StopReasonCode = "solved"
		result.StoppedOnMove = len(results)
		result.StoppedReason = "puzzle solved"
	}

	if result.Solved && result.MovesExecuted > 0 {
		result.Message = fmt.Sprintf(cfg.Messages.Victory, s.engine.GetMoveCount())
	}

	result.Success = len(results) > 0 && result.StopReasonCode != "blocked_boundary"
	result.GameState = s.engine.GetState()

	s.logger.Debug().
		Int("requested", result.RequestedMoves).
		Int("executed", result.MovesExecuted).
		Str("stop", result.StopReasonCode).
		Msg("bulk move")

	return result, nil
}

// GetGameState returns a snapshot of the current game
func (s *gameServiceImpl) GetGameState(ctx context.Context) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.engine.GetMoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order != "asc" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	moves := []engine.MoveHistoryEntry{}
	// Pages past the end are empty
	if opts.Page <= totalPages {
		start := (opts.Page - 1) * opts.Limit
		end := start + opts.Limit
		if end > total {
			end = total
		}
		if opts.Order == "desc" {
			// Most recent first
			for i := total - 1 - start; i >= total-end; i-- {
				moves = append(moves, history[i])
			}
		} else {
			if start < total {
				moves = append(moves, history[start:end]...)
			}
		}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	if s.configs == nil {
		return nil, ErrNoConfigManager
	}
	return s.configs.ListConfigs()
}

func directionNames(dirs []engine.Direction) []string {
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return names
}
