package engine

import (
	"math/rand"
	"testing"
)

func createTestConfig() *GameConfig {
	return &GameConfig{
		Name:        "Engine Test Config",
		Description: "Configuration for engine integration tests",
		Keys: KeyBindings{
			Up:    "W",
			Down:  "S",
			Left:  "A",
			Right: "D",
			Quit:  "Q",
		},
		Messages: Messages{
			Prompt:       "Move?",
			InvalidInput: "Unknown command",
			InvalidMove:  "Can't move there!",
			Quit:         "Bye",
			Victory:      "Solved in %d moves!",
		},
	}
}

// createTestEngine builds an engine positioned one slide from solved
func createTestEngine(t *testing.T) *GameEngine {
	t.Helper()
	engine, err := NewEngine(createTestConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	g, err := ParseGrid("1,2,3,4,5,6,7,8,9,10,11,12,13,14,0,15")
	if err != nil {
		t.Fatalf("Failed to parse grid: %v", err)
	}
	if err := engine.SetGrid(g); err != nil {
		t.Fatalf("Failed to set grid: %v", err)
	}
	return engine
}

func TestNewEngine(t *testing.T) {
	config := createTestConfig()
	engine, err := NewEngine(config, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Failed to create new engine: %v", err)
	}

	if engine == nil {
		t.Fatal("Expected engine to be non-nil")
	}

	// Test initial state
	if engine.GetMoveCount() != 0 {
		t.Errorf("Expected initial move count 0, got %d", engine.GetMoveCount())
	}
	if err := engine.GetGrid().Validate(); err != nil {
		t.Errorf("Expected valid starting grid: %v", err)
	}
	if !IsSolvable(engine.GetGrid()) {
		t.Error("Expected solvable starting grid")
	}
	if engine.GetConfig() != config {
		t.Error("Expected engine to keep the provided config")
	}
	if len(engine.GetMoveHistory()) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(engine.GetMoveHistory()))
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	config := createTestConfig()
	config.Name = "" // Make config invalid

	_, err := NewEngine(config, nil)
	if err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestNewEngine_SameSeedSameGrid(t *testing.T) {
	a, err := NewEngine(createTestConfig(), rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewEngine(createTestConfig(), rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatal(err)
	}

	if a.GetGrid() != b.GetGrid() {
		t.Error("Expected identical seeds to deal identical puzzles")
	}
}

func TestNewEngineWithDefaults(t *testing.T) {
	engine := NewEngineWithDefaults()
	if engine == nil {
		t.Fatal("Expected engine to be non-nil")
	}

	if engine.GetConfig().Name != "classic" {
		t.Errorf("Expected default config 'classic', got '%s'", engine.GetConfig().Name)
	}
	if engine.GetMoveCount() != 0 {
		t.Errorf("Expected initial move count 0, got %d", engine.GetMoveCount())
	}
}

func TestEngine_BasicMovement(t *testing.T) {
	engine := createTestEngine(t)

	initialBlank := engine.GetBlankPosition()

	// Test successful move
	success := engine.Move(Up)
	if !success {
		t.Error("Expected successful move")
	}

	newBlank := engine.GetBlankPosition()
	if newBlank.Row != initialBlank.Row-1 {
		t.Errorf("Expected blank row to decrease by 1, was %d now %d", initialBlank.Row, newBlank.Row)
	}
	if engine.GetMoveCount() != 1 {
		t.Errorf("Expected move count 1, got %d", engine.GetMoveCount())
	}

	// Test move history
	history := engine.GetMoveHistory()
	if len(history) != 1 {
		t.Errorf("Expected 1 move in history, got %d", len(history))
	}

	lastMove := engine.GetLastMove()
	if lastMove == nil {
		t.Fatal("Expected last move to be non-nil")
	}
	if lastMove.Action != "up" {
		t.Errorf("Expected last move action 'up', got '%s'", lastMove.Action)
	}
	if lastMove.Tile != 11 {
		t.Errorf("Expected tile 11 to move, got %d", lastMove.Tile)
	}
	if lastMove.BlankFrom != initialBlank || lastMove.BlankTo != newBlank {
		t.Errorf("Expected blank %+v -> %+v, got %+v -> %+v", initialBlank, newBlank, lastMove.BlankFrom, lastMove.BlankTo)
	}
	if lastMove.MoveNumber != 1 {
		t.Errorf("Expected move number 1, got %d", lastMove.MoveNumber)
	}
}

func TestEngine_RejectedMoveDoesNotCount(t *testing.T) {
	engine := createTestEngine(t)
	before := engine.GetGrid()

	if engine.Move(Down) {
		t.Fatal("Expected move down from the bottom row to fail")
	}

	if engine.GetMoveCount() != 0 {
		t.Errorf("Expected move count 0, got %d", engine.GetMoveCount())
	}
	if engine.GetGrid() != before {
		t.Error("Expected grid unchanged after rejected move")
	}
	if engine.GetLastMove() != nil {
		t.Error("Expected no history entry for rejected move")
	}
}

func TestEngine_MoveSolves(t *testing.T) {
	engine := createTestEngine(t)

	if engine.IsSolved() {
		t.Fatal("Expected engine not to start solved")
	}
	if !engine.Move(Right) {
		t.Fatal("Expected move right to succeed")
	}
	if !engine.IsSolved() {
		t.Error("Expected engine to be solved")
	}

	state := engine.GetState()
	if !state.Solved {
		t.Error("Expected state to report solved")
	}
	if state.Moves != 1 {
		t.Errorf("Expected 1 move in state, got %d", state.Moves)
	}
	if state.ConfigName != "Engine Test Config" {
		t.Errorf("Expected config name in state, got '%s'", state.ConfigName)
	}
}

func TestEngine_CanMove(t *testing.T) {
	engine := createTestEngine(t)

	tests := []struct {
		direction Direction
		expected  bool
	}{
		{Up, true},
		{Left, true},
		{Right, true},
		{Down, false},
	}

	for _, test := range tests {
		if result := engine.CanMove(test.direction); result != test.expected {
			t.Errorf("CanMove(%s): expected %v, got %v", test.direction, test.expected, result)
		}
	}

	possible := engine.GetPossibleMoves()
	if len(possible) != 3 {
		t.Errorf("Expected 3 possible moves, got %v", possible)
	}
}

func TestEngine_SetGrid_Invalid(t *testing.T) {
	engine := createTestEngine(t)
	before := engine.GetGrid()

	var bad Grid
	if err := engine.SetGrid(bad); err == nil {
		t.Error("Expected error for grid of all blanks")
	}
	if engine.GetGrid() != before {
		t.Error("Expected grid unchanged after rejected SetGrid")
	}
}

func TestEngine_Reset(t *testing.T) {
	engine := createTestEngine(t)
	engine.Move(Up)
	engine.Move(Down)

	state := engine.Reset()

	if state.Moves != 0 {
		t.Errorf("Expected move count reset to 0, got %d", state.Moves)
	}
	if len(state.MoveHistory) != 0 {
		t.Errorf("Expected history cleared, got %d entries", len(state.MoveHistory))
	}
	if !IsSolvable(state.Grid) {
		t.Error("Expected solvable grid after reset")
	}
}

func TestEngine_GetStateIsSnapshot(t *testing.T) {
	engine := createTestEngine(t)
	engine.Move(Up)

	state := engine.GetState()
	engine.Move(Down)

	if state.Moves != 1 {
		t.Errorf("Expected snapshot to keep 1 move, got %d", state.Moves)
	}
	if len(state.MoveHistory) != 1 {
		t.Errorf("Expected snapshot history of 1, got %d", len(state.MoveHistory))
	}
	if state.Grid == engine.GetGrid() {
		t.Error("Expected snapshot grid to differ from the live grid")
	}
}
