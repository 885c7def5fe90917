// Package engine provides the core puzzle logic for the 15-puzzle.
//
// The engine package implements the game mechanics including:
//   - A fixed 4x4 grid with a single blank (zero) cell
//   - Shuffling by random legal slides, which keeps every start solvable
//   - Move validation at the grid boundary and tile sliding
//   - Solved-state detection and solvability analysis
//   - Configuration loading and validation
//
// Core Types:
//
// Grid is the 4x4 board. Direction names the four slides. The Engine
// interface defines the main contract for game operations, implemented by
// GameEngine, which owns a Grid, the move counter, the move history and the
// random source used for shuffling. GameConfig holds key bindings and
// message text loaded from JSON or YAML files.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.DefaultConfig(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the tile below the blank up into it
//	moved := gameEngine.Move(engine.Down)
//	solved := gameEngine.IsSolved()
//
// Move Semantics:
//
// A direction names where the blank goes: Up swaps the blank with the tile
// above it. A move whose target lies outside the grid is rejected and leaves
// the grid untouched.
package engine
