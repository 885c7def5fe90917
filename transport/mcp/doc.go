// Package mcp provides the Model Context Protocol server for the 15-puzzle.
//
// The mcp package implements:
//   - MCP server for AI agent integration over stdio
//   - Tool definitions for puzzle operations
//   - Plain-text formatting of game state for agents
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - puzzle_state: Get the current grid, move count and solved flag
//   - move: Slide one tile by moving the blank up/down/left/right
//   - bulk_move: Execute up to 50 moves in sequence
//   - new_game: Deal a new shuffled puzzle, optionally with another config
//   - move_history: Retrieve move history with pagination
//   - list_configs: List available game configurations
//   - game_instructions: Get the rules and the direction convention
//
// There is a single puzzle per process. Handlers go through the
// service.GameService, which serialises access to the engine.
//
// Usage:
//
//	srv := mcp.NewServer(gameService, logger)
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal().Err(err).Msg("mcp server stopped")
//	}
package mcp
