// Package service provides the business logic layer for the 15-puzzle.
//
// The service package implements:
//   - Serialized access to a single puzzle engine
//   - Move processing with structured results
//   - Bulk moves with stop reasons
//   - Paginated move history
//   - Starting new games, optionally with another configuration
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. ConfigManager supplies game configurations by name.
//
// Architecture:
//
// The service layer sits between a transport (the MCP stdio server) and the
// game engine. Handlers may run concurrently, so every operation takes the
// service lock before touching the engine.
//
// Usage:
//
//	configMgr, _ := config.NewManager("configs", logger)
//	gameService, err := service.NewGameService(configMgr, nil, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, "up")
package service
