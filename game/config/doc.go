// Package config provides configuration management for the 15-puzzle.
//
// The config package handles:
//   - Loading game configurations from JSON or YAML files
//   - Configuration validation through the engine
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations live in the configs directory as name.json, name.yaml
// or name.yml. Each configuration defines:
//   - Key bindings for up, down, left, right and quit (single characters)
//   - The prompt and status messages printed by the console loop
//
// Usage:
//
//	manager, err := config.NewManager("configs", zerolog.Nop())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("vim")
//
//	// Get default configuration ("classic", or the built-in WASD set)
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
package config
