package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// KeyBindings maps single-character commands to actions
type KeyBindings struct {
	Up    string `json:"up" yaml:"up"`
	Down  string `json:"down" yaml:"down"`
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`
	Quit  string `json:"quit" yaml:"quit"`
}

// Messages holds the text printed by the console loop
type Messages struct {
	Prompt       string `json:"prompt" yaml:"prompt"`
	InvalidInput string `json:"invalid_input" yaml:"invalid_input"`
	InvalidMove  string `json:"invalid_move" yaml:"invalid_move"`
	Quit         string `json:"quit" yaml:"quit"`
	Victory      string `json:"victory" yaml:"victory"`
}

// GameConfig represents a named game configuration loaded from JSON or YAML
type GameConfig struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Keys        KeyBindings `json:"keys" yaml:"keys"`
	Messages    Messages    `json:"messages" yaml:"messages"`
}

// DefaultConfig returns the built-in WASD configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:        "classic",
		Description: "WASD controls with the classic prompts",
		Keys: KeyBindings{
			Up:    "W",
			Down:  "S",
			Left:  "A",
			Right: "D",
			Quit:  "Q",
		},
		Messages: Messages{
			Prompt:       "Enter your move (WASD or Q to quit): ",
			InvalidInput: "Invalid move. Use WASD to move or Q to quit.",
			InvalidMove:  "Invalid move. Try again.",
			Quit:         "Quitting the game.",
			Victory:      "Congratulations! You solved the puzzle in %d moves.",
		},
	}
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	// Validate key bindings
	bindings := []struct {
		name string
		key  string
	}{
		{"up", config.Keys.Up},
		{"down", config.Keys.Down},
		{"left", config.Keys.Left},
		{"right", config.Keys.Right},
		{"quit", config.Keys.Quit},
	}
	used := make(map[string]string, len(bindings))
	for _, b := range bindings {
		key := strings.ToUpper(strings.TrimSpace(b.key))
		if key == "" {
			return fmt.Errorf("config validation: keys.%s is required", b.name)
		}
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("config validation: keys.%s must be a single character, got %q", b.name, b.key)
		}
		if other, ok := used[key]; ok {
			return fmt.Errorf("config validation: key %q is bound to both %s and %s", key, other, b.name)
		}
		used[key] = b.name
	}

	// Validate messages
	if config.Messages.Prompt == "" {
		return fmt.Errorf("config validation: messages.prompt is required")
	}
	if config.Messages.InvalidInput == "" {
		return fmt.Errorf("config validation: messages.invalid_input is required")
	}
	if config.Messages.InvalidMove == "" {
		return fmt.Errorf("config validation: messages.invalid_move is required")
	}
	if config.Messages.Quit == "" {
		return fmt.Errorf("config validation: messages.quit is required")
	}
	if !victoryFormats(config.Messages.Victory) {
		return fmt.Errorf("config validation: messages.victory must contain %%d exactly once for the move count and no other verbs")
	}

	return nil
}

// victoryFormats reports whether msg formats one move count with no other
// verbs, escapes aside
func victoryFormats(msg string) bool {
	if strings.Count(msg, "%d") != 1 {
		return false
	}
	sample := fmt.Sprintf(msg, 42)
	return !strings.Contains(sample, "%!") && strings.Contains(sample, "42")
}

// LoadGameConfig loads a game configuration from a JSON or YAML file.
// The format is chosen by extension; anything but .yaml/.yml is read as JSON.
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", filepath.Base(filename), err)
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", filepath.Base(filename), err)
		}
	}

	// Validate the loaded configuration
	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
