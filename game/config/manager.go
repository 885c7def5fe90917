package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/wricardo/fifteen-puzzle/game/engine"
	"github.com/wricardo/fifteen-puzzle/game/service"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// DefaultConfigName is loaded as the default when present
const DefaultConfigName = "classic"

// extensions are tried in order when resolving a config name
var extensions = []string{".json", ".yaml", ".yml"}

// Manager handles game configuration loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.GameConfig
	configs       map[string]*engine.GameConfig
	logger        zerolog.Logger
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string, logger zerolog.Logger) (*Manager, error) {
	// Ensure config directory exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.GameConfig),
		logger:    logger.With().Str("component", "config").Logger(),
	}

	m.loadDefaultConfig()

	return m, nil
}

// LoadConfig loads a configuration by name
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	name = trimExtension(name)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, ErrConfigNotFound
	}

	m.mu.RLock()
	// Check cache first
	if config, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	// Load from file
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[name]; exists {
		return config, nil
	}

	configPath, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	config, err := engine.LoadGameConfig(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	m.logger.Debug().Str("name", name).Str("path", configPath).Msg("loaded configuration")

	// Cache the config
	m.configs[name] = config
	return config, nil
}

// ListConfigs returns information about all available configurations
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*service.ConfigInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() || !hasConfigExtension(entry.Name()) {
			continue
		}

		name := trimExtension(entry.Name())
		if seen[name] {
			continue
		}
		seen[name] = true

		// Try to load the config to get details
		config, err := m.LoadConfig(name)
		if err != nil {
			// Skip invalid configs
			m.logger.Warn().Err(err).Str("file", entry.Name()).Msg("skipping invalid configuration")
			continue
		}

		configs = append(configs, &service.ConfigInfo{
			Filename:    entry.Name(),
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
			Keys:        config.Keys,
		})
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].ConfigID < configs[j].ConfigID
	})

	return configs, nil
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// loadDefaultConfig picks classic, then the first valid file, then the
// built-in configuration
func (m *Manager) loadDefaultConfig() {
	config, err := m.LoadConfig(DefaultConfigName)
	if err == nil {
		m.defaultConfig = config
		return
	}

	configs, listErr := m.ListConfigs()
	if listErr == nil && len(configs) > 0 {
		if config, err = m.LoadConfig(configs[0].ConfigID); err == nil {
			m.defaultConfig = config
			return
		}
	}

	m.logger.Debug().Msg("no usable configuration files, using built-in default")
	m.defaultConfig = engine.DefaultConfig()
}

// resolve finds the file backing a config name
func (m *Manager) resolve(name string) (string, error) {
	for _, ext := range extensions {
		configPath := filepath.Join(m.configDir, name+ext)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}
	return "", ErrConfigNotFound
}

func hasConfigExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, candidate := range extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

func trimExtension(name string) string {
	if hasConfigExtension(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}
