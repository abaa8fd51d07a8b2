package config

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

// Manager holds the active configuration and swaps it on reload.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	path   string
}

// NewManager loads the config at path, or from the default location when
// path is empty.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	config, err := loadOrDefault(path)
	if err != nil {
		log.Error().Err(err).Msg("failed to load initial configuration")
		return nil, err
	}

	if err := config.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid initial configuration")
		return nil, err
	}

	return &Manager{config: config, path: path}, nil
}

func loadOrDefault(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, ErrConfigNotFound) {
		log.Debug().Str("path", path).Msg("no config file found, using defaults")
		return DefaultConfig(), nil
	}
	return nil, err
}

// Path returns the file the manager reads from.
func (m *Manager) Path() string {
	return m.path
}

func (m *Manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Derive.NeedsVariant = append([]string(nil), m.config.Derive.NeedsVariant...)
	return &configCopy
}

// Reload re-reads the config file. An invalid file leaves the current
// configuration in place and returns the error.
func (m *Manager) Reload() error {
	log.Debug().Str("path", m.path).Msg("reloading configuration")

	newConfig, err := loadOrDefault(m.path)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload config")
		return err
	}

	if err := newConfig.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid config after reload")
		return err
	}

	m.mu.Lock()
	m.config = newConfig
	m.mu.Unlock()

	log.Info().Str("path", m.path).Msg("configuration reloaded")
	return nil
}
