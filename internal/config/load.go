package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

var ErrConfigNotFound = errors.New("config not found")

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(configDir, "themetokens", "config.toml"), nil
}

// Load reads the config from the default location, falling back to the
// defaults when no file exists yet.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return loadOrDefault(configPath)
}

// LoadFile reads the config at path. Keys missing from the file keep their
// default values.
func LoadFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	log.Debug().Str("path", configPath).Msg("loading configuration")
	config := DefaultConfig()
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Warn().Str("path", configPath).Msgf("ignoring unknown config keys: %v", undecoded)
	}

	log.Debug().Msg("configuration loaded successfully")
	return config, nil
}

// Save writes cfg to the default location.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(configPath, cfg)
}

// SaveFile writes cfg to configPath, creating parent directories.
func SaveFile(configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(configHeader); err != nil {
		return fmt.Errorf("failed to write config header: %w", err)
	}
	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config content: %w", err)
	}

	log.Info().Str("path", configPath).Msg("configuration saved")
	return nil
}

const configHeader = `# themetokens configuration
#
# [derive]        needs_variant: groups that get "<group>-color" and "<group>-<key>-lighter" tokens
# [brand]         ink: text on light colors, white: text on dark colors
# [output]        format: "css", "scss" or "json"; path: empty for stdout
# [watch]         debounce: window used to coalesce file changes (e.g. "40ms")
# [notifications] type: "desktop", "log" or "none"

`
