// Package config loads ruff-claude-hook configuration. Settings come from
// an optional project file with environment variable overrides; every
// knob has a sensible default so most projects need no configuration at
// all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the optional per-project configuration file, kept
// alongside the Claude settings it configures.
const ConfigFileName = "ruff-hook.json"

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "RUFF_HOOK_"

// Configuration represents the ruff-claude-hook runtime configuration.
type Configuration struct {
	RuffCmd    string `koanf:"ruff_cmd" validate:"required"`
	HookCmd    string `koanf:"hook_cmd" validate:"required"`
	Matcher    string `koanf:"matcher" validate:"required"`
	FileSuffix string `koanf:"file_suffix" validate:"required"`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"ruff_cmd":    "ruff",
		"hook_cmd":    "ruff-claude-hook",
		"matcher":     "Edit",
		"file_suffix": ".py",
	}
}

// Load loads configuration for the given project directory.
// Priority: environment variables > project config file > defaults.
func Load(projectDir string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	configPath := filepath.Join(projectDir, ".claude", ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
	}

	k.Load(env.Provider(EnvPrefix, ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: RUFF_HOOK_RUFF_CMD -> ruff_cmd
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
