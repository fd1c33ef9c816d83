package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const configFile = "suika.yaml"

// LoadSuika loads the game configuration.
// Search order: customPath -> ~/.suika/configs/suika.yaml -> ./configs/suika.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. A fruits list, when present, replaces the whole catalog.
func LoadSuika(customPath string) (SuikaConfig, error) {
	return LoadSuikaLogged(customPath, nil)
}

// LoadSuikaLogged is LoadSuika, warning on the logger about config files in
// the search path that exist but are skipped because they do not parse.
func LoadSuikaLogged(customPath string, logger *log.Logger) (SuikaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SuikaConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SuikaConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			if logger != nil {
				logger.Warn("ignoring invalid config file", "path", path, "error", err)
			}
			continue
		}
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg SuikaConfig
	if err := yaml.Unmarshal(defaultSuikaYAML, &cfg); err != nil {
		return DefaultSuikaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (SuikaConfig, error) {
	cfg := DefaultSuikaConfig()
	fruits := cfg.Fruits
	cfg.Fruits = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SuikaConfig{}, err
	}
	if len(cfg.Fruits) == 0 {
		cfg.Fruits = fruits
	}
	if err := cfg.Validate(); err != nil {
		return SuikaConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func Marshal(cfg SuikaConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".suika", "configs", filename)
}
