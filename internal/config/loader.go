package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// load fills out using the search order:
// customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded -> fallback.
// A custom path that cannot be read or parsed is an error; the implicit
// locations are skipped silently when missing or malformed.
func load[T validator](name, customPath string, embedded []byte, fallback T) (T, error) {
	if customPath != "" {
		cfg := fallback
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return fallback, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", name+".yaml")}
	if userPath := userConfigPath(name + ".yaml"); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}

	for _, path := range candidates {
		if cfg, ok := tryFile(path, fallback); ok {
			return cfg, nil
		}
	}

	cfg := fallback
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return fallback, nil
	}
	return cfg, nil
}

// tryFile reads path over a copy of base. ok is false if the file is missing,
// malformed or fails validation.
func tryFile[T validator](path string, base T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if err := cfg.Validate(); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadPlatformer loads the platformer configuration.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return load("platformer", customPath, defaultPlatformerYAML, DefaultPlatformerConfig())
}

// LoadPong loads the Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, defaultPongYAML, DefaultPongConfig())
}
