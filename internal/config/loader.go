package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

const fileName = "minesweeper.yaml"

// Default is the embedded configuration.
func Default() Config {
	cfg, err := parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded config: %s", err))
	}
	return cfg
}

// Load reads the configuration.
// Search order: customPath -> $MINESWEEPER_CONFIG -> ~/.minesweeper/minesweeper.yaml
// -> ./configs/minesweeper.yaml -> embedded default.
// An explicit path (flag or env) must exist and parse; the implicit ones are
// skipped when missing.
func Load(customPath string) (Config, error) {
	if customPath == "" {
		customPath, _ = PathFromEnv()
	}
	if customPath != "" {
		return loadFile(customPath)
	}
	return loadFirst(searchPaths()...)
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".minesweeper", fileName))
	}
	return append(paths, filepath.Join("configs", fileName))
}

func loadFirst(paths ...string) (Config, error) {
	for _, path := range paths {
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return Default(), nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over the embedded defaults, so a file only needs the
// keys it changes.
func parse(data []byte) (Config, error) {
	var cfg Config
	if len(defaultYAML) > 0 {
		if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
