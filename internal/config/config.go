package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/archora/archora/pkg/archora"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the content of archora.yaml. Every field is optional;
// relative fixture paths are resolved against the config's directory.
type ProjectConfig struct {
	User     string `yaml:"user"`
	Fixture  string `yaml:"fixture"`
	Profiles string `yaml:"profiles"`
	Verbose  bool   `yaml:"verbose"`
}

// Load reads archora.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, archora.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Fixture = resolvePath(dir, cfg.Fixture)
	cfg.Profiles = resolvePath(dir, cfg.Profiles)
	return &cfg, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
