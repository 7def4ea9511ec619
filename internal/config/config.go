// Package config handles the phonafind user configuration file.
// Settings live in a single YAML file under the user config directory
// (~/.config/phonafind/config.yaml on Linux); a commented default is
// written on first run so users have something to edit.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppDirName is the directory created under the user config root.
	AppDirName = "phonafind"

	configFileName = "config.yaml"
)

const defaultConfigYAML = `# phonafind configuration
version: 1

# Maximum number of phoneme codes accepted per lookup. 0 means no limit.
max_entries: 0

# When true, dimensions with no common feature are skipped in the
# output instead of being reported explicitly.
quiet_misses: false

# Session logging. The log records each lookup and its outcome.
session_log: true
# log_path: /tmp/phonafind.log
`

// Settings models config.yaml.
type Settings struct {
	Version     int    `yaml:"version"`
	MaxEntries  int    `yaml:"max_entries"`
	QuietMisses bool   `yaml:"quiet_misses"`
	SessionLog  bool   `yaml:"session_log"`
	LogPath     string `yaml:"log_path,omitempty"`
}

// Config holds the resolved runtime configuration.
type Config struct {
	// Dir is the phonafind config directory.
	Dir string

	// Path is the config file the settings were read from (it may not
	// exist yet; defaults apply then).
	Path string

	Settings Settings
}

func defaultSettings() Settings {
	return Settings{
		Version:    1,
		SessionLog: true,
	}
}

// Load reads configuration from path, or from the default location
// when path is empty. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{Settings: defaultSettings()}

	if path == "" {
		root, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve user config dir: %w", err)
		}
		cfg.Dir = filepath.Join(root, AppDirName)
		cfg.Path = filepath.Join(cfg.Dir, configFileName)
	} else {
		cfg.Path = path
		cfg.Dir = filepath.Dir(path)
	}

	data, err := os.ReadFile(cfg.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", cfg.Path, err)
	}
	if err := yaml.Unmarshal(data, &cfg.Settings); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", cfg.Path, err)
	}
	if cfg.Settings.Version != 1 {
		return nil, fmt.Errorf("config: %s: unsupported version %d", cfg.Path, cfg.Settings.Version)
	}
	if cfg.Settings.MaxEntries < 0 {
		return nil, fmt.Errorf("config: %s: max_entries must not be negative", cfg.Path)
	}
	return cfg, nil
}

// EnsureDefault writes the commented default config file if none
// exists yet, creating the config directory as needed.
func (c *Config) EnsureDefault() error {
	if _, err := os.Stat(c.Path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", c.Path, err)
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", c.Dir, err)
	}
	if err := os.WriteFile(c.Path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write default %s: %w", c.Path, err)
	}
	return nil
}

// LogPath returns the session log destination: the configured override
// when set, otherwise logs/session.log next to the config file.
func (c *Config) LogPath() string {
	if c.Settings.LogPath != "" {
		return c.Settings.LogPath
	}
	return filepath.Join(c.Dir, "logs", "session.log")
}
