// Package config loads roe-gui settings from a YAML file.
// Every field has a default, so running without a config file is normal.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"roe-gui/internal/errors"
	"roe-gui/internal/util"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "ROE_GUI_CONFIG"

// ExecutableName is the base name of the external binary.
const ExecutableName = "roe-cli"

// DefaultNotifyDelay postpones the end-of-batch message so it does not fight
// the confirmation dialog for focus.
const DefaultNotifyDelay = 100 * time.Millisecond

type Config struct {
	Executable ExecutableConfig `yaml:"executable"`
	UI         UIConfig         `yaml:"ui"`
	Log        LogConfig        `yaml:"log"`
}

type ExecutableConfig struct {
	// Candidates are checked in order; the first existing path wins.
	// Relative entries are resolved against the directory of the running binary.
	Candidates []string `yaml:"candidates"`
}

type UIConfig struct {
	NotifyDelay   string `yaml:"notify_delay"`
	TruncateLimit int    `yaml:"truncate_limit"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// GetNotifyDelay parses NotifyDelay, falling back to DefaultNotifyDelay.
func (c *UIConfig) GetNotifyDelay() time.Duration {
	d, err := time.ParseDuration(c.NotifyDelay)
	if err != nil || d < 0 {
		return DefaultNotifyDelay
	}
	return d
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads the file at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.NewConfigError(path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfigError(path, err)
	}

	setDefaults(&cfg)

	return &cfg, nil
}

// DefaultPath returns $ROE_GUI_CONFIG, or <user config dir>/roe-gui/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "roe-gui", "config.yaml")
}

// ResolveCandidates turns the configured candidates into absolute paths
// anchored at baseDir, keeping their order.
func (c *ExecutableConfig) ResolveCandidates(baseDir string) []string {
	out := make([]string, 0, len(c.Candidates))
	for _, p := range c.Candidates {
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		out = append(out, filepath.Clean(p))
	}
	return out
}

// DefaultCandidates mirrors the packaged install layout: the binary ships
// next to the app under extraResources/, or in the platform resources dir.
func DefaultCandidates() []string {
	name := ExecutableName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return []string{
		filepath.Join("extraResources", name),
		filepath.Join("resources", name),
	}
}

func setDefaults(cfg *Config) {
	if len(cfg.Executable.Candidates) == 0 {
		cfg.Executable.Candidates = DefaultCandidates()
	}
	if cfg.UI.NotifyDelay == "" {
		cfg.UI.NotifyDelay = DefaultNotifyDelay.String()
	}
	if cfg.UI.TruncateLimit <= 0 {
		cfg.UI.TruncateLimit = util.DefaultTruncateLimit
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// SearchPaths resolves the candidates against the directory of the running
// binary.
func (c *ExecutableConfig) SearchPaths() []string {
	return c.ResolveCandidates(ExecutableDir())
}

// ExecutableDir returns the directory of the running binary, or "." if it
// cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
