// Package config handles pq-falcon-sigs paths and the optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/d2verb/pq-falcon-sigs/internal/falcon"
	"github.com/d2verb/pq-falcon-sigs/internal/logging"
	"github.com/d2verb/pq-falcon-sigs/internal/pathutil"
	"gopkg.in/yaml.v3"
)

// DirName is the per-user directory under the home directory.
const DirName = ".pq-falcon-sigs"

// Paths holds common paths used by pq-falcon-sigs.
type Paths struct {
	UserHome  string
	Home      string
	Config    string
	PublicKey string
	SecretKey string
	Logs      string
	Log       string
}

// NewPaths returns the paths rooted at the given home directory.
func NewPaths(home string) *Paths {
	root := filepath.Join(home, DirName)
	logsDir := filepath.Join(root, "logs")
	return &Paths{
		UserHome:  home,
		Home:      root,
		Config:    filepath.Join(root, "config.yaml"),
		PublicKey: filepath.Join(root, "public.key"),
		SecretKey: filepath.Join(root, "secret.key"),
		Logs:      logsDir,
		Log:       filepath.Join(logsDir, "pq-falcon-sigs.log"),
	}
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewPaths(home), nil
}

// EnsureDirectories creates the required directories if they don't exist.
// The tool directory holds secret keys and is created owner-only.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Home, 0700); err != nil {
		return err
	}
	return os.MkdirAll(p.Logs, 0755)
}

// LogConfig mirrors logging.Config in the config file.
type LogConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

// Config is the content of config.yaml.
type Config struct {
	Level     int       `yaml:"level,omitempty"`
	PublicKey string    `yaml:"public_key,omitempty"`
	SecretKey string    `yaml:"secret_key,omitempty"`
	Log       LogConfig `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	d := logging.DefaultConfig("")
	return &Config{
		Level: int(falcon.DefaultLevel),
		Log: LogConfig{
			MaxSizeMB:  d.MaxSizeMB,
			MaxBackups: d.MaxBackups,
			MaxAgeDays: d.MaxAgeDays,
			Compress:   d.Compress,
		},
	}
}

// LoadConfig reads the config file at path on top of the defaults.
// A missing or empty file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Level != 0 && !falcon.Level(c.Level).Valid() {
		return fmt.Errorf("level must be 512 or 1024, got %d", c.Level)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log settings must not be negative")
	}
	return nil
}

// SecurityLevel returns the configured level, or the default if unset.
func (c *Config) SecurityLevel() falcon.Level {
	if c.Level == 0 {
		return falcon.DefaultLevel
	}
	return falcon.Level(c.Level)
}

// KeyPaths returns the public and secret key paths, preferring the config
// file over the defaults. Relative paths are resolved against the config
// directory.
func (c *Config) KeyPaths(p *Paths) (public, secret string, err error) {
	public, secret = p.PublicKey, p.SecretKey
	if c.PublicKey != "" {
		if public, err = pathutil.ResolvePath(c.PublicKey, p.Home, p.UserHome); err != nil {
			return "", "", fmt.Errorf("public_key: %w", err)
		}
	}
	if c.SecretKey != "" {
		if secret, err = pathutil.ResolvePath(c.SecretKey, p.Home, p.UserHome); err != nil {
			return "", "", fmt.Errorf("secret_key: %w", err)
		}
	}
	return public, secret, nil
}

// LogSettings converts the log section into a logging.Config for path.
func (c *Config) LogSettings(path string) logging.Config {
	return logging.Config{
		Path:       path,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
	}
}
