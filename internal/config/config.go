package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	StateDir string `toml:"state_dir"`
	LogDir   string `toml:"log_dir"`
}

// Burn holds the options a page starts from before any commit exists.
type Burn struct {
	Device      string `toml:"device"`
	Speed       int    `toml:"speed"` // kB/s; 0 means maximum
	WriteMethod string `toml:"write_method"`
	Copies      int    `toml:"copies"`
	OnTheFly    bool   `toml:"on_the_fly"`
	Verify      bool   `toml:"verify"`
	Eject       bool   `toml:"eject"`
	Simulate    bool   `toml:"simulate"`
	WriteBUP    bool   `toml:"write_bup"`
	PadTracks   bool   `toml:"pad_tracks"`
	Fixate      bool   `toml:"fixate"`
}

// Workflow contains media polling configuration.
type Workflow struct {
	MediaPollInterval int  `toml:"media_poll_interval"`
	Netlink           bool `toml:"netlink"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Locale selects the label language.
type Locale struct {
	Language string `toml:"language"`
}

// Drive describes a physical recorder reachable through a device node. Write
// capabilities cannot be read without MMC access, so they are declared here.
type Drive struct {
	ID           string   `toml:"id"`
	Name         string   `toml:"name"`
	Path         string   `toml:"path"`
	Speeds       []int    `toml:"speeds"`
	Capabilities []string `toml:"capabilities"`
}

// Recorder describes a recorder whose media state is itself configured,
// such as an image writer or a fixture.
type Recorder struct {
	ID           string   `toml:"id"`
	Name         string   `toml:"name"`
	Profile      string   `toml:"profile"`
	Speeds       []int    `toml:"speeds"`
	Capabilities []string `toml:"capabilities"`
}

// Config encapsulates all configuration values for discburn.
type Config struct {
	Paths     Paths      `toml:"paths"`
	Burn      Burn       `toml:"burn"`
	Workflow  Workflow   `toml:"workflow"`
	Logging   Logging    `toml:"logging"`
	Locale    Locale     `toml:"locale"`
	Drives    []Drive    `toml:"drives"`
	Recorders []Recorder `toml:"recorders"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("discburn.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// SettingsDBPath is the SQLite file holding committed burn options.
func (c *Config) SettingsDBPath() string {
	return filepath.Join(c.Paths.StateDir, "settings.db")
}

// SettingsLockPath is the lock file guarding the single settings session.
func (c *Config) SettingsLockPath() string {
	return filepath.Join(c.Paths.StateDir, "settings.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
