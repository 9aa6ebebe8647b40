package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeBurn()
	c.normalizeLogging()
	c.normalizeLocale()
	if err := c.normalizeDrives(); err != nil {
		return err
	}
	c.normalizeRecorders()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeBurn() {
	c.Burn.Device = strings.TrimSpace(c.Burn.Device)
	c.Burn.WriteMethod = strings.ToLower(strings.TrimSpace(c.Burn.WriteMethod))
	if c.Burn.Speed < 0 {
		c.Burn.Speed = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeLocale() {
	if value, ok := os.LookupEnv("DISCBURN_LANG"); ok && strings.TrimSpace(value) != "" {
		c.Locale.Language = value
	}
	c.Locale.Language = strings.TrimSpace(c.Locale.Language)
	if c.Locale.Language == "" {
		c.Locale.Language = defaultLanguage
	}
}

func (c *Config) normalizeDrives() error {
	if len(c.Drives) == 0 && len(c.Recorders) == 0 {
		c.Drives = []Drive{DefaultDrive()}
	}
	for i := range c.Drives {
		drive := &c.Drives[i]
		drive.ID = strings.TrimSpace(drive.ID)
		drive.Name = strings.TrimSpace(drive.Name)
		drive.Path = strings.TrimSpace(drive.Path)
		if drive.ID == "" && drive.Path != "" {
			drive.ID = baseName(drive.Path)
		}
		if drive.Name == "" {
			drive.Name = drive.Path
		}
		drive.Capabilities = normalizeTokens(drive.Capabilities)
	}
	return nil
}

func (c *Config) normalizeRecorders() {
	for i := range c.Recorders {
		rec := &c.Recorders[i]
		rec.ID = strings.TrimSpace(rec.ID)
		rec.Name = strings.TrimSpace(rec.Name)
		if rec.Name == "" {
			rec.Name = rec.ID
		}
		rec.Profile = strings.ToLower(strings.TrimSpace(rec.Profile))
		rec.Capabilities = normalizeTokens(rec.Capabilities)
	}
}

func normalizeTokens(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		normalized := strings.ToLower(strings.TrimSpace(value))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

func baseName(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
