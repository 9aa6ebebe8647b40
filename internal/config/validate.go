package config

import (
	"errors"
	"fmt"
	"strings"

	"discburn/internal/mmc"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	if err := c.validateBurn(); err != nil {
		return err
	}
	if err := c.validateDevices(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.MediaPollInterval <= 0 {
		return errors.New("workflow.media_poll_interval must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateBurn() error {
	if c.Burn.Copies < 1 {
		return errors.New("burn.copies must be >= 1")
	}
	if c.Burn.WriteMethod != "" {
		if _, err := mmc.ParseWriteMethod(c.Burn.WriteMethod); err != nil {
			return fmt.Errorf("burn.write_method: %w", err)
		}
	}
	return nil
}

func (c *Config) validateDevices() error {
	seen := make(map[string]string)
	claim := func(id, section string) error {
		if id == "" {
			return fmt.Errorf("%s: id must be set", section)
		}
		if prior, ok := seen[id]; ok {
			return fmt.Errorf("%s: duplicate device id %q (already used by %s)", section, id, prior)
		}
		seen[id] = section
		return nil
	}

	for i, drive := range c.Drives {
		section := fmt.Sprintf("drives[%d]", i)
		if err := claim(drive.ID, section); err != nil {
			return err
		}
		if strings.TrimSpace(drive.Path) == "" {
			return fmt.Errorf("%s.path must be set", section)
		}
		if err := validateSpeeds(section, drive.Speeds); err != nil {
			return err
		}
		if err := validateCapabilities(section, drive.Capabilities); err != nil {
			return err
		}
	}

	for i, rec := range c.Recorders {
		section := fmt.Sprintf("recorders[%d]", i)
		if err := claim(rec.ID, section); err != nil {
			return err
		}
		if _, err := mmc.ParseProfile(rec.Profile); err != nil {
			return fmt.Errorf("%s.profile: %w", section, err)
		}
		if err := validateSpeeds(section, rec.Speeds); err != nil {
			return err
		}
		if err := validateCapabilities(section, rec.Capabilities); err != nil {
			return err
		}
	}
	return nil
}

func validateSpeeds(section string, speeds []int) error {
	for _, speed := range speeds {
		if speed <= 0 || speed >= mmc.SpeedMaximum {
			return fmt.Errorf("%s.speeds: %d is not a valid kB/s rate", section, speed)
		}
	}
	return nil
}

func validateCapabilities(section string, tokens []string) error {
	for _, token := range tokens {
		if _, err := mmc.ParseCapability(token); err != nil {
			return fmt.Errorf("%s.capabilities: %w", section, err)
		}
	}
	return nil
}
