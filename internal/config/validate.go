package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/anaik-zam/CardConvert/internal/locale"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCardTypes(); err != nil {
		return err
	}
	if err := c.validateLocales(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.InputDir) == "" {
		return errors.New("paths.input_dir must be set")
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateCardTypes() error {
	if len(c.CardTypes) == 0 {
		return errors.New("card_types must declare at least one card class")
	}
	for name, spec := range c.CardTypes {
		if len(spec.Outputs) == 0 {
			return fmt.Errorf("card_types.%s.outputs must not be empty", name)
		}
		if strings.TrimSpace(spec.UnityFolder) == "" {
			return fmt.Errorf("card_types.%s.unity_folder must be set", name)
		}
		if _, err := regexp.Compile(spec.FrameSplit); err != nil {
			return fmt.Errorf("card_types.%s.frame_re: %w", name, err)
		}
	}
	return nil
}

func (c *Config) validateLocales() error {
	if len(c.Locales) == 0 {
		return errors.New("locales must declare at least one locale")
	}
	for _, loc := range c.Locales {
		if _, err := locale.Parse(loc); err != nil {
			return fmt.Errorf("locales: %w", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
