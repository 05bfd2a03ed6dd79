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
	c.normalizeCardTypes()
	c.normalizeLocales()
	c.normalizeLogging()
	if c.Workers <= 0 {
		c.Workers = defaultWorkers
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.InputDir, err = expandPath(c.Paths.InputDir); err != nil {
		return fmt.Errorf("paths.input_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if value, ok := os.LookupEnv(EnvBackgroundsDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.BackgroundsDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.BackgroundsDir) == "" {
		c.Paths.BackgroundsDir = defaultBackgrounds
	}
	if c.Paths.BackgroundsDir, err = expandPath(c.Paths.BackgroundsDir); err != nil {
		return fmt.Errorf("paths.backgrounds_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCardTypes() {
	for name, spec := range c.CardTypes {
		if strings.TrimSpace(spec.FrameSplit) == "" {
			spec.FrameSplit = defaultFrameSplit
		}
		if strings.TrimSpace(spec.AnimFolder) == "" {
			spec.AnimFolder = defaultAnimFolder
		}
		spec.Composite = strings.TrimSpace(spec.Composite)
		spec.UnityFolder = strings.TrimSpace(spec.UnityFolder)
		c.CardTypes[name] = spec
	}
}

func (c *Config) normalizeLocales() {
	cleaned := make([]string, 0, len(c.Locales))
	seen := map[string]struct{}{}
	for _, loc := range c.Locales {
		loc = strings.TrimSpace(loc)
		if loc == "" {
			continue
		}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		cleaned = append(cleaned, loc)
	}
	c.Locales = cleaned
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
