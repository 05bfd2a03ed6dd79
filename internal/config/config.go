package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Paths contains directory configuration.
type Paths struct {
	InputDir       string `toml:"input_dir"`
	OutputDir      string `toml:"output_dir"`
	LogDir         string `toml:"log_dir"`
	BackgroundsDir string `toml:"backgrounds_dir"`
}

// CardType describes the per-card-class conversion rules: how animation
// frames are recognized, which derived outputs to produce, and where the
// class lives in the input tree.
type CardType struct {
	FrameSplit  string   `toml:"frame_re"`
	AnimFolder  string   `toml:"anim_folder"`
	Outputs     []string `toml:"outputs"`
	Composite   string   `toml:"composite"`
	UnityFolder string   `toml:"unity_folder"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for CardConvert.
type Config struct {
	Paths     Paths               `toml:"paths"`
	CardTypes map[string]CardType `toml:"card_types"`
	Locales   []string            `toml:"locales"`
	Workers   int                 `toml:"workers"`
	Logging   Logging             `toml:"logging"`
}

// EnvConfigPath overrides the configuration file location when set.
const EnvConfigPath = "CARDCONVERT_CONFIG"

// EnvBackgroundsDir overrides the composite backgrounds directory when set.
const EnvBackgroundsDir = "CARDCONVERT_BACKGROUNDS_DIR"

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cardconvert/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. When no file exists at
// the resolved location the defaults are used.
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
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
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

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cardconvert.toml")
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

// EnsureDirectories creates the output and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// BackgroundPath resolves the composite background image for a card class.
func (c *Config) BackgroundPath(class string) (string, error) {
	spec, ok := c.CardTypes[class]
	if !ok {
		return "", fmt.Errorf("card_types.%s is not configured", class)
	}
	if strings.TrimSpace(spec.Composite) == "" {
		return "", fmt.Errorf("card_types.%s.composite is not configured", class)
	}
	return filepath.Join(c.Paths.BackgroundsDir, spec.Composite), nil
}

// ConvertBinary returns the ImageMagick convert executable name.
func (c *Config) ConvertBinary() string {
	return "convert"
}

// APNGAsmBinary returns the animated PNG assembler executable name.
func (c *Config) APNGAsmBinary() string {
	return "apngasm"
}

// APNG2GIFBinary returns the APNG to GIF converter executable name.
func (c *Config) APNG2GIFBinary() string {
	return "apng2gif"
}

// FFmpegBinary returns the ffmpeg executable name used for web encodes.
func (c *Config) FFmpegBinary() string {
	return "ffmpeg"
}

// ExpandPath resolves a leading ~ and returns a cleaned absolute path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
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
