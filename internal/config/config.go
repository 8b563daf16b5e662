package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the ecmerge configuration.
type Config struct {
	// Limit is the display width at which compare values are truncated.
	Limit  int    `toml:"limit" json:"limit"`
	Format string `toml:"format" json:"format"`
	Color  string `toml:"color" json:"color"`
	// Prefer, when "a" or "b", settles merge conflicts without prompting.
	Prefer string `toml:"prefer,omitempty" json:"prefer,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Limit:  40,
		Format: "text",
		Color:  ColorAuto,
	}
}

// WithDefaults returns c with unset fields taken from Default.
func (c Config) WithDefaults() Config {
	d := Default()
	mergeFile(&d, c)
	return d
}

// Validate rejects values no command can act on.
func (c Config) Validate() error {
	if c.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", c.Limit)
	}
	switch c.Format {
	case "text", "json", "markdown", "md":
	default:
		return fmt.Errorf("unsupported format %q (want text, json or markdown)", c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	switch c.Prefer {
	case "", "a", "b":
	default:
		return fmt.Errorf("prefer must be a or b, got %q", c.Prefer)
	}
	return nil
}

// UseColor resolves the colour mode for an output that is or is not a terminal.
func (c Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal && os.Getenv("NO_COLOR") == ""
	}
}

// ConfigDir returns the platform-appropriate config directory for ecmerge.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ecmerge"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "ecmerge"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "ecmerge"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "ecmerge"), nil
	default:
		return filepath.Join(home, ".config", "ecmerge"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Limit != 0 {
		dst.Limit = src.Limit
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
	if src.Prefer != "" {
		dst.Prefer = src.Prefer
	}
}

var envKeys = map[string]string{
	"ECMERGE_LIMIT":  "limit",
	"ECMERGE_FORMAT": "format",
	"ECMERGE_COLOR":  "color",
	"ECMERGE_PREFER": "prefer",
}

func mergeEnv(cfg *Config) error {
	for env, key := range envKeys {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for k, v := range overrides {
		if v == "" {
			continue
		}
		if err := SetField(cfg, k, v); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("limit must be an integer: %w", err)
		}
		cfg.Limit = n
	case "format":
		cfg.Format = value
	case "color":
		cfg.Color = value
	case "prefer":
		cfg.Prefer = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
