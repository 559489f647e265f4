// Package driver loads xlang project configuration and source files.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/naoina/toml"
	"gopkg.in/yaml.v3"
)

// ConfigFileNames lists the project config names searched for, in order.
var ConfigFileNames = []string{"xlang.yml", "xlang.yaml", "xlang.toml"}

// ErrConfigNotFound is returned by FindConfig when no config file exists
// between the start directory and the filesystem root.
var ErrConfigNotFound = errors.New("config not found")

// ColorMode selects when diagnostics are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether the mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the project configuration, either defaults or read from
// xlang.yml / xlang.toml.
type Config struct {
	// Path is the absolute config file path, empty for defaults.
	Path string

	Entry        string
	Verbosity    string
	Color        ColorMode
	MaxCallDepth int
	CacheSize    int
	History      string
}

// configFile mirrors the on-disk layout shared by the YAML and TOML forms.
type configFile struct {
	Entry        string `yaml:"entry" toml:"entry"`
	Verbosity    string `yaml:"verbosity" toml:"verbosity"`
	Color        string `yaml:"color" toml:"color"`
	MaxCallDepth *int   `yaml:"max_call_depth" toml:"max_call_depth"`
	CacheSize    *int   `yaml:"cache_size" toml:"cache_size"`
	History      string `yaml:"history" toml:"history"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Verbosity:    "warn",
		Color:        ColorAuto,
		MaxCallDepth: 10000,
		CacheSize:    64,
	}
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadConfig parses a config file. The format follows the extension:
// .toml is TOML, anything else YAML. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	var raw configFile
	if strings.EqualFold(filepath.Ext(absPath), ".toml") {
		err = toml.NewDecoder(bufio.NewReader(file)).Decode(&raw)
		if _, ok := err.(*toml.LineError); ok {
			err = errors.New(absPath + ", " + err.Error())
		}
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
		}
	} else {
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("config: %s is empty", absPath)
			}
			return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
		}
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	cfg.Entry = strings.TrimSpace(raw.Entry)
	if v := strings.TrimSpace(raw.Verbosity); v != "" {
		cfg.Verbosity = strings.ToLower(v)
	}
	if c := strings.TrimSpace(raw.Color); c != "" {
		cfg.Color = ColorMode(strings.ToLower(c))
	}
	if raw.MaxCallDepth != nil {
		cfg.MaxCallDepth = *raw.MaxCallDepth
	}
	if raw.CacheSize != nil {
		cfg.CacheSize = *raw.CacheSize
	}
	cfg.History = strings.TrimSpace(raw.History)
	return cfg
}

// Validate checks field values and reports every problem at once.
func (c *Config) Validate() error {
	var errs ValidationError
	if _, err := log.LvlFromString(c.Verbosity); err != nil {
		errs.Issues = append(errs.Issues, fmt.Sprintf("verbosity %q is not a log level", c.Verbosity))
	}
	if !c.Color.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("color %q must be one of auto, always, never", c.Color))
	}
	if c.MaxCallDepth < 0 {
		errs.Issues = append(errs.Issues, "max_call_depth must not be negative")
	}
	if c.CacheSize < 0 {
		errs.Issues = append(errs.Issues, "cache_size must not be negative")
	}
	if c.Entry != "" && filepath.Ext(c.Entry) != SourceExtension {
		errs.Issues = append(errs.Issues, fmt.Sprintf("entry %q must be a %s file", c.Entry, SourceExtension))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// EntryPath resolves Entry relative to the config file directory.
func (c *Config) EntryPath() string {
	if c.Entry == "" {
		return ""
	}
	if filepath.IsAbs(c.Entry) || c.Path == "" {
		return c.Entry
	}
	return filepath.Join(filepath.Dir(c.Path), c.Entry)
}

// FindConfig walks upward from start looking for a project config file.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no xlang config found from %s upwards: %w", origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// ResolveConfig loads the config found from start, or the defaults when
// there is none.
func ResolveConfig(start string) (*Config, error) {
	path, err := FindConfig(start)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return LoadConfig(path)
}

// ResolveHome returns the xlang home directory: $XLANG_HOME or ~/.xlang.
func ResolveHome() (string, error) {
	if home := strings.TrimSpace(os.Getenv("XLANG_HOME")); home != "" {
		abs, err := filepath.Abs(home)
		if err != nil {
			return "", fmt.Errorf("resolve XLANG_HOME %q: %w", home, err)
		}
		return abs, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(userHome, ".xlang"), nil
}

// HistoryPath returns the REPL history file, defaulting to a file under
// the xlang home directory.
func (c *Config) HistoryPath() (string, error) {
	if c.History != "" {
		if filepath.IsAbs(c.History) || c.Path == "" {
			return c.History, nil
		}
		return filepath.Join(filepath.Dir(c.Path), c.History), nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "history"), nil
}
