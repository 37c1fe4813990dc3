package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/mojifix/internal/mojibake"
	"github.com/vvka-141/mojifix/pkg/mojifix"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables read after .env is loaded.
const (
	EnvVerbose = "MOJIFIX_VERBOSE"
	EnvDryRun  = "MOJIFIX_DRY_RUN"
)

// ProjectConfig is the content of mojifix.yaml.
type ProjectConfig struct {
	Extensions       []string          `yaml:"extensions,omitempty"`
	Exclude          []string          `yaml:"exclude,omitempty"`
	SpecialSequences map[string]string `yaml:"special_sequences,omitempty"`
	MaxPasses        int               `yaml:"max_passes,omitempty"`
	DryRun           bool              `yaml:"dry_run,omitempty"`
}

// Default returns the configuration used when no mojifix.yaml exists.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Extensions: []string{mojifix.DefaultExtension},
		MaxPasses:  mojifix.DefaultMaxPasses,
	}
}

// Load reads mojifix.yaml from rootPath.
func Load(rootPath string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(rootPath, mojifix.ConfigFileName))
}

// LoadFile reads and validates a config file. Unset fields get their defaults.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", configPath, mojifix.ErrInvalidConfig, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

func (c *ProjectConfig) applyDefaults() {
	if len(c.Extensions) == 0 {
		c.Extensions = []string{mojifix.DefaultExtension}
	}
	if c.MaxPasses == 0 {
		c.MaxPasses = mojifix.DefaultMaxPasses
	}
}

// Validate checks every field and returns all problems joined together.
func (c *ProjectConfig) Validate() error {
	var errs []error

	for _, ext := range c.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("extension %q must start with a dot: %w", ext, mojifix.ErrInvalidConfig))
		}
	}

	for _, name := range c.Exclude {
		if name == "" || strings.ContainsAny(name, `/\`) {
			errs = append(errs, fmt.Errorf("exclude entry %q must be a single directory name: %w", name, mojifix.ErrInvalidConfig))
		}
	}

	for k, v := range c.SpecialSequences {
		if !mojibake.ValidSpecialKey(k) {
			errs = append(errs, fmt.Errorf("special sequence %q must be exactly 3 characters: %w", k, mojifix.ErrInvalidConfig))
		}
		if v == "" {
			errs = append(errs, fmt.Errorf("special sequence %q has an empty replacement: %w", k, mojifix.ErrInvalidConfig))
		}
	}

	if c.MaxPasses < 0 {
		errs = append(errs, fmt.Errorf("max_passes cannot be negative: %w", mojifix.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// RunOptions converts the config into options for a Fixer run.
func (c *ProjectConfig) RunOptions() mojifix.RunOptions {
	return mojifix.RunOptions{
		Extensions: c.Extensions,
		Exclude:    c.Exclude,
		DryRun:     c.DryRun,
	}
}

// RepairOptions converts the config into mojibake.Repairer options.
func (c *ProjectConfig) RepairOptions() []mojibake.Option {
	return []mojibake.Option{
		mojibake.WithSpecialSequences(c.SpecialSequences),
		mojibake.WithMaxPasses(c.MaxPasses),
	}
}

// EnvDefaults are flag defaults taken from the environment.
type EnvDefaults struct {
	Verbose bool
	DryRun  bool
}

// LoadEnv loads envFile (usually ".env") if it exists, without overriding
// variables that are already set, and reads the MOJIFIX_* variables.
func LoadEnv(envFile string) (EnvDefaults, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return EnvDefaults{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	verbose, err := envBool(EnvVerbose)
	if err != nil {
		return EnvDefaults{}, err
	}
	dryRun, err := envBool(EnvDryRun)
	if err != nil {
		return EnvDefaults{}, err
	}

	return EnvDefaults{Verbose: verbose, DryRun: dryRun}, nil
}

func envBool(name string) (bool, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s=%q is not a boolean: %w", name, raw, mojifix.ErrInvalidConfig)
	}
	return v, nil
}
