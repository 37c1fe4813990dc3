package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mojifix/internal/config"
	"github.com/vvka-141/mojifix/internal/files/filesystem"
	"github.com/vvka-141/mojifix/internal/files/scanner"
	"github.com/vvka-141/mojifix/internal/logging"
	"github.com/vvka-141/mojifix/internal/mojibake"
	"github.com/vvka-141/mojifix/internal/services"
	"github.com/vvka-141/mojifix/pkg/mojifix"
)

// envFile is loaded from the working directory before flags are resolved.
const envFile = ".env"

// settings is the merged result of flags, .env and mojifix.yaml.
type settings struct {
	root    string
	cfg     *config.ProjectConfig
	verbose bool
	dryRun  bool
}

// resolveSettings merges configuration sources.
// Priority (highest to lowest): explicit flags > .env / environment > mojifix.yaml > defaults
func resolveSettings(cmd *cobra.Command, args []string) (*settings, error) {
	env, err := config.LoadEnv(envFile)
	if err != nil {
		return nil, err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := loadProjectConfig(root, rootFlags.configPath)
	if err != nil {
		return nil, err
	}

	verbose := env.Verbose
	if cmd.Flags().Changed("verbose") {
		verbose = getVerboseFlag(cmd)
	}

	dryRun := cfg.DryRun || env.DryRun
	if cmd.Flags().Changed("dry-run") {
		dryRun = rootFlags.dryRun
	}

	return &settings{
		root:    root,
		cfg:     cfg,
		verbose: verbose,
		dryRun:  dryRun,
	}, nil
}

// loadProjectConfig loads mojifix.yaml from rootPath, or configPath when given.
// A missing mojifix.yaml is not an error; a missing explicit --config is.
func loadProjectConfig(rootPath, configPath string) (*config.ProjectConfig, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s not found: %w", configPath, mojifix.ErrInvalidConfig)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(rootPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", mojifix.ConfigFileName, err)
	}
	return cfg, nil
}

// buildFixer wires the OS filesystem, scanner and engine for s.
func buildFixer(s *settings, stdout, stderr io.Writer) (*services.Fixer, *scanner.Scanner, mojifix.Logger) {
	logger := logging.NewConsoleLogger(stderr, s.verbose)

	opts := s.cfg.RunOptions()
	opts.DryRun = s.dryRun

	sc := scanner.NewScanner(opts)
	fixer := services.NewFixer(
		sc,
		filesystem.NewOSFileSystem(),
		mojibake.New(s.cfg.RepairOptions()...),
		logger,
		stdout,
		s.dryRun,
	)

	if s.verbose {
		logger.Verbose("Root: %s", s.root)
		logger.Verbose("Extensions: %v", opts.Extensions)
		if len(opts.Exclude) > 0 {
			logger.Verbose("Excluding: %v", opts.Exclude)
		}
		logger.Verbose("Max passes: %d, dry run: %t", s.cfg.MaxPasses, s.dryRun)
	}

	return fixer, sc, logger
}
