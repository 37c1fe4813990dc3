package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// rootFlags holds the flags shared by every command.
var rootFlags struct {
	verbose    bool
	dryRun     bool
	configPath string
}

var rootCmd = &cobra.Command{
	Use:   "mojifix [dir]",
	Short: "Repair mojibake in HTML files",
	Long: `mojifix walks a directory tree and repairs UTF-8 text that was misread as
Windows-1252 or Latin-1 (for example "cafÃ©" becomes "café").

Every *.html file is read, repaired in memory, and written back only when
something changed. Each rewritten file is reported on stdout as
"Fixed mojibake in <path>".

Configuration:
  mojifix.yaml in the target directory (extensions, exclude,
  special_sequences, max_passes, dry_run). A .env file in the working
  directory may set MOJIFIX_VERBOSE and MOJIFIX_DRY_RUN.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - A matching file is not valid UTF-8
  12 - Writing a repaired file failed
  13 - Directory not found`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runFix,
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's context.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.dryRun, "dry-run", "n", false, "Report files that need repair without writing them")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "", "Path to a config file (default: <dir>/mojifix.yaml)")
}

// commandContext returns the command's context, or Background when the
// command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
