package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/mojifix/internal/tui"
)

func runFix(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}

	fixer, _, _ := buildFixer(s, cmd.OutOrStdout(), cmd.ErrOrStderr())

	result, err := fixer.Run(commandContext(cmd), s.root)
	if s.verbose || s.dryRun {
		tui.WriteSummary(cmd.ErrOrStderr(), result, err)
	}
	return err
}
