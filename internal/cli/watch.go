package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/mojifix/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Repair HTML files now and again whenever they change",
	Long: `Runs a full repair of [dir] (default: current directory), then keeps
watching it. Every *.html file that is created or modified is repaired
as soon as the change is seen. Stop with Ctrl+C.

Unlike a normal run, a file that is not valid UTF-8 is reported and skipped
instead of ending the command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	fixer, sc, logger := buildFixer(s, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if _, err := fixer.RunSkippingUndecodable(ctx, s.root); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	w, err := watch.New(s.root, fixer, sc, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	return w.Run(ctx)
}
