package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/mojifix/pkg/mojifix"
)

// RenderSummary formats the outcome of a run. runErr is the error that
// stopped the run, if any.
func RenderSummary(result mojifix.RunResult, runErr error, mode Mode) string {
	fixedLabel := "Fixed"
	if result.DryRun {
		fixedLabel = "Would fix"
	}

	replacements := 0
	for _, f := range result.Files {
		replacements += f.Replacements
	}

	rows := [][2]string{
		{"Root", result.Root},
		{"Scanned", fmt.Sprintf("%d", result.Scanned)},
		{fixedLabel, fmt.Sprintf("%d", result.FixedCount())},
		{"Sequences", fmt.Sprintf("%d", replacements)},
	}

	if mode == ModePlain {
		parts := make([]string, 0, len(rows)+1)
		for _, row := range rows[1:] {
			parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(row[0]), row[1]))
		}
		line := "mojifix: " + strings.Join(parts, ", ")
		if runErr != nil {
			line += " (stopped: " + runErr.Error() + ")"
		}
		return line + "\n"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("mojifix"))
	if result.DryRun {
		b.WriteString(" " + WarningStyle.Render("(dry run)"))
	}
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(LabelStyle.Render(row[0]) + row[1] + "\n")
	}

	switch {
	case runErr != nil:
		b.WriteString(ErrorStyle.Render(SymbolCross + " " + runErr.Error()))
	case result.FixedCount() == 0:
		b.WriteString(MutedStyle.Render(SymbolBullet + " nothing to repair"))
	default:
		b.WriteString(SuccessStyle.Render(SymbolCheck + " done"))
	}

	return BoxStyle.Render(b.String()) + "\n"
}

// WriteSummary renders the summary in the mode detected for w.
func WriteSummary(w io.Writer, result mojifix.RunResult, runErr error) {
	fmt.Fprint(w, RenderSummary(result, runErr, DetectMode(w)))
}
