package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inklet/inklet/internal/diffengine"
	"github.com/inklet/inklet/internal/format"
)

func newRootCommand() *cobra.Command {
	cfg := loadConfig()

	root := &cobra.Command{
		Use:           "inklet",
		Short:         "Compute, format, and apply text revisions",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var formatFlag string
	var colorFlag bool
	var copyFlag bool
	root.PersistentFlags().StringVar(&formatFlag, "format", cfg.Format, "output format: delta, gnu, md, html")
	root.PersistentFlags().BoolVar(&colorFlag, "color", cfg.Color, "force ANSI color in gnu output")
	root.PersistentFlags().BoolVar(&copyFlag, "copy", cfg.Copy, "copy the result to the system clipboard")

	root.AddCommand(
		newDiffCommand(&formatFlag, &colorFlag, &copyFlag, false),
		newDiffCommand(&formatFlag, &colorFlag, &copyFlag, true),
		newPatchCommand(&copyFlag),
	)
	return root
}

func newDiffCommand(formatFlag *string, colorFlag, copyFlag *bool, words bool) *cobra.Command {
	use := "diff <old-file> <new-file>"
	short := "Print the diff between two files"
	if words {
		use = "worddiff <old-file> <new-file>"
		short = "Print the word-granularity diff between two files"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			old, err := readFile(args[0])
			if err != nil {
				return err
			}
			new, err := readFile(args[1])
			if err != nil {
				return err
			}

			opts := diffengine.DefaultOptions()
			var diffs []diffengine.Diff
			if words {
				diffs = diffengine.WordDiff(old, new, opts)
			} else {
				diffs = diffengine.Diff(old, new, opts)
			}

			tag, err := parseFormatFlag(*formatFlag)
			if err != nil {
				return err
			}
			out, err := format.Format(diffs, tag)
			if err != nil {
				return err
			}
			if tag == format.GNU && (*colorFlag || isTerminalWriter(cmd)) {
				out = colorizeGNU(out)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return maybeCopy(*copyFlag, out)
		},
	}
}

func parseFormatFlag(s string) (format.Tag, error) {
	switch s {
	case "", "delta":
		return format.Delta, nil
	case "gnu":
		return format.GNU, nil
	case "md":
		return format.MD, nil
	case "html":
		return format.HTML, nil
	default:
		return 0, usageErrorf("unknown --format %q: want delta, gnu, md, or html", s)
	}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErrorf("%s: want %d argument(s), got %d", cmd.Use, n, len(args))
		}
		return nil
	}
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func maybeCopy(doCopy bool, text string) error {
	if !doCopy {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func isTerminalWriter(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// colorizeGNU colors gnu-format lines the way a unified diff pager does:
// deletions red, insertions green.
func colorizeGNU(out string) string {
	lines := splitLinesKeepEmpty(out)
	for i, line := range lines {
		switch {
		case hasPrefix2(line, "- "):
			lines[i] = ansiRed + line + ansiReset
		case hasPrefix2(line, "+ "):
			lines[i] = ansiGreen + line + ansiReset
		}
	}
	return joinLines(lines)
}

func splitLinesKeepEmpty(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func joinLines(lines []string) string {
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}

func hasPrefix2(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
