package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inklet/inklet/internal/diffengine"
	"github.com/inklet/inklet/internal/patch"
)

func newPatchCommand(copyFlag *bool) *cobra.Command {
	patchCmd := &cobra.Command{
		Use:   "patch",
		Short: "Create, apply, and batch-create revisions",
	}
	patchCmd.AddCommand(
		newPatchMakeCommand(copyFlag),
		newPatchApplyCommand(),
		newPatchBatchCommand(),
	)
	return patchCmd
}

func newPatchMakeCommand(copyFlag *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "make <old-file> <new-file>",
		Short: "Create a revision that turns old-file into new-file",
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

			rev := patch.NewRevision(old, new, diffengine.DefaultOptions())
			out := rev.String()
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return maybeCopy(*copyFlag, out)
		},
	}
}

func newPatchApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <revision-file> <original-file>",
		Short: "Apply a revision to an original file and print the result",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readFile(args[0])
			if err != nil {
				return err
			}
			original, err := readFile(args[1])
			if err != nil {
				return err
			}

			// `patch make` ends its output with a newline; drop it so a
			// saved revision parses.
			rev, ok := patch.ParseRevision(strings.TrimRight(raw, "\r\n"))
			if !ok {
				return fmt.Errorf("%s: malformed revision", args[0])
			}

			result, err := rev.Apply(original)
			if err != nil {
				return fmt.Errorf("apply %s to %s: %w", args[0], args[1], err)
			}
			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func writeIfRequested(path, content string) error {
	if path == "" {
		return nil
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
