package cli

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/inklet/inklet/internal/diffengine"
	"github.com/inklet/inklet/internal/patch"
)

// newPatchBatchCommand builds revisions for many old/new file pairs
// concurrently. It does not make the diff engine itself concurrent; it only
// parallelizes the CLI's outer loop over independent file pairs, bounded by
// GOMAXPROCS so a batch of thousands doesn't spawn thousands of goroutines
// doing CPU-bound diff work at once.
func newPatchBatchCommand() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "batch <pairs-file>",
		Short: "Create revisions for many old/new file pairs listed one per line as \"old\\tnew\"",
		Long: "Each line of pairs-file is \"old-path<TAB>new-path\". For each pair inklet\n" +
			"computes a revision and writes it to --out/<base-name-of-new-path>.rev, or\n" +
			"prints it to stdout if --out is not given.",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readFile(args[0])
			if err != nil {
				return err
			}
			pairs, err := parsePairs(raw)
			if err != nil {
				return usageErrorf("%s: %v", args[0], err)
			}

			results := make([]string, len(pairs))
			g := new(errgroup.Group)
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, p := range pairs {
				i, p := i, p
				g.Go(func() error {
					old, err := readFile(p.old)
					if err != nil {
						return err
					}
					new, err := readFile(p.new)
					if err != nil {
						return err
					}
					rev := patch.NewRevision(old, new, diffengine.DefaultOptions())
					results[i] = rev.String()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for i, p := range pairs {
				if outDir == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.new, results[i])
					continue
				}
				revPath := filepath.Join(outDir, filepath.Base(p.new)+".rev")
				if err := writeIfRequested(revPath, results[i]); err != nil {
					return fmt.Errorf("write revision for %s: %w", p.new, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "if set, a directory to write each revision into as <base-name-of-new-path>.rev, instead of stdout")
	return cmd
}

type filePair struct{ old, new string }

func parsePairs(raw string) ([]filePair, error) {
	var pairs []filePair
	for lineNo, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"old<TAB>new\", got %q", lineNo+1, line)
		}
		pairs = append(pairs, filePair{old: fields[0], new: fields[1]})
	}
	return pairs, nil
}
