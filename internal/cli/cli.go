package cli

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inklet/inklet/internal/simplelogger"
)

// Version is inklet's version. A var, not a const, so build tooling can
// override it via `-ldflags "-X .../internal/cli.Version=1.2.3"`.
var Version = "0.1.0"

// RunOptions overrides standard I/O. If nil, the OS defaults are used.
// Overriding is useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically os.Args). It returns a recommended
// exit code and an error, if any:
//   - 0 -> err == nil
//   - 1 -> a runtime error occurred (bad input file, malformed revision)
//   - 2 -> a usage error occurred (unknown flag, wrong number of arguments)
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	simplelogger.Log("cli: run args=%v", argv)

	root := newRootCommand()
	root.SetArgs(argv)
	root.SetIn(in)
	root.SetOut(out)

	var errBuf bytes.Buffer
	root.SetErr(io.MultiWriter(errW, &errBuf))

	err := root.Execute()
	if err == nil {
		return 0, nil
	}

	if isUsageError(root, err) {
		return 2, err
	}

	msg := strings.TrimSpace(errBuf.String())
	if msg == "" {
		msg = err.Error()
	}
	return 1, err
}

func isUsageError(root *cobra.Command, err error) bool {
	// cobra reports flag/argument problems via the same error path as
	// runtime failures; the flag it sets internally isn't exported, so we
	// classify by our own sentinel instead (see errUsage in errors.go).
	return isErrUsage(err)
}
