// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"almanac/core/almanac"
	"almanac/internal/cli"
	"almanac/internal/cliutil"
	"almanac/internal/logging"
	"almanac/internal/pipeline"
	"almanac/internal/version"
	"almanac/internal/writers"
)

// Exit codes.
const (
	exitOK        = 0
	exitMismatch  = 1
	exitUsage     = 2
	exitOutput    = 3
	exitCancelled = 130
)

// exitError carries a process exit code out of a cobra RunE. err may be nil
// when the code alone is the answer (no match, check mismatch).
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error { return &exitError{code: code, err: err} }

// RunContext executes the almanac CLI with argv and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(parent, argv, os.Stdin, stdout, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root := newRootCmd()
	root.SetArgs(argv)
	root.SetIn(stdin)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return exitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return exitOutput
	}
	return exitCode(err, stderr)
}

// exitCode prints err and picks the process code. Run errors reach here as
// *exitError (see runErr); anything else is a cobra usage error.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", ee.err)
		}
		return ee.code
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	return exitUsage
}

func newRootCmd() *cobra.Command {
	var o cli.Options
	root := &cobra.Command{
		Use:   "almanac [flags] [input]",
		Short: "Minimum location for seeds pushed through the seven almanac stages",
		Long: `almanac reads an almanac (seeds plus seven stage maps) and reports the
smallest final location, treating seeds as single values, as
(begin, length) ranges, or both.

The input may be a file, a glob matching one file, or '-' for stdin;
gzip input is detected automatically.`,
		Example: `  almanac input.txt
  almanac --mode ranges --emit-ranges -o json input.txt.gz
  zcat input.txt.gz | almanac -o jsonl -
  almanac check --exhaustive-limit 100000 input.txt
  almanac inspect input.txt`,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	f := cli.Register(root.Flags(), &o)
	root.RunE = solveRunE(&o, f)
	root.SetVersionTemplate("almanac version {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withCode(exitUsage, err)
	})

	root.AddCommand(newSolveCmd(), newCheckCmd(), newInspectCmd(), newVersionCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var o cli.Options
	cmd := &cobra.Command{
		Use:   "solve [flags] [input]",
		Short: "Report the minimum location (default command)",
		Args:  cobra.MaximumNArgs(1),
	}
	f := cli.Register(cmd.Flags(), &o)
	cmd.RunE = solveRunE(&o, f)
	return cmd
}

func newCheckCmd() *cobra.Command {
	var o cli.Options
	cmd := &cobra.Command{
		Use:   "check [flags] [input]",
		Short: "Cross-check the value and range code paths",
		Long: `check solves the seeds as single values and as unit ranges and
requires both minimums to agree. When the seeds pair up into ranges it also
runs range mode and, if the ranges hold at most --exhaustive-limit values,
enumerates every value and compares minimums. Exits 1 on any disagreement.`,
		Args: cobra.MaximumNArgs(1),
	}
	f := cli.Register(cmd.Flags(), &o)
	cli.RegisterCheck(cmd.Flags(), &o)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := setup(cmd, args, &o, f)
		if err != nil {
			return err
		}
		defer s.close()
		return s.check(cmd.Context())
	}
	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [input]",
		Short: "Print the almanac in canonical form (sorted segments)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := cliutil.SingleInput(args)
			if err != nil {
				return withCode(exitUsage, err)
			}
			alm, err := load(cmd, in)
			if err != nil {
				return withCode(exitUsage, err)
			}
			if _, err := alm.WriteTo(cmd.OutOrStdout()); err != nil {
				return outputErr(err)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "almanac version %s\n", version.Version)
			return err
		},
	}
}

func solveRunE(o *cli.Options, f *cli.Flags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := setup(cmd, args, o, f)
		if err != nil {
			return err
		}
		defer s.close()
		return s.solve(cmd.Context())
	}
}

// session is one resolved invocation: options, logger, input and runner.
type session struct {
	opts   cli.Options
	log    *zap.Logger
	alm    *almanac.Almanac
	runner *pipeline.Runner
	out    io.Writer
}

func setup(cmd *cobra.Command, args []string, o *cli.Options, f *cli.Flags) (*session, error) {
	if err := f.Resolve(o); err != nil {
		return nil, withCode(exitUsage, err)
	}
	in, err := cliutil.SingleInput(args)
	if err != nil {
		return nil, withCode(exitUsage, err)
	}
	o.Input = in

	log, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: o.LogLevel, Format: o.LogFormat})
	if err != nil {
		return nil, withCode(exitUsage, err)
	}

	alm, err := load(cmd, in)
	if err != nil {
		return nil, withCode(exitUsage, err)
	}
	if err := alm.Validate(); err != nil {
		return nil, withCode(exitUsage, fmt.Errorf("%s: %w", in, err))
	}

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log.Debug("almanac loaded",
		zap.String("input", in),
		zap.Int("seeds", len(alm.Seeds)),
		zap.Int("workers", workers),
		zap.String("mode", o.Mode))

	return &session{
		opts:   *o,
		log:    log,
		alm:    alm,
		runner: pipeline.New(pipeline.Config{Workers: workers}, log),
		out:    cmd.OutOrStdout(),
	}, nil
}

func (s *session) close() { _ = s.log.Sync() }

func load(cmd *cobra.Command, in string) (*almanac.Almanac, error) {
	if in == "-" {
		alm, err := almanac.Read(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return alm, nil
	}
	return almanac.Load(in)
}

// runErr maps pipeline failures to exit codes.
func runErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return withCode(exitCancelled, nil)
	}
	return withCode(exitUsage, err)
}

func outputErr(err error) error {
	if writers.IsBrokenPipe(err) {
		return nil
	}
	return withCode(exitOutput, err)
}
