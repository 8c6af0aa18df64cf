// Package cli provides command-line interface functionality for cgoconf.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/cgoconf/internal/errors"
	"github.com/AndreyAkinshin/cgoconf/internal/logging"
	"github.com/AndreyAkinshin/cgoconf/internal/output"
)

// Version is set at build time.
var Version = "dev"

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Verbosity   int
	Quiet       bool
	ProjectRoot string
}

// app carries the state shared by all commands of one invocation.
type app struct {
	opts   GlobalOptions
	out    *output.Writer
	stderr io.Writer
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return run(args, output.New(), os.Stderr)
}

// RunWithWriters executes the CLI writing to the given streams.
func RunWithWriters(args []string, stdout, stderr io.Writer) int {
	return run(args, output.NewWithWriters(stdout, stderr, false), stderr)
}

func run(args []string, out *output.Writer, stderr io.Writer) int {
	a := &app{out: out, stderr: stderr}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(out.Out())
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

// NewRootCmd creates the root command writing to standard streams.
func NewRootCmd() *cobra.Command {
	a := &app{out: output.New(), stderr: os.Stderr}
	return a.newRootCmd()
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cgoconf",
		Short: "Resolve cgo compiler and linker options",
		Long: `cgoconf computes the preprocessor, compiler and linker options for a Go
compilation unit with C, C++ or Objective-C sources and native library
dependencies, together with the files the build has to stage.`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(a.stderr, a.opts.Verbosity, a.opts.Quiet)
			a.out.SetQuiet(a.opts.Quiet)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Configf("%v (see '%s --help')", err, cmd.CommandPath())
	})

	rootCmd.PersistentFlags().CountVarP(&a.opts.Verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.Quiet, "quiet", "q", false, "Only print results and errors")
	rootCmd.PersistentFlags().StringVar(&a.opts.ProjectRoot, "project-root", ".", "Directory holding .cgoconf/toolchains.json")

	rootCmd.AddCommand(a.newResolveCmd())
	rootCmd.AddCommand(a.newValidateCmd())
	rootCmd.AddCommand(a.newToolchainsCmd())
	rootCmd.AddCommand(a.newVersionCmd())

	return rootCmd
}
