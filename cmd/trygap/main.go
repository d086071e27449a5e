package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"trygap/internal/prof"
	"trygap/internal/version"
)

// profiling is the capture started by setupRun, stopped by stopProfiling.
var profiling *prof.Session

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "trygap",
		Short: "JavaScript formatter with try/catch gap spacing",
		Long: `trygap formats JavaScript sources. With tryCatchSpacing enabled it keeps
an empty line before the closing brace of every try block followed by a catch.`,
		Version:            version.Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  setupRun,
		PersistentPostRunE: teardownRun,
	}

	root.AddCommand(newFmtCmd())
	root.AddCommand(newDocCmd())
	root.AddCommand(newVersionCmd())

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	root.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	root.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	root.PersistentFlags().String("runtime-trace", "", "write a runtime trace to file")
	return root
}

// setupRun applies --color, attaches the logger to the command context and
// starts any requested profiles.
func setupRun(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	colorMode, err := flags.GetString("color")
	if err != nil {
		return err
	}
	switch colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return errInvalidFlag("color", colorMode, "auto|on|off")
	}

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return err
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	cmd.SetContext(withLogger(ctx, logger))

	var pc prof.Config
	if pc.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return err
	}
	if pc.Mem, err = flags.GetString("mem-profile"); err != nil {
		return err
	}
	if pc.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return err
	}
	if pc.Enabled() {
		if profiling, err = prof.Start(pc); err != nil {
			return err
		}
		logger.Debug("profiling started", "cpu", pc.CPU, "mem", pc.Mem, "trace", pc.Trace)
	}
	return nil
}

func teardownRun(*cobra.Command, []string) error {
	return stopProfiling()
}

// stopProfiling ends the capture started by setupRun, if any.
func stopProfiling() error {
	s := profiling
	profiling = nil
	return s.Stop()
}

// main builds the command tree and runs it. Any error exits with status 1.
func main() {
	root := newRootCmd()
	err := root.Execute()
	if stopErr := stopProfiling(); stopErr != nil && err == nil {
		err = stopErr
	}
	if err != nil {
		if !isSilent(err) {
			root.PrintErrln("trygap:", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
