package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"trygap/internal/config"
	"trygap/internal/diag"
	"trygap/internal/driver"
	"trygap/internal/format"
	"trygap/internal/trygap"
)

type fmtFlags struct {
	check        bool
	stdout       bool
	diff         bool
	outputFormat string
	jobs         int
	cache        bool
	ui           string

	tryCatchSpacing bool
	gapStrategy     string
	printWidth      int
	tabWidth        int
	useTabs         bool
}

func newFmtCmd() *cobra.Command {
	var f fmtFlags
	cmd := &cobra.Command{
		Use:   "fmt [flags] <path> [path...]",
		Short: "Format JavaScript source files",
		Long: `Format the given files and the .js, .mjs and .cjs files under the given
directories. A path of "-" formats standard input to standard output.
Settings come from the nearest .trygap.toml; flags override them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, &f)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&f.check, "check", false, "check if files are properly formatted")
	flags.BoolVar(&f.stdout, "stdout", false, "print formatted code to stdout instead of rewriting files")
	flags.BoolVar(&f.diff, "diff", false, "print a diff of the changes instead of rewriting files")
	flags.StringVar(&f.outputFormat, "format", "text", "output format (text|json)")
	flags.IntVar(&f.jobs, "jobs", 0, "files formatted in parallel (0 = GOMAXPROCS)")
	flags.BoolVar(&f.cache, "cache", false, "reuse results from the on-disk cache")
	flags.StringVar(&f.ui, "ui", "auto", "progress UI (auto|on|off)")

	flags.BoolVar(&f.tryCatchSpacing, "try-catch-spacing", false, "insert an empty line before the closing brace of a try block followed by catch")
	flags.StringVar(&f.gapStrategy, "gap-strategy", "rebuild", "how the gap is inserted (rebuild|splice)")
	flags.IntVar(&f.printWidth, "print-width", 80, "line width the printer aims for")
	flags.IntVar(&f.tabWidth, "tab-width", 2, "spaces per indentation level")
	flags.BoolVar(&f.useTabs, "use-tabs", false, "indent with tabs")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string, f *fmtFlags) error {
	switch {
	case f.stdout && f.check:
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	case f.diff && (f.stdout || f.check):
		return fmt.Errorf("fmt: --diff cannot be used with --stdout or --check")
	case (f.stdout || f.diff) && f.outputFormat != "text":
		return fmt.Errorf("fmt: --stdout and --diff are only supported with text output")
	case f.outputFormat != "text" && f.outputFormat != "json":
		return fmt.Errorf("fmt: unsupported output format %q", f.outputFormat)
	}
	uiSetting, err := readUIMode(f.ui)
	if err != nil {
		return err
	}

	override, err := flagOverride(cmd, f)
	if err != nil {
		return err
	}
	rootFlags := cmd.Root().PersistentFlags()
	maxDiagnostics, err := rootFlags.GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := rootFlags.GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := rootFlags.GetBool("timings")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	resolver := &config.Resolver{Override: override}

	if len(args) == 1 && args[0] == "-" {
		return runFmtStdin(cmd, resolver, maxDiagnostics, f.check)
	}

	opts := driver.FormatOptions{
		Jobs:           f.jobs,
		Config:         resolver,
		Logger:         logger,
		MaxDiagnostics: maxDiagnostics,
		Timings:        timings,
	}
	switch {
	case f.check:
		opts.Mode = driver.ModeCheck
	case f.stdout || f.diff:
		opts.Mode = driver.ModeStdout
	}
	if f.cache {
		cache, err := driver.OpenResultCache("trygap")
		if err != nil {
			logger.Warn("cache disabled", "err", err)
		} else {
			opts.Cache = cache
		}
	}

	var results []driver.FormatResult
	if opts.Mode == driver.ModeWrite && f.outputFormat == "text" && useTUI(uiSetting, quiet, cmd.OutOrStdout()) {
		results, err = runFmtWithUI(ctx, "formatting", args, opts)
	} else {
		results, err = driver.FormatPaths(ctx, args, opts)
	}
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var hasErrors, hasChanges bool
	switch {
	case f.outputFormat == "json":
		if err := renderFmtJSON(out, results, f.check); err != nil {
			return err
		}
		hasErrors, hasChanges = summarize(results)
	case f.stdout:
		hasErrors = renderFmtStdout(out, errOut, results)
	case f.diff:
		hasErrors, hasChanges = renderFmtDiff(out, errOut, results)
	default:
		hasErrors, hasChanges = renderFmtText(out, errOut, results, f.check, quiet)
	}
	if timings {
		printTimings(errOut, results)
	}

	if hasErrors {
		return silentError{msg: "fmt: failed to format some files"}
	}
	if (f.check || f.diff) && hasChanges {
		return silentError{msg: "fmt: formatting changes required"}
	}
	return nil
}

// flagOverride returns the function applying explicitly set flags on top
// of each resolved config.
func flagOverride(cmd *cobra.Command, f *fmtFlags) (func(*config.Config), error) {
	flags := cmd.Flags()
	strategy, err := trygap.ParseStrategy(f.gapStrategy)
	if err != nil {
		return nil, fmt.Errorf("fmt: %w", err)
	}
	if flags.Changed("print-width") && f.printWidth <= 0 {
		return nil, errInvalidFlag("print-width", fmt.Sprint(f.printWidth), "a positive width")
	}
	if flags.Changed("tab-width") && f.tabWidth <= 0 {
		return nil, errInvalidFlag("tab-width", fmt.Sprint(f.tabWidth), "a positive width")
	}
	return func(c *config.Config) {
		if flags.Changed("try-catch-spacing") {
			c.TryCatchSpacing = f.tryCatchSpacing
		}
		if flags.Changed("gap-strategy") {
			c.GapStrategy = strategy
		}
		if flags.Changed("print-width") {
			c.PrintWidth = f.printWidth
		}
		if flags.Changed("tab-width") {
			c.TabWidth = f.tabWidth
		}
		if flags.Changed("use-tabs") {
			c.UseTabs = f.useTabs
		}
	}, nil
}

func runFmtStdin(cmd *cobra.Command, resolver *config.Resolver, maxDiagnostics int, check bool) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("fmt: read stdin: %w", err)
	}
	cfg, err := resolver.ForDir(".")
	if err != nil {
		return err
	}
	opts := cfg.FormatOptions()
	opts.Path = "<stdin>"
	opts.MaxDiagnostics = maxDiagnostics
	res, err := format.Source(cmd.Context(), src, opts)
	if err != nil {
		var perr *format.ParseError
		if errors.As(err, &perr) {
			fmt.Fprint(cmd.ErrOrStderr(), perr.Report())
			return silentError{msg: "fmt: syntax errors in <stdin>"}
		}
		return err
	}
	if check {
		if res.Changed {
			return silentError{msg: "fmt: formatting changes required"}
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(res.Output)
	return err
}

func summarize(results []driver.FormatResult) (hasErrors, hasChanges bool) {
	for _, res := range results {
		hasErrors = hasErrors || res.Err != nil
		hasChanges = hasChanges || res.Changed
	}
	return hasErrors, hasChanges
}

func reportError(errOut io.Writer, res driver.FormatResult) {
	var perr *format.ParseError
	if errors.As(res.Err, &perr) {
		fmt.Fprint(errOut, perr.Report())
		return
	}
	fmt.Fprintf(errOut, "fmt: %s: %v\n", res.Path, res.Err)
}

func renderFmtStdout(out, errOut io.Writer, results []driver.FormatResult) (hasErrors bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportError(errOut, res)
			continue
		}
		_, _ = out.Write(res.Formatted)
	}
	return hasErrors
}

func renderFmtText(out, errOut io.Writer, results []driver.FormatResult, check, quiet bool) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportError(errOut, res)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if quiet {
			continue
		}
		if check {
			fmt.Fprintln(out, res.Path)
		} else {
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		}
	}
	return hasErrors, hasChanges
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path        string       `json:"path"`
		Changed     bool         `json:"changed"`
		Cached      bool         `json:"cached,omitempty"`
		Error       string       `json:"error,omitempty"`
		Diagnostics []diag.Entry `json:"diagnostics,omitempty"`
		CheckRun    bool         `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
			var perr *format.ParseError
			if errors.As(res.Err, &perr) {
				jr.Diagnostics = perr.Entries()
			}
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func printTimings(out io.Writer, results []driver.FormatResult) {
	for _, res := range results {
		if res.Timing == nil {
			continue
		}
		fmt.Fprintf(out, "%s %.1f ms\n", res.Path, res.Timing.TotalMS)
		for _, ph := range res.Timing.Phases {
			fmt.Fprintf(out, "  %-8s %.2f ms\n", ph.Name, ph.DurationMS)
		}
	}
}
