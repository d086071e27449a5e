// Package driver formats files and directories, in parallel and through
// the result cache.
package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"trygap/internal/config"
	"trygap/internal/format"
	"trygap/internal/observ"
)

// Mode selects what FormatPaths does with formatted output.
type Mode uint8

const (
	// ModeWrite rewrites changed files in place.
	ModeWrite Mode = iota
	// ModeCheck only reports whether files would change.
	ModeCheck
	// ModeStdout returns the output in the results without touching files.
	ModeStdout
)

// ErrNoSourceFiles is returned when the given paths hold no source files.
var ErrNoSourceFiles = errors.New("no source files found")

// FormatOptions configures FormatPaths.
type FormatOptions struct {
	Mode Mode
	// Jobs limits parallel files; zero means GOMAXPROCS.
	Jobs int
	// Config resolves the settings of each file. Nil means a fresh
	// resolver without overrides.
	Config         *config.Resolver
	Cache          *ResultCache
	Progress       ProgressSink
	Logger         *log.Logger
	MaxDiagnostics int
	// Timings records parse, print and render phases per file.
	Timings bool
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	Timing    *observ.Report
}

// engineVersion is part of every cache key.
const engineVersion = "trygap-engine/1"

// FormatPaths formats the given files, and the source files found under the
// given directories. Results come back in path order. Per-file failures are
// reported in FormatResult.Err; the error return is for failures of the run
// itself, such as a missing path or a cancelled context.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}
	opts = opts.withDefaults()

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.Jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (o FormatOptions) withDefaults() FormatOptions {
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.Config == nil {
		o.Config = &config.Resolver{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

func formatFile(ctx context.Context, path string, opts FormatOptions) FormatResult {
	start := time.Now()
	result := FormatResult{Path: path}
	fail := func(stage Stage, err error) FormatResult {
		result.Err = err
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		opts.Logger.Debug("format failed", "file", path, "err", err)
		return result
	}

	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	src, err := os.ReadFile(path)
	if err != nil {
		return fail(StageRead, err)
	}
	cfg, err := opts.Config.ForFile(path)
	if err != nil {
		return fail(StageRead, err)
	}

	emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusWorking})
	key := CacheKey(src, cfg, engineVersion)
	var cached CachedResult
	hit, err := opts.Cache.Get(key, &cached)
	if err != nil {
		opts.Logger.Warn("cache read failed", "file", path, "err", err)
		hit = false
	}
	var out []byte
	if hit {
		result.Cached = true
		result.Changed = cached.Changed
		out = src
		if cached.Changed {
			out = cached.Output
		}
		opts.Logger.Debug("cache hit", "file", path)
	} else {
		fopts := cfg.FormatOptions()
		fopts.Path = path
		fopts.MaxDiagnostics = opts.MaxDiagnostics
		var timer *observ.Timer
		if opts.Timings {
			timer = observ.NewTimer()
			fopts.Timer = timer
		}
		res, err := format.Source(ctx, src, fopts)
		if err != nil {
			return fail(StageFormat, err)
		}
		out = res.Output
		result.Changed = res.Changed
		if timer != nil {
			rep := timer.Report()
			result.Timing = &rep
		}
		stored := CachedResult{Changed: res.Changed}
		if res.Changed {
			stored.Output = res.Output
		}
		if err := opts.Cache.Put(key, &stored); err != nil {
			opts.Logger.Warn("cache write failed", "file", path, "err", err)
		}
	}

	switch opts.Mode {
	case ModeStdout:
		result.Formatted = out
	case ModeWrite:
		if result.Changed && !bytes.Equal(out, src) {
			emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
			if err := writeFile(path, out); err != nil {
				return fail(StageWrite, fmt.Errorf("write %s: %w", path, err))
			}
		}
	}

	status := StatusDone
	if result.Cached {
		status = StatusCached
	}
	elapsed := time.Since(start)
	emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: status, Elapsed: elapsed})
	opts.Logger.Debug("formatted", "file", path, "changed", result.Changed, "cached", result.Cached, "elapsed", elapsed)
	return result
}

func writeFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, data, mode.Perm())
}
