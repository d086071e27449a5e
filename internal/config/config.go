// Package config loads .trygap.toml files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"trygap/internal/format"
	"trygap/internal/trygap"
)

// FileName is the config file searched for next to formatted files.
const FileName = ".trygap.toml"

var (
	// ErrUnknownOption is returned for keys the config file does not know.
	ErrUnknownOption = errors.New("unknown option")
	ErrInvalidValue  = errors.New("invalid value")
)

// Config is the resolved configuration of one directory.
type Config struct {
	// Path is the file the values came from, empty for defaults.
	Path            string
	PrintWidth      int
	TabWidth        int
	UseTabs         bool
	TryCatchSpacing bool
	GapStrategy     trygap.Strategy
}

func Default() Config {
	return Config{PrintWidth: 80, TabWidth: 2}
}

type fileConfig struct {
	PrintWidth      *int    `toml:"printWidth"`
	TabWidth        *int    `toml:"tabWidth"`
	UseTabs         *bool   `toml:"useTabs"`
	TryCatchSpacing *bool   `toml:"tryCatchSpacing"`
	TryGap          *bool   `toml:"tryGap"`
	GapStrategy     *string `toml:"gapStrategy"`
}

// Find walks up from startDir and returns the first config file found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the config file at path. Keys it does not set keep their
// defaults.
func Load(path string) (Config, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownOption, strings.Join(keys, ", "))
	}
	cfg, err := fc.apply(Default())
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func (fc fileConfig) apply(cfg Config) (Config, error) {
	if fc.PrintWidth != nil {
		if *fc.PrintWidth <= 0 {
			return cfg, fmt.Errorf("%w: printWidth must be positive, got %d", ErrInvalidValue, *fc.PrintWidth)
		}
		cfg.PrintWidth = *fc.PrintWidth
	}
	if fc.TabWidth != nil {
		if *fc.TabWidth <= 0 {
			return cfg, fmt.Errorf("%w: tabWidth must be positive, got %d", ErrInvalidValue, *fc.TabWidth)
		}
		cfg.TabWidth = *fc.TabWidth
	}
	if fc.UseTabs != nil {
		cfg.UseTabs = *fc.UseTabs
	}
	// the canonical name wins over the alias
	if fc.TryGap != nil {
		cfg.TryCatchSpacing = *fc.TryGap
	}
	if fc.TryCatchSpacing != nil {
		cfg.TryCatchSpacing = *fc.TryCatchSpacing
	}
	if fc.GapStrategy != nil {
		s, err := trygap.ParseStrategy(*fc.GapStrategy)
		if err != nil {
			return cfg, err
		}
		cfg.GapStrategy = s
	}
	return cfg, nil
}

// FormatOptions returns engine options with the trygap extension loaded.
func (c Config) FormatOptions() format.Options {
	return format.Options{
		Extensions: trygap.Registry(trygap.WithStrategy(c.GapStrategy)),
		PrintWidth: c.PrintWidth,
		TabWidth:   c.TabWidth,
		UseTabs:    c.UseTabs,
		Values:     map[string]any{trygap.OptionName: c.TryCatchSpacing},
	}
}

// Resolver finds and loads the config of directories, remembering every
// directory it has seen. It is safe for concurrent use.
type Resolver struct {
	// Override, when set, is applied to every resolved config.
	Override func(*Config)

	mu    sync.Mutex
	byDir map[string]resolved
}

type resolved struct {
	cfg Config
	err error
}

// ForFile returns the config that applies to the file at path.
func (r *Resolver) ForFile(path string) (Config, error) {
	return r.ForDir(filepath.Dir(path))
}

func (r *Resolver) ForDir(dir string) (Config, error) {
	r.mu.Lock()
	if res, ok := r.byDir[dir]; ok {
		r.mu.Unlock()
		return res.cfg, res.err
	}
	r.mu.Unlock()

	cfg, err := resolve(dir)
	if err == nil && r.Override != nil {
		r.Override(&cfg)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byDir == nil {
		r.byDir = make(map[string]resolved)
	}
	r.byDir[dir] = resolved{cfg: cfg, err: err}
	return cfg, err
}

func resolve(dir string) (Config, error) {
	path, ok, err := Find(dir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
