package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"trygap/internal/trygap"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
printWidth = 100
useTabs = true
tryCatchSpacing = true
gapStrategy = "splice"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Path: path, PrintWidth: 100, TabWidth: 2, UseTabs: true, TryCatchSpacing: true, GapStrategy: trygap.StrategySplice}
	if cfg != want {
		t.Fatalf("config mismatch:\nwant %+v\ngot  %+v", want, cfg)
	}
}

func TestLoadAlias(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(writeConfig(t, dir, "tryGap = true\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.TryCatchSpacing {
		t.Fatalf("alias tryGap not applied")
	}

	cfg, err = Load(writeConfig(t, dir, "tryGap = true\ntryCatchSpacing = false\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TryCatchSpacing {
		t.Fatalf("canonical name did not win over the alias")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "unknown key", content: "semi = false\n", want: ErrUnknownOption},
		{name: "bad width", content: "printWidth = 0\n", want: ErrInvalidValue},
		{name: "bad tab width", content: "tabWidth = -4\n", want: ErrInvalidValue},
		{name: "bad strategy", content: "gapStrategy = \"sideways\"\n", want: trygap.ErrUnknownStrategy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.content))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	if _, err := Load(writeConfig(t, t.TempDir(), "printWidth = \n")); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "printWidth = 60\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("find: %v, %v", ok, err)
	}
	if got != path {
		t.Fatalf("path mismatch:\nwant %q\ngot  %q", path, got)
	}
}

func TestResolverCachesAndOverrides(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "printWidth = 60\n")
	r := &Resolver{Override: func(c *Config) { c.TryCatchSpacing = true }}

	cfg, err := r.ForFile(filepath.Join(root, "main.js"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.PrintWidth != 60 || !cfg.TryCatchSpacing {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if err := os.Remove(filepath.Join(root, FileName)); err != nil {
		t.Fatalf("remove: %v", err)
	}
	again, err := r.ForDir(root)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if again != cfg {
		t.Fatalf("cached config mismatch:\nwant %+v\ngot  %+v", cfg, again)
	}
}

func TestFormatOptions(t *testing.T) {
	cfg := Default()
	cfg.TryCatchSpacing = true
	opts := cfg.FormatOptions()
	if opts.PrintWidth != 80 || opts.TabWidth != 2 {
		t.Fatalf("unexpected widths %d/%d", opts.PrintWidth, opts.TabWidth)
	}
	if len(opts.Extensions) != 2 {
		t.Fatalf("expected the trygap registry, got %d extensions", len(opts.Extensions))
	}
	if v, _ := opts.Values[trygap.OptionName].(bool); !v {
		t.Fatalf("tryCatchSpacing not passed on")
	}
}
