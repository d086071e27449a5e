package format

import (
	"trygap/internal/estree"
	"trygap/internal/observ"
	"trygap/internal/plugin"
)

type Options struct {
	// Extensions is the registry of the run. Nil means the built-in estree
	// extension only.
	Extensions []*plugin.Extension
	PrintWidth int
	TabWidth   int
	UseTabs    bool
	// Values holds extension options by name or alias.
	Values map[string]any

	// Path names the source in diagnostics.
	Path           string
	MaxDiagnostics int
	// Timer, when set, receives parse, print and render phases.
	Timer *observ.Timer
}

func (o Options) withDefaults() Options {
	if o.Extensions == nil {
		o.Extensions = []*plugin.Extension{estree.Extension()}
	}
	if o.PrintWidth <= 0 {
		o.PrintWidth = 80
	}
	if o.TabWidth <= 0 {
		o.TabWidth = 2
	}
	if o.Path == "" {
		o.Path = "<input>"
	}
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 100
	}
	return o
}

// pluginOptions builds the options printers see.
func (o Options) pluginOptions() (*plugin.Options, error) {
	po := plugin.NewOptions(o.Extensions)
	po.PrintWidth = o.PrintWidth
	po.TabWidth = o.TabWidth
	po.UseTabs = o.UseTabs
	if err := po.Normalize(o.Values); err != nil {
		return nil, err
	}
	return po, nil
}
