package trygap

import (
	"trygap/internal/estree"
	"trygap/internal/plugin"
)

const (
	// OptionName is the option that turns the gap on.
	OptionName = "tryCatchSpacing"
	// OptionAlias is the option's earlier name.
	OptionAlias = "tryGap"
)

// OptionSpec declares tryCatchSpacing.
var OptionSpec = plugin.OptionSpec{
	Name:        OptionName,
	Type:        plugin.OptionBool,
	Category:    "Global",
	Default:     false,
	Description: "Insert a newline before the closing brace of a try block followed by a catch block.",
	Aliases:     []string{OptionAlias},
}

// Extension returns the registry entry for a new printer built with
// fallback and opts.
func Extension(fallback plugin.Printer, opts ...Option) *plugin.Extension {
	return &plugin.Extension{
		Name:     "trygap",
		Options:  []plugin.OptionSpec{OptionSpec},
		Printers: map[string]plugin.Printer{estree.Format: New(fallback, opts...)},
	}
}

// Registry returns the built-in estree extension followed by the trygap
// extension, the registry a formatting run normally uses.
func Registry(opts ...Option) []*plugin.Extension {
	base := estree.Extension()
	return []*plugin.Extension{base, Extension(base.Printers[estree.Format], opts...)}
}
