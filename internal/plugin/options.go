package plugin

import (
	"errors"
	"fmt"
	"slices"

	"fortio.org/safecast"

	"trygap/internal/doc"
)

var (
	ErrOptionType    = errors.New("option has wrong type")
	ErrUnknownOption = errors.New("unknown option")
)

// Options are the options of one formatting run as seen by printers.
type Options struct {
	// Plugins is the extension registry of the run, in load order.
	Plugins    []*Extension
	PrintWidth int
	TabWidth   int
	UseTabs    bool

	values map[string]any
}

// NewOptions returns options with the engine defaults and the defaults of
// every option exts declare.
func NewOptions(exts []*Extension) *Options {
	o := &Options{
		Plugins:    exts,
		PrintWidth: 80,
		TabWidth:   2,
		values:     make(map[string]any),
	}
	for _, ext := range exts {
		if ext == nil {
			continue
		}
		for _, spec := range ext.Options {
			if spec.Default != nil {
				o.values[spec.Name] = spec.Default
			}
		}
	}
	return o
}

// Set stores value under the canonical name of the option called name
// (aliases resolve to it). The value is checked against the option type.
func (o *Options) Set(name string, value any) error {
	spec, ok := LookupOption(o.Plugins, name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	v, err := coerce(spec, value)
	if err != nil {
		return err
	}
	if o.values == nil {
		o.values = make(map[string]any)
	}
	o.values[spec.Name] = v
	return nil
}

// Normalize applies raw values with Set and returns every failure joined.
func (o *Options) Normalize(raw map[string]any) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var errs []error
	for _, k := range keys {
		if err := o.Set(k, raw[k]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Value returns the stored value of the option called name or one of its
// aliases.
func (o *Options) Value(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	if v, ok := o.values[name]; ok {
		return v, true
	}
	if spec, ok := LookupOption(o.Plugins, name); ok {
		v, ok := o.values[spec.Name]
		return v, ok
	}
	return nil, false
}

// Bool is false when the option is unset or not a boolean.
func (o *Options) Bool(name string) bool {
	v, _ := o.Value(name)
	b, _ := v.(bool)
	return b
}

func (o *Options) String(name string) string {
	v, _ := o.Value(name)
	s, _ := v.(string)
	return s
}

func (o *Options) Int(name string) int {
	v, _ := o.Value(name)
	n, _ := v.(int)
	return n
}

// DocOptions returns the renderer settings.
func (o *Options) DocOptions() doc.Options {
	return doc.Options{Width: o.PrintWidth, TabWidth: o.TabWidth, UseTabs: o.UseTabs}
}

func coerce(spec OptionSpec, value any) (any, error) {
	switch spec.Type {
	case OptionBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case OptionChoice:
		if s, ok := value.(string); ok {
			if len(spec.Choices) == 0 || slices.Contains(spec.Choices, s) {
				return s, nil
			}
			return nil, fmt.Errorf("%w: %s must be one of %v, got %q", ErrOptionType, spec.Name, spec.Choices, s)
		}
	case OptionInt:
		switch n := value.(type) {
		case int:
			return n, nil
		case int64:
			v, err := safecast.Conv[int](n)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrOptionType, spec.Name, err)
			}
			return v, nil
		}
	default:
		return value, nil
	}
	return nil, fmt.Errorf("%w: %s expects %s, got %T", ErrOptionType, spec.Name, spec.Type, value)
}
