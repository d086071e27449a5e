package plugin

// Extension is one entry of the registry the engine consults. Later
// extensions override earlier ones for the same tree format.
type Extension struct {
	Name     string
	Options  []OptionSpec
	Printers map[string]Printer
}

type OptionType string

const (
	OptionBool   OptionType = "boolean"
	OptionInt    OptionType = "int"
	OptionChoice OptionType = "choice"
)

// OptionSpec describes an option an extension contributes.
type OptionSpec struct {
	Name        string
	Type        OptionType
	Category    string
	Default     any
	Description string
	Aliases     []string
	Choices     []string
}

// Matches reports whether name is the option's name or one of its aliases.
func (s OptionSpec) Matches(name string) bool {
	if s.Name == name {
		return true
	}
	for _, a := range s.Aliases {
		if a == name {
			return true
		}
	}
	return false
}

// LookupOption finds the spec for name across exts. The last extension
// declaring it wins.
func LookupOption(exts []*Extension, name string) (OptionSpec, bool) {
	var (
		found OptionSpec
		ok    bool
	)
	for _, ext := range exts {
		if ext == nil {
			continue
		}
		for _, spec := range ext.Options {
			if spec.Matches(name) {
				found, ok = spec, true
			}
		}
	}
	return found, ok
}
