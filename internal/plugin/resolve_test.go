package plugin_test

import (
	"testing"

	"trygap/internal/doc"
	"trygap/internal/plugin"
)

type namedPrinter struct{ name string }

func (p *namedPrinter) Print(*plugin.Path, *plugin.Options, plugin.PrintFunc) doc.Doc {
	return doc.Text(p.name)
}

type valuePrinter struct{ id int }

func (valuePrinter) Print(*plugin.Path, *plugin.Options, plugin.PrintFunc) doc.Doc {
	return doc.Empty
}

// holder is a comparable type that may hold a non-comparable value.
type holder struct{ v any }

func (holder) Print(*plugin.Path, *plugin.Options, plugin.PrintFunc) doc.Doc {
	return doc.Empty
}

func ext(name string, p plugin.Printer) *plugin.Extension {
	return &plugin.Extension{Name: name, Printers: map[string]plugin.Printer{"estree": p}}
}

func TestResolve(t *testing.T) {
	fallback := &namedPrinter{name: "fallback"}
	a := &namedPrinter{name: "a"}
	b := &namedPrinter{name: "b"}
	self := &namedPrinter{name: "self"}
	var typedNil *namedPrinter
	var nilFunc plugin.PrinterFunc
	fn := plugin.PrinterFunc(func(*plugin.Path, *plugin.Options, plugin.PrintFunc) doc.Doc {
		return doc.Text("func")
	})

	tests := []struct {
		name string
		exts []*plugin.Extension
		want string
	}{
		{"empty registry", nil, "fallback"},
		{"last wins and self skipped", []*plugin.Extension{ext("a", a), ext("b", b), ext("self", self)}, "b"},
		{"self first", []*plugin.Extension{ext("self", self), ext("a", a)}, "a"},
		{"only self", []*plugin.Extension{ext("self", self)}, "fallback"},
		{"nil extension", []*plugin.Extension{ext("a", a), nil}, "a"},
		{"no printers", []*plugin.Extension{ext("a", a), {Name: "empty"}}, "a"},
		{"typed nil printer", []*plugin.Extension{ext("a", a), ext("nil", typedNil)}, "a"},
		{"nil func printer", []*plugin.Extension{ext("a", a), ext("nil", nilFunc)}, "a"},
		{"func printer is never self", []*plugin.Extension{ext("a", a), ext("fn", fn)}, "func"},
		{
			"other format ignored",
			[]*plugin.Extension{ext("a", a), {Name: "css", Printers: map[string]plugin.Printer{"postcss": b}}},
			"a",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plugin.Resolve(tt.exts, "estree", fallback, self)
			if got == nil {
				t.Fatal("Resolve returned nil")
			}
			if txt := got.Print(nil, nil, nil); txt != doc.Text(tt.want) {
				t.Errorf("resolved %v, want %q", txt, tt.want)
			}
		})
	}
}

func TestResolveValueTypes(t *testing.T) {
	self := valuePrinter{id: 1}
	other := valuePrinter{id: 2}

	got := plugin.Resolve([]*plugin.Extension{ext("other", other), ext("self", valuePrinter{id: 1})}, "estree", nil, self)
	if got != plugin.Printer(other) {
		t.Errorf("equal value printer must count as self, got %#v", got)
	}

	// must not panic on comparing a non-comparable dynamic value
	odd := holder{v: []int{1}}
	got = plugin.Resolve([]*plugin.Extension{ext("odd", odd)}, "estree", nil, holder{v: []int{1}})
	if _, ok := got.(holder); !ok {
		t.Errorf("non-comparable candidate should be selected, got %#v", got)
	}
}

func TestMainPrinter(t *testing.T) {
	a := &namedPrinter{name: "a"}
	b := &namedPrinter{name: "b"}
	if got := plugin.MainPrinter(nil, "estree"); got != nil {
		t.Errorf("MainPrinter(nil) = %v", got)
	}
	if got := plugin.MainPrinter([]*plugin.Extension{ext("a", a), ext("b", b)}, "estree"); got != plugin.Printer(b) {
		t.Errorf("MainPrinter = %v, want b", got)
	}
}

func TestResolveExcept(t *testing.T) {
	fallback := &namedPrinter{name: "fallback"}
	a := &namedPrinter{name: "a"}
	b := &namedPrinter{name: "b"}
	exts := []*plugin.Extension{ext("a", a), ext("b", b)}

	skipB := func(p plugin.Printer) bool { return p == plugin.Printer(b) }
	if got := plugin.ResolveExcept(exts, "estree", fallback, skipB); got != plugin.Printer(a) {
		t.Fatalf("expected a, got %#v", got)
	}
	skipAll := func(plugin.Printer) bool { return true }
	if got := plugin.ResolveExcept(exts, "estree", fallback, skipAll); got != plugin.Printer(fallback) {
		t.Fatalf("expected fallback, got %#v", got)
	}
	if got := plugin.ResolveExcept(exts, "estree", fallback, nil); got != plugin.Printer(b) {
		t.Fatalf("nil skip should keep the last printer, got %#v", got)
	}
}
