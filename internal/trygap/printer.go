// Package trygap provides the printer that keeps an empty line before the
// closing brace of a try block followed by a catch clause.
//
// The printer does no formatting of its own. Every node goes to the
// printer it resolves from the run's extensions; only the doc of a
// matching try block is rewritten.
package trygap

import (
	"trygap/internal/ast"
	"trygap/internal/doc"
	"trygap/internal/estree"
	"trygap/internal/plugin"
)

// Printer is the gap-inserting printer for the estree format.
type Printer struct {
	fallback plugin.Printer
	strategy Strategy
}

// Option configures a Printer built by New, Extension or Registry.
type Option func(*Printer)

// WithStrategy selects how a matching try block is rewritten.
func WithStrategy(s Strategy) Option {
	return func(p *Printer) { p.strategy = s }
}

// New returns a printer that delegates to fallback unless another
// extension of the run provides an estree printer.
func New(fallback plugin.Printer, opts ...Option) *Printer {
	p := &Printer{fallback: fallback}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Strategy reports how the printer rewrites a matching try block.
func (p *Printer) Strategy() Strategy { return p.strategy }

// delegate resolves the printer doing the real work. Every gap printer is
// passed over, not only p: two of them delegating to each other would never
// reach a base printer.
func (p *Printer) delegate(opts *plugin.Options) plugin.Printer {
	var exts []*plugin.Extension
	if opts != nil {
		exts = opts.Plugins
	}
	return plugin.ResolveExcept(exts, estree.Format, p.fallback, isGapPrinter)
}

func isGapPrinter(cand plugin.Printer) bool {
	_, ok := cand.(*Printer)
	return ok
}

func (p *Printer) Print(path *plugin.Path, opts *plugin.Options, print plugin.PrintFunc) doc.Doc {
	var base doc.Doc = doc.Empty
	if d := p.delegate(opts); d != nil {
		base = d.Print(path, opts, print)
	}
	if !opts.Bool(OptionName) || !isTryBlock(path) {
		return base
	}

	stmts := statements(path.Tree(), path.Node())
	if len(stmts) == 0 {
		return base
	}
	if p.strategy == StrategySplice {
		return InsertGap(base)
	}
	printed := make([]doc.Doc, len(stmts))
	for i, s := range stmts {
		printed[i] = print(s)
	}
	return doc.Concat{
		doc.Text("{"),
		doc.IndentOf(doc.Hardline, doc.Join(doc.Hardline, printed)),
		doc.Hardline,
		Gap,
		doc.Text("}"),
	}
}

// Embed defers to the delegate, then to the fallback.
func (p *Printer) Embed(path *plugin.Path, opts *plugin.Options) (doc.Doc, bool) {
	if e, ok := p.delegate(opts).(plugin.Embedder); ok {
		return e.Embed(path, opts)
	}
	if e, ok := p.fallback.(plugin.Embedder); ok {
		return e.Embed(path, opts)
	}
	return nil, false
}

// isTryBlock reports whether the node under path is the block of a try
// statement that has a catch clause.
func isTryBlock(path *plugin.Path) bool {
	if path.Kind() != ast.BlockStatement || path.ParentKind() != ast.TryStatement {
		return false
	}
	try := path.Tree().Try(path.Parent())
	return try != nil && try.Handler.IsValid() && try.Block == path.Node()
}

// statements lists the block's directives and statements, without empty
// statements.
func statements(t *ast.Tree, block ast.NodeID) []ast.NodeID {
	b := t.Block(block)
	if b == nil {
		return nil
	}
	out := make([]ast.NodeID, 0, len(b.Directives)+len(b.Body))
	out = append(out, b.Directives...)
	for _, s := range b.Body {
		if t.Kind(s) != ast.EmptyStatement {
			out = append(out, s)
		}
	}
	return out
}
