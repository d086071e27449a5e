package plugin

import (
	"trygap/internal/ast"
	"trygap/internal/doc"
)

// PrintFunc prints a child node of the node under the path, with its
// comments.
type PrintFunc func(child ast.NodeID) doc.Doc

// Printer turns the node under path into a doc.
type Printer interface {
	Print(path *Path, opts *Options, print PrintFunc) doc.Doc
}

// Embedder is an optional capability: a printer that formats some nodes as
// embedded content returns ok=true and the doc to use instead of Print.
type Embedder interface {
	Embed(path *Path, opts *Options) (d doc.Doc, ok bool)
}

// PrinterFunc adapts a function to Printer.
type PrinterFunc func(path *Path, opts *Options, print PrintFunc) doc.Doc

func (f PrinterFunc) Print(path *Path, opts *Options, print PrintFunc) doc.Doc {
	return f(path, opts, print)
}
