package format

import (
	"bytes"
	"context"
	"fmt"

	"trygap/internal/ast"
	"trygap/internal/diag"
	"trygap/internal/doc"
	"trygap/internal/estree"
	"trygap/internal/lexer"
	"trygap/internal/parser"
	"trygap/internal/plugin"
	"trygap/internal/source"
)

const bom = "\uFEFF"

type Result struct {
	Output []byte
	// Changed is set when Output differs from the source.
	Changed bool
	// Warnings are non-fatal diagnostics of the parse.
	Warnings []diag.Diagnostic
}

// Source formats src. A nil src is formatted like an empty one.
func Source(ctx context.Context, src []byte, opts Options) (Result, error) {
	opts = opts.withDefaults()
	d, file, warnings, err := build(ctx, src, opts)
	if err != nil {
		return Result{}, err
	}

	idx := opts.Timer.Begin("render")
	text := doc.Print(d, doc.Options{Width: opts.PrintWidth, TabWidth: opts.TabWidth, UseTabs: opts.UseTabs})
	if file.Flags.Has(source.FileHadBOM) {
		text = bom + text
	}
	out := []byte(text)
	opts.Timer.End(idx, "")

	// compared against the raw input so CRLF sources count as changed
	return Result{
		Output:   out,
		Changed:  !bytes.Equal(out, src),
		Warnings: warnings,
	}, nil
}

// Doc returns the doc Source would render, with breaks propagated.
func Doc(ctx context.Context, src []byte, opts Options) (doc.Doc, error) {
	d, _, _, err := build(ctx, src, opts.withDefaults())
	if err != nil {
		return nil, err
	}
	return doc.PropagateBreaks(d), nil
}

// Check formats src and then formats the result again. It returns
// ErrUnstable when the second pass changes the output.
func Check(ctx context.Context, src []byte, opts Options) error {
	first, err := Source(ctx, src, opts)
	if err != nil {
		return err
	}
	second, err := Source(ctx, first.Output, opts)
	if err != nil {
		return fmt.Errorf("reformat: %w", err)
	}
	if !bytes.Equal(first.Output, second.Output) {
		return fmt.Errorf("%w: %s", ErrUnstable, opts.withDefaults().Path)
	}
	return nil
}

func build(ctx context.Context, src []byte, opts Options) (doc.Doc, *source.File, []diag.Diagnostic, error) {
	po, err := opts.pluginOptions()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("format: %w", err)
	}
	main := plugin.MainPrinter(opts.Extensions, estree.Format)
	if main == nil {
		return nil, nil, nil, ErrNoPrinter
	}

	if src == nil {
		src = []byte{}
	}
	idx := opts.Timer.Begin("parse")
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(opts.Path, src))
	tree, root, bag := parse(ctx, file, opts.MaxDiagnostics)
	opts.Timer.End(idx, "")
	if bag.HasErrors() {
		return nil, nil, nil, &ParseError{Path: opts.Path, Diagnostics: bag.Items(), fs: fs}
	}

	idx = opts.Timer.Begin("print")
	e := &engine{
		tree:  tree,
		opts:  po,
		main:  main,
		path:  plugin.NewPath(tree, root),
		cache: make(map[ast.NodeID]doc.Doc),
	}
	d := e.printNode(root)
	opts.Timer.End(idx, "")
	return d, file, bag.Items(), nil
}

func parse(ctx context.Context, file *source.File, maxDiag int) (*ast.Tree, ast.NodeID, *diag.Bag) {
	bag := diag.NewBag(maxDiag)
	reporter := diag.NewDedupReporter(&diag.BagReporter{Bag: bag})
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	tree := ast.NewTree(file, ast.Hints{Nodes: uint(len(file.Content)/4 + 1)})
	res := parser.ParseFile(ctx, lx, tree, parser.Options{MaxErrors: uint(bag.Cap()), Reporter: reporter})
	return res.Tree, res.Root, bag
}

// engine runs the print loop of one file.
type engine struct {
	tree *ast.Tree
	opts *plugin.Options
	main plugin.Printer
	path *plugin.Path
	// cache holds the finished doc of every printed node. A node is reached
	// through the same ancestors each time, so its doc never changes and a
	// printer asking for a child twice does not print the subtree twice.
	cache map[ast.NodeID]doc.Doc
}

// printNode prints the node on top of the path.
func (e *engine) printNode(id ast.NodeID) doc.Doc {
	if d, ok := e.cache[id]; ok {
		return d
	}
	d := e.printUncached(id)
	e.cache[id] = d
	return d
}

func (e *engine) printUncached(id ast.NodeID) doc.Doc {
	if em, ok := e.main.(plugin.Embedder); ok {
		if d, ok := em.Embed(e.path, e.opts); ok {
			return estree.PrintComments(e.tree, id, d)
		}
	}
	d := e.main.Print(e.path, e.opts, e.printChild)
	return estree.PrintComments(e.tree, id, d)
}

func (e *engine) printChild(child ast.NodeID) doc.Doc {
	if !child.IsValid() {
		return doc.Empty
	}
	return e.path.Call(child, func(*plugin.Path) doc.Doc {
		return e.printNode(child)
	})
}
