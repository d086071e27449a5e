package parser

import (
	"context"
	"slices"

	"trygap/internal/ast"
	"trygap/internal/diag"
	"trygap/internal/lexer"
	"trygap/internal/source"
	"trygap/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree *ast.Tree
	Root ast.NodeID
	Bag  *diag.Bag
}

// Parser holds the state for parsing one file.
type Parser struct {
	lx       *lexer.Lexer
	tree     *ast.Tree
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
	started  bool        // at least one token consumed

	claimed uint32        // comments starting before this offset are attached
	pending []ast.Comment // comments seen inside a statement but not attached yet

	loopDepth int
}

// ParseFile parses a whole program from lx into tree.
func ParseFile(ctx context.Context, lx *lexer.Lexer, tree *ast.Tree, opts Options) Result {
	p := Parser{
		lx:       lx,
		tree:     tree,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	root := p.parseProgram(ctx)
	return Result{Tree: tree, Root: root, Bag: diag.BagOf(opts.Reporter)}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

func (p *Parser) parseProgram(ctx context.Context) ast.NodeID {
	start := p.lx.Peek().Span
	start.Start = 0
	directives, body, dangling := p.parseStatementList(ctx, token.EOF, true)
	end := p.lx.Peek().Span
	id := p.tree.NewProgram(start.Cover(end), directives, body)
	for _, c := range dangling {
		p.tree.Attach(id, c, ast.CommentDangling)
	}
	return id
}
