package estree

import (
	"strings"

	"trygap/internal/ast"
	"trygap/internal/doc"
	"trygap/internal/plugin"
	"trygap/internal/token"
)

func (p *printer) call(id ast.NodeID) doc.Doc {
	t := p.tree
	c := t.Call(id)
	if t.Kind(id) == ast.NewExpression {
		return doc.Concat{doc.Text("new "), p.print(c.Callee), p.arguments(id)}
	}
	if p.isTestCall(id) {
		printed := make([]doc.Doc, len(c.Args))
		for i, arg := range c.Args {
			printed[i] = p.print(arg)
		}
		return doc.Concat{p.print(c.Callee), doc.Text("("), doc.Join(doc.Text(", "), printed), doc.Text(")")}
	}
	if t.Kind(c.Callee) == ast.MemberExpression {
		return p.memberChain(id)
	}
	contents := doc.Concat{p.print(c.Callee), p.arguments(id)}
	if t.Kind(c.Callee) == ast.CallExpression {
		return doc.Group{Contents: contents}
	}
	return contents
}

var testCallees = map[string]bool{
	"it": true, "it.only": true, "it.skip": true,
	"describe": true, "describe.only": true, "describe.skip": true,
	"test": true, "test.only": true, "test.skip": true, "test.step": true,
	"test.describe": true, "test.describe.only": true,
	"skip": true, "xit": true, "xdescribe": true, "xtest": true,
	"fit": true, "fdescribe": true, "ftest": true,
}

// isTestCall matches it("name", () => {}) style calls, whose arguments
// never break.
func (p *printer) isTestCall(id ast.NodeID) bool {
	t := p.tree
	c := t.Call(id)
	if len(c.Args) != 2 && len(c.Args) != 3 {
		return false
	}
	switch t.Kind(c.Args[0]) {
	case ast.StringLiteral, ast.TemplateLiteral:
	default:
		return false
	}
	if !testCallees[p.dottedName(c.Callee)] {
		return false
	}
	if len(c.Args) == 3 && t.Kind(c.Args[2]) != ast.NumericLiteral {
		return false
	}
	fn := c.Args[1]
	switch t.Kind(fn) {
	case ast.FunctionExpression:
	case ast.ArrowFunctionExpression:
		if len(c.Args) == 3 && t.Kind(t.Func(fn).Body) != ast.BlockStatement {
			return false
		}
	default:
		return false
	}
	return len(c.Args) == 2 || len(t.Func(fn).Params) <= 1
}

// dottedName spells a.b.c for a chain of plain identifiers, or "".
func (p *printer) dottedName(id ast.NodeID) string {
	t := p.tree
	switch t.Kind(id) {
	case ast.Identifier:
		return t.Raw(id)
	case ast.MemberExpression:
		m := t.Member(id)
		if m.Computed || t.Kind(m.Property) != ast.Identifier {
			return ""
		}
		obj := p.dottedName(m.Object)
		if obj == "" {
			return ""
		}
		return obj + "." + t.Raw(m.Property)
	}
	return ""
}

// arguments prints the parenthesised argument list of a call. A trailing
// function or object argument is hugged when the other arguments fit on
// the call's line.
func (p *printer) arguments(id ast.NodeID) doc.Doc {
	t := p.tree
	args := t.Call(id).Args
	if len(args) == 0 {
		if dangling := danglingComments(t, id, false); dangling != nil {
			return doc.GroupOf(doc.Text("("), dangling, doc.Softline, doc.Text(")"))
		}
		return doc.Text("()")
	}

	emptyLine := false
	printed := make([]doc.Doc, len(args))
	for i, arg := range args {
		d := doc.Concat{p.print(arg)}
		switch {
		case i == len(args)-1:
		case p.nextLineEmpty(arg):
			emptyLine = true
			d = append(d, doc.Text(","), doc.Hardline, doc.Hardline)
		default:
			d = append(d, doc.Text(","), doc.Line)
		}
		printed[i] = d
	}

	allBrokenOut := func() doc.Doc {
		return doc.BrokenGroup(
			doc.Text("("),
			doc.IndentOf(doc.Line, doc.Concat(printed), doc.Text(",")),
			doc.Line,
			doc.Text(")"),
		)
	}
	if emptyLine {
		return allBrokenOut()
	}

	anyWillBreak := func(docs []doc.Doc) bool {
		for _, d := range docs {
			if doc.WillBreak(d) {
				return true
			}
		}
		return false
	}

	if p.shouldGroupFirst(args) {
		if anyWillBreak(printed[1:]) {
			return allBrokenOut()
		}
		rest := doc.Concat(printed[1:])
		return doc.Concat{
			breakParentIf(anyWillBreak(printed)),
			doc.ConditionalGroup(
				doc.Concat{doc.Text("("), doc.Concat(printed), doc.Text(")")},
				doc.Concat{doc.Text("("), doc.BrokenGroup(printed[0]), rest, doc.Text(")")},
				allBrokenOut(),
			),
		}
	}

	if p.shouldGroupLast(args) {
		head := printed[:len(printed)-1]
		if anyWillBreak(head) {
			return allBrokenOut()
		}
		last := args[len(args)-1]
		expanded := printed[len(printed)-1]
		if t.Kind(last) == ast.ArrowFunctionExpression {
			expanded = p.inner(last, func() doc.Doc { return p.arrowDoc(last, true) })
		}
		return doc.Concat{
			breakParentIf(anyWillBreak(printed)),
			doc.ConditionalGroup(
				doc.Concat{doc.Text("("), doc.Concat(head), expanded, doc.Text(")")},
				doc.Concat{doc.Text("("), doc.Concat(head), doc.BrokenGroup(expanded), doc.Text(")")},
				allBrokenOut(),
			),
		}
	}

	return doc.Group{
		Contents: doc.Concat{
			doc.Text("("),
			doc.IndentOf(doc.Softline, doc.Concat(printed)),
			doc.IfBreakOf(doc.Text(","), doc.Empty),
			doc.Softline,
			doc.Text(")"),
		},
		Break: anyWillBreak(printed),
	}
}

func breakParentIf(cond bool) doc.Doc {
	if cond {
		return doc.BreakParent{}
	}
	return doc.Empty
}

func (p *printer) shouldGroupLast(args []ast.NodeID) bool {
	t := p.tree
	last := args[len(args)-1]
	if t.HasComments(last) || !p.couldExpandArg(last) {
		return false
	}
	if len(args) == 1 {
		return true
	}
	penultimate := args[len(args)-2]
	if t.Kind(penultimate) == t.Kind(last) {
		return false
	}
	// useMemo(() => value, [deps])
	return len(args) != 2 || t.Kind(penultimate) != ast.ArrowFunctionExpression || t.Kind(last) != ast.ArrayExpression
}

func (p *printer) shouldGroupFirst(args []ast.NodeID) bool {
	t := p.tree
	if len(args) != 2 {
		return false
	}
	first, second := args[0], args[1]
	if t.HasComments(first) {
		return false
	}
	switch t.Kind(first) {
	case ast.FunctionExpression:
	case ast.ArrowFunctionExpression:
		if t.Kind(t.Func(first).Body) != ast.BlockStatement {
			return false
		}
	default:
		return false
	}
	switch t.Kind(second) {
	case ast.FunctionExpression, ast.ArrowFunctionExpression, ast.ConditionalExpression:
		return false
	}
	return p.isShortArgument(second) && !p.couldExpandArg(second)
}

// couldExpandArg matches arguments that may keep their opening bracket on
// the call's line while their body breaks.
func (p *printer) couldExpandArg(id ast.NodeID) bool {
	t := p.tree
	switch t.Kind(id) {
	case ast.ObjectExpression, ast.ArrayExpression:
		return len(t.List(id).Items) > 0 || t.HasComments(id)
	case ast.FunctionExpression:
		return true
	case ast.ArrowFunctionExpression:
		body := t.Func(id).Body
		switch t.Kind(body) {
		case ast.BlockStatement, ast.CallExpression, ast.NewExpression, ast.ConditionalExpression:
			return true
		case ast.ObjectExpression, ast.ArrayExpression:
			return true
		case ast.ArrowFunctionExpression:
			return p.couldExpandArg(body)
		}
	}
	return false
}

func (p *printer) isShortArgument(id ast.NodeID) bool {
	switch p.tree.Kind(id) {
	case ast.Identifier, ast.ThisExpression, ast.NumericLiteral, ast.StringLiteral,
		ast.BooleanLiteral, ast.NullLiteral:
		return true
	case ast.MemberExpression:
		return p.isMemberChain(id)
	}
	return false
}

// isSimpleCallArgument matches arguments that read as plain data: literals,
// names, property reads and shallow calls on them.
func (p *printer) isSimpleCallArgument(id ast.NodeID, depth int) bool {
	t := p.tree
	switch t.Kind(id) {
	case ast.Identifier, ast.ThisExpression, ast.NumericLiteral, ast.StringLiteral,
		ast.BooleanLiteral, ast.NullLiteral:
		return true
	case ast.TemplateLiteral:
		return !strings.Contains(t.Raw(id), "\n")
	case ast.ObjectExpression:
		for _, item := range t.List(id).Items {
			if t.Kind(item) != ast.ObjectProperty {
				return false
			}
			pd := t.Prop(item)
			if pd.Computed || !pd.Shorthand && !p.isSimpleCallArgument(pd.Value, depth+1) {
				return false
			}
		}
		return true
	case ast.ArrayExpression:
		for _, item := range t.List(id).Items {
			if item.IsValid() && !p.isSimpleCallArgument(item, depth+1) {
				return false
			}
		}
		return true
	case ast.CallExpression, ast.NewExpression:
		c := t.Call(id)
		if depth >= 2 || !p.isSimpleCallArgument(c.Callee, depth) {
			return false
		}
		for _, arg := range c.Args {
			if !p.isSimpleCallArgument(arg, depth+1) {
				return false
			}
		}
		return true
	case ast.UnaryExpression:
		switch t.Op(id).Op {
		case token.Bang, token.Minus, token.Plus, token.Tilde:
			return p.isSimpleCallArgument(t.Op(id).Right, depth)
		}
	case ast.UpdateExpression:
		return p.isSimpleCallArgument(t.Op(id).Left, depth)
	case ast.MemberExpression:
		m := t.Member(id)
		if m.Computed && !p.isSimpleCallArgument(m.Property, depth) {
			return false
		}
		return p.isSimpleCallArgument(m.Object, depth)
	}
	return false
}

// chainLink is one printed piece of a call chain: the head expression, a
// property lookup or an argument list.
type chainLink struct {
	node    ast.NodeID
	printed doc.Doc
}

// memberChain prints a.b().c().d() either on one line or with one call per
// indented line.
func (p *printer) memberChain(id ast.NodeID) doc.Doc {
	t := p.tree
	links := []chainLink{{node: id, printed: p.arguments(id)}}
	var walk func(n ast.NodeID)
	walk = func(n ast.NodeID) {
		switch kind := t.Kind(n); {
		case kind == ast.CallExpression && isChainKind(t.Kind(t.Call(n).Callee)):
			p.descend(n, func() {
				links = append(links, chainLink{node: n, printed: PrintComments(t, n, p.arguments(n))})
				walk(t.Call(n).Callee)
			})
		case kind == ast.MemberExpression:
			p.descend(n, func() {
				links = append(links, chainLink{node: n, printed: PrintComments(t, n, p.memberLookup(n))})
				walk(t.Member(n).Object)
			})
		default:
			links = append(links, chainLink{node: n, printed: p.print(n)})
		}
	}
	walk(t.Call(id).Callee)
	for i, j := 0, len(links)-1; i < j; i, j = i+1, j-1 {
		links[i], links[j] = links[j], links[i]
	}

	groups := p.chainGroups(links)
	merge := len(groups) >= 2 && len(groups[1]) > 0 && p.keepsFirstCall(id, groups)

	printGroup := func(g []chainLink) doc.Doc {
		out := make(doc.Concat, len(g))
		for i, l := range g {
			out[i] = l.printed
		}
		return out
	}
	printed := make([]doc.Doc, len(groups))
	for i, g := range groups {
		printed[i] = printGroup(g)
	}
	oneLine := doc.Concat(printed)

	cutoff := 2
	if merge {
		cutoff = 3
	}
	hasComment := false
	for i, l := range links {
		if i > 0 && i < len(links)-1 && len(t.CommentsOf(l.node, ast.CommentLeading)) > 0 ||
			i < len(links)-1 && len(t.CommentsOf(l.node, ast.CommentTrailing)) > 0 {
			hasComment = true
			break
		}
	}
	if len(groups) <= cutoff && !hasComment {
		return doc.Group{Contents: oneLine}
	}

	headCount := 1
	if merge {
		headCount = 2
	}
	expanded := doc.Concat{}
	expanded = append(expanded, printed[:headCount]...)
	if rest := printed[headCount:]; len(rest) > 0 {
		expanded = append(expanded, doc.IndentOf(doc.GroupOf(doc.Hardline, doc.Join(doc.Hardline, rest))))
	}

	calls := 0
	complexArgs := false
	for _, l := range links {
		if t.Kind(l.node) != ast.CallExpression {
			continue
		}
		calls++
		for _, arg := range t.Call(l.node).Args {
			if !p.isSimpleCallArgument(arg, 0) {
				complexArgs = true
			}
		}
	}
	nonLastBreaks := false
	for _, d := range printed[:len(printed)-1] {
		if doc.WillBreak(d) {
			nonLastBreaks = true
			break
		}
	}
	if hasComment || calls > 2 && complexArgs || nonLastBreaks {
		return doc.Group{Contents: expanded}
	}
	return doc.Concat{
		breakParentIf(doc.WillBreak(oneLine)),
		doc.ConditionalGroup(oneLine, expanded),
	}
}

// descend runs fn with id pushed on the path, for nodes the chain printer
// lays out itself.
func (p *printer) descend(id ast.NodeID, fn func()) {
	p.path.Call(id, func(*plugin.Path) doc.Doc {
		fn()
		return nil
	})
}

func isChainKind(k ast.Kind) bool {
	return k == ast.MemberExpression || k == ast.CallExpression
}

// chainGroups splits a flattened chain into the head group and one group
// per ".name(...)" step.
func (p *printer) chainGroups(links []chainLink) [][]chainLink {
	t := p.tree
	isCall := func(i int) bool { return t.Kind(links[i].node) == ast.CallExpression }
	isMember := func(i int) bool { return t.Kind(links[i].node) == ast.MemberExpression }
	isLiteralLookup := func(i int) bool {
		if !isMember(i) {
			return false
		}
		m := t.Member(links[i].node)
		switch t.Kind(m.Property) {
		case ast.NumericLiteral, ast.StringLiteral:
			return m.Computed
		}
		return false
	}

	head := []chainLink{links[0]}
	i := 1
	for ; i < len(links) && (isCall(i) || isLiteralLookup(i)); i++ {
		head = append(head, links[i])
	}
	if !isCall(0) {
		for ; i+1 < len(links) && isMember(i) && isMember(i+1); i++ {
			head = append(head, links[i])
		}
	}
	groups := [][]chainLink{head}

	var current []chainLink
	seenCall := false
	for ; i < len(links); i++ {
		if seenCall && isMember(i) {
			if isLiteralLookup(i) {
				current = append(current, links[i])
				continue
			}
			groups = append(groups, current)
			current = nil
			seenCall = false
		}
		if isCall(i) {
			seenCall = true
		}
		current = append(current, links[i])
		if len(t.CommentsOf(links[i].node, ast.CommentTrailing)) > 0 {
			groups = append(groups, current)
			current = nil
			seenCall = false
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// keepsFirstCall reports chains such as this.x.y(), Object.keys() or
// z.object() whose first call stays on the head's line.
func (p *printer) keepsFirstCall(id ast.NodeID, groups [][]chainLink) bool {
	t := p.tree
	hasComputed := false
	if first := groups[1][0].node; t.Kind(first) == ast.MemberExpression {
		m := t.Member(first)
		hasComputed = m.Computed && (t.Kind(m.Property) == ast.NumericLiteral || t.Kind(m.Property) == ast.StringLiteral)
	}
	if len(groups[0]) == 1 {
		head := groups[0][0].node
		switch t.Kind(head) {
		case ast.ThisExpression:
			return true
		case ast.Identifier:
			name := t.Raw(head)
			inStatement := t.Kind(t.Parent(id)) == ast.ExpressionStatement
			return isFactory(name) || inStatement && len(name) <= p.opts.TabWidth || hasComputed
		}
		return false
	}
	last := groups[0][len(groups[0])-1].node
	if t.Kind(last) != ast.MemberExpression {
		return false
	}
	prop := t.Member(last).Property
	return t.Kind(prop) == ast.Identifier && (isFactory(t.Raw(prop)) || hasComputed)
}

// isFactory matches capitalised names and names made only of $ and _.
func isFactory(name string) bool {
	if name == "" {
		return false
	}
	if name[0] >= 'A' && name[0] <= 'Z' {
		return true
	}
	return strings.Trim(name, "$_") == ""
}
