package doc

// PropagateBreaks returns a copy of d where every group that contains a
// BreakParent, directly or through a broken child group, has Break set.
// Groups with expanded states are left alone so the renderer can still
// pick one of them.
func PropagateBreaks(d Doc) Doc {
	out, _ := propagate(d)
	return out
}

func propagate(d Doc) (Doc, bool) {
	switch v := d.(type) {
	case nil:
		return nil, false
	case Text, LineBreak:
		return v, false
	case BreakParent:
		return v, true
	case Concat:
		out := make(Concat, len(v))
		broken := false
		for i, part := range v {
			p, brk := propagate(part)
			out[i] = p
			broken = broken || brk
		}
		return out, broken
	case Group:
		contents, brk := propagate(v.Contents)
		g := Group{Contents: contents, Break: v.Break, ID: v.ID}
		if len(v.Expanded) > 0 {
			g.Expanded = make([]Doc, len(v.Expanded))
			for i, st := range v.Expanded {
				g.Expanded[i], _ = propagate(st)
			}
			// the first state is the contents itself
			g.Expanded[0] = contents
			return g, g.Break
		}
		g.Break = g.Break || brk
		return g, g.Break
	case Indent:
		contents, brk := propagate(v.Contents)
		return Indent{Contents: contents}, brk
	case IfBreak:
		b, brk1 := propagate(v.Break)
		f, brk2 := propagate(v.Flat)
		return IfBreak{Break: b, Flat: f, GroupID: v.GroupID}, brk1 || brk2
	case LineSuffix:
		contents, brk := propagate(v.Contents)
		return LineSuffix{Contents: contents}, brk
	case Label:
		contents, brk := propagate(v.Contents)
		return Label{Name: v.Name, Contents: contents}, brk
	default:
		return d, false
	}
}

// WillBreak reports whether d contains a forced break: a broken group, a
// hard or literal line, or a BreakParent.
func WillBreak(d Doc) bool {
	found := false
	Walk(d, func(n Doc) bool {
		switch v := n.(type) {
		case Group:
			if v.Break {
				found = true
			}
		case LineBreak:
			if v.Mode == LineHard || v.Mode == LineLiteral {
				found = true
			}
		case BreakParent:
			found = true
		}
		return !found
	})
	return found
}

// HasLabel reports whether d contains a Label named name.
func HasLabel(d Doc, name string) bool {
	found := false
	Walk(d, func(n Doc) bool {
		if l, ok := n.(Label); ok && l.Name == name {
			found = true
		}
		return !found
	})
	return found
}

// Walk visits d in pre-order. Returning false from fn skips the children
// of that node. Expanded group states other than the first are not visited.
func Walk(d Doc, fn func(Doc) bool) {
	if d == nil || !fn(d) {
		return
	}
	switch v := d.(type) {
	case Concat:
		for _, part := range v {
			Walk(part, fn)
		}
	case Group:
		Walk(v.Contents, fn)
	case Indent:
		Walk(v.Contents, fn)
	case IfBreak:
		Walk(v.Break, fn)
		Walk(v.Flat, fn)
	case LineSuffix:
		Walk(v.Contents, fn)
	case Label:
		Walk(v.Contents, fn)
	}
}
