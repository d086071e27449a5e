package doc

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Options control rendering.
type Options struct {
	Width    int
	TabWidth int
	UseTabs  bool
}

// DefaultOptions matches the formatter defaults.
func DefaultOptions() Options {
	return Options{Width: 80, TabWidth: 2}
}

type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

type indentation struct {
	value  string
	length int
}

type command struct {
	ind  *indentation
	mode mode
	doc  Doc
}

type renderer struct {
	opts          Options
	out           []byte
	pos           int
	lineSuffixes  []command
	groupModes    map[GroupID]mode
	shouldMeasure bool
}

// Print renders d. Breaks are propagated first, so callers may pass a doc
// built without calling PropagateBreaks.
func Print(d Doc, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultOptions().TabWidth
	}
	r := &renderer{opts: opts, groupModes: make(map[GroupID]mode)}
	r.run(PropagateBreaks(d))
	return string(r.out)
}

func (r *renderer) makeIndent(ind *indentation) *indentation {
	if r.opts.UseTabs {
		return &indentation{value: ind.value + "\t", length: ind.length + r.opts.TabWidth}
	}
	return &indentation{
		value:  ind.value + strings.Repeat(" ", r.opts.TabWidth),
		length: ind.length + r.opts.TabWidth,
	}
}

func (r *renderer) run(d Doc) {
	cmds := []command{{ind: &indentation{}, mode: modeBreak, doc: d}}
	for len(cmds) > 0 {
		c := cmds[len(cmds)-1]
		cmds = cmds[:len(cmds)-1]

		switch v := c.doc.(type) {
		case nil:
		case Text:
			r.out = append(r.out, v...)
			r.pos += runewidth.StringWidth(string(v))
		case Concat:
			for i := len(v) - 1; i >= 0; i-- {
				cmds = append(cmds, command{ind: c.ind, mode: c.mode, doc: v[i]})
			}
		case Indent:
			cmds = append(cmds, command{ind: r.makeIndent(c.ind), mode: c.mode, doc: v.Contents})
		case Label:
			cmds = append(cmds, command{ind: c.ind, mode: c.mode, doc: v.Contents})
		case BreakParent:
		case LineSuffix:
			r.lineSuffixes = append(r.lineSuffixes, command{ind: c.ind, mode: c.mode, doc: v.Contents})
		case IfBreak:
			m := c.mode
			if v.GroupID != 0 {
				m = r.groupMode(v.GroupID)
			}
			chosen := v.Flat
			if m == modeBreak {
				chosen = v.Break
			}
			if chosen != nil {
				cmds = append(cmds, command{ind: c.ind, mode: c.mode, doc: chosen})
			}
		case Group:
			cmds = r.group(cmds, c, v)
			if v.ID != 0 {
				r.groupModes[v.ID] = cmds[len(cmds)-1].mode
			}
		case LineBreak:
			cmds = r.line(cmds, c, v)
		}

		if len(cmds) == 0 && len(r.lineSuffixes) > 0 {
			cmds = appendReversed(cmds, r.lineSuffixes)
			r.lineSuffixes = r.lineSuffixes[:0]
		}
	}
}

func (r *renderer) groupMode(id GroupID) mode {
	if m, ok := r.groupModes[id]; ok {
		return m
	}
	return modeFlat
}

func (r *renderer) group(cmds []command, c command, g Group) []command {
	if c.mode == modeFlat && !r.shouldMeasure {
		m := modeFlat
		if g.Break {
			m = modeBreak
		}
		contents := g.Contents
		if g.Break && len(g.Expanded) > 0 {
			contents = g.Expanded[len(g.Expanded)-1]
		}
		return append(cmds, command{ind: c.ind, mode: m, doc: contents})
	}

	r.shouldMeasure = false
	next := command{ind: c.ind, mode: modeFlat, doc: g.Contents}
	rem := r.opts.Width - r.pos
	if !g.Break && r.fits(next, cmds, rem) {
		return append(cmds, next)
	}
	if len(g.Expanded) == 0 {
		return append(cmds, command{ind: c.ind, mode: modeBreak, doc: g.Contents})
	}

	mostExpanded := g.Expanded[len(g.Expanded)-1]
	if g.Break {
		return append(cmds, command{ind: c.ind, mode: modeBreak, doc: mostExpanded})
	}
	for i := 1; i < len(g.Expanded); i++ {
		state := command{ind: c.ind, mode: modeFlat, doc: g.Expanded[i]}
		if r.fits(state, cmds, rem) {
			return append(cmds, state)
		}
	}
	return append(cmds, command{ind: c.ind, mode: modeBreak, doc: mostExpanded})
}

func (r *renderer) line(cmds []command, c command, l LineBreak) []command {
	if c.mode == modeFlat {
		switch l.Mode {
		case LineNormal:
			r.out = append(r.out, ' ')
			r.pos++
			return cmds
		case LineSoft:
			return cmds
		default:
			// a hard line inside a flat group means the group was measured
			// wrongly; re-measure the next one
			r.shouldMeasure = true
		}
	}

	if len(r.lineSuffixes) > 0 {
		cmds = append(cmds, c)
		cmds = appendReversed(cmds, r.lineSuffixes)
		r.lineSuffixes = r.lineSuffixes[:0]
		return cmds
	}

	if l.Mode == LineLiteral {
		r.out = append(r.out, '\n')
		r.pos = 0
		return cmds
	}
	r.trim()
	r.out = append(r.out, '\n')
	r.out = append(r.out, c.ind.value...)
	r.pos = c.ind.length
	return cmds
}

// trim drops trailing spaces and tabs from the output.
func (r *renderer) trim() {
	n := len(r.out)
	for n > 0 && (r.out[n-1] == ' ' || r.out[n-1] == '\t') {
		n--
	}
	r.pos -= len(r.out) - n
	r.out = r.out[:n]
}

// fits reports whether next, followed by the pending commands, reaches a
// line break before running out of width. Pending commands keep their own
// mode, so a broken parent counts as a break opportunity.
func (r *renderer) fits(next command, rest []command, width int) bool {
	restIdx := len(rest)
	stack := []command{next}
	for width >= 0 {
		if len(stack) == 0 {
			if restIdx == 0 {
				return true
			}
			restIdx--
			stack = append(stack, rest[restIdx])
			continue
		}
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := c.doc.(type) {
		case Text:
			width -= runewidth.StringWidth(string(v))
		case Concat:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, command{mode: c.mode, doc: v[i]})
			}
		case Indent:
			stack = append(stack, command{mode: c.mode, doc: v.Contents})
		case Label:
			stack = append(stack, command{mode: c.mode, doc: v.Contents})
		case Group:
			m := c.mode
			if v.Break {
				m = modeBreak
			}
			contents := v.Contents
			if len(v.Expanded) > 0 && m == modeBreak {
				contents = v.Expanded[len(v.Expanded)-1]
			}
			stack = append(stack, command{mode: m, doc: contents})
		case IfBreak:
			m := c.mode
			if v.GroupID != 0 {
				m = r.groupMode(v.GroupID)
			}
			chosen := v.Flat
			if m == modeBreak {
				chosen = v.Break
			}
			if chosen != nil {
				stack = append(stack, command{mode: c.mode, doc: chosen})
			}
		case LineBreak:
			if c.mode == modeBreak || v.Mode == LineHard || v.Mode == LineLiteral {
				return true
			}
			if v.Mode == LineNormal {
				width--
			}
		}
	}
	return false
}

func appendReversed(dst, src []command) []command {
	for i := len(src) - 1; i >= 0; i-- {
		dst = append(dst, src[i])
	}
	return dst
}
