package doc

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders d as builder calls, one node per line, for debugging printers.
func Dump(d Doc) string {
	var sb strings.Builder
	dump(&sb, d, 0)
	return sb.String()
}

func dump(sb *strings.Builder, d Doc, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := d.(type) {
	case nil:
		sb.WriteString(pad + "nil\n")
	case Text:
		sb.WriteString(pad + strconv.Quote(string(v)) + "\n")
	case Concat:
		if isHardline(v) {
			sb.WriteString(pad + "hardline\n")
			return
		}
		if isLiteralLine(v) {
			sb.WriteString(pad + "literalline\n")
			return
		}
		sb.WriteString(pad + "[\n")
		for _, part := range v {
			dump(sb, part, depth+1)
		}
		sb.WriteString(pad + "]\n")
	case Group:
		var attrs []string
		if v.Break {
			attrs = append(attrs, "break")
		}
		if v.ID != 0 {
			attrs = append(attrs, fmt.Sprintf("id=%d", v.ID))
		}
		name := "group"
		if len(v.Expanded) > 0 {
			name = "conditionalGroup"
		}
		if len(attrs) > 0 {
			name += "{" + strings.Join(attrs, ",") + "}"
		}
		sb.WriteString(pad + name + "(\n")
		if len(v.Expanded) > 0 {
			for _, st := range v.Expanded {
				dump(sb, st, depth+1)
			}
		} else {
			dump(sb, v.Contents, depth+1)
		}
		sb.WriteString(pad + ")\n")
	case Indent:
		sb.WriteString(pad + "indent(\n")
		dump(sb, v.Contents, depth+1)
		sb.WriteString(pad + ")\n")
	case LineBreak:
		switch v.Mode {
		case LineSoft:
			sb.WriteString(pad + "softline\n")
		case LineHard:
			sb.WriteString(pad + "hardlineWithoutBreakParent\n")
		case LineLiteral:
			sb.WriteString(pad + "literallineWithoutBreakParent\n")
		default:
			sb.WriteString(pad + "line\n")
		}
	case BreakParent:
		sb.WriteString(pad + "breakParent\n")
	case IfBreak:
		name := "ifBreak"
		if v.GroupID != 0 {
			name += fmt.Sprintf("{group=%d}", v.GroupID)
		}
		sb.WriteString(pad + name + "(\n")
		dump(sb, v.Break, depth+1)
		dump(sb, v.Flat, depth+1)
		sb.WriteString(pad + ")\n")
	case LineSuffix:
		sb.WriteString(pad + "lineSuffix(\n")
		dump(sb, v.Contents, depth+1)
		sb.WriteString(pad + ")\n")
	case Label:
		sb.WriteString(pad + "label(" + strconv.Quote(v.Name) + ",\n")
		dump(sb, v.Contents, depth+1)
		sb.WriteString(pad + ")\n")
	}
}

func isHardline(c Concat) bool {
	if len(c) != 2 {
		return false
	}
	l, ok := c[0].(LineBreak)
	_, bp := c[1].(BreakParent)
	return ok && bp && l.Mode == LineHard
}

func isLiteralLine(c Concat) bool {
	if len(c) != 2 {
		return false
	}
	l, ok := c[0].(LineBreak)
	_, bp := c[1].(BreakParent)
	return ok && bp && l.Mode == LineLiteral
}

// IsHardline reports whether d is exactly Hardline.
func IsHardline(d Doc) bool {
	c, ok := d.(Concat)
	return ok && isHardline(c)
}
