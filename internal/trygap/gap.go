package trygap

import "trygap/internal/doc"

// GapLabel names the label that wraps an inserted gap.
const GapLabel = "try-gap"

// Gap is the forced line break placed before the closing brace.
var Gap doc.Doc = doc.Label{Name: GapLabel, Contents: doc.Hardline}

// InsertGap returns d with Gap placed before the closing brace that ends
// it. A sequence whose last element is Text("}") gets the gap; groups and
// indents are searched through their contents and rebuilt with the same
// settings. Any other doc, and a sequence whose closing brace already
// follows a gap, is returned as is. Gaps deeper inside d do not count.
// d is never modified.
func InsertGap(d doc.Doc) doc.Doc {
	switch v := d.(type) {
	case doc.Concat:
		if len(v) == 0 {
			return v
		}
		if last, ok := v[len(v)-1].(doc.Text); !ok || last != "}" {
			return v
		}
		if len(v) >= 2 && isGap(v[len(v)-2]) {
			return v
		}
		out := make(doc.Concat, 0, len(v)+1)
		out = append(out, v[:len(v)-1]...)
		return append(out, Gap, v[len(v)-1])
	case doc.Group:
		if v.Expanded != nil {
			return v
		}
		v.Contents = InsertGap(v.Contents)
		return v
	case doc.Indent:
		v.Contents = InsertGap(v.Contents)
		return v
	case doc.Text, doc.LineBreak, doc.BreakParent, doc.IfBreak, doc.LineSuffix, doc.Label:
		return v
	}
	return d
}

func isGap(d doc.Doc) bool {
	l, ok := d.(doc.Label)
	return ok && l.Name == GapLabel
}
