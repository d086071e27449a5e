package estree

// Helpers that look at the original source between nodes.

func skipChars(src []byte, i int, set string) int {
	for i < len(src) {
		found := false
		for j := 0; j < len(set); j++ {
			if src[i] == set[j] {
				found = true
				break
			}
		}
		if !found {
			return i
		}
		i++
	}
	return i
}

// skipInlineComment skips a block comment that does not span lines.
func skipInlineComment(src []byte, i int) int {
	if i+1 >= len(src) || src[i] != '/' || src[i+1] != '*' {
		return i
	}
	for j := i + 2; j+1 < len(src); j++ {
		switch {
		case src[j] == '\n':
			return i
		case src[j] == '*' && src[j+1] == '/':
			return j + 2
		}
	}
	return i
}

// skipTrailingComment skips a line comment up to, not including, its newline.
func skipTrailingComment(src []byte, i int) int {
	if i+1 >= len(src) || src[i] != '/' || src[i+1] != '/' {
		return i
	}
	for i < len(src) && src[i] != '\n' && src[i] != '\r' {
		i++
	}
	return i
}

func skipNewline(src []byte, i int) int {
	switch {
	case i+1 < len(src) && src[i] == '\r' && src[i+1] == '\n':
		return i + 2
	case i < len(src) && (src[i] == '\n' || src[i] == '\r'):
		return i + 1
	}
	return i
}

func hasNewline(src []byte, i int) bool {
	j := skipChars(src, i, " \t")
	return skipNewline(src, j) != j
}

// isNextLineEmpty reports whether the line after the one containing end is
// blank, ignoring separators and comments that trail on end's line.
func isNextLineEmpty(src []byte, end int) bool {
	if end < 0 || end > len(src) {
		return false
	}
	i, old := end, -1
	for i != old {
		old = i
		i = skipChars(src, i, ",; \t")
		i = skipInlineComment(src, i)
		i = skipChars(src, i, " \t")
	}
	i = skipTrailingComment(src, i)
	next := skipNewline(src, i)
	if next == i {
		return false
	}
	return hasNewline(src, next)
}

// hasNewlineBetween reports whether src[from:to] contains a line break.
func hasNewlineBetween(src []byte, from, to int) bool {
	if from < 0 {
		from = 0
	}
	if to > len(src) {
		to = len(src)
	}
	for i := from; i < to; i++ {
		if src[i] == '\n' || src[i] == '\r' {
			return true
		}
	}
	return false
}
