package estree

import (
	"strings"
	"unicode/utf8"
)

// printString re-quotes a string literal, preferring double quotes unless
// that needs more escapes.
func printString(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	content := raw[1 : len(raw)-1]
	return makeString(content, preferredQuote(content))
}

// printDirective keeps the directive's escapes untouched; only the
// enclosing quotes may change, and only when the content has no quotes.
func printDirective(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	content := raw[1 : len(raw)-1]
	if strings.ContainsAny(content, `"'`) {
		return raw
	}
	return `"` + content + `"`
}

func preferredQuote(content string) byte {
	if strings.Count(content, `"`) > strings.Count(content, `'`) {
		return '\''
	}
	return '"'
}

func makeString(content string, quote byte) string {
	other := byte('\'')
	if quote == '\'' {
		other = '"'
	}
	var sb strings.Builder
	sb.Grow(len(content) + 2)
	sb.WriteByte(quote)
	for i := 0; i < len(content); {
		c := content[i]
		switch {
		case c == '\\' && i+1 < len(content):
			r, size := utf8.DecodeRuneInString(content[i+1:])
			switch {
			case r == rune(other):
				sb.WriteRune(r)
			case keepEscape(r):
				sb.WriteByte('\\')
				sb.WriteRune(r)
			default:
				sb.WriteRune(r)
			}
			i += 1 + size
			continue
		case c == quote:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
		i++
	}
	sb.WriteByte(quote)
	return sb.String()
}

// keepEscape reports whether an escaped r needs its backslash.
func keepEscape(r rune) bool {
	switch {
	case r == '\n', r == '\r', r == '"', r == '\'', r == '\\':
		return true
	case r >= '0' && r <= '7':
		return true
	case r == 'b', r == 'f', r == 'n', r == 'r', r == 't', r == 'u', r == 'v', r == 'x':
		return true
	case r == '\u2028', r == '\u2029':
		return true
	}
	return false
}

// printNumber normalises a numeric literal: lower case, no redundant
// exponent sign or zeroes, a leading digit, no trailing dot.
func printNumber(raw string) string {
	s := strings.ToLower(raw)
	if len(s) > 1 && s[0] == '0' && strings.ContainsRune("box", rune(s[1])) {
		return s
	}
	if strings.HasSuffix(s, "n") {
		return s
	}

	mant, exp, hasExp := strings.Cut(s, "e")
	if hasExp {
		sign := ""
		switch {
		case strings.HasPrefix(exp, "+"):
			exp = exp[1:]
		case strings.HasPrefix(exp, "-"):
			sign, exp = "-", exp[1:]
		}
		exp = strings.TrimLeft(exp, "0")
		if exp == "" {
			hasExp = false
		} else {
			exp = sign + exp
		}
	}

	if strings.HasPrefix(mant, ".") {
		mant = "0" + mant
	}
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		frac := mant[i+1:]
		if trimmed := strings.TrimRight(frac, "0"); trimmed != "" {
			frac = trimmed
		} else if frac != "" {
			frac = "0"
		}
		mant = mant[:i]
		if frac != "" {
			mant += "." + frac
		}
	}

	if hasExp {
		return mant + "e" + exp
	}
	return mant
}

// isSimpleKey reports whether a quoted property key can be written bare.
func isSimpleKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
