package plugin

import "reflect"

// Resolve returns the printer self should delegate to for format: the last
// well-formed printer registered for format in exts that is not self, or
// fallback when there is none. Nil extensions and nil printers are skipped.
// A candidate whose dynamic type is not comparable is never treated as self.
func Resolve(exts []*Extension, format string, fallback, self Printer) Printer {
	return ResolveExcept(exts, format, fallback, func(cand Printer) bool {
		return isSame(cand, self)
	})
}

// ResolveExcept is Resolve with a caller-supplied exclusion: candidates for
// which skip returns true are passed over like self.
func ResolveExcept(exts []*Extension, format string, fallback Printer, skip func(Printer) bool) Printer {
	best := fallback
	for _, ext := range exts {
		if ext == nil {
			continue
		}
		cand := ext.Printers[format]
		if isNilPrinter(cand) || (skip != nil && skip(cand)) {
			continue
		}
		best = cand
	}
	return best
}

// MainPrinter returns the printer the engine starts from: the last
// well-formed printer registered for format, or nil.
func MainPrinter(exts []*Extension, format string) Printer {
	return Resolve(exts, format, nil, nil)
}

func isNilPrinter(p Printer) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func isSame(a, b Printer) bool {
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return a == b
}
