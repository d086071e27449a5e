package token

var keywords = map[string]Kind{
	"var":        KwVar,
	"let":        KwLet,
	"const":      KwConst,
	"function":   KwFunction,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"for":        KwFor,
	"break":      KwBreak,
	"continue":   KwContinue,
	"throw":      KwThrow,
	"try":        KwTry,
	"catch":      KwCatch,
	"finally":    KwFinally,
	"new":        KwNew,
	"typeof":     KwTypeof,
	"instanceof": KwInstanceof,
	"in":         KwIn,
	"delete":     KwDelete,
	"void":       KwVoid,
	"this":       KwThis,
	"null":       KwNull,
	"true":       KwTrue,
	"false":      KwFalse,
}

// LookupKeyword returns the keyword kind for ident, if it is reserved.
// Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
