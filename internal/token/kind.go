package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	KwVar        // var
	KwLet        // let
	KwConst      // const
	KwFunction   // function
	KwReturn     // return
	KwIf         // if
	KwElse       // else
	KwWhile      // while
	KwFor        // for
	KwBreak      // break
	KwContinue   // continue
	KwThrow      // throw
	KwTry        // try
	KwCatch      // catch
	KwFinally    // finally
	KwNew        // new
	KwTypeof     // typeof
	KwInstanceof // instanceof
	KwIn         // in
	KwDelete     // delete
	KwVoid       // void
	KwThis       // this
	KwNull       // null
	KwTrue       // true
	KwFalse      // false

	// NumberLit represents a numeric literal.
	NumberLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// TemplateLit represents a backtick template literal, substitutions included.
	TemplateLit

	Plus             // +
	Minus            // -
	Star             // *
	StarStar         // **
	Slash            // /
	Percent          // %
	PlusPlus         // ++
	MinusMinus       // --
	Assign           // =
	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	SlashAssign      // /=
	PercentAssign    // %=
	EqEq             // ==
	EqEqEq           // ===
	Bang             // !
	BangEq           // !=
	BangEqEq         // !==
	Lt               // <
	LtEq             // <=
	Gt               // >
	GtEq             // >=
	Shl              // <<
	Shr              // >>
	UShr             // >>>
	Amp              // &
	Pipe             // |
	Caret            // ^
	Tilde            // ~
	AndAnd           // &&
	OrOr             // ||
	QuestionQuestion // ??
	Question         // ?
	Colon            // :
	Semicolon        // ;
	Comma            // ,
	Dot              // .
	DotDotDot        // ...
	FatArrow         // =>
	LParen           // (
	RParen           // )
	LBrace           // {
	RBrace           // }
	LBracket         // [
	RBracket         // ]
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	KwVar:            "var",
	KwLet:            "let",
	KwConst:          "const",
	KwFunction:       "function",
	KwReturn:         "return",
	KwIf:             "if",
	KwElse:           "else",
	KwWhile:          "while",
	KwFor:            "for",
	KwBreak:          "break",
	KwContinue:       "continue",
	KwThrow:          "throw",
	KwTry:            "try",
	KwCatch:          "catch",
	KwFinally:        "finally",
	KwNew:            "new",
	KwTypeof:         "typeof",
	KwInstanceof:     "instanceof",
	KwIn:             "in",
	KwDelete:         "delete",
	KwVoid:           "void",
	KwThis:           "this",
	KwNull:           "null",
	KwTrue:           "true",
	KwFalse:          "false",
	NumberLit:        "NumberLit",
	StringLit:        "StringLit",
	TemplateLit:      "TemplateLit",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	StarStar:         "**",
	Slash:            "/",
	Percent:          "%",
	PlusPlus:         "++",
	MinusMinus:       "--",
	Assign:           "=",
	PlusAssign:       "+=",
	MinusAssign:      "-=",
	StarAssign:       "*=",
	SlashAssign:      "/=",
	PercentAssign:    "%=",
	EqEq:             "==",
	EqEqEq:           "===",
	Bang:             "!",
	BangEq:           "!=",
	BangEqEq:         "!==",
	Lt:               "<",
	LtEq:             "<=",
	Gt:               ">",
	GtEq:             ">=",
	Shl:              "<<",
	Shr:              ">>",
	UShr:             ">>>",
	Amp:              "&",
	Pipe:             "|",
	Caret:            "^",
	Tilde:            "~",
	AndAnd:           "&&",
	OrOr:             "||",
	QuestionQuestion: "??",
	Question:         "?",
	Colon:            ":",
	Semicolon:        ";",
	Comma:            ",",
	Dot:              ".",
	DotDotDot:        "...",
	FatArrow:         "=>",
	LParen:           "(",
	RParen:           ")",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
}

// String returns the source spelling for punctuation and keywords, or the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsAssignOp reports whether k is "=" or a compound assignment operator.
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}
