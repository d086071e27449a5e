package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005

	// syntax
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynUnclosedParen       Code = 2002
	SynUnclosedBrace       Code = 2003
	SynUnclosedBracket     Code = 2004
	SynExpectSemicolon     Code = 2005
	SynExpectIdentifier    Code = 2006
	SynExpectExpression    Code = 2007
	SynExpectColon         Code = 2008
	SynExpectBlock         Code = 2009
	SynTryWithoutHandler   Code = 2010
	SynInvalidAssignTarget Code = 2011
	SynRestMustBeLast      Code = 2012
	SynMissingInitializer  Code = 2013
	SynIllegalBreak        Code = 2014

	// io
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Invalid number literal",
	LexUnterminatedTemplate:     "Unterminated template literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedBracket:          "Unclosed bracket",
	SynExpectSemicolon:          "Missing semicolon",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectExpression:         "Expected expression",
	SynExpectColon:              "Expected colon",
	SynExpectBlock:              "Expected block",
	SynTryWithoutHandler:        "Try statement without catch or finally",
	SynInvalidAssignTarget:      "Invalid assignment target",
	SynRestMustBeLast:           "Rest element must be last",
	SynMissingInitializer:       "Missing initializer in const declaration",
	SynIllegalBreak:             "Illegal break or continue",
	IOLoadFileError:             "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
