// Package fuzztests holds Go fuzz harnesses for the formatting pipeline
// (source -> lexer -> parser -> printer). They guard against panics and
// runaway loops on arbitrary input and check that formatted output parses
// again.
package fuzztests
