// Package token defines lexical token kinds and trivia for the JavaScript subset
// understood by the reference formatting engine.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Comments and newlines never appear in the main token stream; they are
//     attached to the following token as leading Trivia.
//   - Template literals are a single token, including any ${...} substitutions.
package token
