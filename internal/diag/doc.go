// Package diag defines the diagnostic model shared by the lexer and parser.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     while reading source files.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag performs no IO. Short single-line rendering for the CLI lives in
// render.go; everything else (colors, exit codes) is the caller's business.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – info, warning or error (severity.go); errors block formatting.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Printers and formatting extensions never produce diagnostics: anything a user
// sees comes from reading the source.
package diag
