// Package format is the formatting engine: it parses a source file, prints
// the tree to a doc through the printers of the configured extensions and
// renders the doc to text.
//
// The engine owns the print loop. For every node it asks the main printer
// (the last extension printer for the estree format) for an embedded doc,
// then for the node's doc, and attaches the node's comments around it.
package format
