// Package plugin defines the surface formatting extensions implement: the
// Printer and Embedder capabilities, the Path a printer walks, option
// descriptors, and the resolver that finds which printer to delegate to.
package plugin
