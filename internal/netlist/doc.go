// Package netlist implements the netlist model: instances with typed
// ports and pin sequences, and networks that tie pins from different
// instances together.
//
// Construction is atomic: New validates every invariant in one pass and
// fails with a *rherrors.BadNetlistError naming the offending triple,
// validating everything once at the boundary so every other method can
// assume a valid netlist forever after. Netlist values are immutable once
// built. Only flat netlists are accepted; this package provides no
// flattening of hierarchical netlists.
//
// A Netlist is a restricted graph: instances are vertices, networks are
// hyperedges (one driver, any number of sinks) rather than plain pairwise
// edges. A hyperedge does not fit a generic graph library's Edge type
// without a lossy driver/sink encoding, so this package models its own
// instance/network structures directly; see DESIGN.md for the considered
// alternative.
package netlist
