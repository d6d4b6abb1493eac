// Package core defines the graph model that every arcpost solver builds on:
// Vertex, Link, and a single Graph type carrying one of four Kind values
// (Undirected, Directed, Mixed, Windy).
//
// A Graph is a flat, dense-integer-id structure: vertices and links live in
// slices indexed by id-1, and adjacency is a set of link-id slices rather
// than a map of pointers. This keeps Copy and Subgraph cheap (no pointer
// graphs to walk) and makes the "ids are dense within [1, n]" invariant a
// structural guarantee instead of something callers must maintain by hand.
//
// Solvers never mutate an input Graph; they call Copy and work on the
// result, threading link ids back to the caller's original graph in the
// route they return.
package core
