// Package qualra is a qualitative constraint reasoner for binary relation
// algebras over spatial and temporal entities: Allen's interval algebra and
// its point-and-interval, left/right-branching-time extensions, and the
// RCC-8 region-connection calculus.
//
// Given a finite set of entities and disjunctive constraints between pairs
// of them drawn from an algebra's finite relation vocabulary, qualra computes
// the path-consistent closure of the constraint network and reports
// inconsistency or a tightened set of possibilities.
//
// The core is two pieces: the Algebra, a finite relation vocabulary with a
// converse map and a composition table, and the Network, a directed labeled
// multigraph whose edges carry disjunctive relation sets, together with the
// path-consistency fixed point, inconsistency detection, and singleton
// expansion. A third piece, the algebra derivation machinery in derive.go,
// constructs interval-level algebras from an underlying point algebra.
//
// Loading and saving algebra and network descriptions lives in pkg/schema
// and pkg/loader; a Cobra-based CLI collaborator lives in cmd/qualra.
package qualra
