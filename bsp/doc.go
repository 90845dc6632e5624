// Package bsp runs a fixed-iteration Pregel-style bulk-synchronous
// computation over a table.EdgeTable, driven level by level from a
// shapetree.Tree.
//
// Each superstep i processes level i of the tree:
//
//   - Send phase: the level's leaf-style shapes (those implementing
//     shape.EdgeValidator) are folded into one expr.EdgeExpr and
//     evaluated against every edge row. A match sends its label to the
//     edge's subject vertex.
//   - Aggregate phase: per-vertex matched labels are collected,
//     duplicates preserved, into that vertex's cumulative message pool.
//   - Label promotion: a matched label is written onto the vertex's
//     Labels column immediately, unless the shapetree marks it as
//     gated (the direct inner child of a Cardinality) — a gated
//     shape's label reaches Labels only through its enclosing
//     Cardinality's own vertex-update decision. This is what lets a
//     Cardinality upper bound actually exclude a vertex.
//   - Vertex-update phase: the level's composite-style shapes (those
//     implementing shape.VertexValidator) are folded into one
//     expr.VertexExpr per vertex and evaluated against the vertex's
//     current Labels and its cumulative message pool, replacing Labels.
//
// Row evaluation within a phase is parallelized across a bounded worker
// pool via golang.org/x/sync/errgroup; supersteps themselves run
// strictly in sequence, mirroring the single-writer-per-superstep rule.
package bsp
