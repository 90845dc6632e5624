// Package expr is a small DSL of lazy column-expression combinators
// consumed by package shape to build the per-superstep column expressions
// the BSP engine (package bsp) compiles and runs.
//
// There are two families of expression, one per BSP phase:
//
//   - EdgeExpr evaluates once per edge row during the send phase. It
//     produces the label that should replace "prev" on that row.
//   - VertexExpr evaluates once per vertex row during the vertex-update
//     phase. It produces the vertex's new Labels list given its current
//     Labels, threaded in as "prev".
//
// Both are built with When/Then/Otherwise combinators mirroring the
// reference implementation's when(cond).then(a).otherwise(b) shape, plus
// small list helpers (ListContains, CountEqual, ConcatLabel) for the
// list-typed Labels/Messages columns. Expressions are plain closures: they
// compose without being evaluated, and are evaluated once per row by the
// engine, never touched directly by shape code.
package expr
