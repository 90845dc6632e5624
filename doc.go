// Package pschema validates Wikidata-style property graphs against
// shape schemas using a Pregel-style bulk-synchronous-parallel engine.
//
// A schema is a tree of six node kinds (package shape): TripleConstraint,
// ShapeReference, ShapeLiteral, ShapeAnd, ShapeOr and Cardinality. Each
// node either matches individual edges ("leaf-style", contributing a
// label to a vertex's message pool during a superstep's send phase) or
// re-checks a vertex's already-accumulated labels ("composite-style",
// run during the vertex-update phase). The shape tree is scheduled in
// reverse level order (package shapetree) so a composite node's
// children always conform, or fail to conform, before the composite
// itself runs.
//
// Subpackages:
//
//	table/     — columnar edge/vertex/result schemas and field validation
//	expr/      — lazy when/then/otherwise column-expression combinators
//	shape/     — the six-node shape algebra and its two validation phases
//	shapetree/ — cycle detection, duplicate-label detection, level scheduling
//	bsp/       — the fixed-iteration BSP engine driving the tree's supersteps
//	result/    — materialises the validated vertex subset back onto edges
//	validator/ — the public entry point tying the above together
//
// Callers never touch bsp or shapetree directly: package validator is
// the sole supported entry point.
package pschema
