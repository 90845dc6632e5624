// Package shape implements the shape algebra: a closed set of node kinds
// (TripleConstraint, ShapeReference, ShapeAnd, ShapeOr, Cardinality,
// ShapeLiteral) that together describe the shapes schema a knowledge
// graph is validated against.
//
// Every node is a Shape. Leaf-style nodes (TripleConstraint, ShapeLiteral,
// ShapeReference) additionally implement EdgeValidator: their validate()
// produces an expr.EdgeExpr consumed during the BSP send phase.
// Composite-style nodes (ShapeAnd, ShapeOr, Cardinality) implement
// VertexValidator: their validate() produces an expr.VertexExpr consumed
// during the vertex-update phase. A node never implements both — which
// interface a node satisfies is exactly the phase package bsp dispatches
// it to, per shape-tree level.
//
// Shape itself carries no children-accessor: shapetree, which needs to
// walk the tree, does so with a type switch against the exported
// concrete types, mirroring how the reference implementation pattern
// matches its Shape enum.
package shape
