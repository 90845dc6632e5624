package expr

import "github.com/katalvlaran/pschema/table"

// EdgeRow is the row context an EdgeExpr is evaluated against: one edge,
// plus the destination (object) vertex's label set as it stood after the
// previous superstep. The engine fills DstLabels for every row; an
// expression that does not need it (e.g. a plain TripleConstraint)
// ignores it.
type EdgeRow struct {
	Subject   table.VertexID
	Predicate table.PredicateID
	Object    table.VertexID
	DType     table.DType
	HasDType  bool
	DstLabels []table.Label
}

// VertexRow is the row context a VertexExpr is evaluated against: one
// vertex, its current label set (including labels promoted by this
// superstep's send phase), and the (duplicate-preserving) list of every
// message it has received so far, across all supersteps.
type VertexRow struct {
	ID       table.VertexID
	Labels   []table.Label
	Messages []table.Label
}
