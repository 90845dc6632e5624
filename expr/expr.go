package expr

import "github.com/katalvlaran/pschema/table"

// EdgeExpr is a lazily-built column expression, evaluated once per edge
// row during the send phase. It returns the label that should replace
// "prev" on that row, and whether it actually matched — "no message" is
// represented by ok == false rather than by a magic label value, since
// spec.md's label space has no value reserved as a sentinel.
//
// Composing EdgeExprs (via WhenEdge/Then/Otherwise) never evaluates
// anything; evaluation happens only when the engine calls the resulting
// closure against a concrete EdgeRow.
type EdgeExpr func(row EdgeRow) (table.Label, bool)

// VertexExpr is a lazily-built column expression, evaluated once per
// vertex row during the vertex-update phase. It returns the vertex's new
// Labels list.
type VertexExpr func(row VertexRow) []table.Label

// LitLabel returns an EdgeExpr that ignores its row and always matches
// with label v.
func LitLabel(v table.Label) EdgeExpr {
	return func(EdgeRow) (table.Label, bool) { return v, true }
}

// NoMessage is the EdgeExpr identity: "nothing matched here", the
// innermost otherwise of a level's constraint chain.
func NoMessage(EdgeRow) (table.Label, bool) { return 0, false }

// edgeCond is a predicate over an EdgeRow, used by WhenEdge.
type edgeCond func(row EdgeRow) bool

// edgeWhen is the builder returned by WhenEdge, awaiting .Then(...).
type edgeWhen struct{ cond edgeCond }

// WhenEdge begins a when(cond).then(a).otherwise(b) chain for the send
// phase.
func WhenEdge(cond func(row EdgeRow) bool) edgeWhen {
	return edgeWhen{cond: cond}
}

// edgeThen is the builder returned by .Then(...), awaiting .Otherwise(...).
type edgeThen struct {
	cond edgeCond
	then EdgeExpr
}

// Then supplies the expression evaluated when cond holds.
func (w edgeWhen) Then(then EdgeExpr) edgeThen {
	return edgeThen{cond: w.cond, then: then}
}

// Otherwise supplies the fallback expression and closes the chain,
// returning the composed EdgeExpr. This is the only point at which the
// when/then/otherwise combinator produces something the engine can call.
func (t edgeThen) Otherwise(otherwise EdgeExpr) EdgeExpr {
	return func(row EdgeRow) (table.Label, bool) {
		if t.cond(row) {
			return t.then(row)
		}
		return otherwise(row)
	}
}

// vertexCond is a predicate over a VertexRow, used by WhenVertex.
type vertexCond func(row VertexRow) bool

type vertexWhen struct{ cond vertexCond }

// WhenVertex begins a when(cond).then(a).otherwise(b) chain for the
// vertex-update phase.
func WhenVertex(cond func(row VertexRow) bool) vertexWhen {
	return vertexWhen{cond: cond}
}

type vertexThen struct {
	cond vertexCond
	then VertexExpr
}

// Then supplies the list-expression evaluated when cond holds.
func (w vertexWhen) Then(then VertexExpr) vertexThen {
	return vertexThen{cond: w.cond, then: then}
}

// Otherwise supplies the fallback list-expression and closes the chain.
func (t vertexThen) Otherwise(otherwise VertexExpr) VertexExpr {
	return func(row VertexRow) []table.Label {
		if t.cond(row) {
			return t.then(row)
		}
		return otherwise(row)
	}
}

// KeepLabels returns a VertexExpr that leaves the vertex's current Labels
// untouched — the "otherwise" identity for composite shapes.
func KeepLabels(prev VertexExpr) VertexExpr { return prev }

// ConcatLabel returns a VertexExpr that prepends label to whatever prev
// computes, mirroring the reference implementation's
// concat_list([lit(label), prev]) — a new label is added, none are ever
// removed (spec's monotone-labelling invariant).
func ConcatLabel(label table.Label, prev VertexExpr) VertexExpr {
	return func(row VertexRow) []table.Label {
		base := prev(row)
		out := make([]table.Label, 0, len(base)+1)
		out = append(out, label)
		out = append(out, base...)
		return out
	}
}

// CurrentLabels is the VertexExpr identity: "prev" at the start of a
// vertex-update chain, i.e. the vertex's labels as they stand after this
// superstep's send phase.
func CurrentLabels(row VertexRow) []table.Label { return row.Labels }
