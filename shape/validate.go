package shape

import (
	"github.com/katalvlaran/pschema/expr"
	"github.com/katalvlaran/pschema/table"
)

// EdgeValidator is implemented by leaf-style shapes: their validate
// step runs during the send phase and produces an expr.EdgeExpr.
type EdgeValidator interface {
	Shape
	ValidateEdge(prev expr.EdgeExpr) expr.EdgeExpr
}

// VertexValidator is implemented by composite-style shapes: their
// validate step runs during the vertex-update phase and produces an
// expr.VertexExpr.
type VertexValidator interface {
	Shape
	ValidateVertex(prev expr.VertexExpr) expr.VertexExpr
}

// ValidateEdge implements EdgeValidator. An edge conforms when its
// Object and Predicate match exactly; on conformance, the subject is
// labelled Label.
func (s *TripleConstraint) ValidateEdge(prev expr.EdgeExpr) expr.EdgeExpr {
	label := s.label
	return expr.WhenEdge(func(row expr.EdgeRow) bool {
		return row.Object == s.object && row.Predicate == s.predicate
	}).Then(expr.LitLabel(label)).Otherwise(prev)
}

// ValidateEdge implements EdgeValidator. An edge conforms when its
// Predicate matches and its destination vertex already carries the
// referenced shape's label (from the previous superstep — shapetree
// schedules the reference's target shape at an earlier level).
func (s *ShapeReference) ValidateEdge(prev expr.EdgeExpr) expr.EdgeExpr {
	label := s.label
	refLabel := s.inner.Label()
	predicate := s.predicate
	return expr.WhenEdge(func(row expr.EdgeRow) bool {
		return row.Predicate == predicate && expr.ListContains(row.DstLabels, refLabel)
	}).Then(expr.LitLabel(label)).Otherwise(prev)
}

// ValidateEdge implements EdgeValidator. An edge conforms when its
// Predicate and DType match exactly.
func (s *ShapeLiteral) ValidateEdge(prev expr.EdgeExpr) expr.EdgeExpr {
	label := s.label
	predicate := s.predicate
	dtype := s.dtype
	return expr.WhenEdge(func(row expr.EdgeRow) bool {
		return row.Predicate == predicate && row.HasDType && row.DType == dtype
	}).Then(expr.LitLabel(label)).Otherwise(prev)
}

// ValidateVertex implements VertexValidator. A vertex conforms when
// every child's label is already present in its label set — by
// construction every child lives at a strictly earlier tree level, so
// its own contribution (if any) has already landed in Labels by the
// time this runs; on conformance, Label is appended.
func (s *ShapeAnd) ValidateVertex(prev expr.VertexExpr) expr.VertexExpr {
	label := s.label
	childLabels := make([]table.Label, len(s.children))
	for i, c := range s.children {
		childLabels[i] = c.Label()
	}
	return expr.WhenVertex(func(row expr.VertexRow) bool {
		return expr.AllIn(childLabels, row.Labels)
	}).Then(expr.ConcatLabel(label, prev)).Otherwise(expr.KeepLabels(prev))
}

// ValidateVertex implements VertexValidator. A vertex conforms when at
// least one child's label is already present in its label set; on
// conformance, Label is appended.
func (s *ShapeOr) ValidateVertex(prev expr.VertexExpr) expr.VertexExpr {
	label := s.label
	childLabels := make([]table.Label, len(s.children))
	for i, c := range s.children {
		childLabels[i] = c.Label()
	}
	return expr.WhenVertex(func(row expr.VertexRow) bool {
		return expr.AnyIn(childLabels, row.Labels)
	}).Then(expr.ConcatLabel(label, prev)).Otherwise(expr.KeepLabels(prev))
}

// ValidateVertex implements VertexValidator. Cardinality counts how
// many times Inner's label occurs among the raw messages a vertex has
// accumulated so far — Messages, unlike Labels, preserves duplicates,
// which a count needs and a deduplicated label set cannot give. Inner
// is scheduled as a "gated" leaf (see shapetree.Tree.Gated): its own
// match never auto-promotes into Labels, so Inner's label reaches
// Labels only through this node's own ConcatLabel when the count falls
// within [Min,Max].
func (s *Cardinality) ValidateVertex(prev expr.VertexExpr) expr.VertexExpr {
	innerLabel := s.inner.Label()
	min, max := s.min, s.max
	return expr.WhenVertex(func(row expr.VertexRow) bool {
		n := expr.CountEqual(row.Messages, innerLabel)
		return min.SatisfiesMin(n) && max.SatisfiesMax(n)
	}).Then(expr.ConcatLabel(innerLabel, prev)).Otherwise(expr.KeepLabels(prev))
}
