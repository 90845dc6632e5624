package shape

import "github.com/katalvlaran/pschema/table"

// Shape is the sealed interface implemented by every node kind in the
// shape algebra. There are exactly six concrete kinds; see doc.go.
type Shape interface {
	// Label returns the label this node contributes when it conforms.
	// Cardinality has no label of its own: it delegates to its inner
	// shape's label.
	Label() table.Label
}

// Bound is a cardinality bound: either n itself is an admissible count
// (Inclusive) or it is the boundary excluded from the admissible range
// (Exclusive).
type Bound struct {
	n         int
	exclusive bool
}

// Inclusive returns a Bound admitting n itself.
func Inclusive(n int) Bound { return Bound{n: n, exclusive: false} }

// Exclusive returns a Bound excluding n itself.
func Exclusive(n int) Bound { return Bound{n: n, exclusive: true} }

// SatisfiesMin reports whether count meets this Bound used as a lower
// bound.
func (b Bound) SatisfiesMin(count int) bool {
	if b.exclusive {
		return count > b.n
	}
	return count >= b.n
}

// SatisfiesMax reports whether count meets this Bound used as an upper
// bound.
func (b Bound) SatisfiesMax(count int) bool {
	if b.exclusive {
		return count < b.n
	}
	return count <= b.n
}

// TripleConstraint matches an edge (subject, Predicate, Object) and, on
// match, labels the subject with Label.
type TripleConstraint struct {
	label     table.Label
	predicate table.PredicateID
	object    table.VertexID
}

// NewTripleConstraint builds a TripleConstraint. Mirrors the reference
// implementation's TripleConstraint::new(label, property_id, dst).
func NewTripleConstraint(label table.Label, predicate table.PredicateID, object table.VertexID) *TripleConstraint {
	return &TripleConstraint{label: label, predicate: predicate, object: object}
}

// Label implements Shape.
func (s *TripleConstraint) Label() table.Label { return s.label }

// ShapeReference matches an edge whose Predicate equals Predicate and
// whose destination vertex already carries the referenced shape's label.
type ShapeReference struct {
	label     table.Label
	predicate table.PredicateID
	inner     Shape
}

// NewShapeReference builds a ShapeReference pointing at inner.
func NewShapeReference(label table.Label, predicate table.PredicateID, inner Shape) *ShapeReference {
	return &ShapeReference{label: label, predicate: predicate, inner: inner}
}

// Label implements Shape.
func (s *ShapeReference) Label() table.Label { return s.label }

// Reference returns the referenced shape, the node's single child.
func (s *ShapeReference) Reference() Shape { return s.inner }

// ShapeAnd labels a vertex iff every one of Children's labels is
// already present in the vertex's Labels.
type ShapeAnd struct {
	label    table.Label
	children []Shape
}

// NewShapeAnd builds a ShapeAnd over children.
func NewShapeAnd(label table.Label, children ...Shape) *ShapeAnd {
	cs := make([]Shape, len(children))
	copy(cs, children)
	return &ShapeAnd{label: label, children: cs}
}

// Label implements Shape.
func (s *ShapeAnd) Label() table.Label { return s.label }

// Children returns the node's child shapes, in declaration order.
func (s *ShapeAnd) Children() []Shape {
	out := make([]Shape, len(s.children))
	copy(out, s.children)
	return out
}

// ShapeOr labels a vertex iff at least one of Children's labels is
// already present in the vertex's Labels.
type ShapeOr struct {
	label    table.Label
	children []Shape
}

// NewShapeOr builds a ShapeOr over children.
func NewShapeOr(label table.Label, children ...Shape) *ShapeOr {
	cs := make([]Shape, len(children))
	copy(cs, children)
	return &ShapeOr{label: label, children: cs}
}

// Label implements Shape.
func (s *ShapeOr) Label() table.Label { return s.label }

// Children returns the node's child shapes, in declaration order.
func (s *ShapeOr) Children() []Shape {
	out := make([]Shape, len(s.children))
	copy(out, s.children)
	return out
}

// ShapeLiteral matches an edge whose Predicate equals Predicate and
// whose DType equals DType — like TripleConstraint but testing the
// edge's datatype column instead of a fixed Object.
type ShapeLiteral struct {
	label     table.Label
	predicate table.PredicateID
	dtype     table.DType
}

// NewShapeLiteral builds a ShapeLiteral.
func NewShapeLiteral(label table.Label, predicate table.PredicateID, dtype table.DType) *ShapeLiteral {
	return &ShapeLiteral{label: label, predicate: predicate, dtype: dtype}
}

// Label implements Shape.
func (s *ShapeLiteral) Label() table.Label { return s.label }

// Cardinality bounds how many times Inner's label may appear among the
// messages a vertex has accumulated so far. It has no label of its own:
// Inner's match (computed independently, see shapetree's tree-building:
// Cardinality's child is scheduled at its own level) does not reach
// Labels by itself, and Cardinality appends Inner's label to Labels
// only when the count falls within [Min,Max].
type Cardinality struct {
	inner Shape
	min   Bound
	max   Bound
}

// NewCardinality builds a Cardinality wrapping inner.
func NewCardinality(inner Shape, min, max Bound) *Cardinality {
	return &Cardinality{inner: inner, min: min, max: max}
}

// Label implements Shape by delegating to Inner, per the reference
// implementation's Cardinality::get_label (Shape::Cardinality(shape) =>
// shape.shape.get_label()).
func (s *Cardinality) Label() table.Label { return s.inner.Label() }

// Inner returns the wrapped shape, the node's single child.
func (s *Cardinality) Inner() Shape { return s.inner }

// Min returns the lower Bound.
func (s *Cardinality) Min() Bound { return s.min }

// Max returns the upper Bound.
func (s *Cardinality) Max() Bound { return s.max }
