package shapetree

import (
	"github.com/katalvlaran/pschema/shape"
	"github.com/katalvlaran/pschema/table"
)

// Tree is the reverse level-order schedule derived from a root Shape.
// It is a throwaway view: built at the start of a validation run,
// discarded at the end.
type Tree struct {
	levels [][]shape.Shape
	gated  map[shape.Shape]bool
}

const (
	white = iota
	gray
	black
)

// childrenOf returns s's direct children, in declaration order. Leaves
// (TripleConstraint, ShapeLiteral) return nil.
func childrenOf(s shape.Shape) []shape.Shape {
	switch node := s.(type) {
	case *shape.ShapeReference:
		return []shape.Shape{node.Reference()}
	case *shape.ShapeAnd:
		return node.Children()
	case *shape.ShapeOr:
		return node.Children()
	case *shape.Cardinality:
		return []shape.Shape{node.Inner()}
	default:
		return nil
	}
}

// New builds the level-order schedule rooted at root. It fails with
// ErrNilShape if root is nil, ErrCyclicShape if the shape graph
// contains a cycle, and ErrDuplicateLabel if two distinct nodes declare
// the same label.
func New(root shape.Shape) (*Tree, error) {
	if root == nil {
		return nil, shapetreeErrorf("New", ErrNilShape)
	}
	if err := detectCycle(root); err != nil {
		return nil, err
	}
	if err := checkUniqueLabels(root); err != nil {
		return nil, err
	}

	gated := make(map[shape.Shape]bool)
	var levelsRev [][]shape.Shape
	queue := []shape.Shape{root}
	for len(queue) > 0 {
		tmp := make([]shape.Shape, 0, len(queue))
		var next []shape.Shape
		for _, node := range queue {
			tmp = append(tmp, node)
			if card, ok := node.(*shape.Cardinality); ok {
				gated[card.Inner()] = true
			}
			next = append(next, childrenOf(node)...)
		}
		levelsRev = append(levelsRev, tmp)
		queue = next
	}

	levels := make([][]shape.Shape, len(levelsRev))
	for i, l := range levelsRev {
		levels[len(levelsRev)-1-i] = l
	}
	return &Tree{levels: levels, gated: gated}, nil
}

// Levels returns the schedule, deepest leaves at index 0.
func (t *Tree) Levels() [][]shape.Shape {
	out := make([][]shape.Shape, len(t.levels))
	copy(out, t.levels)
	return out
}

// Iterations returns the number of supersteps the BSP engine must run:
// exactly the tree's height.
func (t *Tree) Iterations() uint8 { return uint8(len(t.levels)) }

// Gated reports whether s is the direct inner child of some Cardinality
// node in this tree. A gated leaf-style shape still contributes to the
// cumulative message pool (so its Cardinality parent can count it) but
// does not, by itself, promote its matched label onto a vertex's Labels
// column — only the enclosing Cardinality's own conformance decision
// does that. This is how Cardinality's upper bound can actually exclude
// a vertex instead of being moot the instant the inner constraint fires
// once.
func (t *Tree) Gated(s shape.Shape) bool { return t.gated[s] }

func detectCycle(root shape.Shape) error {
	color := make(map[shape.Shape]int)
	var visit func(shape.Shape) error
	visit = func(s shape.Shape) error {
		switch color[s] {
		case gray:
			return shapetreeErrorf("New", ErrCyclicShape)
		case black:
			return nil
		}
		color[s] = gray
		for _, c := range childrenOf(s) {
			if err := visit(c); err != nil {
				return err
			}
		}
		color[s] = black
		return nil
	}
	return visit(root)
}

func checkUniqueLabels(root shape.Shape) error {
	visited := make(map[shape.Shape]bool)
	owners := make(map[table.Label]shape.Shape)
	var walk func(shape.Shape) error
	walk = func(s shape.Shape) error {
		if visited[s] {
			return nil
		}
		visited[s] = true
		// Cardinality has no label of its own — it delegates to Inner's,
		// so it must not be checked against the uniqueness map itself.
		if _, isCardinality := s.(*shape.Cardinality); !isCardinality {
			if owner, ok := owners[s.Label()]; ok && owner != s {
				return shapetreeErrorf("New", ErrDuplicateLabel)
			}
			owners[s.Label()] = s
		}
		for _, c := range childrenOf(s) {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}
