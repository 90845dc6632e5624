package shapetree_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pschema/shape"
	"github.com/katalvlaran/pschema/shapetree"
	"github.com/stretchr/testify/require"
)

func TestNew_SimpleSchema(t *testing.T) {
	root := shape.NewTripleConstraint(1, 31, 5)
	tree, err := shapetree.New(root)
	require.NoError(t, err)
	require.EqualValues(t, 1, tree.Iterations())
	require.Equal(t, [][]shape.Shape{{root}}, tree.Levels())
}

func TestNew_CompositeSchema(t *testing.T) {
	tc2 := shape.NewTripleConstraint(2, 31, 5)
	tc3 := shape.NewTripleConstraint(3, 19, 84)
	and1 := shape.NewShapeAnd(1, tc2, tc3)

	tree, err := shapetree.New(and1)
	require.NoError(t, err)
	require.EqualValues(t, 2, tree.Iterations())
	levels := tree.Levels()
	require.ElementsMatch(t, []shape.Shape{tc2, tc3}, levels[0])
	require.Equal(t, []shape.Shape{and1}, levels[1])
}

func TestNew_CardinalitySchema(t *testing.T) {
	tc2 := shape.NewTripleConstraint(2, 31, 5)
	tc3 := shape.NewTripleConstraint(3, 166, 11448906)
	card := shape.NewCardinality(tc3, shape.Inclusive(0), shape.Inclusive(1))
	and1 := shape.NewShapeAnd(1, tc2, card)

	tree, err := shapetree.New(and1)
	require.NoError(t, err)
	require.EqualValues(t, 3, tree.Iterations())
	require.True(t, tree.Gated(tc3))
	require.False(t, tree.Gated(tc2))
}

func TestNew_DuplicateLabelRejected(t *testing.T) {
	tc2a := shape.NewTripleConstraint(2, 31, 5)
	tc2b := shape.NewTripleConstraint(2, 19, 84) // same label, different node
	and1 := shape.NewShapeAnd(1, tc2a, tc2b)

	_, err := shapetree.New(and1)
	require.Error(t, err)
	require.True(t, errors.Is(err, shapetree.ErrDuplicateLabel))
}

func TestNew_NilRoot(t *testing.T) {
	_, err := shapetree.New(nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, shapetree.ErrNilShape))
}
