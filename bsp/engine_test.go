package bsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pschema/bsp"
	"github.com/katalvlaran/pschema/shape"
	"github.com/katalvlaran/pschema/shapetree"
	"github.com/katalvlaran/pschema/table"
	"github.com/stretchr/testify/require"
)

func labelsOf(t *testing.T, vt *table.VertexTable, id table.VertexID) []table.Label {
	t.Helper()
	for i, vid := range vt.ID {
		if vid == id {
			return vt.Labels[i]
		}
	}
	return nil
}

func TestEngine_SimpleConstraint_S1(t *testing.T) {
	root := shape.NewTripleConstraint(1, 31, 5)
	tree, err := shapetree.New(root)
	require.NoError(t, err)

	edges := &table.EdgeTable{
		Subject:   []table.VertexID{80, 92743, 84},
		Predicate: []table.PredicateID{31, 31, 17},
		Object:    []table.VertexID{5, 5, 145},
	}

	vt, err := bsp.New(tree).Run(context.Background(), edges)
	require.NoError(t, err)
	require.Equal(t, []table.Label{1}, labelsOf(t, vt, 80))
	require.Equal(t, []table.Label{1}, labelsOf(t, vt, 92743))
	require.Empty(t, labelsOf(t, vt, 84))
}

func TestEngine_CompositeAnd_S2(t *testing.T) {
	tc2 := shape.NewTripleConstraint(2, 31, 5)
	tc3 := shape.NewTripleConstraint(3, 19, 84)
	root := shape.NewShapeAnd(1, tc2, tc3)
	tree, err := shapetree.New(root)
	require.NoError(t, err)

	edges := &table.EdgeTable{
		Subject:   []table.VertexID{80, 80, 92743},
		Predicate: []table.PredicateID{31, 19, 31},
		Object:    []table.VertexID{5, 84, 5},
	}

	vt, err := bsp.New(tree).Run(context.Background(), edges)
	require.NoError(t, err)
	require.ElementsMatch(t, []table.Label{1, 2, 3}, labelsOf(t, vt, 80))
	require.Equal(t, []table.Label{2}, labelsOf(t, vt, 92743))
}

func TestEngine_Reference_S3(t *testing.T) {
	tc2 := shape.NewTripleConstraint(2, 17, 145)
	root := shape.NewShapeReference(1, 19, tc2)
	tree, err := shapetree.New(root)
	require.NoError(t, err)

	edges := &table.EdgeTable{
		Subject:   []table.VertexID{80, 84},
		Predicate: []table.PredicateID{19, 17},
		Object:    []table.VertexID{84, 145},
	}

	vt, err := bsp.New(tree).Run(context.Background(), edges)
	require.NoError(t, err)
	require.Equal(t, []table.Label{2}, labelsOf(t, vt, 84))
	require.Equal(t, []table.Label{1}, labelsOf(t, vt, 80))
	require.Empty(t, labelsOf(t, vt, 145))
}

func TestEngine_Cardinality_S4(t *testing.T) {
	tc2 := shape.NewTripleConstraint(2, 31, 5)
	tc3 := shape.NewTripleConstraint(3, 166, 11448906)
	card := shape.NewCardinality(tc3, shape.Inclusive(0), shape.Inclusive(1))
	root := shape.NewShapeAnd(1, tc2, card)
	tree, err := shapetree.New(root)
	require.NoError(t, err)

	// Vertex 80: Human with exactly one award (in bounds).
	// Vertex 92743: Human with two awards (out of bounds, max=1).
	edges := &table.EdgeTable{
		Subject:   []table.VertexID{80, 80, 92743, 92743, 92743},
		Predicate: []table.PredicateID{31, 166, 31, 166, 166},
		Object:    []table.VertexID{5, 11448906, 5, 11448906, 11448906},
	}

	vt, err := bsp.New(tree).Run(context.Background(), edges)
	require.NoError(t, err)
	require.ElementsMatch(t, []table.Label{1, 2, 3}, labelsOf(t, vt, 80))
	got92743 := labelsOf(t, vt, 92743)
	require.Contains(t, got92743, table.Label(2))
	require.NotContains(t, got92743, table.Label(1))
}

func TestEngine_Disjunction_S5(t *testing.T) {
	tc2 := shape.NewTripleConstraint(2, 31, 5)
	tc3 := shape.NewTripleConstraint(3, 31, 11448906)
	root := shape.NewShapeOr(1, tc2, tc3)
	tree, err := shapetree.New(root)
	require.NoError(t, err)

	edges := &table.EdgeTable{
		Subject:   []table.VertexID{80, 3320352},
		Predicate: []table.PredicateID{31, 31},
		Object:    []table.VertexID{5, 11448906},
	}

	vt, err := bsp.New(tree).Run(context.Background(), edges)
	require.NoError(t, err)
	require.Contains(t, labelsOf(t, vt, 80), table.Label(1))
	require.Contains(t, labelsOf(t, vt, 3320352), table.Label(1))
}
