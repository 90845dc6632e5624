package bsp

import (
	"sort"

	"github.com/katalvlaran/pschema/shape"
	"github.com/katalvlaran/pschema/shapetree"
	"github.com/katalvlaran/pschema/table"
)

// distinctVertices returns every vertex id mentioned as a subject or
// object in edges, sorted ascending for deterministic result ordering.
func distinctVertices(edges *table.EdgeTable) []table.VertexID {
	seen := make(map[table.VertexID]struct{}, edges.NumRows()*2)
	for _, id := range edges.Subject {
		seen[id] = struct{}{}
	}
	for _, id := range edges.Object {
		seen[id] = struct{}{}
	}
	out := make([]table.VertexID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// appendUnique appends lbl to list unless it is already present,
// preserving the invariant that a vertex's Labels column never records
// the same label twice.
func appendUnique(list []table.Label, lbl table.Label) []table.Label {
	for _, l := range list {
		if l == lbl {
			return list
		}
	}
	return append(list, lbl)
}

// gatedLabelSet collects the label of every shape the tree marks as
// gated (a Cardinality's direct inner child), so the send phase can
// skip auto-promoting it to a vertex's Labels column.
func gatedLabelSet(tree *shapetree.Tree) map[table.Label]bool {
	gated := make(map[table.Label]bool)
	for _, level := range tree.Levels() {
		for _, s := range level {
			if tree.Gated(s) {
				gated[s.Label()] = true
			}
		}
	}
	return gated
}

// splitLevel partitions a tree level into its leaf-style
// (send-phase) and composite-style (vertex-update-phase) members.
func splitLevel(level []shape.Shape) ([]shape.EdgeValidator, []shape.VertexValidator) {
	var edgeShapes []shape.EdgeValidator
	var vertexShapes []shape.VertexValidator
	for _, s := range level {
		if ev, ok := s.(shape.EdgeValidator); ok {
			edgeShapes = append(edgeShapes, ev)
		}
		if vv, ok := s.(shape.VertexValidator); ok {
			vertexShapes = append(vertexShapes, vv)
		}
	}
	return edgeShapes, vertexShapes
}

// materialize assembles the final vertex table from the accumulated
// per-vertex label map, in deterministic vertex-id order.
func materialize(ids []table.VertexID, labels map[table.VertexID][]table.Label) *table.VertexTable {
	vt := &table.VertexTable{
		ID:     make([]table.VertexID, len(ids)),
		Labels: make([][]table.Label, len(ids)),
	}
	for i, id := range ids {
		vt.ID[i] = id
		vt.Labels[i] = labels[id]
	}
	return vt
}
