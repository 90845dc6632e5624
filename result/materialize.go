package result

import "github.com/katalvlaran/pschema/table"

// Materialize keeps vertices whose Labels list is non-empty, then
// left-joins edges to those vertices on edge subject == vertex id,
// projecting (subject, predicate, object, labels).
func Materialize(vertices *table.VertexTable, edges *table.EdgeTable) *table.ResultTable {
	labelsByVertex := make(map[table.VertexID][]table.Label, vertices.NumRows())
	for i, id := range vertices.ID {
		if len(vertices.Labels[i]) > 0 {
			labelsByVertex[id] = vertices.Labels[i]
		}
	}

	out := &table.ResultTable{}
	for i := 0; i < edges.NumRows(); i++ {
		subj := edges.Subject[i]
		labels, ok := labelsByVertex[subj]
		if !ok {
			continue
		}
		out.Subject = append(out.Subject, subj)
		out.Predicate = append(out.Predicate, edges.Predicate[i])
		out.Object = append(out.Object, edges.Object[i])
		out.Labels = append(out.Labels, labels)
	}
	return out
}
