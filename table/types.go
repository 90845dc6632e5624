package table

// VertexID identifies a vertex (a Wikidata-style entity) in the graph.
type VertexID = uint32

// PredicateID identifies an edge label (a Wikidata-style property).
type PredicateID = uint32

// Label identifies a shape in a schema. Schemas of up to 255 shapes fit in
// a single byte, which keeps the per-vertex Labels column cheap to store
// and to test for membership in.
type Label = uint8

// DType tags the datatype of a literal edge object. The ordinal values
// mirror the original DataType enum one-for-one so a future DuckDB/Parquet
// backend can reuse the same on-disk encoding.
type DType uint8

const (
	// DTypeUnknown marks an edge with no recorded datatype (e.g. the
	// dtype column is absent).
	DTypeUnknown DType = iota
	DTypeQuantity
	DTypeCoordinate
	DTypeString
	DTypeDateTime
	DTypeEntity
)

// String renders the DType's name, for diagnostics.
func (d DType) String() string {
	switch d {
	case DTypeQuantity:
		return "Quantity"
	case DTypeCoordinate:
		return "Coordinate"
	case DTypeString:
		return "String"
	case DTypeDateTime:
		return "DateTime"
	case DTypeEntity:
		return "Entity"
	default:
		return "Unknown"
	}
}

// EdgeTable is the columnar input to a validation run: one row per edge.
// Subject, Predicate and Object are required and must be non-empty.
// DType is optional; it is nil when the backend does not tag datatypes.
type EdgeTable struct {
	Subject   []VertexID
	Predicate []PredicateID
	Object    []VertexID
	DType     []DType // optional: len(DType) == 0 or len(DType) == NumRows()
}

// NumRows returns the number of edges in the table.
func (e *EdgeTable) NumRows() int {
	if e == nil {
		return 0
	}
	return len(e.Subject)
}

// HasDType reports whether the table carries a per-row datatype tag.
func (e *EdgeTable) HasDType() bool {
	return e != nil && len(e.DType) == len(e.Subject) && len(e.DType) > 0
}

// VertexTable is the mutable per-vertex state the BSP engine threads
// through supersteps: one row per distinct vertex id, with a Labels list
// column that only ever grows (spec invariant: labels are monotone).
type VertexTable struct {
	ID     []VertexID
	Labels [][]Label // Labels[i] is vertex ID[i]'s current label set
}

// NumRows returns the number of vertices in the table.
func (v *VertexTable) NumRows() int {
	if v == nil {
		return 0
	}
	return len(v.ID)
}

// ResultTable is the post-validation output: the subset of edges whose
// subject vertex conformed to at least one shape, annotated with the
// labels that vertex carries.
type ResultTable struct {
	Subject   []VertexID
	Predicate []PredicateID
	Object    []VertexID
	Labels    [][]Label
}

// NumRows returns the number of edges in the result.
func (r *ResultTable) NumRows() int {
	if r == nil {
		return 0
	}
	return len(r.Subject)
}
