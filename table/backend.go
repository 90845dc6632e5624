package table

import "context"

// EdgeSource produces an EdgeTable from some external store. It is the
// extension point an ingest backend (DuckDB, Parquet, N-Triples) would
// implement; this module ships none — see SPEC_FULL.md §1/§4.9. A caller
// that already holds edges in memory never needs one: it can build an
// *EdgeTable literal directly.
type EdgeSource interface {
	LoadEdges(ctx context.Context) (*EdgeTable, error)
}

// ResultSink consumes a ResultTable produced by validation, handing it to
// an external egress backend. This module ships none.
type ResultSink interface {
	WriteResult(ctx context.Context, result *ResultTable) error
}
