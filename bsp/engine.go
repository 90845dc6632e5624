package bsp

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pschema/expr"
	"github.com/katalvlaran/pschema/shape"
	"github.com/katalvlaran/pschema/shapetree"
	"github.com/katalvlaran/pschema/table"
)

// Engine runs a shapetree.Tree's supersteps against an edge table.
type Engine struct {
	tree    *shapetree.Tree
	workers int
}

// New builds an Engine for tree. Row evaluation within a superstep is
// sharded across GOMAXPROCS workers; supersteps themselves always run
// strictly in sequence.
func New(tree *shapetree.Tree) *Engine {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	return &Engine{tree: tree, workers: workers}
}

// Run executes every superstep in tree against edges and returns the
// final vertex frame: one row per distinct vertex id, with its
// accumulated Labels.
func (e *Engine) Run(ctx context.Context, edges *table.EdgeTable) (*table.VertexTable, error) {
	vertexIDs := distinctVertices(edges)
	labels := make(map[table.VertexID][]table.Label, len(vertexIDs))
	messages := make(map[table.VertexID][]table.Label, len(vertexIDs))
	for _, id := range vertexIDs {
		labels[id] = nil
		messages[id] = nil
	}

	gatedLabels := gatedLabelSet(e.tree)

	for _, level := range e.tree.Levels() {
		edgeShapes, vertexShapes := splitLevel(level)

		if len(edgeShapes) > 0 {
			matched, err := e.sendPhase(ctx, edges, edgeShapes, labels)
			if err != nil {
				return nil, err
			}
			for vid, lbls := range matched {
				messages[vid] = append(messages[vid], lbls...)
				for _, lbl := range lbls {
					if !gatedLabels[lbl] {
						labels[vid] = appendUnique(labels[vid], lbl)
					}
				}
			}
		}

		if len(vertexShapes) > 0 {
			next, err := e.vertexUpdatePhase(ctx, vertexIDs, labels, messages, vertexShapes)
			if err != nil {
				return nil, err
			}
			labels = next
		}
	}

	return materialize(vertexIDs, labels), nil
}

// foldEdgeChain threads a level's leaf-style shapes into one EdgeExpr:
// shapes[0] gets first refusal, falling through shapes[1], etc., with
// NoMessage as the innermost fallback — "the first matching constraint
// wins" (spec §4.1).
func foldEdgeChain(shapes []shape.EdgeValidator) expr.EdgeExpr {
	acc := expr.EdgeExpr(expr.NoMessage)
	for i := len(shapes) - 1; i >= 0; i-- {
		acc = shapes[i].ValidateEdge(acc)
	}
	return acc
}

// foldVertexChain threads a level's composite-style shapes into one
// VertexExpr, starting from the vertex's current Labels. Unlike
// foldEdgeChain, composites are not mutually exclusive: each may append
// its own label independently, so the chain composes rather than
// picks a single winner.
func foldVertexChain(shapes []shape.VertexValidator) expr.VertexExpr {
	acc := expr.VertexExpr(expr.CurrentLabels)
	for i := len(shapes) - 1; i >= 0; i-- {
		acc = shapes[i].ValidateVertex(acc)
	}
	return acc
}

func (e *Engine) sendPhase(
	ctx context.Context,
	edges *table.EdgeTable,
	edgeShapes []shape.EdgeValidator,
	labels map[table.VertexID][]table.Label,
) (map[table.VertexID][]table.Label, error) {
	msgExpr := foldEdgeChain(edgeShapes)
	n := edges.NumRows()
	hasDType := edges.HasDType()

	type rowResult struct {
		vid table.VertexID
		lbl table.Label
		ok  bool
	}
	results := make([]rowResult, n)

	g, gctx := errgroup.WithContext(ctx)
	for _, shard := range shardRanges(n, e.workers) {
		start, end := shard[0], shard[1]
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			for i := start; i < end; i++ {
				row := expr.EdgeRow{
					Subject:   edges.Subject[i],
					Predicate: edges.Predicate[i],
					Object:    edges.Object[i],
					DstLabels: labels[edges.Object[i]],
				}
				if hasDType {
					row.DType = edges.DType[i]
					row.HasDType = true
				}
				lbl, ok := msgExpr(row)
				results[i] = rowResult{vid: edges.Subject[i], lbl: lbl, ok: ok}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, bspErrorf("sendPhase", err)
	}

	matched := make(map[table.VertexID][]table.Label)
	for _, r := range results {
		if r.ok {
			matched[r.vid] = append(matched[r.vid], r.lbl)
		}
	}
	return matched, nil
}

func (e *Engine) vertexUpdatePhase(
	ctx context.Context,
	ids []table.VertexID,
	labels map[table.VertexID][]table.Label,
	messages map[table.VertexID][]table.Label,
	vertexShapes []shape.VertexValidator,
) (map[table.VertexID][]table.Label, error) {
	vExpr := foldVertexChain(vertexShapes)
	next := make(map[table.VertexID][]table.Label, len(ids))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, shard := range shardRanges(len(ids), e.workers) {
		start, end := shard[0], shard[1]
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			local := make(map[table.VertexID][]table.Label, end-start)
			for i := start; i < end; i++ {
				id := ids[i]
				row := expr.VertexRow{ID: id, Labels: labels[id], Messages: messages[id]}
				local[id] = vExpr(row)
			}
			mu.Lock()
			for k, v := range local {
				next[k] = v
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, bspErrorf("vertexUpdatePhase", err)
	}
	return next, nil
}

// shardRanges divides [0,n) into at most workers contiguous [start,end)
// ranges for the worker pool to process independently.
func shardRanges(n, workers int) [][2]int {
	if n == 0 {
		return nil
	}
	size := (n + workers - 1) / workers
	if size < 1 {
		size = 1
	}
	var shards [][2]int
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		shards = append(shards, [2]int{start, end})
	}
	return shards
}
