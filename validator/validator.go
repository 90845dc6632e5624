package validator

import (
	"context"
	"errors"

	"github.com/katalvlaran/pschema/bsp"
	"github.com/katalvlaran/pschema/result"
	"github.com/katalvlaran/pschema/shape"
	"github.com/katalvlaran/pschema/shapetree"
	"github.com/katalvlaran/pschema/table"
)

// Validator wires the shape algebra, the shape-tree scheduler, the BSP
// engine and the result materialiser behind one Validate call. It
// holds no edge-table state between calls: a single Validator can
// validate many edge tables against the same root shape.
//
// New never fails outright: a malformed shape graph (a cycle, or two
// nodes sharing a label) is recorded and only surfaced on the first
// Validate call, keeping Built the sole state a caller observes
// between construction and the first run — matching the no-intermediate-
// state contract.
type Validator struct {
	tree      *shapetree.Tree
	buildErr  error
	validated bool
	lastErr   error
}

// New builds a Validator rooted at start.
func New(start shape.Shape) *Validator {
	tree, err := shapetree.New(start)
	if err != nil {
		kind := KindCyclicShape
		if errors.Is(err, shapetree.ErrDuplicateLabel) {
			kind = KindDuplicateLabel
		}
		return &Validator{buildErr: classify(kind, err)}
	}
	return &Validator{tree: tree}
}

// Validate runs edges through the shape tree's BSP schedule and
// returns the materialised result table.
//
// Failure modes, in check order:
//   - the root shape failed to schedule (cycle or duplicate label):
//     the error recorded by New, surfaced here.
//   - edges fails schema validation (missing/empty required column):
//     *Error{Kind: KindSchemaFieldMissing or KindEmptyColumn}.
//   - the BSP engine fails mid-run (context cancellation):
//     *Error{Kind: KindEngineError}.
//
// On success the returned ResultTable holds one row per
// (subject, predicate, object) edge whose subject accumulated at
// least one label. No partial result is ever returned alongside a
// non-nil error.
func (v *Validator) Validate(edges *table.EdgeTable) (*table.ResultTable, error) {
	v.validated = false
	if v.buildErr != nil {
		v.lastErr = v.buildErr
		return nil, v.buildErr
	}

	if err := table.ValidateEdgeTable(edges); err != nil {
		kind := KindSchemaFieldMissing
		if errors.Is(err, table.ErrEmptyColumn) {
			kind = KindEmptyColumn
		}
		v.lastErr = classify(kind, err)
		return nil, v.lastErr
	}

	engine := bsp.New(v.tree)
	vertices, err := engine.Run(context.Background(), edges)
	if err != nil {
		v.lastErr = classify(KindEngineError, err)
		return nil, v.lastErr
	}

	res := result.Materialize(vertices, edges)
	v.validated = true
	v.lastErr = nil
	return res, nil
}

// Err returns the error from the most recent Validate call, or nil if
// the last call (if any) succeeded.
func (v *Validator) Err() error { return v.lastErr }

// Validated reports whether the most recent Validate call succeeded.
func (v *Validator) Validated() bool { return v.validated }
