// SPDX-License-Identifier: MIT
// Package table: sentinel error set for field validation (C6).
//
// Error policy, following the convention set by core/types.go and
// matrix/errors.go in the original lvlath sources:
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Context (the offending column name) is attached with tableErrorf,
//     never by formatting a new ad-hoc string.
package table

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaFieldMissing indicates a required column is absent (nil)
	// from the edge table, or the edge table itself is nil.
	ErrSchemaFieldMissing = errors.New("table: required field missing")

	// ErrEmptyColumn indicates a required column is present (non-nil)
	// but has zero rows.
	ErrEmptyColumn = errors.New("table: required column is empty")

	// ErrColumnLengthMismatch indicates two columns that must be
	// parallel (same row count) are not.
	ErrColumnLengthMismatch = errors.New("table: column length mismatch")
)

// tableErrorf wraps a sentinel with the offending field name so
// errors.Is(err, ErrX) still succeeds while the message stays actionable.
func tableErrorf(field string, sentinel error) error {
	return fmt.Errorf("table: field %q: %w", field, sentinel)
}

// ValidateEdgeTable checks that e has the three required columns, each
// non-empty and of equal length, and that any optional DType column, if
// present, is parallel to them. It is the only gate the BSP engine (C4)
// trusts; the engine itself performs no further schema checks.
//
// Required columns, in check order: subject, predicate, object.
func ValidateEdgeTable(e *EdgeTable) error {
	if e == nil {
		return tableErrorf("subject", ErrSchemaFieldMissing)
	}

	required := []struct {
		name string
		col  []VertexID
	}{
		{"subject", e.Subject},
		{"predicate", e.Predicate},
		{"object", e.Object},
	}

	for _, f := range required {
		if f.col == nil {
			return tableErrorf(f.name, ErrSchemaFieldMissing)
		}
		if len(f.col) == 0 {
			return tableErrorf(f.name, ErrEmptyColumn)
		}
	}

	n := len(e.Subject)
	if len(e.Predicate) != n || len(e.Object) != n {
		return tableErrorf("subject/predicate/object", ErrColumnLengthMismatch)
	}
	if len(e.DType) != 0 && len(e.DType) != n {
		return tableErrorf("dtype", ErrColumnLengthMismatch)
	}

	return nil
}
