// SPDX-License-Identifier: MIT
// errors.go — sentinel errors and structured Kind for the validator package.
package validator

import (
	"errors"
	"fmt"
)

// Kind classifies why a validation run failed, mirroring the five
// error kinds a caller needs to branch on.
type Kind int

const (
	// KindSchemaFieldMissing means the edge table lacks a required
	// column.
	KindSchemaFieldMissing Kind = iota
	// KindEmptyColumn means a required column is present but empty.
	KindEmptyColumn
	// KindCyclicShape means the shape graph contains a cycle. New also
	// reports a nil root shape under this kind (wrapping
	// shapetree.ErrNilShape).
	KindCyclicShape
	// KindDuplicateLabel means two shape nodes declare the same label.
	KindDuplicateLabel
	// KindEngineError means the BSP engine failed mid-run (currently
	// only context cancellation).
	KindEngineError
)

// String renders the Kind's name, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindSchemaFieldMissing:
		return "SchemaFieldMissing"
	case KindEmptyColumn:
		return "EmptyColumn"
	case KindCyclicShape:
		return "CyclicShape"
	case KindDuplicateLabel:
		return "DuplicateLabel"
	case KindEngineError:
		return "EngineError"
	default:
		return "Unknown"
	}
}

// Error is what Validate returns on failure: the structured Kind plus
// the underlying sentinel-wrapped error from the owning package
// (table, shapetree or bsp). errors.Is(err, table.ErrEmptyColumn) and
// similar still work through Unwrap; Kind is for callers that prefer a
// closed switch instead.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("validator: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func classify(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// As is a convenience wrapper around errors.As for *Error.
func As(err error, target *Error) bool {
	var e *Error
	if errors.As(err, &e) {
		*target = *e
		return true
	}
	return false
}
