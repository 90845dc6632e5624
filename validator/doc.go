// Package validator is the public entry point: it wires the shape
// algebra (package shape), the shape-tree scheduler (package
// shapetree), the BSP engine (package bsp) and the result materialiser
// (package result) behind a single Validate call.
//
// A Validator has exactly four observable states: Built, Validated,
// FailedSchema and FailedEmpty. There is no intermediate state visible
// to callers — Validate either returns a ResultTable (Validated) or an
// error (FailedSchema / FailedEmpty / an engine error), never both.
//
// A malformed shape graph (a cycle, or two nodes sharing a label) is
// detected eagerly in New, but the error is only surfaced on the first
// Validate call, so Built remains the only state a caller can observe
// between construction and the first run.
package validator
