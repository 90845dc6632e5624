// Package table defines the columnar edge/vertex/result tables that the
// validator operates on, the optional datatype tag attached to literal
// objects, and the field-validation helpers that check an incoming edge
// table before a validation run begins.
//
// Tables are plain struct-of-slices: there is no dataframe engine
// underneath. Each column is an independent slice indexed by row number,
// which keeps the representation trivially compatible with an external
// columnar producer (Arrow, Parquet, a SQL driver) without requiring this
// package to depend on one.
package table
