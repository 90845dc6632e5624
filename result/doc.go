// Package result materialises the BSP engine's output vertex frame
// into the final result table: the subset of edges whose subject
// conformed to at least one shape, each row annotated with that
// subject's accumulated labels.
package result
