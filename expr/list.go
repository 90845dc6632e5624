// list.go implements the list-typed column operators spec.md §4.3 calls
// list.contains, is_in and the ShapeAnd/Or/Cardinality
// membership-and-count tests built on top of them. These are small,
// allocation-free kernels in the style of matrix/ops_elementwise.go's
// private ew* functions: deterministic loops over a flat slice, no hidden
// state.
package expr

import "github.com/katalvlaran/pschema/table"

// ListContains reports whether v occurs in list. Used by ShapeReference's
// "object's labels list contains self.inner.label" condition.
func ListContains(list []table.Label, v table.Label) bool {
	for _, l := range list {
		if l == v {
			return true
		}
	}
	return false
}

// CountEqual returns how many times v occurs in list (duplicates
// preserved by the aggregate phase are significant here — Cardinality
// depends on it).
func CountEqual(list []table.Label, v table.Label) int {
	n := 0
	for _, l := range list {
		if l == v {
			n++
		}
	}
	return n
}

// AllIn reports whether every element of needles occurs at least once in
// haystack. Used by ShapeAnd: all child labels must be present in the
// vertex's Labels.
func AllIn(needles, haystack []table.Label) bool {
	for _, n := range needles {
		if !ListContains(haystack, n) {
			return false
		}
	}
	return true
}

// AnyIn reports whether at least one element of needles occurs in
// haystack. Used by ShapeOr.
func AnyIn(needles, haystack []table.Label) bool {
	for _, n := range needles {
		if ListContains(haystack, n) {
			return true
		}
	}
	return false
}
