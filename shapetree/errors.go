// SPDX-License-Identifier: MIT
// errors.go — sentinel errors for the shapetree package.
//
// Error policy: only package-level sentinels are exposed; callers
// branch on them with errors.Is. Context is attached with %w, never by
// stringifying into the sentinel itself.
package shapetree

import (
	"errors"
	"fmt"
)

// ErrCyclicShape indicates the shape graph rooted at the value passed
// to New contains a cycle, making level-order scheduling undefined.
var ErrCyclicShape = errors.New("shapetree: cyclic shape graph")

// ErrDuplicateLabel indicates two distinct shape nodes in the same
// schema declare the same label, violating the label-uniqueness
// precondition.
var ErrDuplicateLabel = errors.New("shapetree: duplicate label")

// ErrNilShape indicates New was called with a nil root.
var ErrNilShape = errors.New("shapetree: nil root shape")

func shapetreeErrorf(op string, sentinel error) error {
	return fmt.Errorf("shapetree: %s: %w", op, sentinel)
}
