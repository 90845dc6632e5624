// SPDX-License-Identifier: MIT
// errors.go — sentinel errors for the bsp package.
package bsp

import (
	"errors"
	"fmt"
)

// ErrEngine wraps any failure surfaced by a worker during a superstep
// (currently only context cancellation propagated through errgroup).
var ErrEngine = errors.New("bsp: engine error")

func bspErrorf(op string, err error) error {
	return fmt.Errorf("bsp: %s: %w", op, errors.Join(ErrEngine, err))
}
