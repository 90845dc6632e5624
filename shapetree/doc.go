// Package shapetree builds the reverse level-order schedule the BSP
// engine (package bsp) drives a shape through: each level holds the
// nodes at one depth of the tree, deepest first, so the deepest leaves
// occupy level 0 and every shape's children lie in strictly earlier
// levels (a leaf nearer the root sits at a later level). The number of levels is
// the number of supersteps the engine must run.
//
// Construction also rejects cyclic shape graphs (classic three-colour
// DFS, adapted from the depth-first package's cycle detector) and
// schemas that reuse a label across distinct nodes.
package shapetree
