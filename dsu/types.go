// SPDX-License-Identifier: MIT

package dsu

import "errors"

// ErrIndexOutOfRange indicates an index that was never handed out by Add.
// Callers treat it as a construction bug, never as a retryable condition.
var ErrIndexOutOfRange = errors.New("dsu: index out of range")

// InitialRank is the rank of every freshly added singleton.
const InitialRank uint32 = 1

// Merge describes the outcome of a Union call.
type Merge struct {
	// Root is the index of the surviving root.
	Root int

	// Absorbed is the index of the root that was attached under Root.
	// It equals Root when Merged is false.
	Absorbed int

	// Merged is false for redundant unions (both elements already shared a root).
	Merged bool
}
