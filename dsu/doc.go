// SPDX-License-Identifier: MIT

// Package dsu provides the disjoint-set (union-find) forest shared by the
// kcluster and hamming clustering strategies.
//
// What & Why
//
//   - Elements are addressed by dense integer indices handed out by Add, so the
//     forest is a flat arena of {parent, rank} records. Callers that key their
//     data by something else (vertex ids, bit codes) keep their own
//     key → index map and translate at the boundary.
//
//   - Find walks the parent chain to the root and then rewrites every visited
//     node to point at that root (full path compression).
//
//   - Union links roots by rank. The lower-rank root is attached under the
//     higher-rank root; on a tie the root of the first argument wins and its
//     rank grows by exactly one. The tie rule depends on argument order, and
//     both clustering strategies rely on it being stable.
//
//   - The number of disjoint groups is a field of the Forest. It grows by one
//     per Add and shrinks by one per non-redundant Union; nothing else touches it.
//
// Invariants
//
//   - Following parent pointers from any index terminates at a root whose
//     parent is itself.
//   - A root's rank never decreases.
//   - Groups() == Len() − (number of successful unions).
//
// Complexity
//
//   - Add:   O(1) amortized.
//   - Find:  O(α(n)) amortized.
//   - Union: O(α(n)) amortized.
//   - Memory: O(n).
//
// The Forest is not safe for concurrent use; the clustering engine is
// single-threaded and owns its forest exclusively.
package dsu
