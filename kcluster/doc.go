// SPDX-License-Identifier: MIT

// Package kcluster computes a maximum-spacing k-clustering of an undirected,
// weighted graph the way Kruskal's algorithm builds a minimum spanning tree,
// stopping once exactly k groups remain.
//
// What & Why
//
//   - The spacing of a k-clustering is the smallest weight of an edge whose
//     endpoints lie in different clusters. Merging along the cheapest edges
//     first and stopping at k groups maximizes that spacing.
//
//   - The package owns its vertex registry: vertices are created lazily by
//     AddEdge and translated to dense indices of a dsu.Forest.
//
// Algorithm (Cluster)
//
//  1. Stable-sort the edges ascending by weight only. Equal-weight edges keep
//     insertion order; spacing is defined by weight values, never by edge
//     identity, so any tie order reports the same spacing.
//  2. Scan the edges. While more than k groups remain, union the endpoints.
//     Redundant unions (endpoints already grouped) do not count toward k and
//     the scan simply moves on.
//  3. With k groups left, stop merging and look for the first edge whose
//     endpoints are in different groups. Its weight is the spacing.
//  4. If no such edge exists, the weight of the last scanned edge is returned
//     and a warning is logged.
//
// Calling Cluster again continues from the current grouping, so a caller can
// ask for k=3 and then k=2 on the same Clusterer.
//
// Errors
//
//   - ErrInvalidK       : k < 1.
//   - ErrNoEdges        : Cluster on a graph without edges.
//   - ErrVertexNotFound : Find/SameGroup/Union on an id never seen by AddEdge.
//     This is a programming error; the operation is aborted and never retried.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
package kcluster
