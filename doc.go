// SPDX-License-Identifier: MIT

// Package lvcluster is an in-memory union-find clustering engine with two
// strategies sharing one partitioning primitive.
//
// Under the hood, everything is organized under these subpackages:
//
//	dsu/      — index-addressed disjoint-set forest (path compression, union by rank)
//	bitmask/  — one-bit and two-bit XOR mask tables for code neighbor enumeration
//	kcluster/ — maximum-spacing k-clustering of a weighted graph (Kruskal-style)
//	hamming/  — neighbor-distance clustering of fixed-width binary codes
//	input/    — readers for edge files and bit-code files
//	config/   — YAML run configuration and zap logger construction
//	metrics/  — Prometheus collectors for unions, passes and anomalies
//
// Quick example:
//
//	c := kcluster.New()
//	c.AddEdge(1, 2, 1)
//	c.AddEdge(2, 3, 7)
//	spacing, _ := c.Cluster(2) // 7
//
// The cmd/lvcluster command wires the readers, both clusterers, logging and
// metrics into a single batch run.
//
//	go install github.com/katalvlaran/lvcluster/cmd/lvcluster@latest
package lvcluster
