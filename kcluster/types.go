// SPDX-License-Identifier: MIT

package kcluster

import (
	"errors"

	"github.com/katalvlaran/lvcluster/metrics"
	"go.uber.org/zap"
)

// ErrInvalidK indicates a requested cluster count below one.
var ErrInvalidK = errors.New("kcluster: k must be at least 1")

// ErrNoEdges indicates that Cluster was called before any edge was added.
var ErrNoEdges = errors.New("kcluster: graph has no edges")

// ErrVertexNotFound indicates a vertex id that was never registered.
var ErrVertexNotFound = errors.New("kcluster: vertex not found")

// Edge is an immutable weighted connection between two vertex ids.
type Edge struct {
	Weight int32
	Start  uint32
	End    uint32
}

// Option configures a Clusterer.
type Option func(*Clusterer)

// WithLogger sets the logger used for diagnostics. A nil logger panics.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("kcluster: WithLogger(nil)")
	}

	return func(c *Clusterer) { c.logger = l }
}

// WithMetrics reports unions and runs to m.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Clusterer) { c.metrics = m }
}

// WithCapacity pre-sizes the vertex and edge registries.
func WithCapacity(vertices, edges int) Option {
	return func(c *Clusterer) {
		c.vertexCap = vertices
		c.edgeCap = edges
	}
}
