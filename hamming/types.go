// SPDX-License-Identifier: MIT

package hamming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcluster/metrics"
	"go.uber.org/zap"
)

// ErrInvalidWidth indicates a code width outside [1, 32].
var ErrInvalidWidth = errors.New("hamming: invalid code width")

// ErrCodeOutOfRange indicates a code with bits set above the declared width.
var ErrCodeOutOfRange = errors.New("hamming: code exceeds width")

// ErrUnknownLinkage indicates a linkage name ParseLinkage does not recognize.
var ErrUnknownLinkage = errors.New("hamming: unknown linkage")

// Linkage selects which cross-pair spacing decides a merge.
type Linkage int

const (
	// LinkageComplete merges when the largest cross-pair spacing is below the threshold.
	LinkageComplete Linkage = iota

	// LinkageSingle merges when the smallest cross-pair spacing is below the threshold.
	LinkageSingle
)

// String returns the config name of l.
func (l Linkage) String() string {
	switch l {
	case LinkageComplete:
		return "complete"
	case LinkageSingle:
		return "single"
	default:
		return fmt.Sprintf("Linkage(%d)", int(l))
	}
}

// ParseLinkage maps "complete" or "single" (case-insensitive) to a Linkage.
// The empty string selects LinkageComplete.
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "complete", "max":
		return LinkageComplete, nil
	case "single", "min":
		return LinkageSingle, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownLinkage)
	}
}

// GroupSummary describes one registry entry.
type GroupSummary struct {
	// Code is the entry's key.
	Code uint32

	// Root is the code at the root of the entry's group.
	Root uint32

	// Rank is the rank stored on the entry.
	Rank uint32

	// Members lists the vertex ids held by the entry. It is empty for redirect nodes.
	Members []uint32
}

// Option configures a Clusterer.
type Option func(*Clusterer)

// WithLogger sets the logger used for diagnostics. A nil logger panics.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("hamming: WithLogger(nil)")
	}

	return func(c *Clusterer) { c.logger = l }
}

// WithMetrics reports unions, runs, duplicates and anomalies to m.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Clusterer) { c.metrics = m }
}

// WithLinkage selects the merge criterion. Unknown values panic.
func WithLinkage(l Linkage) Option {
	if l != LinkageComplete && l != LinkageSingle {
		panic(fmt.Sprintf("hamming: WithLinkage(%d)", int(l)))
	}

	return func(c *Clusterer) { c.linkage = l }
}

// WithCapacity pre-sizes the vertex registry.
func WithCapacity(vertices int) Option {
	return func(c *Clusterer) { c.vertexCap = vertices }
}
