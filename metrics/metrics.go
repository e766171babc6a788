// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for the clustering engine.
//
// Collectors are registered on a caller-supplied Registerer rather than the
// global default, so tests and one-shot CLI runs can use a private registry.
// All methods are safe on a nil *Collector, which is what the clusterers
// hold when no metrics were requested.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Strategy label values.
const (
	StrategyWeighted = "weighted"
	StrategyHamming  = "hamming"
)

// Collector groups every metric the clusterers report.
type Collector struct {
	// Unions counts non-redundant unions, labeled by strategy.
	Unions *prometheus.CounterVec

	// RedundantUnions counts unions between already-equivalent elements.
	RedundantUnions *prometheus.CounterVec

	// Runs counts clustering passes, labeled by strategy.
	Runs *prometheus.CounterVec

	// Groups reports the group count after the latest pass.
	Groups *prometheus.GaugeVec

	// DuplicateVertices counts rejected duplicate vertex registrations.
	DuplicateVertices prometheus.Counter

	// Anomalies counts skipped neighbor checks caused by broken invariants.
	Anomalies prometheus.Counter

	// RunDuration observes the wall time of a clustering pass.
	RunDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		Unions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvcluster_unions_total",
				Help: "Number of unions that merged two distinct groups",
			},
			[]string{"strategy"},
		),
		RedundantUnions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvcluster_redundant_unions_total",
				Help: "Number of unions whose operands already shared a root",
			},
			[]string{"strategy"},
		),
		Runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvcluster_runs_total",
				Help: "Number of clustering passes",
			},
			[]string{"strategy"},
		),
		Groups: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lvcluster_groups",
				Help: "Number of disjoint groups after the latest pass",
			},
			[]string{"strategy"},
		),
		DuplicateVertices: factory.NewCounter(prometheus.CounterOpts{
			Name: "lvcluster_duplicate_vertices_total",
			Help: "Vertex registrations ignored because the id was already known",
		}),
		Anomalies: factory.NewCounter(prometheus.CounterOpts{
			Name: "lvcluster_anomalies_total",
			Help: "Neighbor checks skipped because a group had no members and no parent",
		}),
		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvcluster_run_duration_seconds",
				Help:    "Wall time of a clustering pass",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
			},
			[]string{"strategy"},
		),
	}
}

// Union records one union attempt.
func (c *Collector) Union(strategy string, merged bool) {
	if c == nil {
		return
	}
	if merged {
		c.Unions.WithLabelValues(strategy).Inc()
		return
	}
	c.RedundantUnions.WithLabelValues(strategy).Inc()
}

// Run records a finished pass with its final group count.
func (c *Collector) Run(strategy string, groups int, seconds float64) {
	if c == nil {
		return
	}
	c.Runs.WithLabelValues(strategy).Inc()
	c.Groups.WithLabelValues(strategy).Set(float64(groups))
	c.RunDuration.WithLabelValues(strategy).Observe(seconds)
}

// Duplicate records an ignored duplicate vertex.
func (c *Collector) Duplicate() {
	if c == nil {
		return
	}
	c.DuplicateVertices.Inc()
}

// Anomaly records a skipped neighbor check.
func (c *Collector) Anomaly() {
	if c == nil {
		return
	}
	c.Anomalies.Inc()
}
