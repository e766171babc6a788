package metrics_test

import (
	"testing"

	"github.com/katalvlaran/lvcluster/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_Records(t *testing.T) {
	c := metrics.New(prometheus.NewRegistry())

	c.Union(metrics.StrategyWeighted, true)
	c.Union(metrics.StrategyWeighted, true)
	c.Union(metrics.StrategyWeighted, false)
	c.Duplicate()
	c.Anomaly()
	c.Run(metrics.StrategyHamming, 4, 0.02)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Unions.WithLabelValues(metrics.StrategyWeighted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.RedundantUnions.WithLabelValues(metrics.StrategyWeighted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DuplicateVertices))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Anomalies))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Runs.WithLabelValues(metrics.StrategyHamming)))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.Groups.WithLabelValues(metrics.StrategyHamming)))
}

func TestCollector_NilSafe(t *testing.T) {
	var c *metrics.Collector
	assert.NotPanics(t, func() {
		c.Union(metrics.StrategyHamming, true)
		c.Run(metrics.StrategyHamming, 1, 0)
		c.Duplicate()
		c.Anomaly()
	})
}

func TestNew_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) }, "a second registration on the same registry must collide")
}
