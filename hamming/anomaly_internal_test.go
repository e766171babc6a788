package hamming

import (
	"testing"

	"github.com/katalvlaran/lvcluster/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestCluster_EmptyRootIsSkipped corrupts a root's member list and checks that
// the pass logs the anomaly, skips the affected checks and keeps going.
func TestCluster_EmptyRootIsSkipped(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	m := metrics.New(prometheus.NewRegistry())
	c, err := New(3, WithLogger(zap.New(core)), WithMetrics(m))
	require.NoError(t, err)

	require.NoError(t, c.AddVertex(1, 0b000))
	require.NoError(t, c.AddVertex(2, 0b001))
	require.NoError(t, c.AddVertex(3, 0b110))
	require.NoError(t, c.AddVertex(4, 0b111))

	e, ok := c.codes.Get(entry{code: 0b000})
	require.True(t, ok)
	c.groups[e.idx].members = nil

	c.Cluster(2)

	assert.Positive(t, logs.FilterMessage("group has no members and no parent").Len())
	assert.Positive(t, testutil.ToFloat64(m.Anomalies))

	// 110 and 111 are unaffected and still merge.
	same, ok := c.SameGroup(0b110, 0b111)
	require.True(t, ok)
	assert.True(t, same)

	// 000 never merged anywhere.
	root, ok := c.Find(0b000)
	require.True(t, ok)
	assert.Equal(t, uint32(0b000), root)
}

func TestSpacingOf_SkipsSelfPairs(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)
	require.NoError(t, c.AddVertex(1, 0b01))

	_, _, ok := c.spacingOf(0, 0)
	assert.False(t, ok, "a lone vertex paired with itself has no cross pair")
}
