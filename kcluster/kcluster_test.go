package kcluster_test

import (
	"testing"

	"github.com/katalvlaran/lvcluster/kcluster"
	"github.com/katalvlaran/lvcluster/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// basicEdges is a complete graph on vertices 1..7 with three natural clusters
// {1,2}, {3,4} and {5,6,7}.
var basicEdges = [][3]int{
	{1, 2, 1}, {1, 3, 4}, {1, 4, 5}, {1, 5, 10}, {1, 6, 11}, {1, 7, 12},
	{2, 3, 3}, {2, 4, 4}, {2, 5, 9}, {2, 6, 10}, {2, 7, 11},
	{3, 4, 1}, {3, 5, 6}, {3, 6, 7}, {3, 7, 8},
	{4, 5, 5}, {4, 6, 6}, {4, 7, 7},
	{5, 6, 1}, {5, 7, 2},
	{6, 7, 1},
}

// buildBasic loads basicEdges into a fresh Clusterer.
func buildBasic(opts ...kcluster.Option) *kcluster.Clusterer {
	c := kcluster.New(opts...)
	for _, e := range basicEdges {
		c.AddEdge(uint32(e[0]), uint32(e[1]), int32(e[2]))
	}

	return c
}

func TestCluster_Basic(t *testing.T) {
	c := buildBasic()
	v, e := c.Size()
	assert.Equal(t, 7, v)
	assert.Equal(t, 21, e)
	assert.Equal(t, 7, c.Groups())

	d, err := c.Cluster(3)
	require.NoError(t, err)
	assert.Equal(t, int32(3), d)
	assert.Equal(t, 3, c.Groups())
	assert.Equal(t, [][]uint32{{1, 2}, {3, 4}, {5, 6, 7}}, c.Clusters())

	// A second call continues from the current grouping.
	d, err = c.Cluster(2)
	require.NoError(t, err)
	assert.Equal(t, int32(5), d)
	assert.Equal(t, 2, c.Groups())
	assert.Equal(t, [][]uint32{{1, 2, 3, 4}, {5, 6, 7}}, c.Clusters())
}

func TestCluster_FreshK2(t *testing.T) {
	c := buildBasic()
	d, err := c.Cluster(2)
	require.NoError(t, err)
	assert.Equal(t, int32(5), d)
}

func TestCluster_SortIsStableByWeight(t *testing.T) {
	c := kcluster.New()
	c.AddEdge(1, 2, 5)
	c.AddEdge(3, 4, 1)
	c.AddEdge(5, 6, 5)
	c.AddEdge(7, 8, 1)

	_, err := c.Cluster(8)
	require.NoError(t, err)
	assert.Equal(t, []kcluster.Edge{
		{Weight: 1, Start: 3, End: 4},
		{Weight: 1, Start: 7, End: 8},
		{Weight: 5, Start: 1, End: 2},
		{Weight: 5, Start: 5, End: 6},
	}, c.Edges())
}

func TestCluster_RedundantUnionsDoNotConsumeK(t *testing.T) {
	c := kcluster.New()
	// A triangle closes a cycle at weight 2 before the bridge at weight 3.
	c.AddEdge(1, 2, 1)
	c.AddEdge(2, 3, 1)
	c.AddEdge(1, 3, 2)
	c.AddEdge(3, 4, 3)
	c.AddEdge(4, 5, 10)

	d, err := c.Cluster(2)
	require.NoError(t, err)
	assert.Equal(t, int32(10), d)
	assert.Equal(t, [][]uint32{{1, 2, 3, 4}, {5}}, c.Clusters())
}

func TestCluster_KAboveVertexCount(t *testing.T) {
	c := kcluster.New()
	c.AddEdge(1, 2, 3)
	c.AddEdge(2, 3, 4)

	d, err := c.Cluster(10)
	require.NoError(t, err)
	assert.Equal(t, int32(3), d, "no merges happen; the cheapest crossing edge is the spacing")
	assert.Equal(t, 3, c.Groups())
}

func TestCluster_FallbackReturnsLastWeight(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := kcluster.New(kcluster.WithLogger(zap.New(core)))
	c.AddEdge(1, 2, 1)
	c.AddEdge(2, 1, 5)
	c.AddEdge(1, 2, 7)

	d, err := c.Cluster(1)
	require.NoError(t, err)
	assert.Equal(t, int32(7), d)
	assert.Equal(t, 1, logs.FilterMessage("no inter-cluster edge found, reporting last scanned weight").Len())
}

func TestCluster_NegativeWeights(t *testing.T) {
	c := kcluster.New()
	c.AddEdge(1, 2, -4)
	c.AddEdge(2, 3, -1)
	c.AddEdge(3, 4, 2)

	d, err := c.Cluster(2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), d)
}

func TestCluster_Errors(t *testing.T) {
	c := kcluster.New()
	_, err := c.Cluster(1)
	assert.ErrorIs(t, err, kcluster.ErrNoEdges)

	c.AddEdge(1, 2, 1)
	_, err = c.Cluster(0)
	assert.ErrorIs(t, err, kcluster.ErrInvalidK)
}

func TestLookup_UnknownVertex(t *testing.T) {
	c := buildBasic()

	_, err := c.Find(99)
	assert.ErrorIs(t, err, kcluster.ErrVertexNotFound)
	_, err = c.SameGroup(1, 99)
	assert.ErrorIs(t, err, kcluster.ErrVertexNotFound)
	_, err = c.Union(99, 1)
	assert.ErrorIs(t, err, kcluster.ErrVertexNotFound)
	assert.Equal(t, 7, c.Groups())
}

func TestUnion_ByVertexID(t *testing.T) {
	c := buildBasic()

	merged, err := c.Union(3, 4)
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = c.Union(4, 3)
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, 6, c.Groups())

	root, err := c.Find(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), root, "equal ranks favor the first argument")

	same, err := c.SameGroup(4, 3)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestCluster_Metrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	c := buildBasic(kcluster.WithMetrics(m), kcluster.WithCapacity(7, 21))

	_, err := c.Cluster(3)
	require.NoError(t, err)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Unions.WithLabelValues(metrics.StrategyWeighted)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Groups.WithLabelValues(metrics.StrategyWeighted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(metrics.StrategyWeighted)))
}

func TestWithLogger_NilPanics(t *testing.T) {
	assert.Panics(t, func() { kcluster.WithLogger(nil) })
}
