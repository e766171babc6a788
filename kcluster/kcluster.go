// SPDX-License-Identifier: MIT

package kcluster

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/lvcluster/dsu"
	"github.com/katalvlaran/lvcluster/metrics"
	"go.uber.org/zap"
)

// edge pairs the public Edge with the forest indices of its endpoints.
type edge struct {
	Edge
	u, v int
}

// Clusterer holds the vertex registry, the edge list and the union-find forest.
type Clusterer struct {
	index  map[uint32]int // vertex id → forest index
	ids    []uint32       // forest index → vertex id
	forest *dsu.Forest
	edges  []edge

	logger    *zap.Logger
	metrics   *metrics.Collector
	vertexCap int
	edgeCap   int
}

// New returns an empty Clusterer.
func New(opts ...Option) *Clusterer {
	c := &Clusterer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	c.index = make(map[uint32]int, c.vertexCap)
	c.ids = make([]uint32, 0, c.vertexCap)
	c.forest = dsu.New(c.vertexCap)
	c.edges = make([]edge, 0, c.edgeCap)

	return c
}

// AddEdge registers u and v if they are new and appends the edge (w, u, v).
func (c *Clusterer) AddEdge(u, v uint32, w int32) {
	e := edge{
		Edge: Edge{Weight: w, Start: u, End: v},
		u:    c.register(u),
		v:    c.register(v),
	}
	c.edges = append(c.edges, e)
}

// register returns the forest index of id, creating a singleton on first sight.
func (c *Clusterer) register(id uint32) int {
	if idx, ok := c.index[id]; ok {
		return idx
	}
	idx := c.forest.Add()
	c.index[id] = idx
	c.ids = append(c.ids, id)

	return idx
}

// Size returns the number of vertices and edges.
func (c *Clusterer) Size() (vertices, edges int) {
	return len(c.ids), len(c.edges)
}

// Groups returns the current number of disjoint groups.
func (c *Clusterer) Groups() int { return c.forest.Groups() }

// Edges returns a copy of the edge list in its current order.
func (c *Clusterer) Edges() []Edge {
	out := make([]Edge, len(c.edges))
	for i, e := range c.edges {
		out[i] = e.Edge
	}

	return out
}

// Cluster merges groups along the cheapest edges until k groups remain and
// returns the spacing: the weight of the first later edge that crosses two
// groups. See the package documentation for the fallback when none does.
func (c *Clusterer) Cluster(k int) (int32, error) {
	if k < 1 {
		return 0, fmt.Errorf("Cluster(%d): %w", k, ErrInvalidK)
	}
	if len(c.edges) == 0 {
		return 0, ErrNoEdges
	}
	start := time.Now()

	// 1. Weight-only stable sort keeps insertion order among ties.
	sort.SliceStable(c.edges, func(i, j int) bool {
		return c.edges[i].Weight < c.edges[j].Weight
	})

	// 2–3. Merge until k groups remain, then find the first crossing edge.
	var (
		distance int32
		crossed  bool
	)
	for i := range c.edges {
		e := &c.edges[i]
		distance = e.Weight

		if c.forest.Groups() > k {
			m, err := c.forest.Union(e.u, e.v)
			if err != nil {
				return 0, err
			}
			c.metrics.Union(metrics.StrategyWeighted, m.Merged)
			if m.Merged {
				c.logger.Debug("union",
					zap.Uint32("start", e.Start),
					zap.Uint32("end", e.End),
					zap.Int32("weight", e.Weight),
					zap.Uint32("root", c.ids[m.Root]),
					zap.Int("groups", c.forest.Groups()),
				)
			}
			continue
		}

		same, err := c.forest.Same(e.u, e.v)
		if err != nil {
			return 0, err
		}
		if !same {
			crossed = true
			break
		}
	}

	// 4. Degenerate case: every remaining edge was intra-cluster.
	if !crossed {
		c.logger.Warn("no inter-cluster edge found, reporting last scanned weight",
			zap.Int("k", k),
			zap.Int("groups", c.forest.Groups()),
			zap.Int32("weight", distance),
		)
	}
	c.metrics.Run(metrics.StrategyWeighted, c.forest.Groups(), time.Since(start).Seconds())
	c.logger.Debug("cluster done",
		zap.Int("k", k),
		zap.Int("groups", c.forest.Groups()),
		zap.Int32("spacing", distance),
	)

	return distance, nil
}

// Find returns the vertex id at the root of id's group.
func (c *Clusterer) Find(id uint32) (uint32, error) {
	idx, err := c.lookup(id)
	if err != nil {
		return 0, err
	}
	root, err := c.forest.Find(idx)
	if err != nil {
		return 0, err
	}

	return c.ids[root], nil
}

// SameGroup reports whether a and b share a group.
func (c *Clusterer) SameGroup(a, b uint32) (bool, error) {
	ia, err := c.lookup(a)
	if err != nil {
		return false, err
	}
	ib, err := c.lookup(b)
	if err != nil {
		return false, err
	}

	return c.forest.Same(ia, ib)
}

// Union merges the groups of a and b. It reports whether a merge happened.
func (c *Clusterer) Union(a, b uint32) (bool, error) {
	ia, err := c.lookup(a)
	if err != nil {
		return false, err
	}
	ib, err := c.lookup(b)
	if err != nil {
		return false, err
	}
	m, err := c.forest.Union(ia, ib)
	if err != nil {
		return false, err
	}
	c.metrics.Union(metrics.StrategyWeighted, m.Merged)

	return m.Merged, nil
}

// Clusters returns the member ids of every group, each sorted ascending and
// the groups ordered by their smallest member.
func (c *Clusterer) Clusters() [][]uint32 {
	byRoot := make(map[int][]uint32, c.forest.Groups())
	for idx, id := range c.ids {
		root, _ := c.forest.Find(idx)
		byRoot[root] = append(byRoot[root], id)
	}
	out := make([][]uint32, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

func (c *Clusterer) lookup(id uint32) (int, error) {
	idx, ok := c.index[id]
	if !ok {
		return 0, fmt.Errorf("vertex %d: %w", id, ErrVertexNotFound)
	}

	return idx, nil
}
