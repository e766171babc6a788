// SPDX-License-Identifier: MIT

package hamming

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcluster/bitmask"
	"github.com/katalvlaran/lvcluster/dsu"
	"github.com/katalvlaran/lvcluster/metrics"
	"github.com/tidwall/btree"
	"go.uber.org/zap"
)

// entry is a registry item: a code and the forest index of its group.
type entry struct {
	code uint32
	idx  int
}

func entryLess(a, b entry) bool { return a.code < b.code }

// group is the arena record aligned with the forest index.
// Invariant: members is empty unless the group is a root.
type group struct {
	code    uint32
	members []uint32
}

// Clusterer holds the code registry, the vertex → code map and the forest.
type Clusterer struct {
	width     int
	limit     uint32
	codes     *btree.BTreeG[entry]
	groups    []group
	forest    *dsu.Forest
	vertices  map[uint32]uint32
	neighbors bitmask.Table

	linkage   Linkage
	logger    *zap.Logger
	metrics   *metrics.Collector
	vertexCap int
}

// New returns an empty Clusterer for codes of the given bit width.
func New(width int, opts ...Option) (*Clusterer, error) {
	if width < 1 || width > bitmask.MaxWidth {
		return nil, fmt.Errorf("width %d: %w", width, ErrInvalidWidth)
	}
	neighbors, err := bitmask.Neighbors(width)
	if err != nil {
		return nil, err
	}

	c := &Clusterer{
		width:     width,
		limit:     ^uint32(0) >> (bitmask.MaxWidth - width),
		codes:     btree.NewBTreeG[entry](entryLess),
		neighbors: neighbors,
		linkage:   LinkageComplete,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.vertices = make(map[uint32]uint32, c.vertexCap)
	c.forest = dsu.New(0)

	return c, nil
}

// Width returns the declared code width.
func (c *Clusterer) Width() int { return c.width }

// Linkage returns the merge criterion in use.
func (c *Clusterer) Linkage() Linkage { return c.linkage }

// Size returns the number of registered vertices and distinct codes.
func (c *Clusterer) Size() (vertices, codes int) {
	return len(c.vertices), c.codes.Len()
}

// Groups returns the current number of disjoint groups.
func (c *Clusterer) Groups() int { return c.forest.Groups() }

// AddVertex registers vertex with code. A new code gets its own root group;
// a known code receives the vertex at the end of its group's member list.
// Duplicate vertex ids are logged and ignored.
func (c *Clusterer) AddVertex(vertex, code uint32) error {
	if code&^c.limit != 0 {
		return fmt.Errorf("vertex %d code %#x width %d: %w", vertex, code, c.width, ErrCodeOutOfRange)
	}
	if prev, dup := c.vertices[vertex]; dup {
		c.logger.Warn("duplicate vertex ignored",
			zap.Uint32("vertex", vertex),
			zap.Uint32("code", code),
			zap.Uint32("registered_code", prev),
		)
		c.metrics.Duplicate()
		return nil
	}
	c.vertices[vertex] = code

	if e, ok := c.codes.Get(entry{code: code}); ok {
		// Keep non-root lists empty: late arrivals join the current root.
		root, _ := c.forest.Find(e.idx)
		c.groups[root].members = append(c.groups[root].members, vertex)
		return nil
	}
	idx := c.forest.Add()
	c.groups = append(c.groups, group{code: code, members: []uint32{vertex}})
	c.codes.Set(entry{code: code, idx: idx})

	return nil
}

// Cluster merges neighboring code groups whose cross-pair spacing, as chosen
// by the linkage, is below maxDist. It returns the number of merges made.
func (c *Clusterer) Cluster(maxDist int) int {
	start := time.Now()

	// 1. Snapshot before any merge so iteration order is fixed.
	snapshot := make([]entry, 0, c.codes.Len())
	c.codes.Scan(func(e entry) bool {
		snapshot = append(snapshot, e)
		return true
	})

	merges := 0
	for _, src := range snapshot {
		for i := 0; i < c.neighbors.Len(); i++ {
			// 2. Candidate neighbor code.
			dest, ok := c.codes.Get(entry{code: src.code ^ c.neighbors.Get(i)})
			if !ok {
				continue
			}

			// 3. Effective roots of both sides.
			from, ok := c.effective(src.idx)
			if !ok {
				continue
			}
			to, ok := c.effective(dest.idx)
			if !ok || from == to {
				continue
			}

			// 4. Merge test.
			lo, hi, ok := c.spacingOf(from, to)
			if !ok {
				continue
			}
			d := hi
			if c.linkage == LinkageSingle {
				d = lo
			}
			if d >= maxDist {
				continue
			}

			// 5. Union; from wins ties.
			if c.union(from, to) {
				merges++
			}
		}
	}

	c.metrics.Run(metrics.StrategyHamming, c.forest.Groups(), time.Since(start).Seconds())
	c.logger.Debug("cluster done",
		zap.Int("max_dist", maxDist),
		zap.Stringer("linkage", c.linkage),
		zap.Int("merges", merges),
		zap.Int("groups", c.forest.Groups()),
	)

	return merges
}

// effective resolves idx to the root currently holding its members.
func (c *Clusterer) effective(idx int) (int, bool) {
	if len(c.groups[idx].members) > 0 {
		return idx, true
	}
	root, err := c.forest.Find(idx)
	if err != nil || root == idx {
		c.logger.Error("group has no members and no parent",
			zap.Uint32("code", c.groups[idx].code),
			zap.Int("index", idx),
		)
		c.metrics.Anomaly()
		return 0, false
	}

	return root, true
}

// union links two roots and migrates the absorbed member list.
func (c *Clusterer) union(x, y int) bool {
	m, err := c.forest.Union(x, y)
	if err != nil {
		return false
	}
	c.metrics.Union(metrics.StrategyHamming, m.Merged)
	if !m.Merged {
		return false
	}
	winner, loser := &c.groups[m.Root], &c.groups[m.Absorbed]
	winner.members = append(winner.members, loser.members...)
	loser.members = nil

	c.logger.Debug("union",
		zap.Uint32("root", winner.code),
		zap.Uint32("absorbed", loser.code),
		zap.Int("members", len(winner.members)),
		zap.Int("groups", c.forest.Groups()),
	)

	return true
}

// Find returns the root code of code's group.
func (c *Clusterer) Find(code uint32) (uint32, bool) {
	e, ok := c.codes.Get(entry{code: code})
	if !ok {
		return 0, false
	}
	root, err := c.forest.Find(e.idx)
	if err != nil {
		return 0, false
	}

	return c.groups[root].code, true
}

// SameGroup reports whether codes a and b share a root. ok is false when
// either code is unknown.
func (c *Clusterer) SameGroup(a, b uint32) (same, ok bool) {
	ra, ok := c.Find(a)
	if !ok {
		return false, false
	}
	rb, ok := c.Find(b)
	if !ok {
		return false, false
	}

	return ra == rb, true
}

// Union merges the groups of codes a and b unconditionally. On equal ranks
// the root of a wins. merged is false for redundant unions; ok is false when
// either code is unknown.
func (c *Clusterer) Union(a, b uint32) (merged, ok bool) {
	ea, ok := c.codes.Get(entry{code: a})
	if !ok {
		return false, false
	}
	eb, ok := c.codes.Get(entry{code: b})
	if !ok {
		return false, false
	}
	ra, _ := c.forest.Find(ea.idx)
	rb, _ := c.forest.Find(eb.idx)

	return c.union(ra, rb), true
}

// CodeOf returns the code vertex was registered with.
func (c *Clusterer) CodeOf(vertex uint32) (uint32, bool) {
	code, ok := c.vertices[vertex]
	return code, ok
}
