// SPDX-License-Identifier: MIT

package hamming

import "math/bits"

// Distance returns the number of differing bits between two codes.
func Distance(a, b uint32) int {
	return bits.OnesCount32(a ^ b)
}

// Spacing returns the Hamming distance between the codes of two vertices.
// ok is false when either vertex is unregistered.
func (c *Clusterer) Spacing(v1, v2 uint32) (int, bool) {
	a, ok := c.vertices[v1]
	if !ok {
		return 0, false
	}
	b, ok := c.vertices[v2]
	if !ok {
		return 0, false
	}

	return Distance(a, b), true
}

// ClusterSpacing returns the smallest and largest spacing over every cross
// pair of the members currently held by code groups a and b. Pairs of a
// vertex with itself are skipped. ok is false when either code is unknown or
// no cross pair exists (for example, a redirect node has no members).
func (c *Clusterer) ClusterSpacing(a, b uint32) (minSpacing, maxSpacing int, ok bool) {
	ea, ok := c.codes.Get(entry{code: a})
	if !ok {
		return 0, 0, false
	}
	eb, ok := c.codes.Get(entry{code: b})
	if !ok {
		return 0, 0, false
	}

	return c.spacingOf(ea.idx, eb.idx)
}

// spacingOf is ClusterSpacing on arena indices.
func (c *Clusterer) spacingOf(x, y int) (lo, hi int, ok bool) {
	left, right := c.groups[x].members, c.groups[y].members
	for _, va := range left {
		ca := c.vertices[va]
		for _, vb := range right {
			if va == vb {
				continue
			}
			d := Distance(ca, c.vertices[vb])
			if !ok {
				lo, hi, ok = d, d, true
				continue
			}
			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
	}

	return lo, hi, ok
}
