// SPDX-License-Identifier: MIT

package hamming

import (
	"fmt"
	"io"
)

// Summary describes every registry entry, redirect nodes included, in
// ascending code order.
func (c *Clusterer) Summary() []GroupSummary {
	out := make([]GroupSummary, 0, c.codes.Len())
	c.codes.Scan(func(e entry) bool {
		out = append(out, c.describe(e.idx))
		return true
	})

	return out
}

// Clusters describes the surviving roots only, in ascending root code order.
func (c *Clusterer) Clusters() []GroupSummary {
	out := make([]GroupSummary, 0, c.forest.Groups())
	c.codes.Scan(func(e entry) bool {
		if c.forest.IsRoot(e.idx) {
			out = append(out, c.describe(e.idx))
		}
		return true
	})

	return out
}

// WriteSummary writes one line per surviving cluster:
//
//	cluster <root code> rank <rank> members [<ids>]
func (c *Clusterer) WriteSummary(w io.Writer) error {
	for _, g := range c.Clusters() {
		if _, err := fmt.Fprintf(w, "cluster %d rank %d members %v\n", g.Root, g.Rank, g.Members); err != nil {
			return err
		}
	}

	return nil
}

func (c *Clusterer) describe(idx int) GroupSummary {
	root, _ := c.forest.Find(idx)
	rank, _ := c.forest.Rank(idx)
	g := c.groups[idx]
	members := make([]uint32, len(g.members))
	copy(members, g.members)

	return GroupSummary{
		Code:    g.code,
		Root:    c.groups[root].code,
		Rank:    rank,
		Members: members,
	}
}
