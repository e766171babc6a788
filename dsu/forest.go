// SPDX-License-Identifier: MIT

package dsu

import "fmt"

// Forest is an index-addressed union-find arena.
type Forest struct {
	parent []int
	rank   []uint32
	groups int
}

// New returns an empty Forest with room for capacity elements.
func New(capacity int) *Forest {
	if capacity < 0 {
		capacity = 0
	}

	return &Forest{
		parent: make([]int, 0, capacity),
		rank:   make([]uint32, 0, capacity),
	}
}

// Add registers a new singleton group and returns its index.
func (f *Forest) Add() int {
	idx := len(f.parent)
	f.parent = append(f.parent, idx)
	f.rank = append(f.rank, InitialRank)
	f.groups++

	return idx
}

// Len returns the number of registered elements.
func (f *Forest) Len() int { return len(f.parent) }

// Groups returns the current number of disjoint groups.
func (f *Forest) Groups() int { return f.groups }

// Find returns the root of x and compresses the visited path onto it.
func (f *Forest) Find(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	// 1. Walk up to the root.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}

	// 2. Point every node on the path directly at the root.
	for f.parent[x] != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}

	return root, nil
}

// Same reports whether x and y belong to the same group.
func (f *Forest) Same(x, y int) (bool, error) {
	rx, err := f.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := f.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Union merges the groups of x and y by rank.
//
// On equal ranks the root of x becomes the new root and its rank is
// incremented. A redundant union (same root) returns Merged == false and
// leaves the group count unchanged.
func (f *Forest) Union(x, y int) (Merge, error) {
	rx, err := f.Find(x)
	if err != nil {
		return Merge{}, err
	}
	ry, err := f.Find(y)
	if err != nil {
		return Merge{}, err
	}
	if rx == ry {
		return Merge{Root: rx, Absorbed: rx}, nil
	}

	switch {
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = rx
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = ry
		rx, ry = ry, rx
	default:
		f.parent[ry] = rx
		f.rank[rx]++
	}
	f.groups--

	return Merge{Root: rx, Absorbed: ry, Merged: true}, nil
}

// Rank returns the rank recorded for x. Only root ranks are meaningful.
func (f *Forest) Rank(x int) (uint32, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.rank[x], nil
}

// Parent returns the stored parent pointer of x without compressing.
func (f *Forest) Parent(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.parent[x], nil
}

// IsRoot reports whether x currently points at itself.
func (f *Forest) IsRoot(x int) bool {
	return x >= 0 && x < len(f.parent) && f.parent[x] == x
}

func (f *Forest) check(x int) error {
	if x < 0 || x >= len(f.parent) {
		return fmt.Errorf("index %d of %d: %w", x, len(f.parent), ErrIndexOutOfRange)
	}

	return nil
}
