// SPDX-License-Identifier: MIT

// Package unionfind provides a disjoint-set forest whose bookkeeping lives
// outside the nodes it partitions. Any comparable key (a cell index, a vertex
// ID) can be grouped without the key type taking part in the structure.
//
// Find compresses paths (grandparent halving); union is by rank. Neither
// changes which elements are reported as connected.
//
// Complexity: Find/Union/Connected amortised O(α(n)); Components O(n).
package unionfind

import "sort"

// Forest is a disjoint-set forest over keys of type K.
// The zero value is not usable; call New.
type Forest[K comparable] struct {
	parent map[K]K
	rank   map[K]int
	order  []K // insertion order, for deterministic Components
}

// New returns a Forest where each of keys is its own singleton set.
func New[K comparable](keys ...K) *Forest[K] {
	f := &Forest[K]{
		parent: make(map[K]K, len(keys)),
		rank:   make(map[K]int, len(keys)),
		order:  make([]K, 0, len(keys)),
	}
	for _, k := range keys {
		f.Add(k)
	}
	return f
}

// Add inserts k as a singleton. Adding an existing key is a no-op.
func (f *Forest[K]) Add(k K) {
	if _, ok := f.parent[k]; ok {
		return
	}
	f.parent[k] = k
	f.rank[k] = 0
	f.order = append(f.order, k)
}

// Has reports whether k was added.
func (f *Forest[K]) Has(k K) bool {
	_, ok := f.parent[k]
	return ok
}

// Len returns the number of keys in the forest.
func (f *Forest[K]) Len() int {
	return len(f.parent)
}

// Find returns the root of k's set. Unknown keys are added as singletons.
func (f *Forest[K]) Find(k K) K {
	if _, ok := f.parent[k]; !ok {
		f.Add(k)
		return k
	}
	for f.parent[k] != k {
		// grandparent halving
		f.parent[k] = f.parent[f.parent[k]]
		k = f.parent[k]
	}
	return k
}

// Union merges the sets containing a and b.
// It returns false when they were already in the same set.
func (f *Forest[K]) Union(a, b K) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case f.rank[ra] < f.rank[rb]:
		f.parent[ra] = rb
	case f.rank[ra] > f.rank[rb]:
		f.parent[rb] = ra
	default:
		f.parent[rb] = ra
		f.rank[ra]++
	}
	return true
}

// Connected reports whether a and b share a root.
func (f *Forest[K]) Connected(a, b K) bool {
	return f.Find(a) == f.Find(b)
}

// Components returns every set as a slice of members. Sets are ordered by the
// insertion position of their first member; members keep insertion order.
func (f *Forest[K]) Components() [][]K {
	pos := make(map[K]int)
	var out [][]K
	for _, k := range f.order {
		r := f.Find(k)
		i, ok := pos[r]
		if !ok {
			i = len(out)
			pos[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], k)
	}
	return out
}

// Count returns the number of disjoint sets.
func (f *Forest[K]) Count() int {
	roots := make(map[K]struct{})
	for _, k := range f.order {
		roots[f.Find(k)] = struct{}{}
	}
	return len(roots)
}

// SortedSizes returns component sizes in ascending order.
func (f *Forest[K]) SortedSizes() []int {
	comps := f.Components()
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)
	return sizes
}
