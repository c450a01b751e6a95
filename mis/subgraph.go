package mis

import (
	"github.com/ipc2023-classical/planner17-sub002/ngraph"
	"github.com/ipc2023-classical/planner17-sub002/vset"
)

// parentLink points from a child to the parent slot it fills.
type parentLink struct {
	pos, slot int
}

// subgraph is one node of the decomposition DAG. It is identified by the
// exact set of present vertices; the graph itself is dropped once expanded.
//
// Lifecycle: unprocessed → expanded (children attached) → finalized.
// Leaves go straight from unprocessed to finalized.
type subgraph struct {
	hash     uint64
	presence vset.Set
	g        *ngraph.Graph

	root   bool
	branch bool // alternatives (keep the best) vs. components (combine)

	parents  []parentLink
	children []int
	slotMIS  [][]vset.Set // result delivered per child slot
	slotDup  [][]int      // vertices forced into every result of a slot
	filled   []bool
	elem     int // forced vertex of a single-vertex leaf, -1 otherwise

	pending   int
	mis       []vset.Set
	expanded  bool
	finalized bool
}

// attach reserves a new child slot with its dup vertices and returns it.
func (s *subgraph) attach(dup []int) int {
	s.slotMIS = append(s.slotMIS, nil)
	s.slotDup = append(s.slotDup, dup)
	s.filled = append(s.filled, false)
	s.pending++

	return len(s.slotMIS) - 1
}

// leafResult is the result of a subgraph finalized without children:
// its forced vertex, or the empty set.
func (s *subgraph) leafResult(n int) []vset.Set {
	set := vset.New(n)
	if s.elem >= 0 {
		set.Add(s.elem)
	}

	return []vset.Set{set}
}

// merge combines the delivered slot results into the subgraph's own list,
// capped at k entries.
func (s *subgraph) merge(n, k int) []vset.Set {
	var out []vset.Set
	if s.branch {
		out = s.mergeBranch(k)
	} else {
		out = s.mergeComponents(n, k)
	}
	if s.elem >= 0 {
		for _, r := range out {
			r.Add(s.elem)
		}
	}

	return out
}

// mergeBranch applies each slot's dup vertices and keeps the largest
// results in encounter order. Repeated sets are skipped.
func (s *subgraph) mergeBranch(k int) []vset.Set {
	best := -1
	var out []vset.Set
	for slot, rs := range s.slotMIS {
		for _, r := range rs {
			for _, v := range s.slotDup[slot] {
				r.Add(v)
			}
			c := r.Count()
			switch {
			case c > best:
				best = c
				out = append(out[:0], r)
			case c == best && len(out) < k && !containsSet(out, r):
				out = append(out, r)
			}
		}
	}

	return out
}

// mergeComponents builds the cross product of the component results,
// visiting index pairs diagonal by diagonal so the first k combinations
// draw evenly on every list.
func (s *subgraph) mergeComponents(n, k int) []vset.Set {
	acc := []vset.Set{vset.New(n)}
	for slot, rs := range s.slotMIS {
		for _, r := range rs {
			for _, v := range s.slotDup[slot] {
				r.Add(v)
			}
		}
		acc = diagonalProduct(acc, rs, k)
	}

	return acc
}

func diagonalProduct(a, b []vset.Set, k int) []vset.Set {
	out := make([]vset.Set, 0, min(k, len(a)*len(b)))
	for d := 0; d <= len(a)+len(b)-2; d++ {
		for i := max(0, d-len(b)+1); i <= min(d, len(a)-1); i++ {
			if len(out) == k {
				return out
			}
			u := a[i].Clone()
			u.Union(b[d-i])
			out = append(out, u)
		}
	}

	return out
}

func containsSet(list []vset.Set, s vset.Set) bool {
	for _, x := range list {
		if x.Equal(s) {
			return true
		}
	}

	return false
}

func cloneSets(in []vset.Set) []vset.Set {
	out := make([]vset.Set, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}

	return out
}

// clear drops the payload once every parent has consumed the result.
// The root keeps its list.
func (s *subgraph) clear() {
	s.g = nil
	s.slotMIS = nil
	s.slotDup = nil
	s.filled = nil
	if !s.root {
		s.mis = nil
	}
}
