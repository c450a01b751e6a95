package ngraph

import "github.com/ipc2023-classical/planner17-sub002/vset"

// Components returns the vertex sets of the connected components of the
// present vertices, ordered by their smallest vertex.
//
// The search grows each component frontier-wise: the next frontier is the
// union of the frontier's rows minus what has already been reached, so one
// step costs O(|frontier|·d) word operations.
func (g *Graph) Components() []vset.Set {
	seen := vset.New(g.n)
	var comps []vset.Set

	for s := range g.rows {
		if g.rows[s].Empty() || seen.Has(s) {
			continue
		}
		comp := vset.New(g.n)
		comp.Add(s)
		frontier := []int{s}
		for len(frontier) > 0 {
			next := vset.New(g.n)
			for _, v := range frontier {
				next.Union(g.rows[v])
			}
			next.Minus(comp)
			comp.Union(next)
			frontier = next.Slice()
		}
		seen.Union(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether the present vertices form at most one component.
func (g *Graph) Connected() bool {
	return len(g.Components()) <= 1
}
