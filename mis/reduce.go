package mis

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
	"github.com/ipc2023-classical/planner17-sub002/vset"
)

// engine holds the state of one solve: the registry, the work-list and the
// counters reported in Result.
type engine struct {
	n       int
	findAll bool
	k       int
	budget  budget
	onStep  func(steps, leaves int)
	onMerge func(pos int, sets []vset.Set) // sees each merged list before clear

	reg   *Registry
	stack *arraystack.Stack // positions awaiting expansion, LIFO

	leaves   []int // finalized without children
	pending  []int // left unexpanded by a timeout
	steps    int
	timedOut bool
}

// child is a candidate subgraph produced by a rule, with the vertices
// forced into every result it yields.
type child struct {
	g   *ngraph.Graph
	dup []int
}

// reduce expands subgraphs until the work-list is empty or the budget runs out.
func (e *engine) reduce() error {
	for !e.stack.Empty() {
		if e.budget.expired() {
			e.timedOut = true
			break
		}
		top, _ := e.stack.Pop()
		if err := e.expand(top.(int)); err != nil {
			return err
		}
		e.steps++
		if e.onStep != nil && e.steps&255 == 0 {
			e.onStep(e.steps, len(e.leaves))
		}
	}
	for !e.stack.Empty() {
		top, _ := e.stack.Pop()
		e.pending = append(e.pending, top.(int))
	}

	return nil
}

// expand applies the first rule that fires on the subgraph at pos.
//
// Rules in priority order:
//  1. at most one vertex: leaf;
//  2. several components: one child per component;
//  3. domination: drop a vertex whose closed neighbourhood contains a
//     neighbour's;
//  4. closed degree 3: fold;
//  5. otherwise branch on a vertex of maximum degree with its mirrors.
func (e *engine) expand(pos int) error {
	s := e.reg.at(pos)
	g := s.g

	if g.Size() <= 1 {
		s.elem = s.presence.First()
		s.g = nil
		e.leaves = append(e.leaves, pos)

		return nil
	}

	if comps := g.Components(); len(comps) > 1 {
		kids := make([]child, len(comps))
		for i, c := range comps {
			kids[i] = child{g: g.Induced(c)}
		}
		e.attach(pos, false, kids)

		return nil
	}

	v, w, tie, found, aborted := e.dominated(g)
	if aborted {
		e.timedOut = true
		e.pending = append(e.pending, pos)

		return nil
	}
	if found {
		kids := []child{{g: g.Without(v)}}
		if tie && e.findAll {
			kids = append(kids, child{g: g.Without(w)})
		}
		e.attach(pos, true, kids)

		return nil
	}

	kids, err := e.fold(g)
	if err != nil {
		return err
	}
	if kids == nil {
		var aborted bool
		if kids, aborted = e.branchMaxDegree(g); aborted {
			e.timedOut = true
			e.pending = append(e.pending, pos)

			return nil
		}
	}
	e.attach(pos, true, kids)

	return nil
}

// attach links each candidate to pos. A candidate whose presence pattern is
// already registered becomes a twin: it gains a parent link and is not
// pushed again.
func (e *engine) attach(pos int, branch bool, kids []child) {
	s := e.reg.at(pos)
	s.branch = branch
	s.expanded = true
	s.g = nil
	for _, c := range kids {
		cpos, fresh := e.reg.intern(c.g)
		e.reg.link(pos, cpos, c.dup)
		if fresh {
			e.stack.Push(cpos)
		} else {
			e.reg.twins++
		}
	}
}

// dominated finds the first vertex v, in ascending order, with a neighbour
// w such that N[w] ⊆ N[v]. tie reports N[v] = N[w].
func (e *engine) dominated(g *ngraph.Graph) (v, w int, tie, found, aborted bool) {
	for i := 0; i < e.n; i++ {
		ri := g.Row(i)
		if ri.Empty() {
			continue
		}
		di := ri.Count()
		for u := ri.First(); u >= 0; u = ri.Next(u) {
			if e.budget.sparse() {
				return 0, 0, false, false, true
			}
			if u == i {
				continue
			}
			ru := g.Row(u)
			du := ru.Count()
			if di >= du && ru.SubsetOf(ri) {
				return i, u, di == du, true, false
			}
		}
	}

	return 0, 0, false, false, false
}

// fold branches on the first vertex of closed degree 3 with neighbours
// u1 < u2: either v is in the set, or both u1 and u2 are.
// Returns nil when no such vertex exists.
func (e *engine) fold(g *ngraph.Graph) ([]child, error) {
	for v := 0; v < e.n; v++ {
		if g.Degree(v) != 3 {
			continue
		}
		nb := g.Neighbors(v)
		u1 := nb.First()
		u2 := nb.Next(u1)
		if g.Adjacent(u1, u2) {
			return nil, errors.Wrapf(ErrInconsistentFold, "vertex %d with neighbours %d and %d", v, u1, u2)
		}
		both := g.Row(u1).Clone()
		both.Union(g.Row(u2))

		return []child{
			{g: g.WithoutSet(g.Row(v)), dup: []int{v}},
			{g: g.WithoutSet(both), dup: []int{u1, u2}},
		}, nil
	}

	return nil, nil
}

// branchMaxDegree branches on a vertex v of maximum degree: either v and its
// mirrors are out, or v is in and N[v] is removed.
func (e *engine) branchMaxDegree(g *ngraph.Graph) ([]child, bool) {
	v := e.pickMaxDegree(g)
	mirrors, aborted := e.mirrors(g, v)
	if aborted {
		return nil, true
	}
	out := mirrors.Clone()
	out.Add(v)

	return []child{
		{g: g.WithoutSet(out)},
		{g: g.WithoutSet(g.Row(v)), dup: []int{v}},
	}, false
}

// pickMaxDegree returns the vertex of maximum closed degree. Ties go to the
// vertex whose open neighbourhood induces most edges, then to the smallest.
func (e *engine) pickMaxDegree(g *ngraph.Graph) int {
	top := 0
	cands := treeset.NewWithIntComparator()
	for v := 0; v < e.n; v++ {
		d := g.Degree(v)
		switch {
		case d > top:
			top = d
			cands.Clear()
			cands.Add(v)
		case d == top && d > 0:
			cands.Add(v)
		}
	}

	best, bestEdges := -1, -1
	for _, c := range cands.Values() {
		v := c.(int)
		nb := g.Neighbors(v)
		edges := 0
		nb.Each(func(u int) {
			// N(u) ∩ N(v) counted from both ends.
			edges += g.Row(u).IntersectCount(nb) - 1
		})
		if edges > bestEdges {
			best, bestEdges = v, edges
		}
	}

	return best
}

// mirrors returns M(v): vertices u at distance two from v such that
// N(v) \ N(u) is a clique.
func (e *engine) mirrors(g *ngraph.Graph, v int) (vset.Set, bool) {
	nv := g.Neighbors(v)
	out := vset.New(e.n)

	// Distance-two vertices: neighbours of neighbours outside N[v].
	ring := vset.New(e.n)
	nv.Each(func(u int) { ring.Union(g.Row(u)) })
	ring.Minus(g.Row(v))

	for u := ring.First(); u >= 0; u = ring.Next(u) {
		if e.budget.sparse() {
			return out, true
		}
		rest := nv.Clone()
		rest.Minus(g.Row(u))
		if isClique(g, rest) {
			out.Add(u)
		}
	}

	return out, false
}

// isClique reports whether every two vertices of s are adjacent.
func isClique(g *ngraph.Graph, s vset.Set) bool {
	for a := s.First(); a >= 0; a = s.Next(a) {
		if !s.SubsetOf(g.Row(a)) {
			return false
		}
	}

	return true
}
