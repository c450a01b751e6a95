package mis

import (
	"fmt"
	"io"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
	"github.com/ipc2023-classical/planner17-sub002/vset"
)

// Registry stores every subgraph met during a solve. Positions in the arena
// are stable and serve as links; the bucket map finds a subgraph by its
// presence pattern, comparing the stored sets exactly so that hash
// collisions never merge distinct subgraphs.
type Registry struct {
	nodes   []*subgraph
	buckets map[uint64][]int
	twins   int
}

func newRegistry() *Registry {
	return &Registry{buckets: make(map[uint64][]int)}
}

// Len returns the number of registered subgraphs.
func (r *Registry) Len() int { return len(r.nodes) }

// Twins returns how many parent links were attached to an existing subgraph.
func (r *Registry) Twins() int { return r.twins }

func (r *Registry) at(pos int) *subgraph { return r.nodes[pos] }

// lookup returns the position of the subgraph with presence p.
func (r *Registry) lookup(h uint64, p vset.Set) (int, bool) {
	for _, pos := range r.buckets[h] {
		if r.nodes[pos].presence.Equal(p) {
			return pos, true
		}
	}

	return -1, false
}

// add registers g, whose presence pattern must not be registered yet.
func (r *Registry) add(g *ngraph.Graph, h uint64, p vset.Set) int {
	pos := len(r.nodes)
	r.nodes = append(r.nodes, &subgraph{hash: h, presence: p, g: g, elem: -1})
	r.buckets[h] = append(r.buckets[h], pos)

	return pos
}

// intern returns the position for g, registering it when its presence
// pattern is new. fresh reports whether a new subgraph was created.
func (r *Registry) intern(g *ngraph.Graph) (pos int, fresh bool) {
	p := g.Presence()
	h := p.Hash()
	if pos, ok := r.lookup(h, p); ok {
		return pos, false
	}

	return r.add(g, h, p), true
}

// link makes child fill a new slot of parent.
func (r *Registry) link(parent, child int, dup []int) {
	ps := r.nodes[parent]
	slot := ps.attach(dup)
	ps.children = append(ps.children, child)
	cs := r.nodes[child]
	cs.parents = append(cs.parents, parentLink{pos: parent, slot: slot})
}

// Dump writes one line per subgraph reachable from the root, in
// breadth-first order: position, presence, state, children and parents.
func (r *Registry) Dump(w io.Writer) error {
	if len(r.nodes) == 0 {
		return nil
	}
	seen := make([]bool, len(r.nodes))
	queue := []int{0}
	seen[0] = true
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		s := r.nodes[pos]

		kind := "components"
		if s.branch {
			kind = "branch"
		}
		state := "open"
		switch {
		case s.finalized:
			state = "final"
		case s.expanded:
			state = "expanded"
		case s.g == nil:
			state = "leaf"
		}
		parents := make([]int, len(s.parents))
		for i, l := range s.parents {
			parents[i] = l.pos
		}
		if _, err := fmt.Fprintf(w, "#%d %016x %s %s %s children=%v parents=%v mis=%v\n",
			pos, s.hash, s.presence, state, kind, s.children, parents, s.mis); err != nil {
			return err
		}
		for _, c := range s.children {
			if !seen[c] {
				seen[c] = true
				queue = append(queue, c)
			}
		}
	}

	return nil
}
