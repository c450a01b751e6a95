package ngraph

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
)

// Arc is a directed causal-graph dependency Pre → Succ.
type Arc struct {
	Pre, Succ int
}

// FromArcs builds the neighbourhood graph of n variables: every variable is
// present, and u, v become neighbours whenever an arc joins them in either
// direction. Self arcs are ignored.
func FromArcs(n int, arcs []Arc) (*Graph, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrVertexRange, "negative order %d", n)
	}
	g := New(n)
	for i, a := range arcs {
		if err := g.AddEdge(a.Pre, a.Succ); err != nil {
			return nil, errors.Wrapf(err, "arc %d", i)
		}
	}

	return g, nil
}

// FromGonum converts a gonum graph. Vertices are numbered by ascending node
// ID; ids[i] is the gonum ID of vertex i. Directed edges are treated as
// undirected and self loops are dropped.
func FromGonum(src graph.Graph) (g *Graph, ids []int64) {
	nodes := graph.NodesOf(src.Nodes())
	ids = make([]int64, len(nodes))
	for i, nd := range nodes {
		ids[i] = nd.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	g = New(len(ids))
	for i, id := range ids {
		it := src.From(id)
		for it.Next() {
			j, ok := index[it.Node().ID()]
			if !ok {
				continue
			}
			// Both indices are in range by construction.
			_ = g.AddEdge(i, j)
		}
	}

	return g, ids
}
