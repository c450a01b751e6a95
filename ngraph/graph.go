package ngraph

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ipc2023-classical/planner17-sub002/vset"
)

// ErrVertexRange indicates a vertex index outside [0, Order()).
var ErrVertexRange = errors.New("ngraph: vertex out of range")

// Graph is an undirected graph over a fixed vertex universe, stored as one
// closed-adjacency row per vertex. Rows may be shared between graphs and
// must be treated as read only; every mutating method clones before writing.
type Graph struct {
	n    int
	rows []vset.Set
}

// New returns a graph over n vertices, all present and isolated.
func New(n int) *Graph {
	g := NewEmpty(n)
	for v := 0; v < n; v++ {
		r := vset.New(n)
		r.Add(v)
		g.rows[v] = r
	}

	return g
}

// NewEmpty returns a graph over a universe of n vertices with none present.
func NewEmpty(n int) *Graph {
	empty := vset.New(n)
	g := &Graph{n: n, rows: make([]vset.Set, n)}
	for v := range g.rows {
		g.rows[v] = empty
	}

	return g
}

// AddEdge connects u and v, making both present. A self edge only marks
// the vertex present. Intended for construction; rows are cloned before
// being written so graphs derived earlier are unaffected.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return errors.Wrapf(ErrVertexRange, "AddEdge(%d,%d) with order %d", u, v, g.n)
	}
	g.touch(u)
	if u == v {
		return nil
	}
	g.touch(v)
	g.rows[u].Add(v)
	g.rows[v].Add(u)

	return nil
}

// AddVertex marks v present without connecting it.
func (g *Graph) AddVertex(v int) error {
	if v < 0 || v >= g.n {
		return errors.Wrapf(ErrVertexRange, "AddVertex(%d) with order %d", v, g.n)
	}
	g.touch(v)

	return nil
}

// touch replaces row v by a private copy carrying the self bit.
func (g *Graph) touch(v int) {
	r := g.rows[v].Clone()
	r.Add(v)
	g.rows[v] = r
}

// Order returns the size of the vertex universe.
func (g *Graph) Order() int { return g.n }

// Present reports whether v is still in the graph.
func (g *Graph) Present(v int) bool { return !g.rows[v].Empty() }

// Size returns the number of present vertices.
func (g *Graph) Size() int {
	c := 0
	for v := range g.rows {
		if !g.rows[v].Empty() {
			c++
		}
	}

	return c
}

// Presence returns the set of present vertices.
func (g *Graph) Presence() vset.Set {
	s := vset.New(g.n)
	for v := range g.rows {
		if !g.rows[v].Empty() {
			s.Add(v)
		}
	}

	return s
}

// Row returns the closed neighbourhood N[v]. The set is shared; do not modify.
func (g *Graph) Row(v int) vset.Set { return g.rows[v] }

// Neighbors returns the open neighbourhood N(v) as a fresh set.
func (g *Graph) Neighbors(v int) vset.Set {
	s := g.rows[v].Clone()
	s.Remove(v)

	return s
}

// Degree returns the closed degree |N[v]|; 0 for removed vertices.
func (g *Graph) Degree(v int) int { return g.rows[v].Count() }

// Adjacent reports whether u ≠ v are connected.
func (g *Graph) Adjacent(u, v int) bool {
	return u != v && g.rows[u].Has(v)
}

// Edges lists every edge once as {u, v} with u < v, in ascending order.
func (g *Graph) Edges() [][2]int {
	var out [][2]int
	for u := range g.rows {
		g.rows[u].Each(func(v int) {
			if v > u {
				out = append(out, [2]int{u, v})
			}
		})
	}

	return out
}

// Without returns a copy of g with vertex v removed. The receiver is unchanged.
func (g *Graph) Without(v int) *Graph {
	out := g.shallow()
	if g.rows[v].Empty() {
		return out
	}
	g.rows[v].Each(func(u int) {
		if u == v {
			return
		}
		r := g.rows[u].Clone()
		r.Remove(v)
		out.rows[u] = r
	})
	out.rows[v] = vset.New(g.n)

	return out
}

// WithoutSet returns a copy of g with every vertex of s removed.
func (g *Graph) WithoutSet(s vset.Set) *Graph {
	out := g.shallow()
	var empty vset.Set
	for v := range g.rows {
		row := g.rows[v]
		if row.Empty() {
			continue
		}
		if s.Has(v) {
			if empty.Len() == 0 {
				empty = vset.New(g.n)
			}
			out.rows[v] = empty
			continue
		}
		if row.Intersects(s) {
			r := row.Clone()
			r.Minus(s)
			out.rows[v] = r
		}
	}

	return out
}

// Induced returns the subgraph induced by s: vertices outside s are removed.
func (g *Graph) Induced(s vset.Set) *Graph {
	drop := g.Presence()
	drop.Minus(s)

	return g.WithoutSet(drop)
}

// IsIndependent reports whether no two distinct vertices of s are adjacent.
// Sets over a different universe are never independent sets of g.
func (g *Graph) IsIndependent(s vset.Set) bool {
	if s.Len() != g.n {
		return false
	}
	ok := true
	s.Each(func(v int) {
		if !ok {
			return
		}
		open := g.rows[v].Clone()
		if !open.Empty() {
			open.Remove(v)
		}
		if open.Intersects(s) {
			ok = false
		}
	})

	return ok
}

// Clone returns a graph sharing all rows with g; rows are copy-on-write.
func (g *Graph) Clone() *Graph { return g.shallow() }

func (g *Graph) shallow() *Graph {
	rows := make([]vset.Set, g.n)
	copy(rows, g.rows)

	return &Graph{n: g.n, rows: rows}
}

// String lists present vertices with their neighbours, one per line.
func (g *Graph) String() string {
	var sb strings.Builder
	for v := range g.rows {
		if g.rows[v].Empty() {
			continue
		}
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(':')
		g.rows[v].Each(func(u int) {
			if u != v {
				sb.WriteByte(' ')
				sb.WriteString(strconv.Itoa(u))
			}
		})
		sb.WriteByte('\n')
	}

	return sb.String()
}
