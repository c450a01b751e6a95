package ngraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
	"github.com/ipc2023-classical/planner17-sub002/vset"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func path(t *testing.T, n int) *ngraph.Graph {
	t.Helper()
	g := ngraph.New(n)
	for v := 0; v+1 < n; v++ {
		require.NoError(t, g.AddEdge(v, v+1))
	}

	return g
}

func TestNew_SelfBits(t *testing.T) {
	g := ngraph.New(3)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 3, g.Size())
	for v := 0; v < 3; v++ {
		assert.True(t, g.Present(v))
		assert.Equal(t, 1, g.Degree(v))
	}
	assert.Empty(t, g.Edges())

	e := ngraph.NewEmpty(3)
	assert.Equal(t, 0, e.Size())
	assert.False(t, e.Present(1))
	require.NoError(t, e.AddVertex(1))
	assert.Equal(t, []int{1}, e.Presence().Slice())
}

func TestAddEdge(t *testing.T) {
	g := ngraph.New(4)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(2, 2))
	assert.True(t, g.Adjacent(0, 2))
	assert.True(t, g.Adjacent(2, 0))
	assert.False(t, g.Adjacent(2, 2))
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, [][2]int{{0, 2}}, g.Edges())

	err := g.AddEdge(0, 4)
	assert.True(t, errors.Is(err, ngraph.ErrVertexRange))
	assert.True(t, errors.Is(g.AddVertex(-1), ngraph.ErrVertexRange))
}

func TestAddEdge_DoesNotLeakIntoDerived(t *testing.T) {
	g := path(t, 4)
	h := g.Without(0)
	require.NoError(t, g.AddEdge(1, 3))
	assert.False(t, h.Adjacent(1, 3))
	assert.True(t, g.Adjacent(1, 3))
}

//----------------------------------------------------------------------------//
// Copy-on-write removal
//----------------------------------------------------------------------------//

func TestWithout(t *testing.T) {
	g := path(t, 4) // 0-1-2-3
	h := g.Without(1)

	assert.False(t, h.Present(1))
	assert.False(t, h.Adjacent(0, 1))
	assert.Equal(t, 1, h.Degree(0))
	assert.Equal(t, 2, h.Degree(2))
	assert.Equal(t, [][2]int{{2, 3}}, h.Edges())

	// The receiver is untouched.
	assert.True(t, g.Present(1))
	assert.True(t, g.Adjacent(0, 1))
	assert.Equal(t, 4, g.Size())

	// Removing an absent vertex is a no-op.
	assert.Equal(t, h.Edges(), h.Without(1).Edges())
}

func TestWithoutSetAndInduced(t *testing.T) {
	g := path(t, 5) // 0-1-2-3-4
	h := g.WithoutSet(vset.Of(5, 0, 2))
	assert.Equal(t, []int{1, 3, 4}, h.Presence().Slice())
	assert.Equal(t, [][2]int{{3, 4}}, h.Edges())
	assert.Equal(t, 1, h.Degree(1))

	i := g.Induced(vset.Of(5, 1, 2, 4))
	assert.Equal(t, []int{1, 2, 4}, i.Presence().Slice())
	assert.Equal(t, [][2]int{{1, 2}}, i.Edges())

	assert.Equal(t, 5, g.Size())
	assert.Len(t, g.Edges(), 4)
}

func TestNeighbors(t *testing.T) {
	g := path(t, 3)
	n := g.Neighbors(1)
	assert.Equal(t, []int{0, 2}, n.Slice())
	n.Add(1)
	assert.Equal(t, []int{0, 1, 2}, g.Row(1).Slice())
	assert.Equal(t, []int{0, 2}, g.Neighbors(1).Slice())
}

//----------------------------------------------------------------------------//
// Components and independence
//----------------------------------------------------------------------------//

func TestComponents(t *testing.T) {
	g := ngraph.New(7)
	require.NoError(t, g.AddEdge(5, 1))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(0, 6))
	g = g.Without(4)

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, []int{0, 6}, comps[0].Slice())
	assert.Equal(t, []int{1, 3, 5}, comps[1].Slice())
	assert.Equal(t, []int{2}, comps[2].Slice())
	assert.False(t, g.Connected())
	assert.True(t, path(t, 6).Connected())
	assert.Empty(t, ngraph.NewEmpty(3).Components())
}

func TestComponents_MatchGonum(t *testing.T) {
	ug := simple.NewUndirectedGraph()
	for i := int64(0); i < 12; i++ {
		ug.AddNode(simple.Node(i))
	}
	for _, e := range [][2]int64{{0, 3}, {3, 7}, {1, 2}, {2, 11}, {5, 9}, {9, 10}, {10, 5}} {
		ug.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	g, ids := ngraph.FromGonum(ug)
	require.Len(t, ids, 12)
	assert.Len(t, g.Components(), len(topo.ConnectedComponents(ug)))
}

func TestIsIndependent(t *testing.T) {
	g := path(t, 4)
	assert.True(t, g.IsIndependent(vset.Of(4, 0, 2)))
	assert.True(t, g.IsIndependent(vset.Of(4, 0, 3)))
	assert.True(t, g.IsIndependent(vset.New(4)))
	assert.False(t, g.IsIndependent(vset.Of(4, 1, 2)))
	assert.False(t, g.IsIndependent(vset.Of(5, 0)))
}

//----------------------------------------------------------------------------//
// Adapters
//----------------------------------------------------------------------------//

func TestFromArcs(t *testing.T) {
	g, err := ngraph.FromArcs(4, []ngraph.Arc{{Pre: 0, Succ: 1}, {Pre: 2, Succ: 1}, {Pre: 3, Succ: 3}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, g.Edges())
	assert.Equal(t, 1, g.Degree(3))

	_, err = ngraph.FromArcs(2, []ngraph.Arc{{Pre: 0, Succ: 2}})
	assert.True(t, errors.Is(err, ngraph.ErrVertexRange))
}

func TestFromGonum_IDs(t *testing.T) {
	ug := simple.NewUndirectedGraph()
	ug.SetEdge(simple.Edge{F: simple.Node(40), T: simple.Node(10)})
	ug.AddNode(simple.Node(25))

	g, ids := ngraph.FromGonum(ug)
	assert.Equal(t, []int64{10, 25, 40}, ids)
	assert.Equal(t, [][2]int{{0, 2}}, g.Edges())
	assert.True(t, g.Present(1))
}

func TestString(t *testing.T) {
	g := path(t, 3).Without(0)
	assert.Equal(t, "1: 2\n2: 1\n", g.String())
}
