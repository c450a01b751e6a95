// Package graphgen_test verifies topology, counts and error contracts of the
// graphgen constructors.
package graphgen_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipc2023-classical/planner17-sub002/graphgen"
	"github.com/ipc2023-classical/planner17-sub002/ngraph"
)

// TestConstructors_Functional checks vertex and edge counts plus a sample of
// expected adjacencies for each topology.
func TestConstructors_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		order       int
		ctor        graphgen.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *ngraph.Graph)
	}{
		{
			name: "Path(4)", order: 4, ctor: graphgen.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *ngraph.Graph) {
				assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, g.Edges())
			},
		},
		{
			name: "Path(1)", order: 1, ctor: graphgen.Path(1), wantV: 1, wantE: 0,
		},
		{
			name: "Cycle(5)", order: 5, ctor: graphgen.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *ngraph.Graph) {
				assert.True(t, g.Adjacent(4, 0))
				for v := 0; v < 5; v++ {
					assert.Equal(t, 3, g.Degree(v))
				}
			},
		},
		{
			name: "Star(4)", order: 4, ctor: graphgen.Star(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *ngraph.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				assert.False(t, g.Adjacent(1, 2))
			},
		},
		{
			name: "Wheel(5)", order: 5, ctor: graphgen.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *ngraph.Graph) {
				assert.Equal(t, 5, g.Degree(4))
				assert.True(t, g.Adjacent(3, 0))
			},
		},
		{
			name: "Complete(4)", order: 4, ctor: graphgen.Complete(4), wantV: 4, wantE: 6,
		},
		{
			name: "CompleteBipartite(2,3)", order: 5, ctor: graphgen.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *ngraph.Graph) {
				assert.False(t, g.Adjacent(0, 1))
				assert.False(t, g.Adjacent(2, 4))
				assert.True(t, g.Adjacent(1, 4))
			},
		},
		{
			name: "Grid(2,3)", order: 6, ctor: graphgen.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *ngraph.Graph) {
				assert.True(t, g.Adjacent(1, 4))
				assert.False(t, g.Adjacent(2, 3))
			},
		},
		{
			name: "RandomSparse(5,1)", order: 5, ctor: graphgen.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(5,0)", order: 5, ctor: graphgen.RandomSparse(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := graphgen.Build(tc.order, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Size())
			assert.Len(t, g.Edges(), tc.wantE)
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuild_DisjointUnion(t *testing.T) {
	g, err := graphgen.Build(9, nil, graphgen.Path(3), graphgen.At(3, graphgen.Star(4)), graphgen.At(7, graphgen.Path(2)))
	require.NoError(t, err)
	assert.Equal(t, 9, g.Size())
	assert.Len(t, g.Components(), 3)
	assert.Equal(t, 4, g.Degree(3))

	g, err = graphgen.Build(6, []graphgen.Option{graphgen.WithOffset(2)}, graphgen.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, g.Presence().Slice())
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name  string
		order int
		ctor  graphgen.Constructor
		err   error
	}{
		{"CycleTooSmall", 5, graphgen.Cycle(2), graphgen.ErrTooFewVertices},
		{"WheelTooSmall", 5, graphgen.Wheel(3), graphgen.ErrTooFewVertices},
		{"GridZero", 5, graphgen.Grid(0, 3), graphgen.ErrTooFewVertices},
		{"BipartiteZero", 5, graphgen.CompleteBipartite(1, 0), graphgen.ErrTooFewVertices},
		{"Overflow", 3, graphgen.Path(4), graphgen.ErrTooManyVertices},
		{"OverflowAt", 4, graphgen.At(2, graphgen.Path(3)), graphgen.ErrTooManyVertices},
		{"BadProbability", 5, graphgen.RandomSparse(5, 1.5), graphgen.ErrInvalidProbability},
		{"NoRand", 5, graphgen.RandomSparse(5, 0.5), graphgen.ErrNeedRandSource},
		{"NilConstructor", 5, nil, graphgen.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphgen.Build(tc.order, nil, tc.ctor)
			if !errors.Is(err, tc.err) {
				t.Errorf("Build error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(opt graphgen.Option) *ngraph.Graph {
		g, err := graphgen.Build(30, []graphgen.Option{opt}, graphgen.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}
	a := build(graphgen.WithSeed(7))
	b := build(graphgen.WithSeed(7))
	c := build(graphgen.WithRand(rand.New(rand.NewSource(7))))
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, a.Edges(), c.Edges())
	assert.NotEmpty(t, a.Edges())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { graphgen.WithRand(nil) })
	assert.Panics(t, func() { graphgen.WithOffset(-1) })
}
