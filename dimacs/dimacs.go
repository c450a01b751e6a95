// Package dimacs reads and writes graphs in the DIMACS edge format used by
// the clique and colouring benchmark suites:
//
//	c optional comment lines
//	p edge <vertices> <edges>
//	e <u> <v>
//
// Vertices are 1-based in the file and 0-based in the returned graph.
// "p col" is accepted as a synonym of "p edge".
package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
)

var (
	// ErrSyntax is returned for input that does not follow the grammar.
	ErrSyntax = errors.New("dimacs: syntax error")

	// ErrVertexRange is returned when an edge names a vertex outside 1..n.
	ErrVertexRange = errors.New("dimacs: vertex out of range")

	// ErrEdgeCount is returned when the number of edge lines differs from
	// the count declared on the problem line.
	ErrEdgeCount = errors.New("dimacs: edge count mismatch")
)

type file struct {
	Problem *problem `@@`
	Edges   []*edge  `@@*`
}

type problem struct {
	Format string `"p" @("edge" | "col")`
	Nodes  int    `@Int`
	Edges  int    `@Int`
}

type edge struct {
	Pos lexer.Position

	U int `"e" @Int`
	V int `@Int`
}

var dimacsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?:edge|col|p|e)\b`},
	{Name: "Comment", Pattern: `c(?:[ \t][^\n]*)?`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[file](
	participle.Lexer(dimacsLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Parse reads a DIMACS graph from r. name is used in error messages.
func Parse(name string, r io.Reader) (*ngraph.Graph, error) {
	f, err := parser.Parse(name, r)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%v", err)
	}

	return f.graph(name)
}

// ParseString reads a DIMACS graph from s.
func ParseString(name, s string) (*ngraph.Graph, error) {
	f, err := parser.ParseString(name, s)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%v", err)
	}

	return f.graph(name)
}

func (f *file) graph(name string) (*ngraph.Graph, error) {
	n := f.Problem.Nodes
	if len(f.Edges) != f.Problem.Edges {
		return nil, errors.Wrapf(ErrEdgeCount, "%s: declared %d, read %d", name, f.Problem.Edges, len(f.Edges))
	}
	g := ngraph.New(n)
	for _, e := range f.Edges {
		if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
			return nil, errors.Wrapf(ErrVertexRange, "%s: e %d %d with %d vertices", e.Pos, e.U, e.V, n)
		}
		if err := g.AddEdge(e.U-1, e.V-1); err != nil {
			return nil, errors.Wrapf(err, "%s", e.Pos)
		}
	}

	return g, nil
}

// Write emits g in DIMACS edge format. Every vertex of the universe is
// declared; removed vertices therefore read back as isolated ones.
func Write(w io.Writer, g *ngraph.Graph) error {
	bw := bufio.NewWriter(w)
	es := g.Edges()
	fmt.Fprintf(bw, "p edge %d %d\n", g.Order(), len(es))
	for _, e := range es {
		fmt.Fprintf(bw, "e %d %d\n", e[0]+1, e[1]+1)
	}

	return errors.Wrap(bw.Flush(), "dimacs: write")
}
