// Package graphgen builds deterministic ngraph fixtures: classic topologies
// (path, cycle, star, wheel, complete, complete bipartite, grid) and seeded
// Erdős–Rényi graphs.
//
// Constructors are closures run by Build against one vertex universe. Each
// places its vertices from the configured offset on, so At(offset, c)
// composes disjoint unions:
//
//	g, err := graphgen.Build(7, nil, graphgen.Path(3), graphgen.At(3, graphgen.Star(4)))
//
// Errors are package sentinels wrapped with the constructor name; branch
// with errors.Is. Option constructors panic on meaningless input.
package graphgen
