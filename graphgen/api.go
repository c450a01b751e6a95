// SPDX-License-Identifier: MIT
// Package: graphgen
//
// api.go - public entry-points for the graphgen package.
//
// Design contract:
//   - One orchestrator: Build(n, opts, cons...). Creates an empty universe of
//     n vertices, resolves the config, runs constructors in order.
//   - Constructors place their vertices at cfg.offset.. and may be shifted
//     with At(offset, c) to compose disjoint unions in one universe.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs.
//   - Constructors return sentinel errors; they never panic.

package graphgen

import (
	"fmt"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
)

// Constructor applies a deterministic mutation to g using the resolved config.
type Constructor func(g *ngraph.Graph, cfg config) error

// Build creates a graph over a universe of n vertices, none present, and
// applies all constructors in order. Constructor errors are wrapped with
// "Build: %w"; callers branch with errors.Is on the package sentinels.
//
// Complexity: O(n) + Σ cost of each constructor.
func Build(n int, opts []Option, cons ...Constructor) (*ngraph.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("Build: n=%d: %w", n, ErrTooFewVertices)
	}
	g := ngraph.NewEmpty(n)
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// At runs c with its vertices shifted by offset on top of the configured one.
func At(offset int, c Constructor) Constructor {
	return func(g *ngraph.Graph, cfg config) error {
		cfg.offset += offset

		return c(g, cfg)
	}
}

// Topology factories, implemented in impl_*.go:
//
//	Path(n)               P_n, n ≥ 1
//	Cycle(n)              C_n, n ≥ 3
//	Star(n)               hub = first vertex, n-1 leaves, n ≥ 2
//	Wheel(n)              C_{n-1} + hub as last vertex, n ≥ 4
//	Complete(n)           K_n, n ≥ 1
//	CompleteBipartite(a,b) K_{a,b}, left side first, a,b ≥ 1
//	Grid(r,c)             4-neighbourhood grid, row-major, r,c ≥ 1
//	RandomSparse(n,p)     Erdős–Rényi G(n,p), needs WithSeed/WithRand for 0<p<1
