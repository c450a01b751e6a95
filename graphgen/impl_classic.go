// SPDX-License-Identifier: MIT
// Package: graphgen
//
// impl_classic.go - Path, Cycle, Star, Wheel and Complete constructors.
//
// Contract:
//   - Vertices are local indices 0..n-1 shifted by cfg.offset.
//   - Edges are emitted in ascending local order.
//   - Sizes below the minimum return ErrTooFewVertices; vertices beyond the
//     universe return ErrTooManyVertices.
//
// Complexity: O(n·d) for path, cycle, star and wheel; O(n²·d) for complete,
// with d = ⌈order/64⌉ from the row clones done by AddEdge.

package graphgen

import (
	"fmt"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

func tooFew(method string, n, least int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, least, ErrTooFewVertices)
}

// Path builds P_n: 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(g *ngraph.Graph, cfg config) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		if err := cfg.reserve(g, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := cfg.edge(g, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: a path closed by the edge (n-1, 0).
func Cycle(n int) Constructor {
	return func(g *ngraph.Graph, cfg config) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		if err := Path(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return cfg.edge(g, methodCycle, n-1, 0)
	}
}

// Star builds a hub at local vertex 0 joined to leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *ngraph.Graph, cfg config) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		if err := cfg.reserve(g, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := cfg.edge(g, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n = C_{n-1} on 0..n-2 plus a hub at n-1 joined to the rim.
func Wheel(n int) Constructor {
	return func(g *ngraph.Graph, cfg config) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := cfg.reserve(g, methodWheel, n); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := cfg.edge(g, methodWheel, n-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n.
func Complete(n int) Constructor {
	return func(g *ngraph.Graph, cfg config) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		if err := cfg.reserve(g, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.edge(g, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
