// SPDX-License-Identifier: MIT
// Package: graphgen
//
// impl_grid.go - CompleteBipartite(a, b) and Grid(rows, cols) constructors.
//
// Contract:
//   - CompleteBipartite: left side is local 0..a-1, right side a..a+b-1.
//   - Grid: cell (r,c) is local vertex r*cols+c (row-major); each cell is
//     joined to its right and bottom neighbours where they exist.
//
// Complexity: O(a·b·d) and O(rows·cols·d).

package graphgen

import (
	"fmt"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
)

const (
	methodBipartite = "CompleteBipartite"
	methodGrid      = "Grid"

	minPartition = 1
	minGridDim   = 1
)

// CompleteBipartite builds K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(g *ngraph.Graph, cfg config) error {
		if a < minPartition || b < minPartition {
			return fmt.Errorf("%s: a=%d, b=%d (each must be ≥ %d): %w",
				methodBipartite, a, b, minPartition, ErrTooFewVertices)
		}
		if err := cfg.reserve(g, methodBipartite, a+b); err != nil {
			return err
		}
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err := cfg.edge(g, methodBipartite, i, a+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *ngraph.Graph, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := cfg.reserve(g, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := cfg.edge(g, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.edge(g, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
