// SPDX-License-Identifier: MIT
// Package: graphgen
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n,p); each unordered pair {i,j}, i<j, is an edge
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be set when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and needs no RNG.
//
// Determinism: trials run for i asc, j asc, so a fixed seed gives a fixed graph.
//
// Complexity: O(n²) Bernoulli trials.

package graphgen

import (
	"fmt"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *ngraph.Graph, cfg config) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := cfg.reserve(g, methodRandomSparse, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var hit bool
				if cfg.rng == nil {
					hit = p == probMax
				} else {
					hit = cfg.rng.Float64() < p
				}
				if !hit {
					continue
				}
				if err := cfg.edge(g, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
