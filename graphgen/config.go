// SPDX-License-Identifier: MIT
// Package: graphgen
//
// config.go - configuration and functional options.
//
// Deterministic defaults:
//   - rng    = nil (pure unless seeded)
//   - offset = 0
//
// Option constructors validate and panic on meaningless input; constructors
// themselves never panic.

package graphgen

import (
	"fmt"
	"math/rand"

	"github.com/ipc2023-classical/planner17-sub002/ngraph"
)

// config aggregates all knobs used by constructors. Passed by value.
type config struct {
	rng    *rand.Rand
	offset int
}

// Option customizes Build.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a seeded RNG for stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithOffset sets the first vertex used by every constructor. Panics if negative.
func WithOffset(off int) Option {
	if off < 0 {
		panic("graphgen: WithOffset(off<0)")
	}
	return func(c *config) {
		c.offset = off
	}
}

// vertex maps a constructor-local index to the universe.
func (c config) vertex(i int) int { return c.offset + i }

// reserve checks that k vertices fit from the offset on and marks them present.
func (c config) reserve(g *ngraph.Graph, method string, k int) error {
	if c.offset+k > g.Order() {
		return fmt.Errorf("%s: %d vertices from offset %d exceed order %d: %w",
			method, k, c.offset, g.Order(), ErrTooManyVertices)
	}
	for i := 0; i < k; i++ {
		if err := g.AddVertex(c.vertex(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, c.vertex(i), err)
		}
	}

	return nil
}

// edge connects local vertices i and j.
func (c config) edge(g *ngraph.Graph, method string, i, j int) error {
	u, v := c.vertex(i), c.vertex(j)
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}
