// SPDX-License-Identifier: MIT
// Package: lvds/builder
//
// api.go - BuildGraph orchestrator and shared constructor helpers.
//
// Contract:
//   • One entry point: BuildGraph(gopts, bopts, cons...) runs cons in order.
//   • Size guards: MaxVertices per constructor, MaxDenseVertices for O(n²) ones.
//   • Constructors return wrapped sentinel errors and never panic on bad sizes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvds/core"
)

// MaxVertices caps the vertices one constructor may add; MaxDenseVertices
// caps the O(n²) constructors (Complete, RandomSparse).
const (
	MaxVertices      = 1 << 20
	MaxDenseVertices = 1 << 12
)

// Constructor applies one deterministic topology to g.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped; the partial graph
// is discarded.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices appends n vertices and returns their ids in issue order.
func addVertices(g *core.Graph, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}

	return ids
}

// link adds u→v (or u—v when undirected) with the next configured weight.
func (c config) link(g *core.Graph, method string, u, v int) error {
	w := c.weightFn(c.rng)
	var err error
	if c.undirected {
		err = g.AddUndirectedEdge(u, v, w)
	} else {
		err = g.AddEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: edge %d→%d: %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}

func tooMany(method, param string, got, max int) error {
	return fmt.Errorf("%s: %s=%d > max=%d: %w", method, param, got, max, ErrTooManyVertices)
}
