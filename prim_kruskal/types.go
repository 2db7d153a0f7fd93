// Package prim_kruskal defines configuration options, sentinel errors and the
// result type for MST computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvds/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices, so no tree can be grown.
	ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

	// ErrRootNotFound indicates that the root given via WithRoot does not exist.
	ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

	// ErrUnknownMethod is returned by Compute for a Method other than MethodPrim or MethodKruskal.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and how Prim grows its tree.
// Use DefaultOptions() to get a default setup (Prim from the lowest vertex ID).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// IgnoreDirection lets Prim cross an entry u→v from either endpoint,
	// so a graph built from directed entries is treated as undirected.
	IgnoreDirection bool

	hasRoot bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method used by Compute.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
		opts.hasRoot = true
	}
}

// WithIgnoreDirection makes Prim consider incoming entries as well as outgoing ones.
func WithIgnoreDirection() Option {
	return func(opts *MSTOptions) {
		opts.IgnoreDirection = true
	}
}

// DefaultOptions returns MSTOptions for Prim rooted at the lowest vertex ID,
// following entries in their stored direction.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// MST is the outcome of Prim or Kruskal.
//
//   - Root:     vertex Prim grew from (lowest vertex ID for Kruskal).
//   - Edges:    chosen entries, in the order they were accepted.
//   - Total:    sum of the chosen weights.
//   - Reached:  vertices covered, in the order they joined (Prim) or ascending (Kruskal).
//   - Spanning: true when the edges connect every vertex of the graph.
type MST struct {
	Root     int
	Edges    []core.Edge
	Total    float64
	Reached  []int
	Spanning bool
}

// Compute selects and runs the MST algorithm named by WithMethod.
func Compute(graph *core.Graph, opts ...Option) (*MST, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}
