package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source vertex not specified")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by Result.PathTo when the destination was not reached.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be present in the graph).
// MaxDistance      – optional cap on distances to explore (vertices beyond are left unreached).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Source           int     // The ID of the source vertex
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable

	hasSource bool
	err       error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. It must be supplied.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.hasSource = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// A negative value makes Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. A zero or negative value makes Dijkstra
// return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no source and no limits.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds the output of a single-source run.
//
//   - Dist:  every vertex of the graph → shortest distance (math.Inf(1) if unreachable).
//   - Prev:  reached vertex → predecessor on its shortest path; the source has no entry.
//   - Order: vertices in the order their distance became final.
type Result struct {
	Source int
	Dist   map[int]float64
	Prev   map[int]int
	Order  []int
}

// DistanceTo reports the shortest distance to dest and whether dest was reached.
func (r *Result) DistanceTo(dest int) (float64, bool) {
	d, ok := r.Dist[dest]
	if !ok || math.IsInf(d, 1) {
		return math.Inf(1), false
	}

	return d, true
}

// PathTo reconstructs the shortest path from the source to dest, inclusive.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.DistanceTo(dest); !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	var path []int
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
