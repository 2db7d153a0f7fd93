// Package builder assembles deterministic core.Graph fixtures from small
// topology constructors: Path, Cycle, Star, Complete, Grid, BinaryTree and
// RandomSparse.
//
// BuildGraph creates the graph, resolves the builder Options and applies
// each Constructor in order. Every constructor appends fresh vertices with
// core.Graph.AddVertex, so several constructors can be composed into one
// graph, each producing its own component. Within a constructor, vertex k
// (0-based) is the k-th id it issued; on an empty graph that is simply k.
//
// Edges are directed by default; WithUndirected adds each one in both
// directions. Weights come from the configured WeightFn (constant 1 unless
// overridden). RandomSparse needs a random source (WithSeed or WithRand).
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.Option{builder.WithUndirected(), builder.WithSeed(7),
//			builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Grid(50, 50))
//
// Sizes are capped before anything is allocated: MaxVertices per
// constructor, MaxDenseVertices for Complete and RandomSparse.
//
// Errors: ErrTooFewVertices, ErrTooManyVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed.
package builder
