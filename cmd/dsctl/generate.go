package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvds/builder"
	"github.com/katalvlaran/lvds/core"
)

// generate builds an undirected fixture graph: path N, cycle N, star N,
// complete N, grid R C, tree DEPTH, or random N P SEED (weights 1..9).
func generate(shape string, args []string) (*core.Graph, error) {
	ints := func(want int) ([]int, error) {
		if len(args) != want {
			return nil, fmt.Errorf("%w: %s takes %d integer(s)", errSyntax, shape, want)
		}
		out := make([]int, want)
		for i, a := range args {
			n, err := atoi(a)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}

		return out, nil
	}

	bopts := []builder.Option{builder.WithUndirected()}
	var ctor builder.Constructor
	switch shape {
	case "path", "cycle", "star", "complete", "tree":
		n, err := ints(1)
		if err != nil {
			return nil, err
		}
		ctor = map[string]func(int) builder.Constructor{
			"path":     builder.Path,
			"cycle":    builder.Cycle,
			"star":     builder.Star,
			"complete": builder.Complete,
			"tree":     builder.BinaryTree,
		}[shape](n[0])
	case "grid":
		rc, err := ints(2)
		if err != nil {
			return nil, err
		}
		ctor = builder.Grid(rc[0], rc[1])
	case "random":
		if len(args) != 3 {
			return nil, fmt.Errorf("%w: random N P SEED", errSyntax)
		}
		n, err := atoi(args[0])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: probability %q", errSyntax, args[1])
		}
		seed, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: seed %q", errSyntax, args[2])
		}
		bopts = append(bopts, builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 9)))
		ctor = builder.RandomSparse(n, p)
	default:
		return nil, fmt.Errorf("%w: graph shape %q", errSyntax, shape)
	}

	return builder.BuildGraph(nil, bopts, ctor)
}
