// Package batch generates runs of levels with consecutive seeds in parallel.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"towergen/pkg/game/config"
	"towergen/pkg/game/generator"
)

// Generate builds count levels with seeds p.Seed, p.Seed+1, ... using up to
// workers goroutines (GOMAXPROCS when workers <= 0).
func Generate(ctx context.Context, gen generator.GridGenerator, p config.Params, width, height, count, workers int) ([]*generator.Level, error) {
	if count <= 0 {
		return nil, nil
	}
	params := make([]config.Params, count)
	for i := range params {
		params[i] = p
		params[i].Seed = p.Seed + int64(i)
	}
	return GenerateAll(ctx, gen, params, width, height, workers)
}

// GenerateAll builds one level per entry of params, in order. Every run owns
// its grid and random streams, so results match sequential generation.
// The first error cancels the remaining runs.
func GenerateAll(ctx context.Context, gen generator.GridGenerator, params []config.Params, width, height, workers int) ([]*generator.Level, error) {
	if len(params) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	levels := make([]*generator.Level, len(params))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range params {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lvl, err := gen.Generate(p, width, height)
			if err != nil {
				return err
			}
			levels[i] = lvl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return levels, nil
}
