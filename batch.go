package octree

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

// Query is one radius query of a batch.
type Query struct {
	Position mgl64.Vec3
	Radius   float64
}

// BatchFindNeighbors runs FindNeighbors for every query concurrently and
// returns the results in query order.
//
// At most WithConcurrency goroutines run at a time. If ctx is canceled,
// queries that have not started are skipped and ctx.Err() is returned.
// The tree must not be rebuilt or cleared while the batch runs.
func (t *Tree) BatchFindNeighbors(ctx context.Context, queries []Query) ([][]int, error) {
	start := time.Now()
	results := make([][]int, len(queries))
	policy := t.opts.selfMatch.policy()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.opts.concurrency)

	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = t.index.Search(nil, q.Position, q.Radius, policy)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	duration := time.Since(start)

	t.opts.metricsCollector.RecordBatch(len(queries), duration, err)
	if err != nil {
		t.opts.logger.LogBatch(ctx, len(queries), 0, duration, err)
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	t.opts.logger.LogBatch(ctx, len(queries), total, duration, nil)
	return results, nil
}
