package lookup

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LookupAll translates many stroke sequences concurrently, keeping the
// order of inputs. workers bounds the number of goroutines; 0 means one
// per input. It stops early only when ctx is canceled.
func (e *Engine) LookupAll(ctx context.Context, inputs [][]string, workers int) ([]Result, error) {
	results := make([]Result, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, strokes := range inputs {
		i, strokes := i, strokes
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.Lookup(strokes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
