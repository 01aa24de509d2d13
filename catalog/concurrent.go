package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// enrichDetailLimit bounds how many list items get a detail refetch.
const enrichDetailLimit = 10

// enrichDetails replaces the first enrichDetailLimit films with their full
// detail records, fetched concurrently. List responses omit backdrop URLs;
// the detail endpoint carries them.
//
// The pass is all-settle, not fail-fast: every fetch runs to completion and
// a failed fetch leaves the original item in place without aborting the
// batch. Each goroutine writes only its own index, so the final ordering is
// deterministic regardless of completion order and no locking is needed.
func (o *Operations) enrichDetails(ctx context.Context, films []Film) {
	bound := min(enrichDetailLimit, len(films))
	if bound == 0 {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichDetailLimit)

	for i := range films[:bound] {
		i := i
		g.Go(func() error {
			if detailed := o.Get(ctx, films[i].MovieID); detailed != nil {
				films[i] = *detailed
			}
			return nil
		})
	}

	g.Wait()
}
