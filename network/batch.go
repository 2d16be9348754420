package network

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one journey request for PlanAll.
type Query struct {
	From string
	To   string
	By   Criterion
}

// Outcome pairs a query with its itinerary or its per-query error
// (ErrNoRoute, ErrUnknownCriterion).
type Outcome struct {
	Query     Query
	Itinerary *Itinerary
	Err       error
}

// PlanAll plans independent queries concurrently over the shared graph, at
// most WithConcurrency at a time. Outcomes are returned in query order.
//
// Per-query failures land in Outcome.Err; the returned error is non-nil only
// when ctx is cancelled before every query has run.
func (r *Router) PlanAll(ctx context.Context, queries []Query) ([]Outcome, error) {
	out := make([]Outcome, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			it, err := r.Plan(q.From, q.To, q.By)
			out[i] = Outcome{Query: q, Itinerary: it, Err: err}

			return nil
		})
	}

	return out, g.Wait()
}
