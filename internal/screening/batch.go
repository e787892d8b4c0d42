package screening

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/types"
)

// defaultBatchConcurrency bounds how many screenings run at once in a batch.
// The pipeline is CPU-bound string work; a small bound keeps large batches
// from starving the serving goroutines.
const defaultBatchConcurrency = 8

// Request is one unit of work for ScreenBatch.
type Request struct {
	Text       string `json:"text"`
	JobTitle   string `json:"job_title"`
	SourceName string `json:"source_name,omitempty"`
}

// ScreenBatch screens independent requests concurrently and returns outcomes
// in request order. The pipeline components are pure functions with no shared
// state, so runs need no coordination beyond the concurrency bound. The only
// error source is context cancellation.
func ScreenBatch(ctx context.Context, reqs []Request) ([]types.ScreeningOutcome, error) {
	outcomes := make([]types.ScreeningOutcome, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultBatchConcurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = Screen(req.Text, req.JobTitle, req.SourceName)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
