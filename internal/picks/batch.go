package picks

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yourusername/siggys-picks/internal/models"
)

// DefaultWorkers is used when a batch is requested with no worker count
const DefaultWorkers = 4

// SuggestBatch evaluates matches concurrently. Output order matches input order.
// Cancelling ctx stops scheduling further matches and returns the context error.
func (e *Engine) SuggestBatch(ctx context.Context, matches []models.MatchInput, workers int) ([]models.PickRecord, error) {
	if len(matches) == 0 {
		return nil, models.ErrEmptyBatch
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}

	start := e.now()
	records := make([]models.PickRecord, len(matches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, match := range matches {
		if gctx.Err() != nil {
			break
		}
		i, match := i, match
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = e.Record(match)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch evaluation aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch evaluation aborted: %w", err)
	}

	pucklines := 0
	for _, rec := range records {
		if rec.Pick.HasPuckline() {
			pucklines++
		}
	}
	elapsed := e.now().Sub(start)
	e.logger.LogBatchCompleted(len(records), pucklines, workers, float64(elapsed.Microseconds())/1000)
	e.recorder.RecordBatch(len(records), elapsed)

	return records, nil
}
