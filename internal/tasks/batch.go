package tasks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"ytnotes/internal/models"
)

// ProcessAll processes up to limit videos concurrently through a bounded
// worker pool. Results are written to index-addressed slots so the output
// order always matches the input order regardless of completion order.
//
// A limit of zero falls back to the configured batch maximum. Oversized or
// empty input is rejected before any video work starts; per-video failures
// never are, they land in the corresponding result slot.
func (e *PipelineEngine) ProcessAll(ctx context.Context, prog chan<- ProgressUpdate, urls []string, limit int) (*models.BatchResult, error) {
	if limit <= 0 {
		limit = e.limits.BatchMax
	}
	if len(urls) == 0 {
		return nil, &models.ErrorInfo{
			Kind:    models.KindInvalidInput,
			Message: "at least one video URL is required",
		}
	}
	if len(urls) > limit {
		return nil, &models.ErrorInfo{
			Kind:    models.KindLimitExceeded,
			Message: fmt.Sprintf("%d videos requested, maximum is %d per batch", len(urls), limit),
		}
	}

	workers := e.limits.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(urls) {
		workers = len(urls)
	}

	results := make([]models.VideoResult, len(urls))
	jobs := make(chan int)
	var completed atomic.Int64
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = e.Process(ctx, urls[i])
				done := int(completed.Add(1))
				e.sendProgress(prog, itemCompletedUpdate(done, len(urls), results[i]))
			}
		}()
	}

	for i := range urls {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	batch := &models.BatchResult{Results: results}
	batch.Tally()
	e.sendProgress(prog, batchCompletedUpdate(batch))
	e.logger.Info("batch completed", "total", len(urls), "succeeded", batch.SuccessCount, "failed", batch.ErrorCount)
	return batch, nil
}
