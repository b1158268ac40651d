package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"ytnotes/internal/models"
	"ytnotes/internal/shared"
	"ytnotes/internal/tasks"
	"ytnotes/internal/ui"
)

// Batch generates study notes for every URL given as an argument.
func (r *Runner) Batch(ctx context.Context, cmd *cli.Command) error {
	urls := cmd.Args().Slice()
	if len(urls) == 0 {
		return fmt.Errorf("%w: at least one video URL argument is required", shared.ErrInvalidInput)
	}

	r.logger.Info("processing batch", "videos", len(urls))

	prog, done := r.watchProgress()
	batch, err := r.engine.ProcessAll(ctx, prog, urls, 0)
	close(prog)
	<-done
	if err != nil {
		return fmt.Errorf("batch rejected: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(batch, cmd.Bool("pretty"))
	}

	for _, result := range batch.Results {
		if err := r.exportNotes(result, cmd.String("output")); err != nil {
			return err
		}
	}

	r.renderBatchSummary(batch)
	return nil
}

// watchProgress starts a consumer that prints progress lines as they
// arrive. The returned channel must be closed by the caller; done is closed
// once the consumer drains.
func (r *Runner) watchProgress() (chan tasks.ProgressUpdate, <-chan struct{}) {
	prog := make(chan tasks.ProgressUpdate, 64)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for update := range prog {
			switch update.Phase {
			case tasks.PhaseItemCompleted:
				marker := ui.OK("✓")
				if result, ok := update.Data.(models.VideoResult); ok && !result.Succeeded() {
					marker = ui.Err("✗")
				}
				r.writePlain("%s %s\n", marker, update.Message)
			case tasks.PhaseResolvePlaylist:
				r.writePlain("%s\n", ui.Help(update.Message))
			}
		}
	}()

	return prog, done
}
