package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"ytnotes/internal/formatter"
	"ytnotes/internal/models"
	"ytnotes/internal/shared"
)

// Video generates study notes for a single video and prints them.
func (r *Runner) Video(ctx context.Context, cmd *cli.Command) error {
	url := cmd.StringArg("url")
	if url == "" {
		return fmt.Errorf("%w: video URL argument is required", shared.ErrInvalidInput)
	}

	r.logger.Info("processing video", "url", url)
	result := r.engine.Process(ctx, url)

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	if err := r.exportNotes(result, cmd.String("output")); err != nil {
		return err
	}

	r.renderResult(result)
	if !result.Succeeded() {
		return fmt.Errorf("processing failed: %w", result.Error)
	}
	return nil
}

// exportNotes writes a successful result to the output directory when one
// was requested.
func (r *Runner) exportNotes(result models.VideoResult, dir string) error {
	if dir == "" || !result.Succeeded() {
		return nil
	}
	path, err := formatter.WriteMarkdownNotes(result, dir)
	if err != nil {
		return fmt.Errorf("failed to export notes: %w", err)
	}
	r.writePlain("Notes written to %s\n", path)
	return nil
}
