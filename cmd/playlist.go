package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"ytnotes/internal/shared"
	"ytnotes/internal/ui"
)

// Playlist generates study notes for every video in a playlist.
func (r *Runner) Playlist(ctx context.Context, cmd *cli.Command) error {
	url := cmd.StringArg("url")
	if url == "" {
		return fmt.Errorf("%w: playlist URL argument is required", shared.ErrInvalidInput)
	}

	r.logger.Info("processing playlist", "url", url)

	prog, done := r.watchProgress()
	result, err := r.engine.ProcessPlaylist(ctx, prog, url)
	close(prog)
	<-done
	if err != nil {
		return fmt.Errorf("playlist rejected: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	for _, videoResult := range result.Batch.Results {
		if err := r.exportNotes(videoResult, cmd.String("output")); err != nil {
			return err
		}
	}

	r.writePlainln("%s %s", ui.Title(result.PlaylistTitle), ui.Help(fmt.Sprintf("(%d videos)", result.VideoCount)))
	r.renderBatchSummary(&result.Batch)
	return nil
}

// ConfigInit writes the example configuration file.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.writePlain("Config written to %s\n", path)
	r.writePlain("%s\n", ui.Help("Set credentials there or via GOOGLE_API_KEY / YOUTUBE_API_KEY."))
	return nil
}
