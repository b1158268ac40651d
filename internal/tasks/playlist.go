package tasks

import (
	"context"
	"fmt"

	"ytnotes/internal/models"
	"ytnotes/internal/shared"
)

// ProcessPlaylist resolves a playlist URL or ID into its video list and runs
// the batch pipeline over it. Playlists longer than the configured maximum
// are truncated to the first N videos rather than rejected; VideoCount in
// the result reflects the truncated count actually processed.
func (e *PipelineEngine) ProcessPlaylist(ctx context.Context, prog chan<- ProgressUpdate, playlistURL string) (*models.PlaylistResult, error) {
	playlistID := shared.ExtractPlaylistID(playlistURL)
	if playlistID == "" {
		return nil, &models.ErrorInfo{
			Kind:    models.KindInvalidInput,
			Message: fmt.Sprintf("no playlist ID could be extracted from %q", playlistURL),
		}
	}

	page, err := e.playlists.List(ctx, playlistID)
	if err != nil {
		e.logger.Warn("playlist resolution failed", "playlist", playlistID, "err", err)
		return nil, &models.ErrorInfo{
			Kind:    models.KindPlaylistFetchError,
			Message: err.Error(),
		}
	}

	videoIDs := page.VideoIDs
	if max := e.limits.PlaylistMax; max > 0 && len(videoIDs) > max {
		e.logger.Info("truncating playlist", "playlist", playlistID, "videos", len(videoIDs), "max", max)
		videoIDs = videoIDs[:max]
	}
	e.sendProgress(prog, playlistResolvedUpdate(page.Title, len(videoIDs)))

	batch, err := e.ProcessAll(ctx, prog, videoIDs, len(videoIDs))
	if err != nil {
		return nil, err
	}

	return &models.PlaylistResult{
		PlaylistTitle: page.Title,
		VideoCount:    len(videoIDs),
		Batch:         *batch,
	}, nil
}
