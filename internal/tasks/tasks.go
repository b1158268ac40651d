// package tasks implements the video processing pipeline and its batch and
// playlist orchestration.
//
// The core abstraction is NotesEngine, which sequences the three
// collaborator calls (transcript fetch, cleanup, summarization) per video
// and fans out across batches. Operations emit progress updates via
// channels for non-blocking status reporting to the CLI layer.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"ytnotes/internal/cleaner"
	"ytnotes/internal/models"
	"ytnotes/internal/services"
	"ytnotes/internal/shared"
)

// NotesEngine defines the processing operations exposed to the HTTP layer
// and the CLI.
type NotesEngine interface {
	// Process runs one video end to end. It always returns a result:
	// stage failures are classified into the result's error variant and
	// never propagate as Go errors.
	Process(ctx context.Context, rawURL string) models.VideoResult

	// ProcessAll runs up to limit independent videos, collecting successes
	// and failures without letting one failure abort the rest. The only
	// whole-call errors are the pre-flight rejections (invalid input,
	// limit exceeded).
	ProcessAll(ctx context.Context, prog chan<- ProgressUpdate, urls []string, limit int) (*models.BatchResult, error)

	// ProcessPlaylist resolves a playlist URL and delegates the (possibly
	// truncated) video list to ProcessAll.
	ProcessPlaylist(ctx context.Context, prog chan<- ProgressUpdate, playlistURL string) (*models.PlaylistResult, error)
}

// PipelineEngine implements [NotesEngine] with dependencies on the three
// collaborator services.
type PipelineEngine struct {
	transcripts services.TranscriptSource
	summarizer  services.Summarizer
	playlists   services.PlaylistLister
	limits      shared.LimitsConfig
	logger      *log.Logger
}

// NewPipelineEngine creates a new PipelineEngine with the provided
// collaborators and policy limits.
func NewPipelineEngine(
	transcripts services.TranscriptSource,
	summarizer services.Summarizer,
	playlists services.PlaylistLister,
	limits shared.LimitsConfig,
	logger *log.Logger,
) *PipelineEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	logger = shared.WithLogger(logger, "component", "engine")

	return &PipelineEngine{
		transcripts: transcripts,
		summarizer:  summarizer,
		playlists:   playlists,
		limits:      limits,
		logger:      logger,
	}
}

// Process runs the per-video pipeline: validate, fetch transcript, clean,
// summarize, assemble. Each stage failure is caught and reclassified here
// so callers always receive one of the taxonomy kinds, never a raw
// collaborator error.
func (e *PipelineEngine) Process(ctx context.Context, rawURL string) (result models.VideoResult) {
	videoID := shared.ExtractVideoID(rawURL)

	// The batch contract depends on Process never raising past its
	// boundary, so even a panic in a collaborator becomes a classified
	// failure variant.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("pipeline panic", "video", videoID, "panic", r)
			result = models.FailureResult(videoID, models.KindProcessingError, fmt.Sprintf("unexpected failure: %v", r))
		}
	}()

	if videoID == "" {
		return models.FailureResult("", models.KindInvalidInput,
			fmt.Sprintf("no video ID could be extracted from %q", rawURL))
	}

	transcript, err := e.transcripts.Fetch(ctx, videoID)
	if err != nil {
		return e.failure(videoID, classifyTranscriptError(err), err)
	}

	cleaned := cleaner.Clean(transcript.Text)
	if cleaned == "" {
		return e.failure(videoID, models.KindProcessingError,
			fmt.Errorf("transcript for %s is empty after cleanup", videoID))
	}

	notes, err := e.summarizer.Summarize(ctx, cleaned, transcript.Metadata)
	if err != nil {
		return e.failure(videoID, models.KindSummarizationError, err)
	}
	if notes.Empty() {
		return e.failure(videoID, models.KindProcessingError,
			fmt.Errorf("summarizer returned a document with no content for %s", videoID))
	}

	return models.SuccessResult(videoID, transcript.Metadata, len(cleaned), notes)
}

// failure logs and assembles the failure variant. Operational kinds log at
// warn; processing errors are bug signals and log at error.
func (e *PipelineEngine) failure(videoID string, kind models.ErrorKind, err error) models.VideoResult {
	if kind.Operational() {
		e.logger.Warn("video processing failed", "video", videoID, "kind", kind, "err", err)
	} else {
		e.logger.Error("video processing failed", "video", videoID, "kind", kind, "err", err)
	}
	return models.FailureResult(videoID, kind, err.Error())
}

func classifyTranscriptError(err error) models.ErrorKind {
	if errors.Is(err, shared.ErrNoTranscript) {
		return models.KindTranscriptUnavailable
	}
	return models.KindTranscriptFetchError
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *PipelineEngine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}
