// package services defines the collaborator interfaces the processing
// engine depends on and their HTTP client implementations
//
// transcript proxy, Gemini, YouTube Data API
package services

import (
	"context"

	"ytnotes/internal/models"
)

// Transcript is the raw transcript of one video together with whatever
// metadata the source could resolve.
type Transcript struct {
	Text     string
	Metadata models.VideoMetadata
}

// TranscriptSource retrieves raw transcripts by canonical video ID.
//
// Fetch distinguishes two failure modes the caller must tell apart: it
// wraps shared.ErrNoTranscript when the video has no captions, and
// shared.ErrTranscriptFetch for transport, rate-limit, and quota failures.
type TranscriptSource interface {
	Fetch(ctx context.Context, videoID string) (*Transcript, error)
}

// Summarizer turns a cleaned transcript into a structured notes document.
//
// Summarize wraps shared.ErrSummarizer on API failures and
// shared.ErrBadSummary when the model's output cannot be parsed into a
// [models.NotesDocument].
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, meta models.VideoMetadata) (*models.NotesDocument, error)
}

// PlaylistPage is an ordered listing of a playlist's videos.
type PlaylistPage struct {
	ID       string
	Title    string
	VideoIDs []string
}

// PlaylistLister resolves a playlist ID into its title and ordered video
// IDs. List wraps shared.ErrPlaylist on any resolution failure (private or
// deleted playlist, network error).
type PlaylistLister interface {
	List(ctx context.Context, playlistID string) (*PlaylistPage, error)
}
