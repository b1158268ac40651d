package tasks

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"ytnotes/internal/models"
	"ytnotes/internal/services"
	"ytnotes/internal/shared"
)

const (
	testVideoID  = "dQw4w9WgXcQ"
	testVideoURL = "https://www.youtube.com/watch?v=" + testVideoID
)

type stubTranscripts struct {
	calls atomic.Int32
	fetch func(videoID string) (*services.Transcript, error)
}

func (s *stubTranscripts) Fetch(_ context.Context, videoID string) (*services.Transcript, error) {
	s.calls.Add(1)
	return s.fetch(videoID)
}

type stubSummarizer struct {
	calls     atomic.Int32
	summarize func(transcript string) (*models.NotesDocument, error)
}

func (s *stubSummarizer) Summarize(_ context.Context, transcript string, _ models.VideoMetadata) (*models.NotesDocument, error) {
	s.calls.Add(1)
	return s.summarize(transcript)
}

type stubPlaylists struct {
	calls atomic.Int32
	list  func(playlistID string) (*services.PlaylistPage, error)
}

func (s *stubPlaylists) List(_ context.Context, playlistID string) (*services.PlaylistPage, error) {
	s.calls.Add(1)
	return s.list(playlistID)
}

func goodTranscript(videoID string) (*services.Transcript, error) {
	return &services.Transcript{
		Text: "welcome to the lecture. today we cover consensus.",
		Metadata: models.VideoMetadata{
			Title:   "Lecture " + videoID,
			Channel: "Systems",
			URL:     "https://www.youtube.com/watch?v=" + videoID,
		},
	}, nil
}

func goodNotes(string) (*models.NotesDocument, error) {
	return &models.NotesDocument{
		Overview:  "An overview.",
		Takeaways: []string{"One takeaway."},
	}, nil
}

func testEngine(transcripts *stubTranscripts, summarizer *stubSummarizer, playlists *stubPlaylists) *PipelineEngine {
	limits := shared.LimitsConfig{BatchMax: 10, PlaylistMax: 20, Workers: 4}
	return NewPipelineEngine(transcripts, summarizer, playlists, limits, nil)
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds end to end", func(t *testing.T) {
		transcripts := &stubTranscripts{fetch: goodTranscript}
		summarizer := &stubSummarizer{summarize: goodNotes}
		engine := testEngine(transcripts, summarizer, nil)

		result := engine.Process(ctx, testVideoURL)
		if !result.Succeeded() {
			t.Fatalf("result failed: %+v", result.Error)
		}
		if result.VideoID != testVideoID {
			t.Errorf("VideoID = %q, want %q", result.VideoID, testVideoID)
		}
		if result.Notes == nil || result.Notes.Overview == "" {
			t.Error("missing notes document")
		}
		if result.TranscriptLength == 0 {
			t.Error("TranscriptLength not recorded")
		}
	})

	t.Run("rejects unparseable input without collaborator calls", func(t *testing.T) {
		transcripts := &stubTranscripts{fetch: goodTranscript}
		summarizer := &stubSummarizer{summarize: goodNotes}
		engine := testEngine(transcripts, summarizer, nil)

		result := engine.Process(ctx, "https://example.com/not-a-video")
		if result.Succeeded() {
			t.Fatal("expected failure")
		}
		if result.Error.Kind != models.KindInvalidInput {
			t.Errorf("Kind = %q, want %q", result.Error.Kind, models.KindInvalidInput)
		}
		if transcripts.calls.Load() != 0 || summarizer.calls.Load() != 0 {
			t.Error("invalid input must not reach collaborators")
		}
	})

	t.Run("classifies stage failures", func(t *testing.T) {
		tests := []struct {
			name      string
			fetch     func(string) (*services.Transcript, error)
			summarize func(string) (*models.NotesDocument, error)
			want      models.ErrorKind
		}{
			{
				name: "missing transcript",
				fetch: func(string) (*services.Transcript, error) {
					return nil, fmt.Errorf("%w: captions disabled", shared.ErrNoTranscript)
				},
				summarize: goodNotes,
				want:      models.KindTranscriptUnavailable,
			},
			{
				name: "transcript service outage",
				fetch: func(string) (*services.Transcript, error) {
					return nil, fmt.Errorf("%w: status 502", shared.ErrTranscriptFetch)
				},
				summarize: goodNotes,
				want:      models.KindTranscriptFetchError,
			},
			{
				name:  "summarizer outage",
				fetch: goodTranscript,
				summarize: func(string) (*models.NotesDocument, error) {
					return nil, fmt.Errorf("%w: all models failed", shared.ErrSummarizer)
				},
				want: models.KindSummarizationError,
			},
			{
				name:  "malformed summarizer output",
				fetch: goodTranscript,
				summarize: func(string) (*models.NotesDocument, error) {
					return nil, fmt.Errorf("%w: invalid JSON", shared.ErrBadSummary)
				},
				want: models.KindSummarizationError,
			},
			{
				name:  "empty summarizer document",
				fetch: goodTranscript,
				summarize: func(string) (*models.NotesDocument, error) {
					return &models.NotesDocument{}, nil
				},
				want: models.KindProcessingError,
			},
			{
				name: "transcript empty after cleanup",
				fetch: func(videoID string) (*services.Transcript, error) {
					return &services.Transcript{Text: "[Music] (applause)"}, nil
				},
				summarize: goodNotes,
				want:      models.KindProcessingError,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				engine := testEngine(&stubTranscripts{fetch: tc.fetch}, &stubSummarizer{summarize: tc.summarize}, nil)
				result := engine.Process(ctx, testVideoURL)
				if result.Succeeded() {
					t.Fatal("expected failure")
				}
				if result.Error.Kind != tc.want {
					t.Errorf("Kind = %q, want %q", result.Error.Kind, tc.want)
				}
				if result.Error.VideoID != testVideoID {
					t.Errorf("Error.VideoID = %q, want %q", result.Error.VideoID, testVideoID)
				}
				if result.Notes != nil {
					t.Error("failure variant must not carry notes")
				}
			})
		}
	})

	t.Run("recovers collaborator panic as processing error", func(t *testing.T) {
		transcripts := &stubTranscripts{fetch: func(string) (*services.Transcript, error) {
			panic("collaborator bug")
		}}
		engine := testEngine(transcripts, &stubSummarizer{summarize: goodNotes}, nil)

		result := engine.Process(ctx, testVideoURL)
		if result.Succeeded() {
			t.Fatal("expected failure")
		}
		if result.Error.Kind != models.KindProcessingError {
			t.Errorf("Kind = %q, want %q", result.Error.Kind, models.KindProcessingError)
		}
	})

	t.Run("accepts bare video IDs", func(t *testing.T) {
		engine := testEngine(&stubTranscripts{fetch: goodTranscript}, &stubSummarizer{summarize: goodNotes}, nil)
		result := engine.Process(ctx, testVideoID)
		if !result.Succeeded() {
			t.Fatalf("result failed: %+v", result.Error)
		}
	})
}
