package models

import "fmt"

// ErrorKind classifies a processing failure. Kinds are stable strings
// exposed at the JSON boundary; handlers and callers branch on them.
type ErrorKind string

const (
	KindInvalidInput          ErrorKind = "invalid_input"
	KindLimitExceeded         ErrorKind = "limit_exceeded"
	KindTranscriptUnavailable ErrorKind = "transcript_unavailable"
	KindTranscriptFetchError  ErrorKind = "transcript_fetch_error"
	KindSummarizationError    ErrorKind = "summarization_error"
	KindProcessingError       ErrorKind = "processing_error"
	KindPlaylistFetchError    ErrorKind = "playlist_fetch_error"
)

// Operational reports whether the kind is an expected operational failure
// (logged at warn) as opposed to a bug signal (logged at error).
func (k ErrorKind) Operational() bool {
	return k != KindProcessingError
}

// ErrorInfo is the classified failure attached to a [VideoResult] or
// returned for whole-call rejections.
type ErrorInfo struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	VideoID string    `json:"videoId,omitempty"`
}

// Error implements the error interface so whole-call rejections can travel
// as ordinary Go errors.
func (e *ErrorInfo) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// VideoMetadata describes the source video as reported by the transcript
// service. All fields are best-effort.
type VideoMetadata struct {
	Title           string `json:"title,omitempty"`
	Channel         string `json:"channel,omitempty"`
	Duration        string `json:"duration,omitempty"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	URL             string `json:"url,omitempty"`
}

// Section is one chronological chunk of the notes. Ordering mirrors the
// video timeline.
type Section struct {
	Title          string `json:"title"`
	StartTimestamp string `json:"startTimestamp"`
	EndTimestamp   string `json:"endTimestamp,omitempty"`
	Notes          string `json:"notes"`
}

// QuizItem is one comprehension question generated from the notes.
type QuizItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// NotesDocument is the structured study-notes output of the summarizer.
// It is produced once per video and never mutated afterwards.
type NotesDocument struct {
	Overview   string     `json:"overview"`
	Sections   []Section  `json:"sections"`
	Takeaways  []string   `json:"takeaways"`
	Quiz       []QuizItem `json:"quiz"`
	References []string   `json:"references,omitempty"`
}

// Empty reports whether the document carries no usable content.
func (d *NotesDocument) Empty() bool {
	if d == nil {
		return true
	}
	return d.Overview == "" && len(d.Sections) == 0 && len(d.Takeaways) == 0
}

// VideoResult is the outcome of processing one video. Exactly one of Notes
// or Error is set; Succeeded distinguishes the variants.
type VideoResult struct {
	VideoID          string         `json:"videoId"`
	Title            string         `json:"title,omitempty"`
	TranscriptLength int            `json:"transcriptLength,omitempty"`
	Metadata         *VideoMetadata `json:"metadata,omitempty"`
	Notes            *NotesDocument `json:"notes,omitempty"`
	Error            *ErrorInfo     `json:"error,omitempty"`
}

// Succeeded reports whether the result carries the success variant.
func (r VideoResult) Succeeded() bool {
	return r.Error == nil && r.Notes != nil
}

// SuccessResult assembles the success variant of a [VideoResult].
func SuccessResult(videoID string, meta VideoMetadata, transcriptLen int, notes *NotesDocument) VideoResult {
	return VideoResult{
		VideoID:          videoID,
		Title:            meta.Title,
		TranscriptLength: transcriptLen,
		Metadata:         &meta,
		Notes:            notes,
	}
}

// FailureResult assembles the failure variant of a [VideoResult].
func FailureResult(videoID string, kind ErrorKind, message string) VideoResult {
	return VideoResult{
		VideoID: videoID,
		Error:   &ErrorInfo{Kind: kind, Message: message, VideoID: videoID},
	}
}

// BatchResult aggregates per-video results. Results is ordered identically
// to the input request order regardless of completion order.
type BatchResult struct {
	Results      []VideoResult `json:"results"`
	SuccessCount int           `json:"successCount"`
	ErrorCount   int           `json:"errorCount"`
}

// Tally recomputes SuccessCount and ErrorCount from the result variants.
func (b *BatchResult) Tally() {
	b.SuccessCount, b.ErrorCount = 0, 0
	for _, r := range b.Results {
		if r.Succeeded() {
			b.SuccessCount++
		} else {
			b.ErrorCount++
		}
	}
}

// PlaylistResult wraps a batch outcome with playlist metadata. VideoCount
// reflects the number of videos actually processed after any truncation.
type PlaylistResult struct {
	PlaylistTitle string      `json:"playlistTitle"`
	VideoCount    int         `json:"videoCount"`
	Batch         BatchResult `json:"batch"`
}
