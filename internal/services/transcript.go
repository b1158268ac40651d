// Transcript proxy [TranscriptSource] implementation
//
// Communicates with the transcript proxy service that wraps caption
// retrieval (auto-captions and manual subtitles). The proxy exposes a
// single read endpoint per video ID.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"ytnotes/internal/models"
	"ytnotes/internal/shared"
)

const defaultTranscriptBaseURL string = "http://localhost:8080"

// Caption responses that are actually interstitial or consent pages slip
// through upstream occasionally; these markers identify them.
var suspectMarkers = []string{
	"we're sorry",
	"unusual traffic",
	"automated queries",
	"captcha",
}

// TranscriptService implements [TranscriptSource] against the transcript
// proxy. A shared rate limiter paces requests so concurrent batch workers
// stay inside the proxy's upstream quota.
type TranscriptService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewTranscriptService creates a transcript proxy client. A nil limiter
// disables pacing; a nil client falls back to [http.DefaultClient].
func NewTranscriptService(baseURL string, client *http.Client, limiter *rate.Limiter) *TranscriptService {
	if baseURL == "" {
		baseURL = defaultTranscriptBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &TranscriptService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

type transcriptResponse struct {
	VideoID         string `json:"videoId"`
	Text            string `json:"text"`
	Language        string `json:"language"`
	Title           string `json:"title"`
	Channel         string `json:"channel"`
	DurationSeconds int    `json:"duration_seconds"`
}

// Fetch retrieves the raw transcript for a video ID.
//
// Calls GET /api/transcripts/{videoId} on the proxy. A 404 maps to
// shared.ErrNoTranscript; every other failure, including 429 rate
// limiting, maps to shared.ErrTranscriptFetch.
func (t *TranscriptService) Fetch(ctx context.Context, videoID string) (*Transcript, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrTranscriptFetch, err)
		}
	}

	apiURL := fmt.Sprintf("%s/api/transcripts/%s", t.baseURL, videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", shared.ErrTranscriptFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrTranscriptFetch, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: video %s", shared.ErrNoTranscript, videoID)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: rate limited fetching %s", shared.ErrTranscriptFetch, videoID)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return nil, fmt.Errorf("%w: status %d: %s", shared.ErrTranscriptFetch, resp.StatusCode, errResp.Detail)
		}
		return nil, fmt.Errorf("%w: status %d", shared.ErrTranscriptFetch, resp.StatusCode)
	}

	var payload transcriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", shared.ErrTranscriptFetch, err)
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" || isSuspectContent(text) {
		return nil, fmt.Errorf("%w: video %s", shared.ErrNoTranscript, videoID)
	}

	meta := models.VideoMetadata{
		Title:           payload.Title,
		Channel:         payload.Channel,
		DurationSeconds: payload.DurationSeconds,
		URL:             "https://www.youtube.com/watch?v=" + videoID,
	}
	if payload.DurationSeconds > 0 {
		meta.Duration = shared.FormatDuration(payload.DurationSeconds)
	}

	return &Transcript{Text: text, Metadata: meta}, nil
}

func isSuspectContent(text string) bool {
	lowered := strings.ToLower(text)
	for _, marker := range suspectMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
