// Gemini [Summarizer] implementation backed by the generateContent REST API
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ytnotes/internal/models"
	"ytnotes/internal/shared"
)

const defaultGeminiEndpoint string = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService implements [Summarizer] using Google's Gemini API.
// Candidate models are tried in order; the first that produces a parseable
// notes document wins.
type GeminiService struct {
	endpoint   string
	apiKey     string
	models     []string
	maxChars   int
	httpClient *http.Client
}

// NewGeminiService builds a summarizer client from configuration.
func NewGeminiService(cfg shared.GeminiConfig, maxChars int, client *http.Client) *GeminiService {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultGeminiEndpoint
	}
	if len(cfg.Models) == 0 {
		cfg.Models = []string{"gemini-2.5-flash", "gemini-1.5-flash", "gemini-1.5-pro"}
	}
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}

	return &GeminiService{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		models:     cfg.Models,
		maxChars:   maxChars,
		httpClient: client,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Summarize generates a structured notes document for a cleaned transcript.
//
// The transcript is clamped to the configured character limit before the
// call. API failures across all candidate models wrap shared.ErrSummarizer;
// a response that cannot be decoded into a notes document wraps
// shared.ErrBadSummary.
func (g *GeminiService) Summarize(ctx context.Context, transcript string, meta models.VideoMetadata) (*models.NotesDocument, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("%w: %v", shared.ErrSummarizer, shared.ErrMissingKey)
	}

	if g.maxChars > 0 && len(transcript) > g.maxChars {
		transcript = transcript[:g.maxChars]
	}

	prompt := buildNotesPrompt(transcript, meta)

	var lastErr error
	for _, model := range g.models {
		raw, err := g.generate(ctx, model, prompt)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		notes, err := parseNotesDocument(raw)
		if err != nil {
			return nil, err
		}
		return notes, nil
	}

	return nil, fmt.Errorf("%w: all models failed: %v", shared.ErrSummarizer, lastErr)
}

func (g *GeminiService) generate(ctx context.Context, model, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", shared.ErrSummarizer, err)
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent", g.endpoint, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: new request: %v", shared.ErrSummarizer, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrSummarizer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: %s: %s: %s", shared.ErrSummarizer, model, resp.Status, strings.TrimSpace(string(detail)))
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", shared.ErrSummarizer, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: %s returned no candidates", shared.ErrSummarizer, model)
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// parseNotesDocument decodes the model's text output into a notes
// document, tolerating markdown code fences around the JSON.
func parseNotesDocument(raw string) (*models.NotesDocument, error) {
	cleaned := stripCodeFences(raw)

	var notes models.NotesDocument
	if err := json.Unmarshal([]byte(cleaned), &notes); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrBadSummary, err)
	}
	if notes.Empty() {
		return nil, fmt.Errorf("%w: document has no content", shared.ErrBadSummary)
	}
	return &notes, nil
}

func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func buildNotesPrompt(transcript string, meta models.VideoMetadata) string {
	var sb strings.Builder

	sb.WriteString("You turn lecture transcripts into structured study notes.\n")
	sb.WriteString("Respond with a single JSON object and nothing else, using exactly these fields:\n")
	sb.WriteString(`{"overview": string, "sections": [{"title": string, "startTimestamp": "MM:SS", "endTimestamp": "MM:SS", "notes": string}], "takeaways": [string], "quiz": [{"question": string, "answer": string}], "references": [string]}`)
	sb.WriteString("\nSections must follow the video's chronology. Write 5 quiz questions.\n\n")

	if meta.Title != "" {
		fmt.Fprintf(&sb, "Video title: %s\n", meta.Title)
	}
	if meta.Channel != "" {
		fmt.Fprintf(&sb, "Channel: %s\n", meta.Channel)
	}
	if meta.Duration != "" {
		fmt.Fprintf(&sb, "Duration: %s\n", meta.Duration)
	}

	sb.WriteString("\nTranscript:\n---\n")
	sb.WriteString(transcript)
	sb.WriteString("\n---\n")

	return sb.String()
}
