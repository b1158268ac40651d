package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrMissingKey    = fmt.Errorf("missing API key")

	// Input validation errors
	ErrInvalidInput  = fmt.Errorf("invalid input")
	ErrLimitExceeded = fmt.Errorf("limit exceeded")

	// Collaborator errors. ErrNoTranscript is the distinguishable "no
	// captions exist" condition; ErrTranscriptFetch covers transport,
	// rate-limit, and quota failures on the same call.
	ErrNoTranscript    = fmt.Errorf("no transcript available")
	ErrTranscriptFetch = fmt.Errorf("transcript fetch failed")
	ErrSummarizer      = fmt.Errorf("summarizer request failed")
	ErrBadSummary      = fmt.Errorf("summarizer returned malformed output")
	ErrPlaylist        = fmt.Errorf("playlist resolution failed")
)
