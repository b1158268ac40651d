// Package services contains the three external collaborators of the
// processing engine, each behind a small interface so the engine can be
// tested with substitutes.
//
//   - [TranscriptSource] / [TranscriptService]: transcript proxy client.
//     The proxy wraps caption retrieval for YouTube videos; this client
//     adds request pacing via a shared rate limiter and maps the proxy's
//     404 to the distinguishable "no transcript" condition.
//   - [Summarizer] / [GeminiService]: Gemini generateContent client with
//     an ordered model fallback list. Model output is expected to be a
//     JSON notes document, possibly wrapped in markdown code fences.
//   - [PlaylistLister] / [PlaylistService]: YouTube Data API v3 client
//     resolving a playlist ID into its title and ordered video IDs.
//
// Each client wraps its failures in the matching sentinel from
// internal/shared so the engine can classify errors with errors.Is without
// knowing transport details.
package services
