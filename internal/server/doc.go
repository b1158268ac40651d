// Package server provides HTTP routing, middleware, and the API handlers of
// the study notes service.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method-qualified patterns.
//
// # API Handlers
//
// [NotesHandler] exposes the processing engine over four endpoints:
//
//   - POST /api/process-video: one video, body {"video_url": "..."}
//   - POST /api/process-batch: up to the batch maximum, body {"video_urls": [...]}
//   - POST /api/process-playlist: a playlist URL or ID, body {"playlist_url": "..."}
//   - GET /health: liveness probe
//
// Status codes distinguish call-level rejections from per-video outcomes.
// A single video that fails during processing still answers 200 with the
// failure variant in the body; only validation-class problems (bad body,
// unparseable input, oversized batch) fail the call itself. Playlist
// resolution failures answer 502 because the fault lies upstream.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
