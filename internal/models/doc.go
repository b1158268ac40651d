// Package models defines the data model shared by the processing engine,
// the HTTP boundary, and the CLI.
//
// # Result variants
//
// [VideoResult] is a tagged union: the success variant carries a
// [NotesDocument] plus transcript metadata, the failure variant carries an
// [ErrorInfo]. Exactly one is populated. The engine never returns a Go
// error for a single video; per-item failures are data, not control flow,
// which is what lets a batch keep going when one item fails.
//
// # Error taxonomy
//
// [ErrorKind] enumerates the classified failure kinds. Per-item kinds
// (transcript, summarization, processing) attach to the failing item's
// result; whole-call kinds (invalid_input, limit_exceeded,
// playlist_fetch_error) abort the call before any per-item work starts.
//
// The JSON tags on these types are the external contract: responses at the
// HTTP boundary serialize these structs field-for-field.
package models
