package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"ytnotes/internal/models"
	"ytnotes/internal/tasks"
)

// NotesHandler serves the processing endpoints on top of a
// [tasks.NotesEngine]. Implements the [Handler] interface.
type NotesHandler struct {
	engine tasks.NotesEngine
}

// NewNotesHandler creates a handler backed by the given engine.
func NewNotesHandler(engine tasks.NotesEngine) *NotesHandler {
	return &NotesHandler{engine: engine}
}

// Routes returns the method-qualified patterns this handler serves.
func (h *NotesHandler) Routes() []string {
	return []string{
		"POST /api/process-video",
		"POST /api/process-batch",
		"POST /api/process-playlist",
		"GET /health",
	}
}

// ServeHTTP dispatches to the endpoint handlers by path.
func (h *NotesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/process-video":
		h.processVideo(w, r)
	case "/api/process-batch":
		h.processBatch(w, r)
	case "/api/process-playlist":
		h.processPlaylist(w, r)
	case "/health":
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	default:
		writeError(w, http.StatusNotFound, models.KindInvalidInput, "unknown endpoint")
	}
}

// processVideo handles single video requests. Pipeline failures other than
// input validation still answer 200: the failure variant in the body is the
// result, not a transport error.
func (h *NotesHandler) processVideo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VideoURL string `json:"video_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, models.KindInvalidInput, "request body must be JSON with a video_url field")
		return
	}
	if req.VideoURL == "" {
		writeError(w, http.StatusBadRequest, models.KindInvalidInput, "video_url is required")
		return
	}

	result := h.engine.Process(r.Context(), req.VideoURL)
	if !result.Succeeded() && result.Error.Kind == models.KindInvalidInput {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *NotesHandler) processBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VideoURLs []string `json:"video_urls"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, models.KindInvalidInput, "request body must be JSON with a video_urls field")
		return
	}

	batch, err := h.engine.ProcessAll(r.Context(), nil, req.VideoURLs, 0)
	if err != nil {
		writeEngineError(w, err, map[models.ErrorKind]int{
			models.KindInvalidInput:  http.StatusBadRequest,
			models.KindLimitExceeded: http.StatusBadRequest,
		})
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

func (h *NotesHandler) processPlaylist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlaylistURL string `json:"playlist_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, models.KindInvalidInput, "request body must be JSON with a playlist_url field")
		return
	}
	if req.PlaylistURL == "" {
		writeError(w, http.StatusBadRequest, models.KindInvalidInput, "playlist_url is required")
		return
	}

	result, err := h.engine.ProcessPlaylist(r.Context(), nil, req.PlaylistURL)
	if err != nil {
		writeEngineError(w, err, map[models.ErrorKind]int{
			models.KindInvalidInput:       http.StatusBadRequest,
			models.KindPlaylistFetchError: http.StatusBadGateway,
			models.KindLimitExceeded:      http.StatusRequestEntityTooLarge,
		})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, kind models.ErrorKind, message string) {
	writeJSON(w, status, map[string]*models.ErrorInfo{
		"error": {Kind: kind, Message: message},
	})
}

// writeEngineError maps a whole-call engine rejection to a status code and
// echoes the classified error in the body.
func writeEngineError(w http.ResponseWriter, err error, statuses map[models.ErrorKind]int) {
	var info *models.ErrorInfo
	if !errors.As(err, &info) {
		writeError(w, http.StatusInternalServerError, models.KindProcessingError, err.Error())
		return
	}
	status, ok := statuses[info.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]*models.ErrorInfo{"error": info})
}
