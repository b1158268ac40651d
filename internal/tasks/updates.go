package tasks

import (
	"fmt"

	"ytnotes/internal/models"
)

// Phase identifies which stage of an operation a progress update refers to.
type Phase int

const (
	PhaseValidate Phase = iota
	PhaseFetchTranscript
	PhaseSummarize
	PhaseResolvePlaylist
	PhaseItemCompleted
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseValidate:
		return "validate"
	case PhaseFetchTranscript:
		return "fetch_transcript"
	case PhaseSummarize:
		return "summarize"
	case PhaseResolvePlaylist:
		return "resolve_playlist"
	case PhaseItemCompleted:
		return "item_completed"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ProgressUpdate carries status information from a running operation to an
// observer. Step and Total describe position within a batch; Data carries
// phase-specific payloads such as the finished [models.VideoResult].
type ProgressUpdate struct {
	Phase   Phase
	Step    int
	Total   int
	Message string
	Data    any
}

func itemCompletedUpdate(step, total int, result models.VideoResult) ProgressUpdate {
	msg := fmt.Sprintf("processed %d/%d", step, total)
	if !result.Succeeded() {
		msg = fmt.Sprintf("failed %d/%d: %s", step, total, result.Error.Kind)
	}
	return ProgressUpdate{
		Phase:   PhaseItemCompleted,
		Step:    step,
		Total:   total,
		Message: msg,
		Data:    result,
	}
}

func playlistResolvedUpdate(title string, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PhaseResolvePlaylist,
		Total:   count,
		Message: fmt.Sprintf("playlist %q resolved to %d videos", title, count),
	}
}

func batchCompletedUpdate(batch *models.BatchResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PhaseCompleted,
		Step:    len(batch.Results),
		Total:   len(batch.Results),
		Message: fmt.Sprintf("%d succeeded, %d failed", batch.SuccessCount, batch.ErrorCount),
		Data:    batch,
	}
}
