package main

import (
	"ytnotes/internal/models"
	"ytnotes/internal/ui"
)

// renderResult prints one video's outcome in a readable terminal layout.
func (r *Runner) renderResult(result models.VideoResult) {
	if !result.Succeeded() {
		r.writePlain("%s %s\n", ui.Err("✗"), result.Error.Error())
		return
	}

	title := result.Title
	if title == "" {
		title = result.VideoID
	}
	r.writePlain("%s\n", ui.Title(title))
	if meta := result.Metadata; meta != nil && meta.Channel != "" {
		r.writePlain("%s\n\n", ui.Help(meta.Channel+" · "+meta.Duration))
	}

	notes := result.Notes
	if notes.Overview != "" {
		r.writePlain("%s\n\n", notes.Overview)
	}

	for _, section := range notes.Sections {
		heading := section.Title
		if section.StartTimestamp != "" {
			heading += " [" + section.StartTimestamp + "]"
		}
		r.writePlain("%s\n%s\n\n", ui.OK(heading), section.Notes)
	}

	if len(notes.Takeaways) > 0 {
		r.writePlain("%s\n", ui.Title("Key Takeaways"))
		for _, takeaway := range notes.Takeaways {
			r.writePlain("  • %s\n", takeaway)
		}
		r.writePlain("\n")
	}

	if len(notes.Quiz) > 0 {
		r.writePlain("%s\n", ui.Title("Quiz"))
		for i, item := range notes.Quiz {
			r.writePlain("  %d. %s\n     %s\n", i+1, item.Question, ui.Help(item.Answer))
		}
	}
}

// renderBatchSummary prints the per-video outcomes and the final tally.
func (r *Runner) renderBatchSummary(batch *models.BatchResult) {
	for _, result := range batch.Results {
		if result.Succeeded() {
			title := result.Title
			if title == "" {
				title = result.VideoID
			}
			r.writePlain("%s %s\n", ui.OK("✓"), title)
		} else {
			r.writePlain("%s %s: %s\n", ui.Err("✗"), result.VideoID, result.Error.Message)
		}
	}
	r.writePlainln("%d succeeded, %d failed", batch.SuccessCount, batch.ErrorCount)
}
