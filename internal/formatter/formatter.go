// package formatter renders notes documents to exportable formats (Markdown, plain text)
package formatter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"ytnotes/internal/models"
)

// NotesToMarkdown renders a successful video result as a Markdown study sheet.
func NotesToMarkdown(result models.VideoResult) ([]byte, error) {
	if result.Notes == nil {
		return nil, fmt.Errorf("result for %s carries no notes", result.VideoID)
	}

	var buf bytes.Buffer
	notes := result.Notes

	title := result.Title
	if title == "" {
		title = result.VideoID
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))

	if meta := result.Metadata; meta != nil {
		if meta.Channel != "" {
			buf.WriteString(fmt.Sprintf("**Channel**: %s\n", meta.Channel))
		}
		if meta.Duration != "" {
			buf.WriteString(fmt.Sprintf("**Duration**: %s\n", meta.Duration))
		}
		if meta.URL != "" {
			buf.WriteString(fmt.Sprintf("**Source**: %s\n", meta.URL))
		}
		buf.WriteString("\n")
	}

	if notes.Overview != "" {
		buf.WriteString("## Overview\n\n")
		buf.WriteString(notes.Overview + "\n\n")
	}

	for _, section := range notes.Sections {
		heading := section.Title
		if section.StartTimestamp != "" {
			heading = fmt.Sprintf("%s [%s]", heading, section.StartTimestamp)
		}
		buf.WriteString(fmt.Sprintf("## %s\n\n", heading))
		buf.WriteString(section.Notes + "\n\n")
	}

	if len(notes.Takeaways) > 0 {
		buf.WriteString("## Key Takeaways\n\n")
		for _, takeaway := range notes.Takeaways {
			buf.WriteString(fmt.Sprintf("- %s\n", takeaway))
		}
		buf.WriteString("\n")
	}

	if len(notes.Quiz) > 0 {
		buf.WriteString("## Quiz\n\n")
		for i, item := range notes.Quiz {
			buf.WriteString(fmt.Sprintf("%d. **Q**: %s\n   **A**: %s\n", i+1, item.Question, item.Answer))
		}
		buf.WriteString("\n")
	}

	if len(notes.References) > 0 {
		buf.WriteString("## References\n\n")
		for _, ref := range notes.References {
			buf.WriteString(fmt.Sprintf("- %s\n", ref))
		}
	}

	return buf.Bytes(), nil
}

// NotesToText renders a successful video result as plain text.
func NotesToText(result models.VideoResult) ([]byte, error) {
	if result.Notes == nil {
		return nil, fmt.Errorf("result for %s carries no notes", result.VideoID)
	}

	var buf bytes.Buffer
	notes := result.Notes

	buf.WriteString(fmt.Sprintf("Video: %s\n", result.Title))
	if notes.Overview != "" {
		buf.WriteString(fmt.Sprintf("Overview: %s\n\n", notes.Overview))
	}

	for _, section := range notes.Sections {
		buf.WriteString(fmt.Sprintf("-- %s --\n%s\n\n", section.Title, section.Notes))
	}

	for i, takeaway := range notes.Takeaways {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, takeaway))
	}

	return buf.Bytes(), nil
}

// WriteMarkdownNotes writes one video's notes to {dir}/{videoID}.md,
// creating the directory if needed. Returns the written path.
func WriteMarkdownNotes(result models.VideoResult, dir string) (string, error) {
	data, err := NotesToMarkdown(result)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, result.VideoID+".md")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write notes file: %w", err)
	}

	return path, nil
}
