// package cleaner normalizes raw transcript text before summarization
package cleaner

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	bracketCue  = regexp.MustCompile(`\[[^\]]*\]`)
	parenCue    = regexp.MustCompile(`\([^)]*\)`)
	whitespace  = regexp.MustCompile(`\s+`)
	sentenceEnd = regexp.MustCompile(`([.!?])\s+`)
)

// Clean normalizes a raw transcript: caption cue annotations like
// "[Music]" or "(applause)" are stripped, whitespace is collapsed, and
// sentences are re-capitalized. Pure text transform; never fails.
func Clean(raw string) string {
	text := bracketCue.ReplaceAllString(raw, "")
	text = parenCue.ReplaceAllString(text, "")
	text = whitespace.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	sentences := Sentences(text)
	for i, s := range sentences {
		sentences[i] = capitalize(s)
	}
	return strings.Join(sentences, " ")
}

// Sentences splits cleaned text on terminal punctuation. The split is a
// segmentation hint for the summarizer, not a grammar-aware parse.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	marked := sentenceEnd.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func capitalize(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			break
		}
		if !unicode.IsSpace(r) && !unicode.IsPunct(r) && !unicode.IsDigit(r) {
			break
		}
	}
	return string(runes)
}
