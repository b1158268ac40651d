package cleaner

import (
	"reflect"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips bracket cues",
			input: "welcome back. [Music] today we cover paxos.",
			want:  "Welcome back. Today we cover paxos.",
		},
		{
			name:  "strips paren cues",
			input: "so that's the idea (applause) thanks for watching.",
			want:  "So that's the idea thanks for watching.",
		},
		{
			name:  "collapses whitespace",
			input: "hello   world.\n\nthis  is\ta test.",
			want:  "Hello world. This is a test.",
		},
		{
			name:  "capitalizes each sentence",
			input: "first point. second point! third point? done.",
			want:  "First point. Second point! Third point? Done.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only cues",
			input: "[Music] (applause)",
			want:  "",
		},
		{
			name:  "preserves mid-sentence casing",
			input: "we use TCP for transport.",
			want:  "We use TCP for transport.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.input); got != tc.want {
				t.Errorf("Clean(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	input := "some [Music] transcript   text. more text here."
	once := Clean(input)
	twice := Clean(once)
	if once != twice {
		t.Errorf("Clean not idempotent: %q vs %q", once, twice)
	}
}

func TestCleanNeverGrowsUnbounded(t *testing.T) {
	input := strings.Repeat("a sentence here. ", 1000)
	if got := Clean(input); len(got) > len(input) {
		t.Errorf("cleaned output longer than input: %d > %d", len(got), len(input))
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("First one. Second one! Third? Trailing fragment")
	want := []string{"First one.", "Second one!", "Third?", "Trailing fragment"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences = %v, want %v", got, want)
	}

	if got := Sentences(""); got != nil {
		t.Errorf("Sentences(\"\") = %v, want nil", got)
	}
}
