package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func sampleNotes() *NotesDocument {
	return &NotesDocument{
		Overview: "An introduction to distributed consensus.",
		Sections: []Section{
			{Title: "Intro", StartTimestamp: "00:00", EndTimestamp: "02:15", Notes: "Problem statement."},
			{Title: "Paxos", StartTimestamp: "02:15", Notes: "Roles and phases."},
		},
		Takeaways:  []string{"Consensus needs a quorum.", "Leaders simplify liveness."},
		Quiz:       []QuizItem{{Question: "What is a quorum?", Answer: "A majority of acceptors."}},
		References: []string{"Paxos Made Simple"},
	}
}

func TestVideoResultVariants(t *testing.T) {
	success := SuccessResult("dQw4w9WgXcQ", VideoMetadata{Title: "Consensus 101"}, 4200, sampleNotes())
	if !success.Succeeded() {
		t.Error("success variant should report Succeeded")
	}
	if success.Error != nil {
		t.Error("success variant must not carry an error")
	}
	if success.Title != "Consensus 101" {
		t.Errorf("Title = %q, want %q", success.Title, "Consensus 101")
	}

	failure := FailureResult("dQw4w9WgXcQ", KindTranscriptUnavailable, "no captions")
	if failure.Succeeded() {
		t.Error("failure variant should not report Succeeded")
	}
	if failure.Notes != nil {
		t.Error("failure variant must not carry notes")
	}
	if failure.Error.Kind != KindTranscriptUnavailable {
		t.Errorf("Kind = %q, want %q", failure.Error.Kind, KindTranscriptUnavailable)
	}
	if failure.Error.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q, want the failing video's id", failure.Error.VideoID)
	}
}

func TestVideoResultJSONRoundTrip(t *testing.T) {
	original := SuccessResult("dQw4w9WgXcQ", VideoMetadata{
		Title:           "Consensus 101",
		Channel:         "Systems Lectures",
		Duration:        "12:30",
		DurationSeconds: 750,
		URL:             "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}, 4200, sampleNotes())

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded VideoResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestFailureVariantJSONOmitsSuccessFields(t *testing.T) {
	data, err := json.Marshal(FailureResult("abc123def45", KindSummarizationError, "quota exhausted"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"notes", "metadata", "transcriptLength", "title"} {
		if _, ok := raw[field]; ok {
			t.Errorf("failure variant JSON should omit %q", field)
		}
	}
	if _, ok := raw["error"]; !ok {
		t.Error("failure variant JSON must include error")
	}
}

func TestBatchResultTally(t *testing.T) {
	batch := BatchResult{Results: []VideoResult{
		SuccessResult("a", VideoMetadata{}, 10, sampleNotes()),
		FailureResult("b", KindTranscriptFetchError, "timeout"),
		SuccessResult("c", VideoMetadata{}, 20, sampleNotes()),
	}}
	batch.Tally()

	if batch.SuccessCount != 2 || batch.ErrorCount != 1 {
		t.Errorf("tally = %d/%d, want 2/1", batch.SuccessCount, batch.ErrorCount)
	}
}

func TestErrorKindOperational(t *testing.T) {
	if KindProcessingError.Operational() {
		t.Error("processing_error is a bug signal, not operational")
	}
	for _, k := range []ErrorKind{
		KindInvalidInput, KindLimitExceeded, KindTranscriptUnavailable,
		KindTranscriptFetchError, KindSummarizationError, KindPlaylistFetchError,
	} {
		if !k.Operational() {
			t.Errorf("%s should be operational", k)
		}
	}
}
