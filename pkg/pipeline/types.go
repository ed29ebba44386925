// Package pipeline implements the staged audio processing engine: a fixed
// sequence of stages sharing a per-run context, with failure-halt
// orchestration and best-effort artifact persistence.
package pipeline

// Document type labels produced by the categorize stage.
const (
	DocTypeConversation = "CONVERSATION"
	DocTypeLecture      = "LECTURE"
	DocTypeMeeting      = "MEETING"
)

// AudioChunk is a contiguous slice of the normalized input, the unit of
// diarization and transcription. Start and End are seconds on the global
// timeline of the whole recording.
type AudioChunk struct {
	ID       string  `json:"id"`
	FilePath string  `json:"file_path"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`

	// Filled in by the merge stage.
	Speaker    string `json:"speaker,omitempty"`
	Transcript string `json:"transcript,omitempty"`
}

// SpeakerTurn is one diarization output interval in global time.
type SpeakerTurn struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
}

// TranscriptSegment is one STT output interval in global time. Text may
// be empty.
type TranscriptSegment struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
}

// MergedSegment is a speaker-attributed transcript interval produced by
// the merge stage.
type MergedSegment struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Speaker  string  `json:"speaker"`
}

// CategoryResult is the categorize stage output. Source records how the
// label was produced: "llm", "heuristic", or "empty".
type CategoryResult struct {
	DocumentType string `json:"document_type"`
	Source       string `json:"source"`
}
