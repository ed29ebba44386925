package pipeline

import (
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/model"
)

// RunContext carries the per-run state shared by all stages: identity,
// configuration, lazily-loaded model handles, the run directory, and the
// inter-stage data slots. It is created by the job executor for exactly
// one input file and discarded after artifact persistence.
//
// The data slots form the contract between stages. Writers and readers:
//
//	Chunks                 normalize → diarize, stt, merge
//	NormalizedPath         normalize → diagnostics
//	Diarization            diarize   → merge
//	STT                    stt       → merge, categorize, refine
//	MergedTranscript       merge     → refine
//	SpeakerAttributedText  merge     → categorize, refine
//	Categories             categorize → refine, persistence
//	Summary, SummarySource refine    → consumer
type RunContext struct {
	RunID     string
	Config    *config.Config
	Resources *model.Resources

	// BaseDir is the run directory; every artifact lives under it.
	BaseDir   string
	InputFile string

	// Language hints the ASR model; empty means auto-detect.
	Language string

	Chunks                []*AudioChunk
	NormalizedPath        string
	Diarization           []SpeakerTurn
	STT                   []TranscriptSegment
	MergedTranscript      []MergedSegment
	SpeakerAttributedText string
	Categories            *CategoryResult
	Summary               string
	SummarySource         string

	// StageData holds each stage's returned data under "<name>_result",
	// recorded by the orchestrator for diagnostics.
	StageData map[string]any
}

// NewRunContext creates a run context with an empty data bag.
func NewRunContext(runID string, cfg *config.Config, res *model.Resources, baseDir, inputFile string) *RunContext {
	return &RunContext{
		RunID:     runID,
		Config:    cfg,
		Resources: res,
		BaseDir:   baseDir,
		InputFile: inputFile,
		StageData: make(map[string]any),
	}
}

// DocumentType returns the categorized document type, defaulting to
// CONVERSATION when categorization has not run or produced nothing.
func (rc *RunContext) DocumentType() string {
	if rc.Categories != nil && rc.Categories.DocumentType != "" {
		return rc.Categories.DocumentType
	}
	return DocTypeConversation
}
