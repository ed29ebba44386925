// Package stages contains the six pipeline stages in execution order:
// normalize, diarize, stt, merge, categorize, refine.
package stages

import (
	"github.com/recapd/recapd/pkg/media"
	"github.com/recapd/recapd/pkg/pipeline"
)

// Default returns the canonical stage sequence.
func Default(transcoder *media.Transcoder) []pipeline.Stage {
	return []pipeline.Stage{
		NewNormalize(transcoder),
		NewDiarize(),
		NewSTT(),
		NewMerge(),
		NewCategorize(),
		NewRefine(),
	}
}
