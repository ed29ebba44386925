package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Turn is one decoded diarization interval in chunk-local time.
type Turn struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
}

// ErrUnsupportedAnnotation reports an annotation payload in none of the
// accepted shapes.
var ErrUnsupportedAnnotation = errors.New("unsupported diarization annotation shape")

// DecodeAnnotation normalizes a diarizer annotation into a flat turn list.
// Three shapes are accepted:
//
//  1. A plain turn list: [{"start","end","speaker"}, ...]
//  2. A serialized object with an "exclusive_diarization" or "diarization"
//     list (exclusive preferred)
//  3. A nested object whose "exclusive_speaker_diarization" (preferred) or
//     "speaker_diarization" value is itself one of the above
func DecodeAnnotation(raw json.RawMessage) ([]Turn, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrUnsupportedAnnotation)
	}

	var turns []Turn
	if err := json.Unmarshal(raw, &turns); err == nil {
		return turns, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAnnotation, err)
	}

	for _, key := range []string{"exclusive_speaker_diarization", "speaker_diarization"} {
		if nested, ok := obj[key]; ok {
			return DecodeAnnotation(nested)
		}
	}

	for _, key := range []string{"exclusive_diarization", "diarization"} {
		if list, ok := obj[key]; ok {
			if err := json.Unmarshal(list, &turns); err != nil {
				return nil, fmt.Errorf("%w: bad %s list: %v", ErrUnsupportedAnnotation, key, err)
			}
			return turns, nil
		}
	}

	return nil, fmt.Errorf("%w: no recognized keys", ErrUnsupportedAnnotation)
}
