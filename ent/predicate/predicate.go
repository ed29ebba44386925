// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// JobStageLog is the predicate function for jobstagelog builders.
type JobStageLog func(*sql.Selector)

// SourceMaterial is the predicate function for sourcematerial builders.
type SourceMaterial func(*sql.Selector)

// SpeakerSegment is the predicate function for speakersegment builders.
type SpeakerSegment func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)

// SummaryJob is the predicate function for summaryjob builders.
type SummaryJob func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)
