// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/recapd/recapd/ent/jobstagelog"
	"github.com/recapd/recapd/ent/schema"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/speakersegment"
	"github.com/recapd/recapd/ent/subject"
	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/ent/workspace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobstagelogFields := schema.JobStageLog{}.Fields()
	_ = jobstagelogFields
	// jobstagelogDescStageName is the schema descriptor for stage_name field.
	jobstagelogDescStageName := jobstagelogFields[1].Descriptor()
	// jobstagelog.StageNameValidator is a validator for the "stage_name" field. It is called by the builders before save.
	jobstagelog.StageNameValidator = jobstagelogDescStageName.Validators[0].(func(string) error)
	sourcematerialFields := schema.SourceMaterial{}.Fields()
	_ = sourcematerialFields
	// sourcematerialDescOriginalFilename is the schema descriptor for original_filename field.
	sourcematerialDescOriginalFilename := sourcematerialFields[2].Descriptor()
	// sourcematerial.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	sourcematerial.OriginalFilenameValidator = sourcematerialDescOriginalFilename.Validators[0].(func(string) error)
	// sourcematerialDescCreatedAt is the schema descriptor for created_at field.
	sourcematerialDescCreatedAt := sourcematerialFields[8].Descriptor()
	// sourcematerial.DefaultCreatedAt holds the default value on creation for the created_at field.
	sourcematerial.DefaultCreatedAt = sourcematerialDescCreatedAt.Default.(func() time.Time)
	speakersegmentFields := schema.SpeakerSegment{}.Fields()
	_ = speakersegmentFields
	// speakersegmentDescSpeakerLabel is the schema descriptor for speaker_label field.
	speakersegmentDescSpeakerLabel := speakersegmentFields[1].Descriptor()
	// speakersegment.SpeakerLabelValidator is a validator for the "speaker_label" field. It is called by the builders before save.
	speakersegment.SpeakerLabelValidator = speakersegmentDescSpeakerLabel.Validators[0].(func(string) error)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[1].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = subjectDescName.Validators[0].(func(string) error)
	// subjectDescIsKoreanOnly is the schema descriptor for is_korean_only field.
	subjectDescIsKoreanOnly := subjectFields[3].Descriptor()
	// subject.DefaultIsKoreanOnly holds the default value on creation for the is_korean_only field.
	subject.DefaultIsKoreanOnly = subjectDescIsKoreanOnly.Default.(bool)
	// subjectDescCreatedAt is the schema descriptor for created_at field.
	subjectDescCreatedAt := subjectFields[4].Descriptor()
	// subject.DefaultCreatedAt holds the default value on creation for the created_at field.
	subject.DefaultCreatedAt = subjectDescCreatedAt.Default.(func() time.Time)
	summaryjobFields := schema.SummaryJob{}.Fields()
	_ = summaryjobFields
	// summaryjobDescTitle is the schema descriptor for title field.
	summaryjobDescTitle := summaryjobFields[1].Descriptor()
	// summaryjob.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	summaryjob.TitleValidator = summaryjobDescTitle.Validators[0].(func(string) error)
	// summaryjobDescCreatedAt is the schema descriptor for created_at field.
	summaryjobDescCreatedAt := summaryjobFields[5].Descriptor()
	// summaryjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	summaryjob.DefaultCreatedAt = summaryjobDescCreatedAt.Default.(func() time.Time)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescName is the schema descriptor for name field.
	workspaceDescName := workspaceFields[0].Descriptor()
	// workspace.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workspace.NameValidator = workspaceDescName.Validators[0].(func(string) error)
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[2].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
}
