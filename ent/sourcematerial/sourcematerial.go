// Code generated by ent, DO NOT EDIT.

package sourcematerial

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sourcematerial type in the database.
	Label = "source_material"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldStoragePath holds the string denoting the storage_path field in the database.
	FieldStoragePath = "storage_path"
	// FieldFileSizeBytes holds the string denoting the file_size_bytes field in the database.
	FieldFileSizeBytes = "file_size_bytes"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIndividualSummary holds the string denoting the individual_summary field in the database.
	FieldIndividualSummary = "individual_summary"
	// FieldOutputArtifacts holds the string denoting the output_artifacts field in the database.
	FieldOutputArtifacts = "output_artifacts"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeSpeakerSegments holds the string denoting the speaker_segments edge name in mutations.
	EdgeSpeakerSegments = "speaker_segments"
	// Table holds the table name of the sourcematerial in the database.
	Table = "source_materials"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "source_materials"
	// JobInverseTable is the table name for the SummaryJob entity.
	// It exists in this package in order to avoid circular dependency with the "summaryjob" package.
	JobInverseTable = "summary_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// SpeakerSegmentsTable is the table that holds the speaker_segments relation/edge.
	SpeakerSegmentsTable = "speaker_segments"
	// SpeakerSegmentsInverseTable is the table name for the SpeakerSegment entity.
	// It exists in this package in order to avoid circular dependency with the "speakersegment" package.
	SpeakerSegmentsInverseTable = "speaker_segments"
	// SpeakerSegmentsColumn is the table column denoting the speaker_segments relation/edge.
	SpeakerSegmentsColumn = "material_id"
)

// Columns holds all SQL columns for sourcematerial fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldSourceType,
	FieldOriginalFilename,
	FieldStoragePath,
	FieldFileSizeBytes,
	FieldStatus,
	FieldIndividualSummary,
	FieldOutputArtifacts,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	OriginalFilenameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusUPLOADED is the default value of the Status enum.
const DefaultStatus = StatusUPLOADED

// Status values.
const (
	StatusUPLOADED     Status = "UPLOADED"
	StatusTRANSCRIBING Status = "TRANSCRIBING"
	StatusSUMMARIZING  Status = "SUMMARIZING"
	StatusCOMPLETED    Status = "COMPLETED"
	StatusFAILED       Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusUPLOADED, StatusTRANSCRIBING, StatusSUMMARIZING, StatusCOMPLETED, StatusFAILED:
		return nil
	default:
		return fmt.Errorf("sourcematerial: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SourceMaterial queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByStoragePath orders the results by the storage_path field.
func ByStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoragePath, opts...).ToFunc()
}

// ByFileSizeBytes orders the results by the file_size_bytes field.
func ByFileSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSizeBytes, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIndividualSummary orders the results by the individual_summary field.
func ByIndividualSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndividualSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// BySpeakerSegmentsCount orders the results by speaker_segments count.
func BySpeakerSegmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSpeakerSegmentsStep(), opts...)
	}
}

// BySpeakerSegments orders the results by speaker_segments terms.
func BySpeakerSegments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpeakerSegmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newSpeakerSegmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpeakerSegmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SpeakerSegmentsTable, SpeakerSegmentsColumn),
	)
}
