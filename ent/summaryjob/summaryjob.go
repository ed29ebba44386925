// Code generated by ent, DO NOT EDIT.

package summaryjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the summaryjob type in the database.
	Label = "summary_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFinalSummary holds the string denoting the final_summary field in the database.
	FieldFinalSummary = "final_summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSubject holds the string denoting the subject edge name in mutations.
	EdgeSubject = "subject"
	// EdgeSourceMaterials holds the string denoting the source_materials edge name in mutations.
	EdgeSourceMaterials = "source_materials"
	// EdgeStageLogs holds the string denoting the stage_logs edge name in mutations.
	EdgeStageLogs = "stage_logs"
	// Table holds the table name of the summaryjob in the database.
	Table = "summary_jobs"
	// SubjectTable is the table that holds the subject relation/edge.
	SubjectTable = "summary_jobs"
	// SubjectInverseTable is the table name for the Subject entity.
	// It exists in this package in order to avoid circular dependency with the "subject" package.
	SubjectInverseTable = "subjects"
	// SubjectColumn is the table column denoting the subject relation/edge.
	SubjectColumn = "subject_id"
	// SourceMaterialsTable is the table that holds the source_materials relation/edge.
	SourceMaterialsTable = "source_materials"
	// SourceMaterialsInverseTable is the table name for the SourceMaterial entity.
	// It exists in this package in order to avoid circular dependency with the "sourcematerial" package.
	SourceMaterialsInverseTable = "source_materials"
	// SourceMaterialsColumn is the table column denoting the source_materials relation/edge.
	SourceMaterialsColumn = "job_id"
	// StageLogsTable is the table that holds the stage_logs relation/edge.
	StageLogsTable = "job_stage_logs"
	// StageLogsInverseTable is the table name for the JobStageLog entity.
	// It exists in this package in order to avoid circular dependency with the "jobstagelog" package.
	StageLogsInverseTable = "job_stage_logs"
	// StageLogsColumn is the table column denoting the stage_logs relation/edge.
	StageLogsColumn = "job_id"
)

// Columns holds all SQL columns for summaryjob fields.
var Columns = []string{
	FieldID,
	FieldSubjectID,
	FieldTitle,
	FieldStatus,
	FieldFinalSummary,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING is the default value of the Status enum.
const DefaultStatus = StatusPENDING

// Status values.
const (
	StatusPENDING    Status = "PENDING"
	StatusPROCESSING Status = "PROCESSING"
	StatusCOMPLETED  Status = "COMPLETED"
	StatusFAILED     Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusPROCESSING, StatusCOMPLETED, StatusFAILED:
		return nil
	default:
		return fmt.Errorf("summaryjob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SummaryJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFinalSummary orders the results by the final_summary field.
func ByFinalSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// BySubjectField orders the results by subject field.
func BySubjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubjectStep(), sql.OrderByField(field, opts...))
	}
}

// BySourceMaterialsCount orders the results by source_materials count.
func BySourceMaterialsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSourceMaterialsStep(), opts...)
	}
}

// BySourceMaterials orders the results by source_materials terms.
func BySourceMaterials(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceMaterialsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStageLogsCount orders the results by stage_logs count.
func ByStageLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStageLogsStep(), opts...)
	}
}

// ByStageLogs orders the results by stage_logs terms.
func ByStageLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
	)
}
func newSourceMaterialsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceMaterialsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SourceMaterialsTable, SourceMaterialsColumn),
	)
}
func newStageLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageLogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StageLogsTable, StageLogsColumn),
	)
}
