// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/subject"
	"github.com/recapd/recapd/ent/summaryjob"
)

// SummaryJob is the model entity for the SummaryJob schema.
type SummaryJob struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID *int `json:"subject_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Status holds the value of the "status" field.
	Status summaryjob.Status `json:"status,omitempty"`
	// FinalSummary holds the value of the "final_summary" field.
	FinalSummary *string `json:"final_summary,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the job
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SummaryJobQuery when eager-loading is set.
	Edges        SummaryJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SummaryJobEdges holds the relations/edges for other nodes in the graph.
type SummaryJobEdges struct {
	// Subject holds the value of the subject edge.
	Subject *Subject `json:"subject,omitempty"`
	// SourceMaterials holds the value of the source_materials edge.
	SourceMaterials []*SourceMaterial `json:"source_materials,omitempty"`
	// StageLogs holds the value of the stage_logs edge.
	StageLogs []*JobStageLog `json:"stage_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SubjectOrErr returns the Subject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SummaryJobEdges) SubjectOrErr() (*Subject, error) {
	if e.Subject != nil {
		return e.Subject, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subject.Label}
	}
	return nil, &NotLoadedError{edge: "subject"}
}

// SourceMaterialsOrErr returns the SourceMaterials value or an error if the edge
// was not loaded in eager-loading.
func (e SummaryJobEdges) SourceMaterialsOrErr() ([]*SourceMaterial, error) {
	if e.loadedTypes[1] {
		return e.SourceMaterials, nil
	}
	return nil, &NotLoadedError{edge: "source_materials"}
}

// StageLogsOrErr returns the StageLogs value or an error if the edge
// was not loaded in eager-loading.
func (e SummaryJobEdges) StageLogsOrErr() ([]*JobStageLog, error) {
	if e.loadedTypes[2] {
		return e.StageLogs, nil
	}
	return nil, &NotLoadedError{edge: "stage_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SummaryJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summaryjob.FieldID, summaryjob.FieldSubjectID:
			values[i] = new(sql.NullInt64)
		case summaryjob.FieldTitle, summaryjob.FieldStatus, summaryjob.FieldFinalSummary, summaryjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case summaryjob.FieldCreatedAt, summaryjob.FieldStartedAt, summaryjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SummaryJob fields.
func (_m *SummaryJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summaryjob.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case summaryjob.FieldSubjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = new(int)
				*_m.SubjectID = int(value.Int64)
			}
		case summaryjob.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case summaryjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = summaryjob.Status(value.String)
			}
		case summaryjob.FieldFinalSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_summary", values[i])
			} else if value.Valid {
				_m.FinalSummary = new(string)
				*_m.FinalSummary = value.String
			}
		case summaryjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case summaryjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case summaryjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case summaryjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SummaryJob.
// This includes values selected through modifiers, order, etc.
func (_m *SummaryJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubject queries the "subject" edge of the SummaryJob entity.
func (_m *SummaryJob) QuerySubject() *SubjectQuery {
	return NewSummaryJobClient(_m.config).QuerySubject(_m)
}

// QuerySourceMaterials queries the "source_materials" edge of the SummaryJob entity.
func (_m *SummaryJob) QuerySourceMaterials() *SourceMaterialQuery {
	return NewSummaryJobClient(_m.config).QuerySourceMaterials(_m)
}

// QueryStageLogs queries the "stage_logs" edge of the SummaryJob entity.
func (_m *SummaryJob) QueryStageLogs() *JobStageLogQuery {
	return NewSummaryJobClient(_m.config).QueryStageLogs(_m)
}

// Update returns a builder for updating this SummaryJob.
// Note that you need to call SummaryJob.Unwrap() before calling this method if this SummaryJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SummaryJob) Update() *SummaryJobUpdateOne {
	return NewSummaryJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SummaryJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SummaryJob) Unwrap() *SummaryJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SummaryJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SummaryJob) String() string {
	var builder strings.Builder
	builder.WriteString("SummaryJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.SubjectID; v != nil {
		builder.WriteString("subject_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.FinalSummary; v != nil {
		builder.WriteString("final_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SummaryJobs is a parsable slice of SummaryJob.
type SummaryJobs []*SummaryJob
