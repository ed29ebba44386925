// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/summaryjob"
)

// SourceMaterial is the model entity for the SourceMaterial schema.
type SourceMaterial struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID int `json:"job_id,omitempty"`
	// Upload content type (e.g. audio/mpeg)
	SourceType string `json:"source_type,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename *string `json:"original_filename,omitempty"`
	// Absolute path, or relative to <projects_root>/<workspace>/<subject>
	StoragePath string `json:"storage_path,omitempty"`
	// FileSizeBytes holds the value of the "file_size_bytes" field.
	FileSizeBytes *int64 `json:"file_size_bytes,omitempty"`
	// Status holds the value of the "status" field.
	Status sourcematerial.Status `json:"status,omitempty"`
	// IndividualSummary holds the value of the "individual_summary" field.
	IndividualSummary *string `json:"individual_summary,omitempty"`
	// run_id, speaker_attributed_text_path, individual_summary_path
	OutputArtifacts map[string]interface{} `json:"output_artifacts,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SourceMaterialQuery when eager-loading is set.
	Edges        SourceMaterialEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SourceMaterialEdges holds the relations/edges for other nodes in the graph.
type SourceMaterialEdges struct {
	// Job holds the value of the job edge.
	Job *SummaryJob `json:"job,omitempty"`
	// SpeakerSegments holds the value of the speaker_segments edge.
	SpeakerSegments []*SpeakerSegment `json:"speaker_segments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SourceMaterialEdges) JobOrErr() (*SummaryJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: summaryjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// SpeakerSegmentsOrErr returns the SpeakerSegments value or an error if the edge
// was not loaded in eager-loading.
func (e SourceMaterialEdges) SpeakerSegmentsOrErr() ([]*SpeakerSegment, error) {
	if e.loadedTypes[1] {
		return e.SpeakerSegments, nil
	}
	return nil, &NotLoadedError{edge: "speaker_segments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceMaterial) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcematerial.FieldOutputArtifacts:
			values[i] = new([]byte)
		case sourcematerial.FieldID, sourcematerial.FieldJobID, sourcematerial.FieldFileSizeBytes:
			values[i] = new(sql.NullInt64)
		case sourcematerial.FieldSourceType, sourcematerial.FieldOriginalFilename, sourcematerial.FieldStoragePath, sourcematerial.FieldStatus, sourcematerial.FieldIndividualSummary:
			values[i] = new(sql.NullString)
		case sourcematerial.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceMaterial fields.
func (_m *SourceMaterial) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcematerial.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sourcematerial.FieldJobID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = int(value.Int64)
			}
		case sourcematerial.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case sourcematerial.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = new(string)
				*_m.OriginalFilename = value.String
			}
		case sourcematerial.FieldStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_path", values[i])
			} else if value.Valid {
				_m.StoragePath = value.String
			}
		case sourcematerial.FieldFileSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size_bytes", values[i])
			} else if value.Valid {
				_m.FileSizeBytes = new(int64)
				*_m.FileSizeBytes = value.Int64
			}
		case sourcematerial.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sourcematerial.Status(value.String)
			}
		case sourcematerial.FieldIndividualSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field individual_summary", values[i])
			} else if value.Valid {
				_m.IndividualSummary = new(string)
				*_m.IndividualSummary = value.String
			}
		case sourcematerial.FieldOutputArtifacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output_artifacts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutputArtifacts); err != nil {
					return fmt.Errorf("unmarshal field output_artifacts: %w", err)
				}
			}
		case sourcematerial.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SourceMaterial.
// This includes values selected through modifiers, order, etc.
func (_m *SourceMaterial) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the SourceMaterial entity.
func (_m *SourceMaterial) QueryJob() *SummaryJobQuery {
	return NewSourceMaterialClient(_m.config).QueryJob(_m)
}

// QuerySpeakerSegments queries the "speaker_segments" edge of the SourceMaterial entity.
func (_m *SourceMaterial) QuerySpeakerSegments() *SpeakerSegmentQuery {
	return NewSourceMaterialClient(_m.config).QuerySpeakerSegments(_m)
}

// Update returns a builder for updating this SourceMaterial.
// Note that you need to call SourceMaterial.Unwrap() before calling this method if this SourceMaterial
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceMaterial) Update() *SourceMaterialUpdateOne {
	return NewSourceMaterialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceMaterial entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceMaterial) Unwrap() *SourceMaterial {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceMaterial is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceMaterial) String() string {
	var builder strings.Builder
	builder.WriteString("SourceMaterial(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	if v := _m.OriginalFilename; v != nil {
		builder.WriteString("original_filename=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("storage_path=")
	builder.WriteString(_m.StoragePath)
	builder.WriteString(", ")
	if v := _m.FileSizeBytes; v != nil {
		builder.WriteString("file_size_bytes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.IndividualSummary; v != nil {
		builder.WriteString("individual_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("output_artifacts=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputArtifacts))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceMaterials is a parsable slice of SourceMaterial.
type SourceMaterials []*SourceMaterial
