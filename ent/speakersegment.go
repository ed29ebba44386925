// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/speakersegment"
)

// SpeakerSegment is the model entity for the SpeakerSegment schema.
type SpeakerSegment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// MaterialID holds the value of the "material_id" field.
	MaterialID int `json:"material_id,omitempty"`
	// SpeakerLabel holds the value of the "speaker_label" field.
	SpeakerLabel *string `json:"speaker_label,omitempty"`
	// StartTimeSeconds holds the value of the "start_time_seconds" field.
	StartTimeSeconds float64 `json:"start_time_seconds,omitempty"`
	// EndTimeSeconds holds the value of the "end_time_seconds" field.
	EndTimeSeconds float64 `json:"end_time_seconds,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpeakerSegmentQuery when eager-loading is set.
	Edges        SpeakerSegmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SpeakerSegmentEdges holds the relations/edges for other nodes in the graph.
type SpeakerSegmentEdges struct {
	// Material holds the value of the material edge.
	Material *SourceMaterial `json:"material,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MaterialOrErr returns the Material value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpeakerSegmentEdges) MaterialOrErr() (*SourceMaterial, error) {
	if e.Material != nil {
		return e.Material, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sourcematerial.Label}
	}
	return nil, &NotLoadedError{edge: "material"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SpeakerSegment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case speakersegment.FieldStartTimeSeconds, speakersegment.FieldEndTimeSeconds:
			values[i] = new(sql.NullFloat64)
		case speakersegment.FieldID, speakersegment.FieldMaterialID:
			values[i] = new(sql.NullInt64)
		case speakersegment.FieldSpeakerLabel, speakersegment.FieldText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SpeakerSegment fields.
func (_m *SpeakerSegment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case speakersegment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case speakersegment.FieldMaterialID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field material_id", values[i])
			} else if value.Valid {
				_m.MaterialID = int(value.Int64)
			}
		case speakersegment.FieldSpeakerLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field speaker_label", values[i])
			} else if value.Valid {
				_m.SpeakerLabel = new(string)
				*_m.SpeakerLabel = value.String
			}
		case speakersegment.FieldStartTimeSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field start_time_seconds", values[i])
			} else if value.Valid {
				_m.StartTimeSeconds = value.Float64
			}
		case speakersegment.FieldEndTimeSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field end_time_seconds", values[i])
			} else if value.Valid {
				_m.EndTimeSeconds = value.Float64
			}
		case speakersegment.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SpeakerSegment.
// This includes values selected through modifiers, order, etc.
func (_m *SpeakerSegment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMaterial queries the "material" edge of the SpeakerSegment entity.
func (_m *SpeakerSegment) QueryMaterial() *SourceMaterialQuery {
	return NewSpeakerSegmentClient(_m.config).QueryMaterial(_m)
}

// Update returns a builder for updating this SpeakerSegment.
// Note that you need to call SpeakerSegment.Unwrap() before calling this method if this SpeakerSegment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SpeakerSegment) Update() *SpeakerSegmentUpdateOne {
	return NewSpeakerSegmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SpeakerSegment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SpeakerSegment) Unwrap() *SpeakerSegment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SpeakerSegment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SpeakerSegment) String() string {
	var builder strings.Builder
	builder.WriteString("SpeakerSegment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("material_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaterialID))
	builder.WriteString(", ")
	if v := _m.SpeakerLabel; v != nil {
		builder.WriteString("speaker_label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("start_time_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartTimeSeconds))
	builder.WriteString(", ")
	builder.WriteString("end_time_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndTimeSeconds))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteByte(')')
	return builder.String()
}

// SpeakerSegments is a parsable slice of SpeakerSegment.
type SpeakerSegments []*SpeakerSegment
