// Code generated by ent, DO NOT EDIT.

package speakersegment

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the speakersegment type in the database.
	Label = "speaker_segment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMaterialID holds the string denoting the material_id field in the database.
	FieldMaterialID = "material_id"
	// FieldSpeakerLabel holds the string denoting the speaker_label field in the database.
	FieldSpeakerLabel = "speaker_label"
	// FieldStartTimeSeconds holds the string denoting the start_time_seconds field in the database.
	FieldStartTimeSeconds = "start_time_seconds"
	// FieldEndTimeSeconds holds the string denoting the end_time_seconds field in the database.
	FieldEndTimeSeconds = "end_time_seconds"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// EdgeMaterial holds the string denoting the material edge name in mutations.
	EdgeMaterial = "material"
	// Table holds the table name of the speakersegment in the database.
	Table = "speaker_segments"
	// MaterialTable is the table that holds the material relation/edge.
	MaterialTable = "speaker_segments"
	// MaterialInverseTable is the table name for the SourceMaterial entity.
	// It exists in this package in order to avoid circular dependency with the "sourcematerial" package.
	MaterialInverseTable = "source_materials"
	// MaterialColumn is the table column denoting the material relation/edge.
	MaterialColumn = "material_id"
)

// Columns holds all SQL columns for speakersegment fields.
var Columns = []string{
	FieldID,
	FieldMaterialID,
	FieldSpeakerLabel,
	FieldStartTimeSeconds,
	FieldEndTimeSeconds,
	FieldText,
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
	// SpeakerLabelValidator is a validator for the "speaker_label" field. It is called by the builders before save.
	SpeakerLabelValidator func(string) error
)

// OrderOption defines the ordering options for the SpeakerSegment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMaterialID orders the results by the material_id field.
func ByMaterialID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaterialID, opts...).ToFunc()
}

// BySpeakerLabel orders the results by the speaker_label field.
func BySpeakerLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeakerLabel, opts...).ToFunc()
}

// ByStartTimeSeconds orders the results by the start_time_seconds field.
func ByStartTimeSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTimeSeconds, opts...).ToFunc()
}

// ByEndTimeSeconds orders the results by the end_time_seconds field.
func ByEndTimeSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTimeSeconds, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByMaterialField orders the results by material field.
func ByMaterialField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMaterialStep(), sql.OrderByField(field, opts...))
	}
}
func newMaterialStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MaterialInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MaterialTable, MaterialColumn),
	)
}
