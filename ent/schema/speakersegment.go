package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SpeakerSegment holds the schema definition for the SpeakerSegment entity.
// Rows are the speaker-attributed transcript of one material, written by the
// job executor after the merge stage.
type SpeakerSegment struct {
	ent.Schema
}

// Fields of the SpeakerSegment.
func (SpeakerSegment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("material_id"),
		field.String("speaker_label").
			MaxLen(50).
			Optional().
			Nillable(),
		field.Float("start_time_seconds"),
		field.Float("end_time_seconds"),
		field.Text("text"),
	}
}

// Edges of the SpeakerSegment.
func (SpeakerSegment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("material", SourceMaterial.Type).
			Ref("speaker_segments").
			Field("material_id").
			Unique().
			Required(),
	}
}

// Indexes of the SpeakerSegment.
func (SpeakerSegment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("material_id"),
	}
}
