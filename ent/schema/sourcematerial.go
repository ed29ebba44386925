package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceMaterial holds the schema definition for the SourceMaterial entity.
// One material is one uploaded input file of a job.
//
// Status lifecycle: UPLOADED → TRANSCRIBING → SUMMARIZING → (COMPLETED | FAILED).
// A FAILED material does not fail the job on its own; the executor computes
// the job outcome after all materials have been attempted.
type SourceMaterial struct {
	ent.Schema
}

// Fields of the SourceMaterial.
func (SourceMaterial) Fields() []ent.Field {
	return []ent.Field{
		field.Int("job_id"),
		field.String("source_type").
			Comment("Upload content type (e.g. audio/mpeg)"),
		field.String("original_filename").
			MaxLen(255).
			Optional().
			Nillable(),
		field.Text("storage_path").
			Comment("Absolute path, or relative to <projects_root>/<workspace>/<subject>"),
		field.Int64("file_size_bytes").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("UPLOADED", "TRANSCRIBING", "SUMMARIZING", "COMPLETED", "FAILED").
			Default("UPLOADED"),
		field.Text("individual_summary").
			Optional().
			Nillable(),
		field.JSON("output_artifacts", map[string]interface{}{}).
			Optional().
			Comment("run_id, speaker_attributed_text_path, individual_summary_path"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SourceMaterial.
func (SourceMaterial) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", SummaryJob.Type).
			Ref("source_materials").
			Field("job_id").
			Unique().
			Required(),
		edge.To("speaker_segments", SpeakerSegment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SourceMaterial.
func (SourceMaterial) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("status"),
	}
}
