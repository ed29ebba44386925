package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SummaryJob holds the schema definition for the SummaryJob entity.
// A job is one submission of audio files to the processing pipeline.
//
// Status lifecycle is monotonic: PENDING → PROCESSING → (COMPLETED | FAILED).
// Workers claim PENDING jobs with a conditional update on status, so a job
// is never processed twice and never moves backwards.
type SummaryJob struct {
	ent.Schema
}

// Fields of the SummaryJob.
func (SummaryJob) Fields() []ent.Field {
	return []ent.Field{
		field.Int("subject_id").
			Optional().
			Nillable(),
		field.String("title").
			MaxLen(255),
		field.Enum("status").
			Values("PENDING", "PROCESSING", "COMPLETED", "FAILED").
			Default("PENDING"),
		field.Text("final_summary").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the job"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the SummaryJob.
func (SummaryJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subject", Subject.Type).
			Ref("summary_jobs").
			Field("subject_id").
			Unique(),
		edge.To("source_materials", SourceMaterial.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("stage_logs", JobStageLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SummaryJob.
func (SummaryJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}
