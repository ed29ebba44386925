package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobStageLog holds the schema definition for the JobStageLog entity.
// Append-only record of the coarse coordinator phases of a job
// ("transcribe", "summarize"). The per-run pipeline stages log to slog and
// the run directory; these rows exist for the API's job detail view.
type JobStageLog struct {
	ent.Schema
}

// Fields of the JobStageLog.
func (JobStageLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("job_id"),
		field.String("stage_name").
			MaxLen(50),
		field.Enum("status").
			Values("PENDING", "PROCESSING", "COMPLETED", "FAILED").
			Default("PENDING"),
		field.Time("start_time").
			Optional().
			Nillable(),
		field.Time("end_time").
			Optional().
			Nillable(),
	}
}

// Edges of the JobStageLog.
func (JobStageLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", SummaryJob.Type).
			Ref("stage_logs").
			Field("job_id").
			Unique().
			Required(),
	}
}

// Indexes of the JobStageLog.
func (JobStageLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "stage_name"),
	}
}
