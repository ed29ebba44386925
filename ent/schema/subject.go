package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subject holds the schema definition for the Subject entity.
// Subjects live under a workspace and carry per-subject pipeline hints.
type Subject struct {
	ent.Schema
}

// Fields of the Subject.
func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.String("name").
			MaxLen(255).
			Unique(),
		field.Text("description").
			Optional().
			Nillable(),
		field.Bool("is_korean_only").
			Default(false).
			Comment("Hints a fixed Korean ASR language to the pipeline"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Subject.
func (Subject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("subjects").
			Field("workspace_id").
			Unique().
			Required(),
		edge.To("summary_jobs", SummaryJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Subject.
func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
	}
}
