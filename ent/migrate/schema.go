// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobStageLogsColumns holds the columns for the "job_stage_logs" table.
	JobStageLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stage_name", Type: field.TypeString, Size: 50},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "PROCESSING", "COMPLETED", "FAILED"}, Default: "PENDING"},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "job_id", Type: field.TypeInt},
	}
	// JobStageLogsTable holds the schema information for the "job_stage_logs" table.
	JobStageLogsTable = &schema.Table{
		Name:       "job_stage_logs",
		Columns:    JobStageLogsColumns,
		PrimaryKey: []*schema.Column{JobStageLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_stage_logs_summary_jobs_stage_logs",
				Columns:    []*schema.Column{JobStageLogsColumns[5]},
				RefColumns: []*schema.Column{SummaryJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobstagelog_job_id_stage_name",
				Unique:  false,
				Columns: []*schema.Column{JobStageLogsColumns[5], JobStageLogsColumns[1]},
			},
		},
	}
	// SourceMaterialsColumns holds the columns for the "source_materials" table.
	SourceMaterialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_type", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "storage_path", Type: field.TypeString, Size: 2147483647},
		{Name: "file_size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"UPLOADED", "TRANSCRIBING", "SUMMARIZING", "COMPLETED", "FAILED"}, Default: "UPLOADED"},
		{Name: "individual_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output_artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeInt},
	}
	// SourceMaterialsTable holds the schema information for the "source_materials" table.
	SourceMaterialsTable = &schema.Table{
		Name:       "source_materials",
		Columns:    SourceMaterialsColumns,
		PrimaryKey: []*schema.Column{SourceMaterialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "source_materials_summary_jobs_source_materials",
				Columns:    []*schema.Column{SourceMaterialsColumns[9]},
				RefColumns: []*schema.Column{SummaryJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sourcematerial_job_id",
				Unique:  false,
				Columns: []*schema.Column{SourceMaterialsColumns[9]},
			},
			{
				Name:    "sourcematerial_status",
				Unique:  false,
				Columns: []*schema.Column{SourceMaterialsColumns[5]},
			},
		},
	}
	// SpeakerSegmentsColumns holds the columns for the "speaker_segments" table.
	SpeakerSegmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "speaker_label", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "start_time_seconds", Type: field.TypeFloat64},
		{Name: "end_time_seconds", Type: field.TypeFloat64},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "material_id", Type: field.TypeInt},
	}
	// SpeakerSegmentsTable holds the schema information for the "speaker_segments" table.
	SpeakerSegmentsTable = &schema.Table{
		Name:       "speaker_segments",
		Columns:    SpeakerSegmentsColumns,
		PrimaryKey: []*schema.Column{SpeakerSegmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "speaker_segments_source_materials_speaker_segments",
				Columns:    []*schema.Column{SpeakerSegmentsColumns[5]},
				RefColumns: []*schema.Column{SourceMaterialsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "speakersegment_material_id",
				Unique:  false,
				Columns: []*schema.Column{SpeakerSegmentsColumns[5]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_korean_only", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subjects_workspaces_subjects",
				Columns:    []*schema.Column{SubjectsColumns[5]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subject_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[5]},
			},
		},
	}
	// SummaryJobsColumns holds the columns for the "summary_jobs" table.
	SummaryJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "PROCESSING", "COMPLETED", "FAILED"}, Default: "PENDING"},
		{Name: "final_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "subject_id", Type: field.TypeInt, Nullable: true},
	}
	// SummaryJobsTable holds the schema information for the "summary_jobs" table.
	SummaryJobsTable = &schema.Table{
		Name:       "summary_jobs",
		Columns:    SummaryJobsColumns,
		PrimaryKey: []*schema.Column{SummaryJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summary_jobs_subjects_summary_jobs",
				Columns:    []*schema.Column{SummaryJobsColumns[8]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "summaryjob_subject_id",
				Unique:  false,
				Columns: []*schema.Column{SummaryJobsColumns[8]},
			},
			{
				Name:    "summaryjob_status",
				Unique:  false,
				Columns: []*schema.Column{SummaryJobsColumns[2]},
			},
			{
				Name:    "summaryjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{SummaryJobsColumns[2], SummaryJobsColumns[5]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobStageLogsTable,
		SourceMaterialsTable,
		SpeakerSegmentsTable,
		SubjectsTable,
		SummaryJobsTable,
		WorkspacesTable,
	}
)

func init() {
	JobStageLogsTable.ForeignKeys[0].RefTable = SummaryJobsTable
	SourceMaterialsTable.ForeignKeys[0].RefTable = SummaryJobsTable
	SpeakerSegmentsTable.ForeignKeys[0].RefTable = SourceMaterialsTable
	SubjectsTable.ForeignKeys[0].RefTable = WorkspacesTable
	SummaryJobsTable.ForeignKeys[0].RefTable = SubjectsTable
}
