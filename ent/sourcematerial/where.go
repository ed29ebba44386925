// Code generated by ent, DO NOT EDIT.

package sourcematerial

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recapd/recapd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldJobID, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldSourceType, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldOriginalFilename, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldStoragePath, v))
}

// FileSizeBytes applies equality check predicate on the "file_size_bytes" field. It's identical to FileSizeBytesEQ.
func FileSizeBytes(v int64) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldFileSizeBytes, v))
}

// IndividualSummary applies equality check predicate on the "individual_summary" field. It's identical to IndividualSummaryEQ.
func IndividualSummary(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldIndividualSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...int) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotIn(FieldJobID, vs...))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldContainsFold(FieldSourceType, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameIsNil applies the IsNil predicate on the "original_filename" field.
func OriginalFilenameIsNil() predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIsNull(FieldOriginalFilename))
}

// OriginalFilenameNotNil applies the NotNil predicate on the "original_filename" field.
func OriginalFilenameNotNil() predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotNull(FieldOriginalFilename))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldContainsFold(FieldStoragePath, v))
}

// FileSizeBytesEQ applies the EQ predicate on the "file_size_bytes" field.
func FileSizeBytesEQ(v int64) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesNEQ applies the NEQ predicate on the "file_size_bytes" field.
func FileSizeBytesNEQ(v int64) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesIn applies the In predicate on the "file_size_bytes" field.
func FileSizeBytesIn(vs ...int64) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesNotIn applies the NotIn predicate on the "file_size_bytes" field.
func FileSizeBytesNotIn(vs ...int64) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesGT applies the GT predicate on the "file_size_bytes" field.
func FileSizeBytesGT(v int64) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGT(FieldFileSizeBytes, v))
}

// FileSizeBytesGTE applies the GTE predicate on the "file_size_bytes" field.
func FileSizeBytesGTE(v int64) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGTE(FieldFileSizeBytes, v))
}

// FileSizeBytesLT applies the LT predicate on the "file_size_bytes" field.
func FileSizeBytesLT(v int64) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLT(FieldFileSizeBytes, v))
}

// FileSizeBytesLTE applies the LTE predicate on the "file_size_bytes" field.
func FileSizeBytesLTE(v int64) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLTE(FieldFileSizeBytes, v))
}

// FileSizeBytesIsNil applies the IsNil predicate on the "file_size_bytes" field.
func FileSizeBytesIsNil() predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIsNull(FieldFileSizeBytes))
}

// FileSizeBytesNotNil applies the NotNil predicate on the "file_size_bytes" field.
func FileSizeBytesNotNil() predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotNull(FieldFileSizeBytes))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotIn(FieldStatus, vs...))
}

// IndividualSummaryEQ applies the EQ predicate on the "individual_summary" field.
func IndividualSummaryEQ(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldIndividualSummary, v))
}

// IndividualSummaryNEQ applies the NEQ predicate on the "individual_summary" field.
func IndividualSummaryNEQ(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNEQ(FieldIndividualSummary, v))
}

// IndividualSummaryIn applies the In predicate on the "individual_summary" field.
func IndividualSummaryIn(vs ...string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIn(FieldIndividualSummary, vs...))
}

// IndividualSummaryNotIn applies the NotIn predicate on the "individual_summary" field.
func IndividualSummaryNotIn(vs ...string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotIn(FieldIndividualSummary, vs...))
}

// IndividualSummaryGT applies the GT predicate on the "individual_summary" field.
func IndividualSummaryGT(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGT(FieldIndividualSummary, v))
}

// IndividualSummaryGTE applies the GTE predicate on the "individual_summary" field.
func IndividualSummaryGTE(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGTE(FieldIndividualSummary, v))
}

// IndividualSummaryLT applies the LT predicate on the "individual_summary" field.
func IndividualSummaryLT(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLT(FieldIndividualSummary, v))
}

// IndividualSummaryLTE applies the LTE predicate on the "individual_summary" field.
func IndividualSummaryLTE(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLTE(FieldIndividualSummary, v))
}

// IndividualSummaryContains applies the Contains predicate on the "individual_summary" field.
func IndividualSummaryContains(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldContains(FieldIndividualSummary, v))
}

// IndividualSummaryHasPrefix applies the HasPrefix predicate on the "individual_summary" field.
func IndividualSummaryHasPrefix(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldHasPrefix(FieldIndividualSummary, v))
}

// IndividualSummaryHasSuffix applies the HasSuffix predicate on the "individual_summary" field.
func IndividualSummaryHasSuffix(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldHasSuffix(FieldIndividualSummary, v))
}

// IndividualSummaryIsNil applies the IsNil predicate on the "individual_summary" field.
func IndividualSummaryIsNil() predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIsNull(FieldIndividualSummary))
}

// IndividualSummaryNotNil applies the NotNil predicate on the "individual_summary" field.
func IndividualSummaryNotNil() predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotNull(FieldIndividualSummary))
}

// IndividualSummaryEqualFold applies the EqualFold predicate on the "individual_summary" field.
func IndividualSummaryEqualFold(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEqualFold(FieldIndividualSummary, v))
}

// IndividualSummaryContainsFold applies the ContainsFold predicate on the "individual_summary" field.
func IndividualSummaryContainsFold(v string) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldContainsFold(FieldIndividualSummary, v))
}

// OutputArtifactsIsNil applies the IsNil predicate on the "output_artifacts" field.
func OutputArtifactsIsNil() predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIsNull(FieldOutputArtifacts))
}

// OutputArtifactsNotNil applies the NotNil predicate on the "output_artifacts" field.
func OutputArtifactsNotNil() predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotNull(FieldOutputArtifacts))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.SourceMaterial {
	return predicate.SourceMaterial(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.SummaryJob) predicate.SourceMaterial {
	return predicate.SourceMaterial(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSpeakerSegments applies the HasEdge predicate on the "speaker_segments" edge.
func HasSpeakerSegments() predicate.SourceMaterial {
	return predicate.SourceMaterial(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SpeakerSegmentsTable, SpeakerSegmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpeakerSegmentsWith applies the HasEdge predicate on the "speaker_segments" edge with a given conditions (other predicates).
func HasSpeakerSegmentsWith(preds ...predicate.SpeakerSegment) predicate.SourceMaterial {
	return predicate.SourceMaterial(func(s *sql.Selector) {
		step := newSpeakerSegmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceMaterial) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceMaterial) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceMaterial) predicate.SourceMaterial {
	return predicate.SourceMaterial(sql.NotPredicates(p))
}
