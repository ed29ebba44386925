// Code generated by ent, DO NOT EDIT.

package summaryjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recapd/recapd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLTE(FieldID, id))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldSubjectID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldTitle, v))
}

// FinalSummary applies equality check predicate on the "final_summary" field. It's identical to FinalSummaryEQ.
func FinalSummary(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldFinalSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldCompletedAt, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...int) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDIsNil applies the IsNil predicate on the "subject_id" field.
func SubjectIDIsNil() predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIsNull(FieldSubjectID))
}

// SubjectIDNotNil applies the NotNil predicate on the "subject_id" field.
func SubjectIDNotNil() predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotNull(FieldSubjectID))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldContainsFold(FieldTitle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotIn(FieldStatus, vs...))
}

// FinalSummaryEQ applies the EQ predicate on the "final_summary" field.
func FinalSummaryEQ(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldFinalSummary, v))
}

// FinalSummaryNEQ applies the NEQ predicate on the "final_summary" field.
func FinalSummaryNEQ(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNEQ(FieldFinalSummary, v))
}

// FinalSummaryIn applies the In predicate on the "final_summary" field.
func FinalSummaryIn(vs ...string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIn(FieldFinalSummary, vs...))
}

// FinalSummaryNotIn applies the NotIn predicate on the "final_summary" field.
func FinalSummaryNotIn(vs ...string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotIn(FieldFinalSummary, vs...))
}

// FinalSummaryGT applies the GT predicate on the "final_summary" field.
func FinalSummaryGT(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGT(FieldFinalSummary, v))
}

// FinalSummaryGTE applies the GTE predicate on the "final_summary" field.
func FinalSummaryGTE(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGTE(FieldFinalSummary, v))
}

// FinalSummaryLT applies the LT predicate on the "final_summary" field.
func FinalSummaryLT(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLT(FieldFinalSummary, v))
}

// FinalSummaryLTE applies the LTE predicate on the "final_summary" field.
func FinalSummaryLTE(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLTE(FieldFinalSummary, v))
}

// FinalSummaryContains applies the Contains predicate on the "final_summary" field.
func FinalSummaryContains(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldContains(FieldFinalSummary, v))
}

// FinalSummaryHasPrefix applies the HasPrefix predicate on the "final_summary" field.
func FinalSummaryHasPrefix(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldHasPrefix(FieldFinalSummary, v))
}

// FinalSummaryHasSuffix applies the HasSuffix predicate on the "final_summary" field.
func FinalSummaryHasSuffix(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldHasSuffix(FieldFinalSummary, v))
}

// FinalSummaryIsNil applies the IsNil predicate on the "final_summary" field.
func FinalSummaryIsNil() predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIsNull(FieldFinalSummary))
}

// FinalSummaryNotNil applies the NotNil predicate on the "final_summary" field.
func FinalSummaryNotNil() predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotNull(FieldFinalSummary))
}

// FinalSummaryEqualFold applies the EqualFold predicate on the "final_summary" field.
func FinalSummaryEqualFold(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEqualFold(FieldFinalSummary, v))
}

// FinalSummaryContainsFold applies the ContainsFold predicate on the "final_summary" field.
func FinalSummaryContainsFold(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldContainsFold(FieldFinalSummary, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SummaryJob {
	return predicate.SummaryJob(sql.FieldNotNull(FieldCompletedAt))
}

// HasSubject applies the HasEdge predicate on the "subject" edge.
func HasSubject() predicate.SummaryJob {
	return predicate.SummaryJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubjectWith applies the HasEdge predicate on the "subject" edge with a given conditions (other predicates).
func HasSubjectWith(preds ...predicate.Subject) predicate.SummaryJob {
	return predicate.SummaryJob(func(s *sql.Selector) {
		step := newSubjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSourceMaterials applies the HasEdge predicate on the "source_materials" edge.
func HasSourceMaterials() predicate.SummaryJob {
	return predicate.SummaryJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SourceMaterialsTable, SourceMaterialsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceMaterialsWith applies the HasEdge predicate on the "source_materials" edge with a given conditions (other predicates).
func HasSourceMaterialsWith(preds ...predicate.SourceMaterial) predicate.SummaryJob {
	return predicate.SummaryJob(func(s *sql.Selector) {
		step := newSourceMaterialsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStageLogs applies the HasEdge predicate on the "stage_logs" edge.
func HasStageLogs() predicate.SummaryJob {
	return predicate.SummaryJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StageLogsTable, StageLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageLogsWith applies the HasEdge predicate on the "stage_logs" edge with a given conditions (other predicates).
func HasStageLogsWith(preds ...predicate.JobStageLog) predicate.SummaryJob {
	return predicate.SummaryJob(func(s *sql.Selector) {
		step := newStageLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SummaryJob) predicate.SummaryJob {
	return predicate.SummaryJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SummaryJob) predicate.SummaryJob {
	return predicate.SummaryJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SummaryJob) predicate.SummaryJob {
	return predicate.SummaryJob(sql.NotPredicates(p))
}
