// Code generated by ent, DO NOT EDIT.

package speakersegment

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recapd/recapd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldLTE(FieldID, id))
}

// MaterialID applies equality check predicate on the "material_id" field. It's identical to MaterialIDEQ.
func MaterialID(v int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldMaterialID, v))
}

// SpeakerLabel applies equality check predicate on the "speaker_label" field. It's identical to SpeakerLabelEQ.
func SpeakerLabel(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldSpeakerLabel, v))
}

// StartTimeSeconds applies equality check predicate on the "start_time_seconds" field. It's identical to StartTimeSecondsEQ.
func StartTimeSeconds(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldStartTimeSeconds, v))
}

// EndTimeSeconds applies equality check predicate on the "end_time_seconds" field. It's identical to EndTimeSecondsEQ.
func EndTimeSeconds(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldEndTimeSeconds, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldText, v))
}

// MaterialIDEQ applies the EQ predicate on the "material_id" field.
func MaterialIDEQ(v int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldMaterialID, v))
}

// MaterialIDNEQ applies the NEQ predicate on the "material_id" field.
func MaterialIDNEQ(v int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNEQ(FieldMaterialID, v))
}

// MaterialIDIn applies the In predicate on the "material_id" field.
func MaterialIDIn(vs ...int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldIn(FieldMaterialID, vs...))
}

// MaterialIDNotIn applies the NotIn predicate on the "material_id" field.
func MaterialIDNotIn(vs ...int) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNotIn(FieldMaterialID, vs...))
}

// SpeakerLabelEQ applies the EQ predicate on the "speaker_label" field.
func SpeakerLabelEQ(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldSpeakerLabel, v))
}

// SpeakerLabelNEQ applies the NEQ predicate on the "speaker_label" field.
func SpeakerLabelNEQ(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNEQ(FieldSpeakerLabel, v))
}

// SpeakerLabelIn applies the In predicate on the "speaker_label" field.
func SpeakerLabelIn(vs ...string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldIn(FieldSpeakerLabel, vs...))
}

// SpeakerLabelNotIn applies the NotIn predicate on the "speaker_label" field.
func SpeakerLabelNotIn(vs ...string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNotIn(FieldSpeakerLabel, vs...))
}

// SpeakerLabelGT applies the GT predicate on the "speaker_label" field.
func SpeakerLabelGT(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldGT(FieldSpeakerLabel, v))
}

// SpeakerLabelGTE applies the GTE predicate on the "speaker_label" field.
func SpeakerLabelGTE(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldGTE(FieldSpeakerLabel, v))
}

// SpeakerLabelLT applies the LT predicate on the "speaker_label" field.
func SpeakerLabelLT(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldLT(FieldSpeakerLabel, v))
}

// SpeakerLabelLTE applies the LTE predicate on the "speaker_label" field.
func SpeakerLabelLTE(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldLTE(FieldSpeakerLabel, v))
}

// SpeakerLabelContains applies the Contains predicate on the "speaker_label" field.
func SpeakerLabelContains(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldContains(FieldSpeakerLabel, v))
}

// SpeakerLabelHasPrefix applies the HasPrefix predicate on the "speaker_label" field.
func SpeakerLabelHasPrefix(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldHasPrefix(FieldSpeakerLabel, v))
}

// SpeakerLabelHasSuffix applies the HasSuffix predicate on the "speaker_label" field.
func SpeakerLabelHasSuffix(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldHasSuffix(FieldSpeakerLabel, v))
}

// SpeakerLabelIsNil applies the IsNil predicate on the "speaker_label" field.
func SpeakerLabelIsNil() predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldIsNull(FieldSpeakerLabel))
}

// SpeakerLabelNotNil applies the NotNil predicate on the "speaker_label" field.
func SpeakerLabelNotNil() predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNotNull(FieldSpeakerLabel))
}

// SpeakerLabelEqualFold applies the EqualFold predicate on the "speaker_label" field.
func SpeakerLabelEqualFold(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEqualFold(FieldSpeakerLabel, v))
}

// SpeakerLabelContainsFold applies the ContainsFold predicate on the "speaker_label" field.
func SpeakerLabelContainsFold(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldContainsFold(FieldSpeakerLabel, v))
}

// StartTimeSecondsEQ applies the EQ predicate on the "start_time_seconds" field.
func StartTimeSecondsEQ(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldStartTimeSeconds, v))
}

// StartTimeSecondsNEQ applies the NEQ predicate on the "start_time_seconds" field.
func StartTimeSecondsNEQ(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNEQ(FieldStartTimeSeconds, v))
}

// StartTimeSecondsIn applies the In predicate on the "start_time_seconds" field.
func StartTimeSecondsIn(vs ...float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldIn(FieldStartTimeSeconds, vs...))
}

// StartTimeSecondsNotIn applies the NotIn predicate on the "start_time_seconds" field.
func StartTimeSecondsNotIn(vs ...float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNotIn(FieldStartTimeSeconds, vs...))
}

// StartTimeSecondsGT applies the GT predicate on the "start_time_seconds" field.
func StartTimeSecondsGT(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldGT(FieldStartTimeSeconds, v))
}

// StartTimeSecondsGTE applies the GTE predicate on the "start_time_seconds" field.
func StartTimeSecondsGTE(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldGTE(FieldStartTimeSeconds, v))
}

// StartTimeSecondsLT applies the LT predicate on the "start_time_seconds" field.
func StartTimeSecondsLT(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldLT(FieldStartTimeSeconds, v))
}

// StartTimeSecondsLTE applies the LTE predicate on the "start_time_seconds" field.
func StartTimeSecondsLTE(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldLTE(FieldStartTimeSeconds, v))
}

// EndTimeSecondsEQ applies the EQ predicate on the "end_time_seconds" field.
func EndTimeSecondsEQ(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldEndTimeSeconds, v))
}

// EndTimeSecondsNEQ applies the NEQ predicate on the "end_time_seconds" field.
func EndTimeSecondsNEQ(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNEQ(FieldEndTimeSeconds, v))
}

// EndTimeSecondsIn applies the In predicate on the "end_time_seconds" field.
func EndTimeSecondsIn(vs ...float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldIn(FieldEndTimeSeconds, vs...))
}

// EndTimeSecondsNotIn applies the NotIn predicate on the "end_time_seconds" field.
func EndTimeSecondsNotIn(vs ...float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNotIn(FieldEndTimeSeconds, vs...))
}

// EndTimeSecondsGT applies the GT predicate on the "end_time_seconds" field.
func EndTimeSecondsGT(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldGT(FieldEndTimeSeconds, v))
}

// EndTimeSecondsGTE applies the GTE predicate on the "end_time_seconds" field.
func EndTimeSecondsGTE(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldGTE(FieldEndTimeSeconds, v))
}

// EndTimeSecondsLT applies the LT predicate on the "end_time_seconds" field.
func EndTimeSecondsLT(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldLT(FieldEndTimeSeconds, v))
}

// EndTimeSecondsLTE applies the LTE predicate on the "end_time_seconds" field.
func EndTimeSecondsLTE(v float64) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldLTE(FieldEndTimeSeconds, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.FieldContainsFold(FieldText, v))
}

// HasMaterial applies the HasEdge predicate on the "material" edge.
func HasMaterial() predicate.SpeakerSegment {
	return predicate.SpeakerSegment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MaterialTable, MaterialColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMaterialWith applies the HasEdge predicate on the "material" edge with a given conditions (other predicates).
func HasMaterialWith(preds ...predicate.SourceMaterial) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(func(s *sql.Selector) {
		step := newMaterialStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SpeakerSegment) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SpeakerSegment) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SpeakerSegment) predicate.SpeakerSegment {
	return predicate.SpeakerSegment(sql.NotPredicates(p))
}
