// Code generated by ent, DO NOT EDIT.

package extractedmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLTE(FieldID, id))
}

// PropertyID applies equality check predicate on the "property_id" field. It's identical to PropertyIDEQ.
func PropertyID(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldPropertyID, v))
}

// MetricType applies equality check predicate on the "metric_type" field. It's identical to MetricTypeEQ.
func MetricType(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldMetricType, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldValue, v))
}

// Period applies equality check predicate on the "period" field. It's identical to PeriodEQ.
func Period(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldPeriod, v))
}

// SourceDocumentID applies equality check predicate on the "source_document_id" field. It's identical to SourceDocumentIDEQ.
func SourceDocumentID(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldSourceDocumentID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldVersion, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldExtractedAt, v))
}

// PropertyIDEQ applies the EQ predicate on the "property_id" field.
func PropertyIDEQ(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldPropertyID, v))
}

// PropertyIDNEQ applies the NEQ predicate on the "property_id" field.
func PropertyIDNEQ(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNEQ(FieldPropertyID, v))
}

// PropertyIDIn applies the In predicate on the "property_id" field.
func PropertyIDIn(vs ...uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldIn(FieldPropertyID, vs...))
}

// PropertyIDNotIn applies the NotIn predicate on the "property_id" field.
func PropertyIDNotIn(vs ...uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNotIn(FieldPropertyID, vs...))
}

// PropertyIDGT applies the GT predicate on the "property_id" field.
func PropertyIDGT(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGT(FieldPropertyID, v))
}

// PropertyIDGTE applies the GTE predicate on the "property_id" field.
func PropertyIDGTE(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGTE(FieldPropertyID, v))
}

// PropertyIDLT applies the LT predicate on the "property_id" field.
func PropertyIDLT(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLT(FieldPropertyID, v))
}

// PropertyIDLTE applies the LTE predicate on the "property_id" field.
func PropertyIDLTE(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLTE(FieldPropertyID, v))
}

// MetricTypeEQ applies the EQ predicate on the "metric_type" field.
func MetricTypeEQ(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldMetricType, v))
}

// MetricTypeNEQ applies the NEQ predicate on the "metric_type" field.
func MetricTypeNEQ(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNEQ(FieldMetricType, v))
}

// MetricTypeIn applies the In predicate on the "metric_type" field.
func MetricTypeIn(vs ...string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldIn(FieldMetricType, vs...))
}

// MetricTypeNotIn applies the NotIn predicate on the "metric_type" field.
func MetricTypeNotIn(vs ...string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNotIn(FieldMetricType, vs...))
}

// MetricTypeGT applies the GT predicate on the "metric_type" field.
func MetricTypeGT(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGT(FieldMetricType, v))
}

// MetricTypeGTE applies the GTE predicate on the "metric_type" field.
func MetricTypeGTE(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGTE(FieldMetricType, v))
}

// MetricTypeLT applies the LT predicate on the "metric_type" field.
func MetricTypeLT(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLT(FieldMetricType, v))
}

// MetricTypeLTE applies the LTE predicate on the "metric_type" field.
func MetricTypeLTE(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLTE(FieldMetricType, v))
}

// MetricTypeContains applies the Contains predicate on the "metric_type" field.
func MetricTypeContains(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldContains(FieldMetricType, v))
}

// MetricTypeHasPrefix applies the HasPrefix predicate on the "metric_type" field.
func MetricTypeHasPrefix(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldHasPrefix(FieldMetricType, v))
}

// MetricTypeHasSuffix applies the HasSuffix predicate on the "metric_type" field.
func MetricTypeHasSuffix(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldHasSuffix(FieldMetricType, v))
}

// MetricTypeEqualFold applies the EqualFold predicate on the "metric_type" field.
func MetricTypeEqualFold(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEqualFold(FieldMetricType, v))
}

// MetricTypeContainsFold applies the ContainsFold predicate on the "metric_type" field.
func MetricTypeContainsFold(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldContainsFold(FieldMetricType, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLTE(FieldValue, v))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNotIn(FieldPeriod, vs...))
}

// PeriodGT applies the GT predicate on the "period" field.
func PeriodGT(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGT(FieldPeriod, v))
}

// PeriodGTE applies the GTE predicate on the "period" field.
func PeriodGTE(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGTE(FieldPeriod, v))
}

// PeriodLT applies the LT predicate on the "period" field.
func PeriodLT(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLT(FieldPeriod, v))
}

// PeriodLTE applies the LTE predicate on the "period" field.
func PeriodLTE(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLTE(FieldPeriod, v))
}

// PeriodContains applies the Contains predicate on the "period" field.
func PeriodContains(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldContains(FieldPeriod, v))
}

// PeriodHasPrefix applies the HasPrefix predicate on the "period" field.
func PeriodHasPrefix(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldHasPrefix(FieldPeriod, v))
}

// PeriodHasSuffix applies the HasSuffix predicate on the "period" field.
func PeriodHasSuffix(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldHasSuffix(FieldPeriod, v))
}

// PeriodEqualFold applies the EqualFold predicate on the "period" field.
func PeriodEqualFold(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEqualFold(FieldPeriod, v))
}

// PeriodContainsFold applies the ContainsFold predicate on the "period" field.
func PeriodContainsFold(v string) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldContainsFold(FieldPeriod, v))
}

// SourceDocumentIDEQ applies the EQ predicate on the "source_document_id" field.
func SourceDocumentIDEQ(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldSourceDocumentID, v))
}

// SourceDocumentIDNEQ applies the NEQ predicate on the "source_document_id" field.
func SourceDocumentIDNEQ(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNEQ(FieldSourceDocumentID, v))
}

// SourceDocumentIDIn applies the In predicate on the "source_document_id" field.
func SourceDocumentIDIn(vs ...uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldIn(FieldSourceDocumentID, vs...))
}

// SourceDocumentIDNotIn applies the NotIn predicate on the "source_document_id" field.
func SourceDocumentIDNotIn(vs ...uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNotIn(FieldSourceDocumentID, vs...))
}

// SourceDocumentIDGT applies the GT predicate on the "source_document_id" field.
func SourceDocumentIDGT(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGT(FieldSourceDocumentID, v))
}

// SourceDocumentIDGTE applies the GTE predicate on the "source_document_id" field.
func SourceDocumentIDGTE(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGTE(FieldSourceDocumentID, v))
}

// SourceDocumentIDLT applies the LT predicate on the "source_document_id" field.
func SourceDocumentIDLT(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLT(FieldSourceDocumentID, v))
}

// SourceDocumentIDLTE applies the LTE predicate on the "source_document_id" field.
func SourceDocumentIDLTE(v uuid.UUID) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLTE(FieldSourceDocumentID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLTE(FieldVersion, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.FieldLTE(FieldExtractedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedMetric) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedMetric) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedMetric) predicate.ExtractedMetric {
	return predicate.ExtractedMetric(sql.NotPredicates(p))
}
