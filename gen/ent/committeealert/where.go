// Code generated by ent, DO NOT EDIT.

package committeealert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLTE(FieldID, id))
}

// PropertyID applies equality check predicate on the "property_id" field. It's identical to PropertyIDEQ.
func PropertyID(v uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldPropertyID, v))
}

// AlertType applies equality check predicate on the "alert_type" field. It's identical to AlertTypeEQ.
func AlertType(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldAlertType, v))
}

// MetricType applies equality check predicate on the "metric_type" field. It's identical to MetricTypeEQ.
func MetricType(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldMetricType, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldSeverity, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedBy applies equality check predicate on the "resolved_by" field. It's identical to ResolvedByEQ.
func ResolvedBy(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolutionNotes applies equality check predicate on the "resolution_notes" field. It's identical to ResolutionNotesEQ.
func ResolutionNotes(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldResolutionNotes, v))
}

// PropertyIDEQ applies the EQ predicate on the "property_id" field.
func PropertyIDEQ(v uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldPropertyID, v))
}

// PropertyIDNEQ applies the NEQ predicate on the "property_id" field.
func PropertyIDNEQ(v uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNEQ(FieldPropertyID, v))
}

// PropertyIDIn applies the In predicate on the "property_id" field.
func PropertyIDIn(vs ...uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIn(FieldPropertyID, vs...))
}

// PropertyIDNotIn applies the NotIn predicate on the "property_id" field.
func PropertyIDNotIn(vs ...uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotIn(FieldPropertyID, vs...))
}

// PropertyIDGT applies the GT predicate on the "property_id" field.
func PropertyIDGT(v uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGT(FieldPropertyID, v))
}

// PropertyIDGTE applies the GTE predicate on the "property_id" field.
func PropertyIDGTE(v uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGTE(FieldPropertyID, v))
}

// PropertyIDLT applies the LT predicate on the "property_id" field.
func PropertyIDLT(v uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLT(FieldPropertyID, v))
}

// PropertyIDLTE applies the LTE predicate on the "property_id" field.
func PropertyIDLTE(v uuid.UUID) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLTE(FieldPropertyID, v))
}

// AlertTypeEQ applies the EQ predicate on the "alert_type" field.
func AlertTypeEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldAlertType, v))
}

// AlertTypeNEQ applies the NEQ predicate on the "alert_type" field.
func AlertTypeNEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNEQ(FieldAlertType, v))
}

// AlertTypeIn applies the In predicate on the "alert_type" field.
func AlertTypeIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIn(FieldAlertType, vs...))
}

// AlertTypeNotIn applies the NotIn predicate on the "alert_type" field.
func AlertTypeNotIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotIn(FieldAlertType, vs...))
}

// AlertTypeGT applies the GT predicate on the "alert_type" field.
func AlertTypeGT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGT(FieldAlertType, v))
}

// AlertTypeGTE applies the GTE predicate on the "alert_type" field.
func AlertTypeGTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGTE(FieldAlertType, v))
}

// AlertTypeLT applies the LT predicate on the "alert_type" field.
func AlertTypeLT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLT(FieldAlertType, v))
}

// AlertTypeLTE applies the LTE predicate on the "alert_type" field.
func AlertTypeLTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLTE(FieldAlertType, v))
}

// AlertTypeContains applies the Contains predicate on the "alert_type" field.
func AlertTypeContains(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContains(FieldAlertType, v))
}

// AlertTypeHasPrefix applies the HasPrefix predicate on the "alert_type" field.
func AlertTypeHasPrefix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasPrefix(FieldAlertType, v))
}

// AlertTypeHasSuffix applies the HasSuffix predicate on the "alert_type" field.
func AlertTypeHasSuffix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasSuffix(FieldAlertType, v))
}

// AlertTypeEqualFold applies the EqualFold predicate on the "alert_type" field.
func AlertTypeEqualFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEqualFold(FieldAlertType, v))
}

// AlertTypeContainsFold applies the ContainsFold predicate on the "alert_type" field.
func AlertTypeContainsFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContainsFold(FieldAlertType, v))
}

// MetricTypeEQ applies the EQ predicate on the "metric_type" field.
func MetricTypeEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldMetricType, v))
}

// MetricTypeNEQ applies the NEQ predicate on the "metric_type" field.
func MetricTypeNEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNEQ(FieldMetricType, v))
}

// MetricTypeIn applies the In predicate on the "metric_type" field.
func MetricTypeIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIn(FieldMetricType, vs...))
}

// MetricTypeNotIn applies the NotIn predicate on the "metric_type" field.
func MetricTypeNotIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotIn(FieldMetricType, vs...))
}

// MetricTypeGT applies the GT predicate on the "metric_type" field.
func MetricTypeGT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGT(FieldMetricType, v))
}

// MetricTypeGTE applies the GTE predicate on the "metric_type" field.
func MetricTypeGTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGTE(FieldMetricType, v))
}

// MetricTypeLT applies the LT predicate on the "metric_type" field.
func MetricTypeLT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLT(FieldMetricType, v))
}

// MetricTypeLTE applies the LTE predicate on the "metric_type" field.
func MetricTypeLTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLTE(FieldMetricType, v))
}

// MetricTypeContains applies the Contains predicate on the "metric_type" field.
func MetricTypeContains(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContains(FieldMetricType, v))
}

// MetricTypeHasPrefix applies the HasPrefix predicate on the "metric_type" field.
func MetricTypeHasPrefix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasPrefix(FieldMetricType, v))
}

// MetricTypeHasSuffix applies the HasSuffix predicate on the "metric_type" field.
func MetricTypeHasSuffix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasSuffix(FieldMetricType, v))
}

// MetricTypeEqualFold applies the EqualFold predicate on the "metric_type" field.
func MetricTypeEqualFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEqualFold(FieldMetricType, v))
}

// MetricTypeContainsFold applies the ContainsFold predicate on the "metric_type" field.
func MetricTypeContainsFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContainsFold(FieldMetricType, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContainsFold(FieldSeverity, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotNull(FieldResolvedAt))
}

// ResolvedByEQ applies the EQ predicate on the "resolved_by" field.
func ResolvedByEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolvedByNEQ applies the NEQ predicate on the "resolved_by" field.
func ResolvedByNEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNEQ(FieldResolvedBy, v))
}

// ResolvedByIn applies the In predicate on the "resolved_by" field.
func ResolvedByIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIn(FieldResolvedBy, vs...))
}

// ResolvedByNotIn applies the NotIn predicate on the "resolved_by" field.
func ResolvedByNotIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotIn(FieldResolvedBy, vs...))
}

// ResolvedByGT applies the GT predicate on the "resolved_by" field.
func ResolvedByGT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGT(FieldResolvedBy, v))
}

// ResolvedByGTE applies the GTE predicate on the "resolved_by" field.
func ResolvedByGTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGTE(FieldResolvedBy, v))
}

// ResolvedByLT applies the LT predicate on the "resolved_by" field.
func ResolvedByLT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLT(FieldResolvedBy, v))
}

// ResolvedByLTE applies the LTE predicate on the "resolved_by" field.
func ResolvedByLTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLTE(FieldResolvedBy, v))
}

// ResolvedByContains applies the Contains predicate on the "resolved_by" field.
func ResolvedByContains(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContains(FieldResolvedBy, v))
}

// ResolvedByHasPrefix applies the HasPrefix predicate on the "resolved_by" field.
func ResolvedByHasPrefix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasPrefix(FieldResolvedBy, v))
}

// ResolvedByHasSuffix applies the HasSuffix predicate on the "resolved_by" field.
func ResolvedByHasSuffix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasSuffix(FieldResolvedBy, v))
}

// ResolvedByIsNil applies the IsNil predicate on the "resolved_by" field.
func ResolvedByIsNil() predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIsNull(FieldResolvedBy))
}

// ResolvedByNotNil applies the NotNil predicate on the "resolved_by" field.
func ResolvedByNotNil() predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotNull(FieldResolvedBy))
}

// ResolvedByEqualFold applies the EqualFold predicate on the "resolved_by" field.
func ResolvedByEqualFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEqualFold(FieldResolvedBy, v))
}

// ResolvedByContainsFold applies the ContainsFold predicate on the "resolved_by" field.
func ResolvedByContainsFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContainsFold(FieldResolvedBy, v))
}

// ResolutionNotesEQ applies the EQ predicate on the "resolution_notes" field.
func ResolutionNotesEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEQ(FieldResolutionNotes, v))
}

// ResolutionNotesNEQ applies the NEQ predicate on the "resolution_notes" field.
func ResolutionNotesNEQ(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNEQ(FieldResolutionNotes, v))
}

// ResolutionNotesIn applies the In predicate on the "resolution_notes" field.
func ResolutionNotesIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesNotIn applies the NotIn predicate on the "resolution_notes" field.
func ResolutionNotesNotIn(vs ...string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesGT applies the GT predicate on the "resolution_notes" field.
func ResolutionNotesGT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGT(FieldResolutionNotes, v))
}

// ResolutionNotesGTE applies the GTE predicate on the "resolution_notes" field.
func ResolutionNotesGTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldGTE(FieldResolutionNotes, v))
}

// ResolutionNotesLT applies the LT predicate on the "resolution_notes" field.
func ResolutionNotesLT(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLT(FieldResolutionNotes, v))
}

// ResolutionNotesLTE applies the LTE predicate on the "resolution_notes" field.
func ResolutionNotesLTE(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldLTE(FieldResolutionNotes, v))
}

// ResolutionNotesContains applies the Contains predicate on the "resolution_notes" field.
func ResolutionNotesContains(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContains(FieldResolutionNotes, v))
}

// ResolutionNotesHasPrefix applies the HasPrefix predicate on the "resolution_notes" field.
func ResolutionNotesHasPrefix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasPrefix(FieldResolutionNotes, v))
}

// ResolutionNotesHasSuffix applies the HasSuffix predicate on the "resolution_notes" field.
func ResolutionNotesHasSuffix(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldHasSuffix(FieldResolutionNotes, v))
}

// ResolutionNotesIsNil applies the IsNil predicate on the "resolution_notes" field.
func ResolutionNotesIsNil() predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldIsNull(FieldResolutionNotes))
}

// ResolutionNotesNotNil applies the NotNil predicate on the "resolution_notes" field.
func ResolutionNotesNotNil() predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldNotNull(FieldResolutionNotes))
}

// ResolutionNotesEqualFold applies the EqualFold predicate on the "resolution_notes" field.
func ResolutionNotesEqualFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldEqualFold(FieldResolutionNotes, v))
}

// ResolutionNotesContainsFold applies the ContainsFold predicate on the "resolution_notes" field.
func ResolutionNotesContainsFold(v string) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.FieldContainsFold(FieldResolutionNotes, v))
}

// HasLocks applies the HasEdge predicate on the "locks" edge.
func HasLocks() predicate.CommitteeAlert {
	return predicate.CommitteeAlert(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LocksTable, LocksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLocksWith applies the HasEdge predicate on the "locks" edge with a given conditions (other predicates).
func HasLocksWith(preds ...predicate.WorkflowLock) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(func(s *sql.Selector) {
		step := newLocksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommitteeAlert) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommitteeAlert) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommitteeAlert) predicate.CommitteeAlert {
	return predicate.CommitteeAlert(sql.NotPredicates(p))
}
