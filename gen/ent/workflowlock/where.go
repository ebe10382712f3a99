// Code generated by ent, DO NOT EDIT.

package workflowlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLTE(FieldID, id))
}

// PropertyID applies equality check predicate on the "property_id" field. It's identical to PropertyIDEQ.
func PropertyID(v uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldPropertyID, v))
}

// AlertID applies equality check predicate on the "alert_id" field. It's identical to AlertIDEQ.
func AlertID(v uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldAlertID, v))
}

// LockType applies equality check predicate on the "lock_type" field. It's identical to LockTypeEQ.
func LockType(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldLockType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldStatus, v))
}

// LockedAt applies equality check predicate on the "locked_at" field. It's identical to LockedAtEQ.
func LockedAt(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldLockedAt, v))
}

// UnlockedAt applies equality check predicate on the "unlocked_at" field. It's identical to UnlockedAtEQ.
func UnlockedAt(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldUnlockedAt, v))
}

// PropertyIDEQ applies the EQ predicate on the "property_id" field.
func PropertyIDEQ(v uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldPropertyID, v))
}

// PropertyIDNEQ applies the NEQ predicate on the "property_id" field.
func PropertyIDNEQ(v uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNEQ(FieldPropertyID, v))
}

// PropertyIDIn applies the In predicate on the "property_id" field.
func PropertyIDIn(vs ...uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldIn(FieldPropertyID, vs...))
}

// PropertyIDNotIn applies the NotIn predicate on the "property_id" field.
func PropertyIDNotIn(vs ...uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNotIn(FieldPropertyID, vs...))
}

// PropertyIDGT applies the GT predicate on the "property_id" field.
func PropertyIDGT(v uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGT(FieldPropertyID, v))
}

// PropertyIDGTE applies the GTE predicate on the "property_id" field.
func PropertyIDGTE(v uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGTE(FieldPropertyID, v))
}

// PropertyIDLT applies the LT predicate on the "property_id" field.
func PropertyIDLT(v uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLT(FieldPropertyID, v))
}

// PropertyIDLTE applies the LTE predicate on the "property_id" field.
func PropertyIDLTE(v uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLTE(FieldPropertyID, v))
}

// AlertIDEQ applies the EQ predicate on the "alert_id" field.
func AlertIDEQ(v uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldAlertID, v))
}

// AlertIDNEQ applies the NEQ predicate on the "alert_id" field.
func AlertIDNEQ(v uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNEQ(FieldAlertID, v))
}

// AlertIDIn applies the In predicate on the "alert_id" field.
func AlertIDIn(vs ...uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldIn(FieldAlertID, vs...))
}

// AlertIDNotIn applies the NotIn predicate on the "alert_id" field.
func AlertIDNotIn(vs ...uuid.UUID) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNotIn(FieldAlertID, vs...))
}

// LockTypeEQ applies the EQ predicate on the "lock_type" field.
func LockTypeEQ(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldLockType, v))
}

// LockTypeNEQ applies the NEQ predicate on the "lock_type" field.
func LockTypeNEQ(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNEQ(FieldLockType, v))
}

// LockTypeIn applies the In predicate on the "lock_type" field.
func LockTypeIn(vs ...string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldIn(FieldLockType, vs...))
}

// LockTypeNotIn applies the NotIn predicate on the "lock_type" field.
func LockTypeNotIn(vs ...string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNotIn(FieldLockType, vs...))
}

// LockTypeGT applies the GT predicate on the "lock_type" field.
func LockTypeGT(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGT(FieldLockType, v))
}

// LockTypeGTE applies the GTE predicate on the "lock_type" field.
func LockTypeGTE(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGTE(FieldLockType, v))
}

// LockTypeLT applies the LT predicate on the "lock_type" field.
func LockTypeLT(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLT(FieldLockType, v))
}

// LockTypeLTE applies the LTE predicate on the "lock_type" field.
func LockTypeLTE(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLTE(FieldLockType, v))
}

// LockTypeContains applies the Contains predicate on the "lock_type" field.
func LockTypeContains(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldContains(FieldLockType, v))
}

// LockTypeHasPrefix applies the HasPrefix predicate on the "lock_type" field.
func LockTypeHasPrefix(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldHasPrefix(FieldLockType, v))
}

// LockTypeHasSuffix applies the HasSuffix predicate on the "lock_type" field.
func LockTypeHasSuffix(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldHasSuffix(FieldLockType, v))
}

// LockTypeEqualFold applies the EqualFold predicate on the "lock_type" field.
func LockTypeEqualFold(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEqualFold(FieldLockType, v))
}

// LockTypeContainsFold applies the ContainsFold predicate on the "lock_type" field.
func LockTypeContainsFold(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldContainsFold(FieldLockType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldContainsFold(FieldStatus, v))
}

// LockedAtEQ applies the EQ predicate on the "locked_at" field.
func LockedAtEQ(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldLockedAt, v))
}

// LockedAtNEQ applies the NEQ predicate on the "locked_at" field.
func LockedAtNEQ(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNEQ(FieldLockedAt, v))
}

// LockedAtIn applies the In predicate on the "locked_at" field.
func LockedAtIn(vs ...time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldIn(FieldLockedAt, vs...))
}

// LockedAtNotIn applies the NotIn predicate on the "locked_at" field.
func LockedAtNotIn(vs ...time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNotIn(FieldLockedAt, vs...))
}

// LockedAtGT applies the GT predicate on the "locked_at" field.
func LockedAtGT(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGT(FieldLockedAt, v))
}

// LockedAtGTE applies the GTE predicate on the "locked_at" field.
func LockedAtGTE(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGTE(FieldLockedAt, v))
}

// LockedAtLT applies the LT predicate on the "locked_at" field.
func LockedAtLT(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLT(FieldLockedAt, v))
}

// LockedAtLTE applies the LTE predicate on the "locked_at" field.
func LockedAtLTE(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLTE(FieldLockedAt, v))
}

// UnlockedAtEQ applies the EQ predicate on the "unlocked_at" field.
func UnlockedAtEQ(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldEQ(FieldUnlockedAt, v))
}

// UnlockedAtNEQ applies the NEQ predicate on the "unlocked_at" field.
func UnlockedAtNEQ(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNEQ(FieldUnlockedAt, v))
}

// UnlockedAtIn applies the In predicate on the "unlocked_at" field.
func UnlockedAtIn(vs ...time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldIn(FieldUnlockedAt, vs...))
}

// UnlockedAtNotIn applies the NotIn predicate on the "unlocked_at" field.
func UnlockedAtNotIn(vs ...time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNotIn(FieldUnlockedAt, vs...))
}

// UnlockedAtGT applies the GT predicate on the "unlocked_at" field.
func UnlockedAtGT(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGT(FieldUnlockedAt, v))
}

// UnlockedAtGTE applies the GTE predicate on the "unlocked_at" field.
func UnlockedAtGTE(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldGTE(FieldUnlockedAt, v))
}

// UnlockedAtLT applies the LT predicate on the "unlocked_at" field.
func UnlockedAtLT(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLT(FieldUnlockedAt, v))
}

// UnlockedAtLTE applies the LTE predicate on the "unlocked_at" field.
func UnlockedAtLTE(v time.Time) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldLTE(FieldUnlockedAt, v))
}

// UnlockedAtIsNil applies the IsNil predicate on the "unlocked_at" field.
func UnlockedAtIsNil() predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldIsNull(FieldUnlockedAt))
}

// UnlockedAtNotNil applies the NotNil predicate on the "unlocked_at" field.
func UnlockedAtNotNil() predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.FieldNotNull(FieldUnlockedAt))
}

// HasAlert applies the HasEdge predicate on the "alert" edge.
func HasAlert() predicate.WorkflowLock {
	return predicate.WorkflowLock(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AlertTable, AlertColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertWith applies the HasEdge predicate on the "alert" edge with a given conditions (other predicates).
func HasAlertWith(preds ...predicate.CommitteeAlert) predicate.WorkflowLock {
	return predicate.WorkflowLock(func(s *sql.Selector) {
		step := newAlertStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowLock) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowLock) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowLock) predicate.WorkflowLock {
	return predicate.WorkflowLock(sql.NotPredicates(p))
}
