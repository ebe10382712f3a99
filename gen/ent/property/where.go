// Code generated by ent, DO NOT EDIT.

package property

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/propertyops/asset-governor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldName, v))
}

// PropertyClass applies equality check predicate on the "property_class" field. It's identical to PropertyClassEQ.
func PropertyClass(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldPropertyClass, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldName, v))
}

// PropertyClassEQ applies the EQ predicate on the "property_class" field.
func PropertyClassEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldPropertyClass, v))
}

// PropertyClassNEQ applies the NEQ predicate on the "property_class" field.
func PropertyClassNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldPropertyClass, v))
}

// PropertyClassIn applies the In predicate on the "property_class" field.
func PropertyClassIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldPropertyClass, vs...))
}

// PropertyClassNotIn applies the NotIn predicate on the "property_class" field.
func PropertyClassNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldPropertyClass, vs...))
}

// PropertyClassGT applies the GT predicate on the "property_class" field.
func PropertyClassGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldPropertyClass, v))
}

// PropertyClassGTE applies the GTE predicate on the "property_class" field.
func PropertyClassGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldPropertyClass, v))
}

// PropertyClassLT applies the LT predicate on the "property_class" field.
func PropertyClassLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldPropertyClass, v))
}

// PropertyClassLTE applies the LTE predicate on the "property_class" field.
func PropertyClassLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldPropertyClass, v))
}

// PropertyClassContains applies the Contains predicate on the "property_class" field.
func PropertyClassContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldPropertyClass, v))
}

// PropertyClassHasPrefix applies the HasPrefix predicate on the "property_class" field.
func PropertyClassHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldPropertyClass, v))
}

// PropertyClassHasSuffix applies the HasSuffix predicate on the "property_class" field.
func PropertyClassHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldPropertyClass, v))
}

// PropertyClassEqualFold applies the EqualFold predicate on the "property_class" field.
func PropertyClassEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldPropertyClass, v))
}

// PropertyClassContainsFold applies the ContainsFold predicate on the "property_class" field.
func PropertyClassContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldPropertyClass, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Property) predicate.Property {
	return predicate.Property(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Property) predicate.Property {
	return predicate.Property(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Property) predicate.Property {
	return predicate.Property(sql.NotPredicates(p))
}
