// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/propertyops/asset-governor/gen/ent/predicate"
	"github.com/propertyops/asset-governor/gen/ent/property"
)

// PropertyUpdate is the builder for updating Property entities.
type PropertyUpdate struct {
	config
	hooks    []Hook
	mutation *PropertyMutation
}

// Where appends a list predicates to the PropertyUpdate builder.
func (_u *PropertyUpdate) Where(ps ...predicate.Property) *PropertyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PropertyUpdate) SetName(v string) *PropertyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableName(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPropertyClass sets the "property_class" field.
func (_u *PropertyUpdate) SetPropertyClass(v string) *PropertyUpdate {
	_u.mutation.SetPropertyClass(v)
	return _u
}

// SetNillablePropertyClass sets the "property_class" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillablePropertyClass(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetPropertyClass(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PropertyUpdate) SetCreatedAt(v time.Time) *PropertyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableCreatedAt(v *time.Time) *PropertyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the PropertyMutation object of the builder.
func (_u *PropertyUpdate) Mutation() *PropertyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PropertyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PropertyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := property.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Property.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyClass(); ok {
		if err := property.PropertyClassValidator(v); err != nil {
			return &ValidationError{Name: "property_class", err: fmt.Errorf(`ent: validator failed for field "Property.property_class": %w`, err)}
		}
	}
	return nil
}

func (_u *PropertyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(property.Table, property.Columns, sqlgraph.NewFieldSpec(property.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(property.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyClass(); ok {
		_spec.SetField(property.FieldPropertyClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(property.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{property.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PropertyUpdateOne is the builder for updating a single Property entity.
type PropertyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PropertyMutation
}

// SetName sets the "name" field.
func (_u *PropertyUpdateOne) SetName(v string) *PropertyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableName(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPropertyClass sets the "property_class" field.
func (_u *PropertyUpdateOne) SetPropertyClass(v string) *PropertyUpdateOne {
	_u.mutation.SetPropertyClass(v)
	return _u
}

// SetNillablePropertyClass sets the "property_class" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillablePropertyClass(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetPropertyClass(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PropertyUpdateOne) SetCreatedAt(v time.Time) *PropertyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableCreatedAt(v *time.Time) *PropertyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the PropertyMutation object of the builder.
func (_u *PropertyUpdateOne) Mutation() *PropertyMutation {
	return _u.mutation
}

// Where appends a list predicates to the PropertyUpdate builder.
func (_u *PropertyUpdateOne) Where(ps ...predicate.Property) *PropertyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PropertyUpdateOne) Select(field string, fields ...string) *PropertyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Property entity.
func (_u *PropertyUpdateOne) Save(ctx context.Context) (*Property, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyUpdateOne) SaveX(ctx context.Context) *Property {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PropertyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := property.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Property.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyClass(); ok {
		if err := property.PropertyClassValidator(v); err != nil {
			return &ValidationError{Name: "property_class", err: fmt.Errorf(`ent: validator failed for field "Property.property_class": %w`, err)}
		}
	}
	return nil
}

func (_u *PropertyUpdateOne) sqlSave(ctx context.Context) (_node *Property, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(property.Table, property.Columns, sqlgraph.NewFieldSpec(property.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Property.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, property.FieldID)
		for _, f := range fields {
			if !property.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != property.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(property.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyClass(); ok {
		_spec.SetField(property.FieldPropertyClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(property.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Property{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{property.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
