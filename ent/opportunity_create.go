// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salesdeskhq/salesdesk/ent/account"
	"github.com/salesdeskhq/salesdesk/ent/contact"
	"github.com/salesdeskhq/salesdesk/ent/opportunity"
)

// OpportunityCreate is the builder for creating a Opportunity entity.
type OpportunityCreate struct {
	config
	mutation *OpportunityMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *OpportunityCreate) SetName(v string) *OpportunityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *OpportunityCreate) SetAccountID(v int) *OpportunityCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetContactID sets the "contact_id" field.
func (_c *OpportunityCreate) SetContactID(v int) *OpportunityCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableContactID(v *int) *OpportunityCreate {
	if v != nil {
		_c.SetContactID(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *OpportunityCreate) SetAmount(v float64) *OpportunityCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableAmount(v *float64) *OpportunityCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *OpportunityCreate) SetStage(v opportunity.Stage) *OpportunityCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableStage(v *opportunity.Stage) *OpportunityCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetCloseDate sets the "close_date" field.
func (_c *OpportunityCreate) SetCloseDate(v time.Time) *OpportunityCreate {
	_c.mutation.SetCloseDate(v)
	return _c
}

// SetNillableCloseDate sets the "close_date" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableCloseDate(v *time.Time) *OpportunityCreate {
	if v != nil {
		_c.SetCloseDate(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *OpportunityCreate) SetOwnerID(v int) *OpportunityCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OpportunityCreate) SetCreatedAt(v time.Time) *OpportunityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableCreatedAt(v *time.Time) *OpportunityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OpportunityCreate) SetUpdatedAt(v time.Time) *OpportunityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableUpdatedAt(v *time.Time) *OpportunityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *OpportunityCreate) SetAccount(v *Account) *OpportunityCreate {
	return _c.SetAccountID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_c *OpportunityCreate) SetContact(v *Contact) *OpportunityCreate {
	return _c.SetContactID(v.ID)
}

// Mutation returns the OpportunityMutation object of the builder.
func (_c *OpportunityCreate) Mutation() *OpportunityMutation {
	return _c.mutation
}

// Save creates the Opportunity in the database.
func (_c *OpportunityCreate) Save(ctx context.Context) (*Opportunity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OpportunityCreate) SaveX(ctx context.Context) *Opportunity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OpportunityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OpportunityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OpportunityCreate) defaults() {
	if _, ok := _c.mutation.Amount(); !ok {
		v := opportunity.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.Stage(); !ok {
		v := opportunity.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := opportunity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := opportunity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OpportunityCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Opportunity.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := opportunity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Opportunity.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Opportunity.account_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Opportunity.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := opportunity.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Opportunity.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Opportunity.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := opportunity.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Opportunity.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Opportunity.owner_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Opportunity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Opportunity.updated_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "Opportunity.account"`)}
	}
	return nil
}

func (_c *OpportunityCreate) sqlSave(ctx context.Context) (*Opportunity, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OpportunityCreate) createSpec() (*Opportunity, *sqlgraph.CreateSpec) {
	var (
		_node = &Opportunity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(opportunity.Table, sqlgraph.NewFieldSpec(opportunity.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(opportunity.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(opportunity.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(opportunity.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.CloseDate(); ok {
		_spec.SetField(opportunity.FieldCloseDate, field.TypeTime, value)
		_node.CloseDate = &value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(opportunity.FieldOwnerID, field.TypeInt, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(opportunity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(opportunity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.AccountTable,
			Columns: []string{opportunity.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.ContactTable,
			Columns: []string{opportunity.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContactID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OpportunityCreateBulk is the builder for creating many Opportunity entities in bulk.
type OpportunityCreateBulk struct {
	config
	err      error
	builders []*OpportunityCreate
}

// Save creates the Opportunity entities in the database.
func (_c *OpportunityCreateBulk) Save(ctx context.Context) ([]*Opportunity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Opportunity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OpportunityMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OpportunityCreateBulk) SaveX(ctx context.Context) []*Opportunity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OpportunityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OpportunityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
