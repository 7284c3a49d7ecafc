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
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/ent/predicate"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *LeadUpdate) SetFirstName(v string) *LeadUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableFirstName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *LeadUpdate) SetLastName(v string) *LeadUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLastName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdate) ClearEmail() *LeadUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdate) ClearPhone() *LeadUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LeadUpdate) SetCompanyName(v string) *LeadUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompanyName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *LeadUpdate) ClearCompanyName() *LeadUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdate) SetCompany(v string) *LeadUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompany(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *LeadUpdate) ClearCompany() *LeadUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetTitle sets the "title" field.
func (_u *LeadUpdate) SetTitle(v string) *LeadUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableTitle(v *string) *LeadUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *LeadUpdate) ClearTitle() *LeadUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdate) SetSource(v lead.Source) *LeadUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSource(v *lead.Source) *LeadUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdate) SetStatus(v lead.Status) *LeadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStatus(v *lead.Status) *LeadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *LeadUpdate) SetOwnerID(v int) *LeadUpdate {
	_u.mutation.ResetOwnerID()
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableOwnerID(v *int) *LeadUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// AddOwnerID adds value to the "owner_id" field.
func (_u *LeadUpdate) AddOwnerID(v int) *LeadUpdate {
	_u.mutation.AddOwnerID(v)
	return _u
}

// SetConvertedAt sets the "converted_at" field.
func (_u *LeadUpdate) SetConvertedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetConvertedAt(v)
	return _u
}

// SetNillableConvertedAt sets the "converted_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableConvertedAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetConvertedAt(*v)
	}
	return _u
}

// ClearConvertedAt clears the value of the "converted_at" field.
func (_u *LeadUpdate) ClearConvertedAt() *LeadUpdate {
	_u.mutation.ClearConvertedAt()
	return _u
}

// SetConvertedToAccountID sets the "converted_to_account_id" field.
func (_u *LeadUpdate) SetConvertedToAccountID(v int) *LeadUpdate {
	_u.mutation.ResetConvertedToAccountID()
	_u.mutation.SetConvertedToAccountID(v)
	return _u
}

// SetNillableConvertedToAccountID sets the "converted_to_account_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableConvertedToAccountID(v *int) *LeadUpdate {
	if v != nil {
		_u.SetConvertedToAccountID(*v)
	}
	return _u
}

// AddConvertedToAccountID adds value to the "converted_to_account_id" field.
func (_u *LeadUpdate) AddConvertedToAccountID(v int) *LeadUpdate {
	_u.mutation.AddConvertedToAccountID(v)
	return _u
}

// ClearConvertedToAccountID clears the value of the "converted_to_account_id" field.
func (_u *LeadUpdate) ClearConvertedToAccountID() *LeadUpdate {
	_u.mutation.ClearConvertedToAccountID()
	return _u
}

// SetConvertedToContactID sets the "converted_to_contact_id" field.
func (_u *LeadUpdate) SetConvertedToContactID(v int) *LeadUpdate {
	_u.mutation.ResetConvertedToContactID()
	_u.mutation.SetConvertedToContactID(v)
	return _u
}

// SetNillableConvertedToContactID sets the "converted_to_contact_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableConvertedToContactID(v *int) *LeadUpdate {
	if v != nil {
		_u.SetConvertedToContactID(*v)
	}
	return _u
}

// AddConvertedToContactID adds value to the "converted_to_contact_id" field.
func (_u *LeadUpdate) AddConvertedToContactID(v int) *LeadUpdate {
	_u.mutation.AddConvertedToContactID(v)
	return _u
}

// ClearConvertedToContactID clears the value of the "converted_to_contact_id" field.
func (_u *LeadUpdate) ClearConvertedToContactID() *LeadUpdate {
	_u.mutation.ClearConvertedToContactID()
	return _u
}

// SetConvertedToOpportunityID sets the "converted_to_opportunity_id" field.
func (_u *LeadUpdate) SetConvertedToOpportunityID(v int) *LeadUpdate {
	_u.mutation.ResetConvertedToOpportunityID()
	_u.mutation.SetConvertedToOpportunityID(v)
	return _u
}

// SetNillableConvertedToOpportunityID sets the "converted_to_opportunity_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableConvertedToOpportunityID(v *int) *LeadUpdate {
	if v != nil {
		_u.SetConvertedToOpportunityID(*v)
	}
	return _u
}

// AddConvertedToOpportunityID adds value to the "converted_to_opportunity_id" field.
func (_u *LeadUpdate) AddConvertedToOpportunityID(v int) *LeadUpdate {
	_u.mutation.AddConvertedToOpportunityID(v)
	return _u
}

// ClearConvertedToOpportunityID clears the value of the "converted_to_opportunity_id" field.
func (_u *LeadUpdate) ClearConvertedToOpportunityID() *LeadUpdate {
	_u.mutation.ClearConvertedToOpportunityID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := lead.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Lead.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := lead.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Lead.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(lead.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(lead.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lead.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(lead.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(lead.FieldOwnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOwnerID(); ok {
		_spec.AddField(lead.FieldOwnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConvertedAt(); ok {
		_spec.SetField(lead.FieldConvertedAt, field.TypeTime, value)
	}
	if _u.mutation.ConvertedAtCleared() {
		_spec.ClearField(lead.FieldConvertedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConvertedToAccountID(); ok {
		_spec.SetField(lead.FieldConvertedToAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConvertedToAccountID(); ok {
		_spec.AddField(lead.FieldConvertedToAccountID, field.TypeInt, value)
	}
	if _u.mutation.ConvertedToAccountIDCleared() {
		_spec.ClearField(lead.FieldConvertedToAccountID, field.TypeInt)
	}
	if value, ok := _u.mutation.ConvertedToContactID(); ok {
		_spec.SetField(lead.FieldConvertedToContactID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConvertedToContactID(); ok {
		_spec.AddField(lead.FieldConvertedToContactID, field.TypeInt, value)
	}
	if _u.mutation.ConvertedToContactIDCleared() {
		_spec.ClearField(lead.FieldConvertedToContactID, field.TypeInt)
	}
	if value, ok := _u.mutation.ConvertedToOpportunityID(); ok {
		_spec.SetField(lead.FieldConvertedToOpportunityID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConvertedToOpportunityID(); ok {
		_spec.AddField(lead.FieldConvertedToOpportunityID, field.TypeInt, value)
	}
	if _u.mutation.ConvertedToOpportunityIDCleared() {
		_spec.ClearField(lead.FieldConvertedToOpportunityID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetFirstName sets the "first_name" field.
func (_u *LeadUpdateOne) SetFirstName(v string) *LeadUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableFirstName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *LeadUpdateOne) SetLastName(v string) *LeadUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLastName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdateOne) ClearEmail() *LeadUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdateOne) ClearPhone() *LeadUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LeadUpdateOne) SetCompanyName(v string) *LeadUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompanyName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *LeadUpdateOne) ClearCompanyName() *LeadUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdateOne) SetCompany(v string) *LeadUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompany(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *LeadUpdateOne) ClearCompany() *LeadUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetTitle sets the "title" field.
func (_u *LeadUpdateOne) SetTitle(v string) *LeadUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableTitle(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *LeadUpdateOne) ClearTitle() *LeadUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdateOne) SetSource(v lead.Source) *LeadUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSource(v *lead.Source) *LeadUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdateOne) SetStatus(v lead.Status) *LeadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStatus(v *lead.Status) *LeadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *LeadUpdateOne) SetOwnerID(v int) *LeadUpdateOne {
	_u.mutation.ResetOwnerID()
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableOwnerID(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// AddOwnerID adds value to the "owner_id" field.
func (_u *LeadUpdateOne) AddOwnerID(v int) *LeadUpdateOne {
	_u.mutation.AddOwnerID(v)
	return _u
}

// SetConvertedAt sets the "converted_at" field.
func (_u *LeadUpdateOne) SetConvertedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetConvertedAt(v)
	return _u
}

// SetNillableConvertedAt sets the "converted_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableConvertedAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetConvertedAt(*v)
	}
	return _u
}

// ClearConvertedAt clears the value of the "converted_at" field.
func (_u *LeadUpdateOne) ClearConvertedAt() *LeadUpdateOne {
	_u.mutation.ClearConvertedAt()
	return _u
}

// SetConvertedToAccountID sets the "converted_to_account_id" field.
func (_u *LeadUpdateOne) SetConvertedToAccountID(v int) *LeadUpdateOne {
	_u.mutation.ResetConvertedToAccountID()
	_u.mutation.SetConvertedToAccountID(v)
	return _u
}

// SetNillableConvertedToAccountID sets the "converted_to_account_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableConvertedToAccountID(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetConvertedToAccountID(*v)
	}
	return _u
}

// AddConvertedToAccountID adds value to the "converted_to_account_id" field.
func (_u *LeadUpdateOne) AddConvertedToAccountID(v int) *LeadUpdateOne {
	_u.mutation.AddConvertedToAccountID(v)
	return _u
}

// ClearConvertedToAccountID clears the value of the "converted_to_account_id" field.
func (_u *LeadUpdateOne) ClearConvertedToAccountID() *LeadUpdateOne {
	_u.mutation.ClearConvertedToAccountID()
	return _u
}

// SetConvertedToContactID sets the "converted_to_contact_id" field.
func (_u *LeadUpdateOne) SetConvertedToContactID(v int) *LeadUpdateOne {
	_u.mutation.ResetConvertedToContactID()
	_u.mutation.SetConvertedToContactID(v)
	return _u
}

// SetNillableConvertedToContactID sets the "converted_to_contact_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableConvertedToContactID(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetConvertedToContactID(*v)
	}
	return _u
}

// AddConvertedToContactID adds value to the "converted_to_contact_id" field.
func (_u *LeadUpdateOne) AddConvertedToContactID(v int) *LeadUpdateOne {
	_u.mutation.AddConvertedToContactID(v)
	return _u
}

// ClearConvertedToContactID clears the value of the "converted_to_contact_id" field.
func (_u *LeadUpdateOne) ClearConvertedToContactID() *LeadUpdateOne {
	_u.mutation.ClearConvertedToContactID()
	return _u
}

// SetConvertedToOpportunityID sets the "converted_to_opportunity_id" field.
func (_u *LeadUpdateOne) SetConvertedToOpportunityID(v int) *LeadUpdateOne {
	_u.mutation.ResetConvertedToOpportunityID()
	_u.mutation.SetConvertedToOpportunityID(v)
	return _u
}

// SetNillableConvertedToOpportunityID sets the "converted_to_opportunity_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableConvertedToOpportunityID(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetConvertedToOpportunityID(*v)
	}
	return _u
}

// AddConvertedToOpportunityID adds value to the "converted_to_opportunity_id" field.
func (_u *LeadUpdateOne) AddConvertedToOpportunityID(v int) *LeadUpdateOne {
	_u.mutation.AddConvertedToOpportunityID(v)
	return _u
}

// ClearConvertedToOpportunityID clears the value of the "converted_to_opportunity_id" field.
func (_u *LeadUpdateOne) ClearConvertedToOpportunityID() *LeadUpdateOne {
	_u.mutation.ClearConvertedToOpportunityID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := lead.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Lead.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := lead.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Lead.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
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
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(lead.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(lead.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lead.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(lead.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(lead.FieldOwnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOwnerID(); ok {
		_spec.AddField(lead.FieldOwnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConvertedAt(); ok {
		_spec.SetField(lead.FieldConvertedAt, field.TypeTime, value)
	}
	if _u.mutation.ConvertedAtCleared() {
		_spec.ClearField(lead.FieldConvertedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConvertedToAccountID(); ok {
		_spec.SetField(lead.FieldConvertedToAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConvertedToAccountID(); ok {
		_spec.AddField(lead.FieldConvertedToAccountID, field.TypeInt, value)
	}
	if _u.mutation.ConvertedToAccountIDCleared() {
		_spec.ClearField(lead.FieldConvertedToAccountID, field.TypeInt)
	}
	if value, ok := _u.mutation.ConvertedToContactID(); ok {
		_spec.SetField(lead.FieldConvertedToContactID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConvertedToContactID(); ok {
		_spec.AddField(lead.FieldConvertedToContactID, field.TypeInt, value)
	}
	if _u.mutation.ConvertedToContactIDCleared() {
		_spec.ClearField(lead.FieldConvertedToContactID, field.TypeInt)
	}
	if value, ok := _u.mutation.ConvertedToOpportunityID(); ok {
		_spec.SetField(lead.FieldConvertedToOpportunityID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConvertedToOpportunityID(); ok {
		_spec.AddField(lead.FieldConvertedToOpportunityID, field.TypeInt, value)
	}
	if _u.mutation.ConvertedToOpportunityIDCleared() {
		_spec.ClearField(lead.FieldConvertedToOpportunityID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
