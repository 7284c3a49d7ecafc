// Code generated by ent, DO NOT EDIT.

package opportunity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/salesdeskhq/salesdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldName, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldAccountID, v))
}

// ContactID applies equality check predicate on the "contact_id" field. It's identical to ContactIDEQ.
func ContactID(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldContactID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldAmount, v))
}

// CloseDate applies equality check predicate on the "close_date" field. It's identical to CloseDateEQ.
func CloseDate(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldCloseDate, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldOwnerID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldContainsFold(FieldName, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldAccountID, vs...))
}

// ContactIDEQ applies the EQ predicate on the "contact_id" field.
func ContactIDEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldContactID, v))
}

// ContactIDNEQ applies the NEQ predicate on the "contact_id" field.
func ContactIDNEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldContactID, v))
}

// ContactIDIn applies the In predicate on the "contact_id" field.
func ContactIDIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldContactID, vs...))
}

// ContactIDNotIn applies the NotIn predicate on the "contact_id" field.
func ContactIDNotIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldContactID, vs...))
}

// ContactIDIsNil applies the IsNil predicate on the "contact_id" field.
func ContactIDIsNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIsNull(FieldContactID))
}

// ContactIDNotNil applies the NotNil predicate on the "contact_id" field.
func ContactIDNotNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotNull(FieldContactID))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldAmount, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldStage, vs...))
}

// CloseDateEQ applies the EQ predicate on the "close_date" field.
func CloseDateEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldCloseDate, v))
}

// CloseDateNEQ applies the NEQ predicate on the "close_date" field.
func CloseDateNEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldCloseDate, v))
}

// CloseDateIn applies the In predicate on the "close_date" field.
func CloseDateIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldCloseDate, vs...))
}

// CloseDateNotIn applies the NotIn predicate on the "close_date" field.
func CloseDateNotIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldCloseDate, vs...))
}

// CloseDateGT applies the GT predicate on the "close_date" field.
func CloseDateGT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldCloseDate, v))
}

// CloseDateGTE applies the GTE predicate on the "close_date" field.
func CloseDateGTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldCloseDate, v))
}

// CloseDateLT applies the LT predicate on the "close_date" field.
func CloseDateLT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldCloseDate, v))
}

// CloseDateLTE applies the LTE predicate on the "close_date" field.
func CloseDateLTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldCloseDate, v))
}

// CloseDateIsNil applies the IsNil predicate on the "close_date" field.
func CloseDateIsNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIsNull(FieldCloseDate))
}

// CloseDateNotNil applies the NotNil predicate on the "close_date" field.
func CloseDateNotNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotNull(FieldCloseDate))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldOwnerID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.Opportunity {
	return predicate.Opportunity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.Opportunity {
	return predicate.Opportunity(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContact applies the HasEdge predicate on the "contact" edge.
func HasContact() predicate.Opportunity {
	return predicate.Opportunity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContactTable, ContactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactWith applies the HasEdge predicate on the "contact" edge with a given conditions (other predicates).
func HasContactWith(preds ...predicate.Contact) predicate.Opportunity {
	return predicate.Opportunity(func(s *sql.Selector) {
		step := newContactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Opportunity) predicate.Opportunity {
	return predicate.Opportunity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Opportunity) predicate.Opportunity {
	return predicate.Opportunity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Opportunity) predicate.Opportunity {
	return predicate.Opportunity(sql.NotPredicates(p))
}
