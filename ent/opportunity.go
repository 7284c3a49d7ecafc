// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salesdeskhq/salesdesk/ent/account"
	"github.com/salesdeskhq/salesdesk/ent/contact"
	"github.com/salesdeskhq/salesdesk/ent/opportunity"
)

// Opportunity is the model entity for the Opportunity schema.
type Opportunity struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Deal name
	Name string `json:"name,omitempty"`
	// Owning account; an opportunity always belongs to one
	AccountID int `json:"account_id,omitempty"`
	// Primary contact, null when not known
	ContactID int `json:"contact_id,omitempty"`
	// Expected deal value
	Amount float64 `json:"amount,omitempty"`
	// Pipeline stage
	Stage opportunity.Stage `json:"stage,omitempty"`
	// Expected or actual close date
	CloseDate *time.Time `json:"close_date,omitempty"`
	// User who owns this opportunity
	OwnerID int `json:"owner_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OpportunityQuery when eager-loading is set.
	Edges        OpportunityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OpportunityEdges holds the relations/edges for other nodes in the graph.
type OpportunityEdges struct {
	// Account holds the value of the account edge.
	Account *Account `json:"account,omitempty"`
	// Contact holds the value of the contact edge.
	Contact *Contact `json:"contact,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OpportunityEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// ContactOrErr returns the Contact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OpportunityEdges) ContactOrErr() (*Contact, error) {
	if e.Contact != nil {
		return e.Contact, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: contact.Label}
	}
	return nil, &NotLoadedError{edge: "contact"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Opportunity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case opportunity.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case opportunity.FieldID, opportunity.FieldAccountID, opportunity.FieldContactID, opportunity.FieldOwnerID:
			values[i] = new(sql.NullInt64)
		case opportunity.FieldName, opportunity.FieldStage:
			values[i] = new(sql.NullString)
		case opportunity.FieldCloseDate, opportunity.FieldCreatedAt, opportunity.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Opportunity fields.
func (_m *Opportunity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case opportunity.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case opportunity.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case opportunity.FieldAccountID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = int(value.Int64)
			}
		case opportunity.FieldContactID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field contact_id", values[i])
			} else if value.Valid {
				_m.ContactID = int(value.Int64)
			}
		case opportunity.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case opportunity.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = opportunity.Stage(value.String)
			}
		case opportunity.FieldCloseDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field close_date", values[i])
			} else if value.Valid {
				_m.CloseDate = new(time.Time)
				*_m.CloseDate = value.Time
			}
		case opportunity.FieldOwnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = int(value.Int64)
			}
		case opportunity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case opportunity.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Opportunity.
// This includes values selected through modifiers, order, etc.
func (_m *Opportunity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the Opportunity entity.
func (_m *Opportunity) QueryAccount() *AccountQuery {
	return NewOpportunityClient(_m.config).QueryAccount(_m)
}

// QueryContact queries the "contact" edge of the Opportunity entity.
func (_m *Opportunity) QueryContact() *ContactQuery {
	return NewOpportunityClient(_m.config).QueryContact(_m)
}

// Update returns a builder for updating this Opportunity.
// Note that you need to call Opportunity.Unwrap() before calling this method if this Opportunity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Opportunity) Update() *OpportunityUpdateOne {
	return NewOpportunityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Opportunity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Opportunity) Unwrap() *Opportunity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Opportunity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Opportunity) String() string {
	var builder strings.Builder
	builder.WriteString("Opportunity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountID))
	builder.WriteString(", ")
	builder.WriteString("contact_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContactID))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	if v := _m.CloseDate; v != nil {
		builder.WriteString("close_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Opportunities is a parsable slice of Opportunity.
type Opportunities []*Opportunity
