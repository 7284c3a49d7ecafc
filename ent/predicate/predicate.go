// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// Export is the predicate function for export builders.
type Export func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Opportunity is the predicate function for opportunity builders.
type Opportunity func(*sql.Selector)

// SupportCase is the predicate function for supportcase builders.
type SupportCase func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
