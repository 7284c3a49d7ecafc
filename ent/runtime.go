// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/salesdeskhq/salesdesk/ent/account"
	"github.com/salesdeskhq/salesdesk/ent/activity"
	"github.com/salesdeskhq/salesdesk/ent/auditlog"
	"github.com/salesdeskhq/salesdesk/ent/comment"
	"github.com/salesdeskhq/salesdesk/ent/contact"
	"github.com/salesdeskhq/salesdesk/ent/export"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/ent/opportunity"
	"github.com/salesdeskhq/salesdesk/ent/schema"
	"github.com/salesdeskhq/salesdesk/ent/supportcase"
	"github.com/salesdeskhq/salesdesk/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescName is the schema descriptor for name field.
	accountDescName := accountFields[0].Descriptor()
	// account.NameValidator is a validator for the "name" field. It is called by the builders before save.
	account.NameValidator = accountDescName.Validators[0].(func(string) error)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[6].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[7].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescSubject is the schema descriptor for subject field.
	activityDescSubject := activityFields[1].Descriptor()
	// activity.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	activity.SubjectValidator = activityDescSubject.Validators[0].(func(string) error)
	// activityDescEntityType is the schema descriptor for entity_type field.
	activityDescEntityType := activityFields[3].Descriptor()
	// activity.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	activity.EntityTypeValidator = activityDescEntityType.Validators[0].(func(string) error)
	// activityDescCompleted is the schema descriptor for completed field.
	activityDescCompleted := activityFields[7].Descriptor()
	// activity.DefaultCompleted holds the default value on creation for the completed field.
	activity.DefaultCompleted = activityDescCompleted.Default.(bool)
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[8].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	// activityDescUpdatedAt is the schema descriptor for updated_at field.
	activityDescUpdatedAt := activityFields[9].Descriptor()
	// activity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	activity.DefaultUpdatedAt = activityDescUpdatedAt.Default.(func() time.Time)
	// activity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	activity.UpdateDefaultUpdatedAt = activityDescUpdatedAt.UpdateDefault.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescEntityType is the schema descriptor for entity_type field.
	auditlogDescEntityType := auditlogFields[2].Descriptor()
	// auditlog.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	auditlog.EntityTypeValidator = auditlogDescEntityType.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[7].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescEntityType is the schema descriptor for entity_type field.
	commentDescEntityType := commentFields[0].Descriptor()
	// comment.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	comment.EntityTypeValidator = commentDescEntityType.Validators[0].(func(string) error)
	// commentDescContent is the schema descriptor for content field.
	commentDescContent := commentFields[3].Descriptor()
	// comment.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	comment.ContentValidator = commentDescContent.Validators[0].(func(string) error)
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentFields[4].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescFirstName is the schema descriptor for first_name field.
	contactDescFirstName := contactFields[0].Descriptor()
	// contact.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	contact.FirstNameValidator = contactDescFirstName.Validators[0].(func(string) error)
	// contactDescLastName is the schema descriptor for last_name field.
	contactDescLastName := contactFields[1].Descriptor()
	// contact.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	contact.LastNameValidator = contactDescLastName.Validators[0].(func(string) error)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[7].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[8].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	exportFields := schema.Export{}.Fields()
	_ = exportFields
	// exportDescRowCount is the schema descriptor for row_count field.
	exportDescRowCount := exportFields[4].Descriptor()
	// export.DefaultRowCount holds the default value on creation for the row_count field.
	export.DefaultRowCount = exportDescRowCount.Default.(int)
	// exportDescCreatedAt is the schema descriptor for created_at field.
	exportDescCreatedAt := exportFields[10].Descriptor()
	// export.DefaultCreatedAt holds the default value on creation for the created_at field.
	export.DefaultCreatedAt = exportDescCreatedAt.Default.(func() time.Time)
	// exportDescUpdatedAt is the schema descriptor for updated_at field.
	exportDescUpdatedAt := exportFields[11].Descriptor()
	// export.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	export.DefaultUpdatedAt = exportDescUpdatedAt.Default.(func() time.Time)
	// export.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	export.UpdateDefaultUpdatedAt = exportDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescFirstName is the schema descriptor for first_name field.
	leadDescFirstName := leadFields[0].Descriptor()
	// lead.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	lead.FirstNameValidator = leadDescFirstName.Validators[0].(func(string) error)
	// leadDescLastName is the schema descriptor for last_name field.
	leadDescLastName := leadFields[1].Descriptor()
	// lead.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	lead.LastNameValidator = leadDescLastName.Validators[0].(func(string) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[14].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[15].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	opportunityFields := schema.Opportunity{}.Fields()
	_ = opportunityFields
	// opportunityDescName is the schema descriptor for name field.
	opportunityDescName := opportunityFields[0].Descriptor()
	// opportunity.NameValidator is a validator for the "name" field. It is called by the builders before save.
	opportunity.NameValidator = opportunityDescName.Validators[0].(func(string) error)
	// opportunityDescAmount is the schema descriptor for amount field.
	opportunityDescAmount := opportunityFields[3].Descriptor()
	// opportunity.DefaultAmount holds the default value on creation for the amount field.
	opportunity.DefaultAmount = opportunityDescAmount.Default.(float64)
	// opportunity.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	opportunity.AmountValidator = opportunityDescAmount.Validators[0].(func(float64) error)
	// opportunityDescCreatedAt is the schema descriptor for created_at field.
	opportunityDescCreatedAt := opportunityFields[7].Descriptor()
	// opportunity.DefaultCreatedAt holds the default value on creation for the created_at field.
	opportunity.DefaultCreatedAt = opportunityDescCreatedAt.Default.(func() time.Time)
	// opportunityDescUpdatedAt is the schema descriptor for updated_at field.
	opportunityDescUpdatedAt := opportunityFields[8].Descriptor()
	// opportunity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	opportunity.DefaultUpdatedAt = opportunityDescUpdatedAt.Default.(func() time.Time)
	// opportunity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	opportunity.UpdateDefaultUpdatedAt = opportunityDescUpdatedAt.UpdateDefault.(func() time.Time)
	supportcaseFields := schema.SupportCase{}.Fields()
	_ = supportcaseFields
	// supportcaseDescSubject is the schema descriptor for subject field.
	supportcaseDescSubject := supportcaseFields[0].Descriptor()
	// supportcase.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	supportcase.SubjectValidator = supportcaseDescSubject.Validators[0].(func(string) error)
	// supportcaseDescCreatedAt is the schema descriptor for created_at field.
	supportcaseDescCreatedAt := supportcaseFields[7].Descriptor()
	// supportcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	supportcase.DefaultCreatedAt = supportcaseDescCreatedAt.Default.(func() time.Time)
	// supportcaseDescUpdatedAt is the schema descriptor for updated_at field.
	supportcaseDescUpdatedAt := supportcaseFields[8].Descriptor()
	// supportcase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supportcase.DefaultUpdatedAt = supportcaseDescUpdatedAt.Default.(func() time.Time)
	// supportcase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supportcase.UpdateDefaultUpdatedAt = supportcaseDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[4].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
