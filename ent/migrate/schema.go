// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"prospect", "customer", "partner", "vendor", "other"}, Default: "prospect"},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "owner_id", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_name",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
			{
				Name:    "account_owner_id",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[6]},
			},
			{
				Name:    "account_type",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[2]},
			},
		},
	}
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"call", "meeting", "email", "task", "note"}},
		{Name: "subject", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activity_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[4], ActivitiesColumns[5]},
			},
			{
				Name:    "activity_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[6]},
			},
			{
				Name:    "activity_due_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[7]},
			},
			{
				Name:    "activity_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[9]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"create", "update", "delete", "lead_convert", "status_change", "login", "logout", "export", "import"}},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "critical"}, Default: "info"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[8]},
			},
		},
	}
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "comment_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[1], CommentsColumns[2]},
			},
			{
				Name:    "comment_user_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[3]},
			},
			{
				Name:    "comment_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[5]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "owner_id", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeInt, Nullable: true},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contacts_accounts_contacts",
				Columns:    []*schema.Column{ContactsColumns[9]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contact_account_id",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[9]},
			},
			{
				Name:    "contact_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[6]},
			},
			{
				Name:    "contact_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[3]},
			},
		},
	}
	// ExportsColumns holds the columns for the "exports" table.
	ExportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "format", Type: field.TypeEnum, Enums: []string{"csv", "excel"}},
		{Name: "entity", Type: field.TypeEnum, Enums: []string{"leads", "accounts", "contacts", "opportunities"}},
		{Name: "filters", Type: field.TypeJSON, Nullable: true},
		{Name: "row_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "ready", "failed"}, Default: "pending"},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "s3_key", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExportsTable holds the schema information for the "exports" table.
	ExportsTable = &schema.Table{
		Name:       "exports",
		Columns:    ExportsColumns,
		PrimaryKey: []*schema.Column{ExportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "export_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExportsColumns[1]},
			},
			{
				Name:    "export_status",
				Unique:  false,
				Columns: []*schema.Column{ExportsColumns[6]},
			},
			{
				Name:    "export_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ExportsColumns[10]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"web", "referral", "import", "manual", "other"}, Default: "manual"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "working", "nurturing", "qualified", "unqualified"}, Default: "new"},
		{Name: "owner_id", Type: field.TypeInt},
		{Name: "converted_at", Type: field.TypeTime, Nullable: true},
		{Name: "converted_to_account_id", Type: field.TypeInt, Nullable: true},
		{Name: "converted_to_contact_id", Type: field.TypeInt, Nullable: true},
		{Name: "converted_to_opportunity_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9]},
			},
			{
				Name:    "lead_owner_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[10]},
			},
			{
				Name:    "lead_email",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[3]},
			},
			{
				Name:    "lead_status_owner_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9], LeadsColumns[10]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[15]},
			},
		},
	}
	// OpportunitiesColumns holds the columns for the "opportunities" table.
	OpportunitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, Default: 0},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"new", "qualification", "proposal", "negotiation", "closed_won", "closed_lost"}, Default: "new"},
		{Name: "close_date", Type: field.TypeTime, Nullable: true},
		{Name: "owner_id", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeInt},
		{Name: "contact_id", Type: field.TypeInt, Nullable: true},
	}
	// OpportunitiesTable holds the schema information for the "opportunities" table.
	OpportunitiesTable = &schema.Table{
		Name:       "opportunities",
		Columns:    OpportunitiesColumns,
		PrimaryKey: []*schema.Column{OpportunitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "opportunities_accounts_opportunities",
				Columns:    []*schema.Column{OpportunitiesColumns[8]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "opportunities_contacts_opportunities",
				Columns:    []*schema.Column{OpportunitiesColumns[9]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "opportunity_stage",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[3]},
			},
			{
				Name:    "opportunity_account_id",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[8]},
			},
			{
				Name:    "opportunity_owner_id",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[5]},
			},
			{
				Name:    "opportunity_stage_owner_id",
				Unique:  false,
				Columns: []*schema.Column{OpportunitiesColumns[3], OpportunitiesColumns[5]},
			},
		},
	}
	// SupportCasesColumns holds the columns for the "support_cases" table.
	SupportCasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "pending", "resolved", "closed"}, Default: "open"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "urgent"}, Default: "medium"},
		{Name: "account_id", Type: field.TypeInt, Nullable: true},
		{Name: "contact_id", Type: field.TypeInt, Nullable: true},
		{Name: "owner_id", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SupportCasesTable holds the schema information for the "support_cases" table.
	SupportCasesTable = &schema.Table{
		Name:       "support_cases",
		Columns:    SupportCasesColumns,
		PrimaryKey: []*schema.Column{SupportCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "supportcase_status",
				Unique:  false,
				Columns: []*schema.Column{SupportCasesColumns[3]},
			},
			{
				Name:    "supportcase_account_id",
				Unique:  false,
				Columns: []*schema.Column{SupportCasesColumns[5]},
			},
			{
				Name:    "supportcase_owner_id",
				Unique:  false,
				Columns: []*schema.Column{SupportCasesColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "manager", "rep", "read_only"}, Default: "rep"},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		ActivitiesTable,
		AuditLogsTable,
		CommentsTable,
		ContactsTable,
		ExportsTable,
		LeadsTable,
		OpportunitiesTable,
		SupportCasesTable,
		UsersTable,
	}
)

func init() {
	ContactsTable.ForeignKeys[0].RefTable = AccountsTable
	OpportunitiesTable.ForeignKeys[0].RefTable = AccountsTable
	OpportunitiesTable.ForeignKeys[1].RefTable = ContactsTable
}
