package conversion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/account"
	"github.com/salesdeskhq/salesdesk/ent/auditlog"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
)

// LeadCacheInvalidator clears cached lead list pages after a conversion
// commits. Implemented by pkg/leads.
type LeadCacheInvalidator interface {
	InvalidateListCache(ctx context.Context)
}

// Service turns a qualified Lead into a linked Account/Contact/Opportunity
// set. All writes happen inside one transaction; the final lead update is
// guarded by converted_at IS NULL so concurrent conversions of the same
// lead cannot both succeed.
type Service struct {
	db        *ent.Client
	notifier  domain.Notifier
	leadCache LeadCacheInvalidator
	logger    logger.Logger
}

// NewService creates a new conversion service. leadCache may be nil when no
// list caching is in play (tests).
func NewService(db *ent.Client, notifier domain.Notifier, leadCache LeadCacheInvalidator, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		db:        db,
		notifier:  notifier,
		leadCache: leadCache,
		logger:    log,
	}
}

// Options controls which downstream records a conversion creates.
type Options struct {
	CreateAccount     bool    `json:"create_account"`
	CreateContact     bool    `json:"create_contact"`
	CreateOpportunity bool    `json:"create_opportunity"`
	OpportunityName   string  `json:"opportunity_name,omitempty" validate:"max=255"`
	OpportunityAmount float64 `json:"opportunity_amount,omitempty" validate:"gte=0"`
}

// DefaultOptions is the policy applied when the caller sends no options:
// create the account and contact, skip the opportunity.
func DefaultOptions() Options {
	return Options{
		CreateAccount: true,
		CreateContact: true,
	}
}

// Result carries the ids produced by a successful conversion. A nil id
// means the corresponding record was not requested or not created.
type Result struct {
	LeadID        int       `json:"lead_id"`
	AccountID     *int      `json:"account_id,omitempty"`
	ContactID     *int      `json:"contact_id,omitempty"`
	OpportunityID *int      `json:"opportunity_id,omitempty"`
	ConvertedAt   time.Time `json:"converted_at"`
}

// ConvertLead converts one lead on behalf of userID.
//
// Write order follows referential dependency: account, then contact (linked
// to the account), then opportunity (requires an account), then the lead
// update and the audit entry. An opportunity is never created without an
// account. The email notification fires after commit and cannot fail the
// conversion.
func (s *Service) ConvertLead(ctx context.Context, userID, leadID int, opts Options) (*Result, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	l, err := tx.Lead.Query().
		Where(lead.ID(leadID)).
		Only(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	if l.ConvertedAt != nil {
		tx.Rollback()
		return nil, domain.NewConflictError("lead is already converted")
	}

	accountName := accountNameFor(l)

	var accountID, contactID, opportunityID *int
	var opportunityName string

	if opts.CreateAccount {
		acc, err := tx.Account.Create().
			SetName(accountName).
			SetType(account.TypeCustomer).
			SetOwnerID(userID).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
		accountID = &acc.ID
	}

	if opts.CreateContact {
		create := tx.Contact.Create().
			SetFirstName(l.FirstName).
			SetLastName(l.LastName).
			SetOwnerID(userID)
		if l.Email != "" {
			create = create.SetEmail(l.Email)
		}
		if l.Phone != "" {
			create = create.SetPhone(l.Phone)
		}
		if accountID != nil {
			create = create.SetAccountID(*accountID)
		}

		c, err := create.Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create contact: %w", err)
		}
		contactID = &c.ID
	}

	// An opportunity without an owning account is disallowed; the request
	// is silently narrowed rather than rejected, matching the permissive
	// contract of the convert endpoint.
	if opts.CreateOpportunity && accountID != nil {
		opportunityName = opts.OpportunityName
		if opportunityName == "" {
			opportunityName = fmt.Sprintf("%s - New Opportunity", accountName)
		}

		create := tx.Opportunity.Create().
			SetName(opportunityName).
			SetAccountID(*accountID).
			SetAmount(opts.OpportunityAmount).
			SetOwnerID(userID)
		if contactID != nil {
			create = create.SetContactID(*contactID)
		}

		opp, err := create.Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create opportunity: %w", err)
		}
		opportunityID = &opp.ID
	}

	now := time.Now()

	// Conditional update: converted_at IS NULL is the concurrency guard.
	// If another transaction converted this lead first, zero rows match
	// and the whole conversion aborts.
	n, err := tx.Lead.Update().
		Where(
			lead.IDEQ(leadID),
			lead.ConvertedAtIsNil(),
		).
		SetStatus(lead.StatusQualified).
		SetConvertedAt(now).
		SetNillableConvertedToAccountID(accountID).
		SetNillableConvertedToContactID(contactID).
		SetNillableConvertedToOpportunityID(opportunityID).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	if n == 0 {
		tx.Rollback()
		return nil, domain.NewConflictError("lead was converted by another request")
	}

	_, err = tx.AuditLog.Create().
		SetUserID(userID).
		SetAction(auditlog.ActionLeadConvert).
		SetEntityType("lead").
		SetEntityID(leadID).
		SetDescription(fmt.Sprintf("Converted lead %s %s", l.FirstName, l.LastName)).
		SetMetadata(map[string]interface{}{
			"account_id":     idOrNil(accountID),
			"contact_id":     idOrNil(contactID),
			"opportunity_id": idOrNil(opportunityID),
		}).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to write audit log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	// The lead changed status outside pkg/leads, so cached list pages
	// would serve the pre-conversion row until their TTL.
	if s.leadCache != nil {
		s.leadCache.InvalidateListCache(ctx)
	}

	if opportunityID != nil && s.notifier != nil {
		s.notifyOpportunityCreated(userID, opportunityName, opts.OpportunityAmount)
	}

	return &Result{
		LeadID:        leadID,
		AccountID:     accountID,
		ContactID:     contactID,
		OpportunityID: opportunityID,
		ConvertedAt:   now,
	}, nil
}

// notifyOpportunityCreated emails the acting user about the new opportunity.
// Fire-and-forget: a delivery failure is logged and never propagated.
func (s *Service) notifyOpportunityCreated(userID int, opportunityName string, amount float64) {
	u, err := s.db.User.Get(context.Background(), userID)
	if err != nil {
		s.logger.Warn("skipping opportunity notification, user lookup failed",
			"user_id", userID, "error", err)
		return
	}

	go func() {
		if err := s.notifier.SendOpportunityCreated(u.Email, u.Name, opportunityName, amount); err != nil {
			s.logger.Warn("opportunity notification failed",
				"user_id", userID, "opportunity", opportunityName, "error", err)
		}
	}()
}

// accountNameFor derives the account name from the lead: company_name,
// then the legacy company field, then the lead's full name.
func accountNameFor(l *ent.Lead) string {
	if l.CompanyName != "" {
		return l.CompanyName
	}
	if l.Company != "" {
		return l.Company
	}
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

func idOrNil(id *int) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
