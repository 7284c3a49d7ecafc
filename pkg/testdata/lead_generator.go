package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/ent/opportunity"
)

// LeadGeneratorConfig configures lead generation parameters
type LeadGeneratorConfig struct {
	Count        int
	OwnerID      int
	Source       string  // empty picks a random source per lead
	PhoneChance  float64 // 0.0-1.0 (probability of having a phone)
	TitleChance  float64
	EmailDomain  string // empty uses a fake company domain
	StatusWeights map[string]int
}

// DefaultLeadConfig returns a realistic default distribution.
func DefaultLeadConfig(ownerID, count int) LeadGeneratorConfig {
	return LeadGeneratorConfig{
		Count:       count,
		OwnerID:     ownerID,
		PhoneChance: 0.7,
		TitleChance: 0.8,
		StatusWeights: map[string]int{
			"new":         40,
			"working":     25,
			"nurturing":   20,
			"qualified":   10,
			"unqualified": 5,
		},
	}
}

var sources = []lead.Source{
	lead.SourceWeb,
	lead.SourceReferral,
	lead.SourceImport,
	lead.SourceManual,
	lead.SourceOther,
}

var titles = []string{
	"CEO", "CTO", "VP Sales", "VP Marketing", "Head of Operations",
	"Sales Director", "Marketing Manager", "Procurement Lead",
	"IT Manager", "Office Manager",
}

// GenerateLeads inserts Count fake leads owned by OwnerID.
func GenerateLeads(ctx context.Context, client *ent.Client, cfg LeadGeneratorConfig) ([]*ent.Lead, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := make([]*ent.Lead, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		company := gofakeit.Company()

		builder := client.Lead.Create().
			SetFirstName(first).
			SetLastName(last).
			SetEmail(fakeEmail(first, last, company, cfg.EmailDomain)).
			SetCompanyName(company).
			SetOwnerID(cfg.OwnerID).
			SetSource(pickSource(rng, cfg.Source)).
			SetStatus(pickStatus(rng, cfg.StatusWeights))

		if rng.Float64() < cfg.PhoneChance {
			builder.SetPhone(gofakeit.Phone())
		}
		if rng.Float64() < cfg.TitleChance {
			builder.SetTitle(titles[rng.Intn(len(titles))])
		}

		l, err := builder.Save(ctx)
		if err != nil {
			return created, fmt.Errorf("failed to create lead %d: %w", i, err)
		}
		created = append(created, l)
	}

	return created, nil
}

// GenerateAccounts inserts fake accounts with linked contacts.
func GenerateAccounts(ctx context.Context, client *ent.Client, ownerID, count, contactsPer int) ([]*ent.Account, error) {
	created := make([]*ent.Account, 0, count)

	for i := 0; i < count; i++ {
		a, err := client.Account.Create().
			SetName(gofakeit.Company()).
			SetIndustry(gofakeit.BuzzWord()).
			SetWebsite("https://" + gofakeit.DomainName()).
			SetOwnerID(ownerID).
			Save(ctx)
		if err != nil {
			return created, fmt.Errorf("failed to create account %d: %w", i, err)
		}

		for j := 0; j < contactsPer; j++ {
			first := gofakeit.FirstName()
			last := gofakeit.LastName()
			_, err := client.Contact.Create().
				SetFirstName(first).
				SetLastName(last).
				SetEmail(fakeEmail(first, last, a.Name, "")).
				SetAccountID(a.ID).
				SetOwnerID(ownerID).
				Save(ctx)
			if err != nil {
				return created, fmt.Errorf("failed to create contact for account %d: %w", a.ID, err)
			}
		}

		created = append(created, a)
	}

	return created, nil
}

// GenerateOpportunities inserts fake opportunities spread across stages.
func GenerateOpportunities(ctx context.Context, client *ent.Client, ownerID int, accounts []*ent.Account, perAccount int) (int, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	stages := []opportunity.Stage{
		opportunity.StageNew,
		opportunity.StageQualification,
		opportunity.StageProposal,
		opportunity.StageNegotiation,
		opportunity.StageClosedWon,
		opportunity.StageClosedLost,
	}

	total := 0
	for _, a := range accounts {
		for i := 0; i < perAccount; i++ {
			_, err := client.Opportunity.Create().
				SetName(fmt.Sprintf("%s - %s", a.Name, gofakeit.ProductName())).
				SetAmount(float64(rng.Intn(95)+5) * 1000).
				SetStage(stages[rng.Intn(len(stages))]).
				SetAccountID(a.ID).
				SetOwnerID(ownerID).
				Save(ctx)
			if err != nil {
				return total, fmt.Errorf("failed to create opportunity for account %d: %w", a.ID, err)
			}
			total++
		}
	}

	return total, nil
}

func fakeEmail(first, last, company, domain string) string {
	if domain == "" {
		domain = strings.ToLower(strings.ReplaceAll(strings.Fields(company)[0], ",", "")) + ".example.com"
	}
	return strings.ToLower(fmt.Sprintf("%s.%s@%s", first, last, domain))
}

func pickSource(rng *rand.Rand, fixed string) lead.Source {
	if fixed != "" {
		return lead.Source(fixed)
	}
	return sources[rng.Intn(len(sources))]
}

func pickStatus(rng *rand.Rand, weights map[string]int) lead.Status {
	if len(weights) == 0 {
		return lead.StatusNew
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	n := rng.Intn(total)
	for status, w := range weights {
		if n < w {
			return lead.Status(status)
		}
		n -= w
	}
	return lead.StatusNew
}
