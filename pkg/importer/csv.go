package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
	"github.com/salesdeskhq/salesdesk/pkg/phone"
)

// Service handles bulk import of leads from CSV
type Service struct {
	db       *ent.Client
	auditSvc *audit.Service
	logger   logger.Logger
}

// NewService creates a new import service
func NewService(db *ent.Client, auditSvc *audit.Service, log logger.Logger) *Service {
	return &Service{
		db:       db,
		auditSvc: auditSvc,
		logger:   log,
	}
}

// Config holds configuration for a CSV import run
type Config struct {
	MaxRows      int    // Maximum rows to import (0 uses the default)
	BatchSize    int    // Records per transaction
	ValidateOnly bool   // Only validate, don't write
	PhoneRegion  string // Region hint for numbers without a country prefix
}

// DefaultConfig returns the default import configuration
func DefaultConfig() Config {
	return Config{
		MaxRows:     10000,
		BatchSize:   100,
		PhoneRegion: "US",
	}
}

// Result holds the outcome of a CSV import operation
type Result struct {
	TotalRows    int        `json:"total_rows"`
	SuccessCount int        `json:"success_count"`
	FailureCount int        `json:"failure_count"`
	Errors       []RowError `json:"errors,omitempty"`
	Duration     string     `json:"duration"`
}

// RowError describes a row that could not be imported
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// requiredColumns must be present in the CSV header.
var requiredColumns = []string{"last_name", "email"}

// rowData holds one parsed CSV row before it becomes a lead.
type rowData struct {
	firstName   string
	lastName    string
	email       string
	phone       string
	companyName string
	company     string
	title       string
	source      string
}

// titleCaser capitalizes imported names that arrive in all lower or upper case.
var titleCaser = cases.Title(language.English, cases.NoLower)

// ImportLeads reads leads from a CSV stream and creates them in batches.
// Invalid rows are skipped and reported, valid rows still import.
func (s *Service) ImportLeads(ctx context.Context, r io.Reader, ownerID int, cfg Config) (*Result, error) {
	start := time.Now()

	if cfg.MaxRows <= 0 {
		cfg.MaxRows = DefaultConfig().MaxRows
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}

	result := &Result{Errors: []RowError{}}

	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int, len(headers))
	for i, h := range headers {
		headerMap[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	rowNum := 1
	batch := make([]*ent.LeadCreate, 0, cfg.BatchSize)

	for {
		if rowNum > cfg.MaxRows {
			s.logger.Warn("import reached row limit", "max_rows", cfg.MaxRows)
			break
		}

		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{
				Row:     rowNum,
				Message: fmt.Sprintf("CSV read error: %v", err),
			})
			result.FailureCount++
			rowNum++
			continue
		}

		result.TotalRows++

		data := parseRow(row, headerMap)
		if rowErr := s.validateRow(data, cfg.PhoneRegion, rowNum); rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			result.FailureCount++
			rowNum++
			continue
		}

		if cfg.ValidateOnly {
			result.SuccessCount++
			rowNum++
			continue
		}

		batch = append(batch, s.buildCreate(data, ownerID, cfg.PhoneRegion))

		if len(batch) >= cfg.BatchSize {
			s.saveBatch(ctx, batch, result, rowNum-len(batch)+1)
			batch = make([]*ent.LeadCreate, 0, cfg.BatchSize)
		}

		rowNum++
	}

	if len(batch) > 0 && !cfg.ValidateOnly {
		s.saveBatch(ctx, batch, result, rowNum-len(batch))
	}

	result.Duration = time.Since(start).String()

	if !cfg.ValidateOnly && result.SuccessCount > 0 {
		s.auditSvc.LogImport(ctx, ownerID, result.SuccessCount, map[string]interface{}{
			"total_rows":    result.TotalRows,
			"failure_count": result.FailureCount,
		})
	}

	s.logger.Info("CSV import completed",
		"success", result.SuccessCount,
		"failures", result.FailureCount,
		"duration", result.Duration)

	return result, nil
}

// saveBatch writes one batch of leads inside a transaction. A failed batch
// marks all of its rows as failures and moves on.
func (s *Service) saveBatch(ctx context.Context, batch []*ent.LeadCreate, result *Result, startRow int) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		s.failBatch(result, len(batch), startRow, fmt.Sprintf("failed to start transaction: %v", err))
		return
	}

	for i, create := range batch {
		if _, err := create.Save(ctx); err != nil {
			tx.Rollback()
			s.failBatch(result, len(batch)-i, startRow+i, fmt.Sprintf("failed to create lead: %v", err))
			return
		}
		result.SuccessCount++
	}

	if err := tx.Commit(); err != nil {
		result.SuccessCount -= len(batch)
		s.failBatch(result, len(batch), startRow, fmt.Sprintf("failed to commit batch: %v", err))
	}
}

func (s *Service) failBatch(result *Result, count, startRow int, message string) {
	for i := 0; i < count; i++ {
		result.Errors = append(result.Errors, RowError{
			Row:     startRow + i,
			Message: message,
		})
		result.FailureCount++
	}
}

func (s *Service) buildCreate(data *rowData, ownerID int, region string) *ent.LeadCreate {
	create := s.db.Lead.Create().
		SetFirstName(normalizeName(data.firstName)).
		SetLastName(normalizeName(data.lastName)).
		SetEmail(strings.ToLower(data.email)).
		SetOwnerID(ownerID).
		SetSource(lead.SourceImport)

	if data.phone != "" {
		if normalized, err := phone.Normalize(data.phone, region); err == nil {
			create.SetPhone(normalized)
		} else {
			create.SetPhone(data.phone)
		}
	}
	if data.companyName != "" {
		create.SetCompanyName(data.companyName)
	}
	// Legacy exports carry "company" instead of "company_name"; keep it on
	// the legacy field so account naming can fall back to it.
	if data.company != "" {
		create.SetCompany(data.company)
	}
	if data.title != "" {
		create.SetTitle(data.title)
	}
	if data.source != "" {
		// An explicit source column overrides the import default.
		switch lead.Source(data.source) {
		case lead.SourceWeb, lead.SourceReferral, lead.SourceManual, lead.SourceOther:
			create.SetSource(lead.Source(data.source))
		}
	}

	return create
}

func parseRow(row []string, headerMap map[string]int) *rowData {
	getField := func(name string) string {
		if idx, ok := headerMap[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	return &rowData{
		firstName:   getField("first_name"),
		lastName:    getField("last_name"),
		email:       getField("email"),
		phone:       getField("phone"),
		companyName: getField("company_name"),
		company:     getField("company"),
		title:       getField("title"),
		source:      strings.ToLower(getField("source")),
	}
}

func (s *Service) validateRow(data *rowData, region string, rowNum int) *RowError {
	if data.lastName == "" {
		return &RowError{Row: rowNum, Field: "last_name", Message: "last name is required"}
	}
	if data.email == "" {
		return &RowError{Row: rowNum, Field: "email", Message: "email is required"}
	}
	if !strings.Contains(data.email, "@") {
		return &RowError{Row: rowNum, Field: "email", Value: data.email, Message: "invalid email address"}
	}
	if data.phone != "" && !phone.IsValid(data.phone, region) {
		return &RowError{Row: rowNum, Field: "phone", Value: data.phone, Message: "invalid phone number"}
	}
	return nil
}

// normalizeName title-cases names that arrive fully lower or upper cased,
// leaving mixed-case names like "McDonald" alone.
func normalizeName(name string) string {
	if name == "" {
		return name
	}
	if name == strings.ToLower(name) || name == strings.ToUpper(name) {
		return titleCaser.String(strings.ToLower(name))
	}
	return name
}
