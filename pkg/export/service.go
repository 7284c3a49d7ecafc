package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/account"
	"github.com/salesdeskhq/salesdesk/ent/contact"
	entexport "github.com/salesdeskhq/salesdesk/ent/export"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/ent/opportunity"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

const (
	defaultMaxRows = 1000
	hardMaxRows    = 10000
	fileTTL        = 24 * time.Hour
)

// Service handles export business logic
type Service struct {
	db          *ent.Client
	auditSvc    *audit.Service
	uploader    *S3Uploader
	logger      logger.Logger
	storagePath string
}

// NewService creates a new export service. uploader may be nil, in which
// case files stay on local disk.
func NewService(db *ent.Client, auditSvc *audit.Service, uploader *S3Uploader, log logger.Logger, storagePath string) *Service {
	os.MkdirAll(storagePath, 0755)

	return &Service{
		db:          db,
		auditSvc:    auditSvc,
		uploader:    uploader,
		logger:      log,
		storagePath: storagePath,
	}
}

// Request describes an export job
type Request struct {
	Entity  string            `json:"entity" validate:"required,oneof=leads accounts contacts opportunities"`
	Format  string            `json:"format" validate:"required,oneof=csv excel"`
	Filters map[string]string `json:"filters,omitempty"`
	MaxRows int               `json:"max_rows,omitempty"`
}

// Response is returned when an export is created or queried
type Response struct {
	ID        int    `json:"id"`
	Entity    string `json:"entity"`
	Format    string `json:"format"`
	Status    string `json:"status"`
	RowCount  int    `json:"row_count"`
	FileURL   string `json:"file_url,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ListResponse wraps paginated exports
type ListResponse struct {
	Data       []Response        `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// Create registers an export job and processes it in the background.
func (s *Service) Create(ctx context.Context, userID int, req Request) (*Response, error) {
	if req.MaxRows <= 0 {
		req.MaxRows = defaultMaxRows
	}
	if req.MaxRows > hardMaxRows {
		req.MaxRows = hardMaxRows
	}

	filtersMap := make(map[string]interface{}, len(req.Filters))
	for k, v := range req.Filters {
		filtersMap[k] = v
	}

	exp, err := s.db.Export.Create().
		SetUserID(userID).
		SetEntity(entexport.Entity(req.Entity)).
		SetFormat(entexport.Format(req.Format)).
		SetFilters(filtersMap).
		SetStatus(entexport.StatusPending).
		SetExpiresAt(time.Now().Add(fileTTL)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create export: %w", err)
	}

	s.auditSvc.LogExportCreate(ctx, userID, exp.ID, map[string]interface{}{
		"entity": req.Entity,
		"format": req.Format,
	})

	go s.process(exp.ID, req)

	return toResponse(exp), nil
}

// process runs the export in the background
func (s *Service) process(exportID int, req Request) {
	ctx := context.Background()

	s.db.Export.UpdateOneID(exportID).
		SetStatus(entexport.StatusProcessing).
		SaveX(ctx)

	header, rows, err := s.fetchRows(ctx, req)
	if err != nil {
		s.fail(ctx, exportID, err)
		return
	}

	timestamp := time.Now().Format("20060102-150405")
	ext := "csv"
	if req.Format == "excel" {
		ext = "xlsx"
	}
	filename := fmt.Sprintf("%s-export-%d-%s.%s", req.Entity, exportID, timestamp, ext)
	path := filepath.Join(s.storagePath, filename)

	if req.Format == "csv" {
		err = writeCSV(path, header, rows)
	} else {
		err = writeExcel(path, req.Entity, header, rows)
	}
	if err != nil {
		s.fail(ctx, exportID, err)
		return
	}

	update := s.db.Export.UpdateOneID(exportID).
		SetStatus(entexport.StatusReady).
		SetRowCount(len(rows)).
		SetFilePath(path)

	if s.uploader != nil {
		key := fmt.Sprintf("exports/%s", filename)
		if upErr := s.uploader.Upload(ctx, path, key); upErr != nil {
			s.logger.Warn("export S3 upload failed, keeping local copy", "export_id", exportID, "error", upErr)
		} else {
			update = update.SetS3Key(key)
		}
	}

	update.SaveX(ctx)
	s.logger.Info("export ready", "export_id", exportID, "entity", req.Entity, "rows", len(rows))
}

func (s *Service) fail(ctx context.Context, exportID int, err error) {
	s.logger.Error("export failed", "export_id", exportID, "error", err)
	s.db.Export.UpdateOneID(exportID).
		SetStatus(entexport.StatusFailed).
		SetErrorMessage(err.Error()).
		SaveX(ctx)
}

// fetchRows loads the records to export as a header plus string rows.
func (s *Service) fetchRows(ctx context.Context, req Request) ([]string, [][]string, error) {
	switch req.Entity {
	case "leads":
		return s.fetchLeads(ctx, req)
	case "accounts":
		return s.fetchAccounts(ctx, req)
	case "contacts":
		return s.fetchContacts(ctx, req)
	case "opportunities":
		return s.fetchOpportunities(ctx, req)
	}
	return nil, nil, fmt.Errorf("unsupported entity: %s", req.Entity)
}

func (s *Service) fetchLeads(ctx context.Context, req Request) ([]string, [][]string, error) {
	query := s.db.Lead.Query()
	if v := req.Filters["status"]; v != "" {
		query = query.Where(lead.StatusEQ(lead.Status(v)))
	}
	if v := req.Filters["source"]; v != "" {
		query = query.Where(lead.SourceEQ(lead.Source(v)))
	}
	if v := req.Filters["owner_id"]; v != "" {
		ownerID, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid owner_id filter: %w", err)
		}
		query = query.Where(lead.OwnerIDEQ(ownerID))
	}

	items, err := query.
		Order(ent.Desc(lead.FieldCreatedAt)).
		Limit(req.MaxRows).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch leads: %w", err)
	}

	header := []string{"ID", "First Name", "Last Name", "Email", "Phone", "Company", "Title", "Source", "Status", "Owner ID", "Created At"}
	rows := make([][]string, len(items))
	for i, l := range items {
		rows[i] = []string{
			strconv.Itoa(l.ID),
			l.FirstName,
			l.LastName,
			l.Email,
			l.Phone,
			l.CompanyName,
			l.Title,
			string(l.Source),
			string(l.Status),
			strconv.Itoa(l.OwnerID),
			l.CreatedAt.Format(time.RFC3339),
		}
	}
	return header, rows, nil
}

func (s *Service) fetchAccounts(ctx context.Context, req Request) ([]string, [][]string, error) {
	query := s.db.Account.Query()
	if v := req.Filters["type"]; v != "" {
		query = query.Where(account.TypeEQ(account.Type(v)))
	}
	if v := req.Filters["industry"]; v != "" {
		query = query.Where(account.IndustryEQ(v))
	}

	items, err := query.
		Order(ent.Desc(account.FieldCreatedAt)).
		Limit(req.MaxRows).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	header := []string{"ID", "Name", "Type", "Industry", "Website", "Phone", "Owner ID", "Created At"}
	rows := make([][]string, len(items))
	for i, a := range items {
		rows[i] = []string{
			strconv.Itoa(a.ID),
			a.Name,
			string(a.Type),
			a.Industry,
			a.Website,
			a.Phone,
			strconv.Itoa(a.OwnerID),
			a.CreatedAt.Format(time.RFC3339),
		}
	}
	return header, rows, nil
}

func (s *Service) fetchContacts(ctx context.Context, req Request) ([]string, [][]string, error) {
	query := s.db.Contact.Query()
	if v := req.Filters["account_id"]; v != "" {
		accountID, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid account_id filter: %w", err)
		}
		query = query.Where(contact.AccountIDEQ(accountID))
	}

	items, err := query.
		Order(ent.Desc(contact.FieldCreatedAt)).
		Limit(req.MaxRows).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch contacts: %w", err)
	}

	header := []string{"ID", "First Name", "Last Name", "Email", "Phone", "Title", "Account ID", "Created At"}
	rows := make([][]string, len(items))
	for i, c := range items {
		accountID := ""
		if c.AccountID != 0 {
			accountID = strconv.Itoa(c.AccountID)
		}
		rows[i] = []string{
			strconv.Itoa(c.ID),
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.Title,
			accountID,
			c.CreatedAt.Format(time.RFC3339),
		}
	}
	return header, rows, nil
}

func (s *Service) fetchOpportunities(ctx context.Context, req Request) ([]string, [][]string, error) {
	query := s.db.Opportunity.Query()
	if v := req.Filters["stage"]; v != "" {
		query = query.Where(opportunity.StageEQ(opportunity.Stage(v)))
	}
	if v := req.Filters["account_id"]; v != "" {
		accountID, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid account_id filter: %w", err)
		}
		query = query.Where(opportunity.AccountIDEQ(accountID))
	}

	items, err := query.
		Order(ent.Desc(opportunity.FieldCreatedAt)).
		Limit(req.MaxRows).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch opportunities: %w", err)
	}

	header := []string{"ID", "Name", "Account ID", "Amount", "Stage", "Close Date", "Owner ID", "Created At"}
	rows := make([][]string, len(items))
	for i, o := range items {
		closeDate := ""
		if o.CloseDate != nil {
			closeDate = o.CloseDate.Format("2006-01-02")
		}
		rows[i] = []string{
			strconv.Itoa(o.ID),
			o.Name,
			strconv.Itoa(o.AccountID),
			fmt.Sprintf("%.2f", o.Amount),
			string(o.Stage),
			closeDate,
			strconv.Itoa(o.OwnerID),
			o.CreatedAt.Format(time.RFC3339),
		}
	}
	return header, rows, nil
}

// writeCSV generates a CSV file from rows
func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// writeExcel generates an Excel file from rows
func writeExcel(path, sheetName string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			f.SetCellValue(sheetName, cell, val)
		}
	}

	for i := range header {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column: %w", err)
		}
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

// Get retrieves an export owned by the user
func (s *Service) Get(ctx context.Context, userID, exportID int) (*Response, error) {
	exp, err := s.db.Export.Query().
		Where(entexport.IDEQ(exportID), entexport.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("export")
		}
		return nil, fmt.Errorf("failed to get export: %w", err)
	}
	return toResponse(exp), nil
}

// List lists exports for a user, newest first
func (s *Service) List(ctx context.Context, userID, page, limit int) (*ListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := s.db.Export.Query().Where(entexport.UserIDEQ(userID))

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count exports: %w", err)
	}

	exports, err := query.
		Order(ent.Desc(entexport.FieldCreatedAt)).
		Limit(limit).
		Offset((page - 1) * limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}

	responses := make([]Response, len(exports))
	for i, exp := range exports {
		responses[i] = *toResponse(exp)
	}

	return &ListResponse{
		Data: responses,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

// FilePath returns the local path of a ready, unexpired export.
func (s *Service) FilePath(ctx context.Context, userID, exportID int) (string, error) {
	exp, err := s.db.Export.Query().
		Where(entexport.IDEQ(exportID), entexport.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", domain.NewNotFoundError("export")
		}
		return "", fmt.Errorf("failed to get export: %w", err)
	}

	if exp.Status != entexport.StatusReady {
		return "", domain.NewConflictError(fmt.Sprintf("export not ready: status is %s", exp.Status))
	}
	if time.Now().After(exp.ExpiresAt) {
		return "", domain.NewConflictError("export has expired")
	}
	if exp.FilePath == "" {
		return "", domain.NewNotFoundError("export file")
	}

	return exp.FilePath, nil
}

// PurgeExpired deletes export files and rows past their expiry. Returns the
// number of purged exports. Runs from the cron scheduler.
func (s *Service) PurgeExpired(ctx context.Context) (int, error) {
	expired, err := s.db.Export.Query().
		Where(entexport.ExpiresAtLT(time.Now())).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired exports: %w", err)
	}

	purged := 0
	for _, exp := range expired {
		if exp.FilePath != "" {
			if err := os.Remove(exp.FilePath); err != nil && !os.IsNotExist(err) {
				s.logger.Warn("failed to remove export file", "export_id", exp.ID, "error", err)
			}
		}
		if exp.S3Key != "" && s.uploader != nil {
			if err := s.uploader.Delete(ctx, exp.S3Key); err != nil {
				s.logger.Warn("failed to remove export from S3", "export_id", exp.ID, "error", err)
			}
		}
		if err := s.db.Export.DeleteOneID(exp.ID).Exec(ctx); err != nil {
			s.logger.Warn("failed to delete export row", "export_id", exp.ID, "error", err)
			continue
		}
		purged++
	}

	return purged, nil
}

func toResponse(exp *ent.Export) *Response {
	resp := &Response{
		ID:        exp.ID,
		Entity:    string(exp.Entity),
		Format:    string(exp.Format),
		Status:    string(exp.Status),
		RowCount:  exp.RowCount,
		CreatedAt: exp.CreatedAt.Format(time.RFC3339),
	}
	if exp.Status == entexport.StatusReady {
		resp.FileURL = fmt.Sprintf("/api/v1/exports/%d/download", exp.ID)
	}
	if !exp.ExpiresAt.IsZero() {
		resp.ExpiresAt = exp.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}
