package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/pkg/activities"
	"github.com/salesdeskhq/salesdesk/pkg/email"
	"github.com/salesdeskhq/salesdesk/pkg/export"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
	"github.com/salesdeskhq/salesdesk/pkg/metrics"
	"github.com/salesdeskhq/salesdesk/pkg/opportunities"
)

// CronManager runs the scheduled background jobs
type CronManager struct {
	cron        *cron.Cron
	db          *ent.Client
	exportSvc   *export.Service
	activitySvc *activities.Service
	oppSvc      *opportunities.Service
	emailSvc    *email.Service
	appMetrics  *metrics.Metrics
	logger      logger.Logger
}

// NewCronManager creates a cron manager wired to the services its jobs use
func NewCronManager(
	db *ent.Client,
	exportSvc *export.Service,
	activitySvc *activities.Service,
	oppSvc *opportunities.Service,
	emailSvc *email.Service,
	appMetrics *metrics.Metrics,
	log logger.Logger,
) *CronManager {
	return &CronManager{
		cron:        cron.New(),
		db:          db,
		exportSvc:   exportSvc,
		activitySvc: activitySvc,
		oppSvc:      oppSvc,
		emailSvc:    emailSvc,
		appMetrics:  appMetrics,
		logger:      log,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	// Hourly: purge export files past their 24h expiry
	if _, err := cm.cron.AddFunc("0 * * * *", cm.purgeExpiredExports); err != nil {
		return err
	}

	// Daily at 7 AM: email each rep a digest of activities due today
	if _, err := cm.cron.AddFunc("0 7 * * *", cm.sendActivityDigests); err != nil {
		return err
	}

	// Every 15 minutes: refresh the pipeline stage gauges
	if _, err := cm.cron.AddFunc("*/15 * * * *", cm.refreshPipelineGauges); err != nil {
		return err
	}

	cm.logger.Info("cron jobs configured",
		"jobs", []string{"export purge (hourly)", "activity digest (daily 7AM)", "pipeline gauges (15m)"})

	return nil
}

func (cm *CronManager) purgeExpiredExports() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	purged, err := cm.exportSvc.PurgeExpired(ctx)
	if err != nil {
		cm.logger.Error("export purge failed", "error", err)
		return
	}
	if purged > 0 {
		cm.logger.Info("purged expired exports", "count", purged)
	}
}

func (cm *CronManager) sendActivityDigests() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	due, err := cm.activitySvc.ListDueBetween(ctx, dayStart, dayEnd)
	if err != nil {
		cm.logger.Error("activity digest query failed", "error", err)
		return
	}

	perUser := make(map[int]int)
	for _, a := range due {
		if !a.Completed {
			perUser[a.UserID]++
		}
	}

	for userID, count := range perUser {
		u, err := cm.db.User.Get(ctx, userID)
		if err != nil {
			cm.logger.Warn("digest user lookup failed", "user_id", userID, "error", err)
			continue
		}
		if !u.Active {
			continue
		}
		if err := cm.emailSvc.SendActivityDigest(u.Email, u.Name, count); err != nil {
			cm.logger.Warn("digest email failed", "user_id", userID, "error", err)
			cm.appMetrics.RecordEmailSent("activity_digest", false)
			continue
		}
		cm.appMetrics.RecordEmailSent("activity_digest", true)
	}

	cm.logger.Info("activity digests sent", "recipients", len(perUser), "due_today", len(due))
}

func (cm *CronManager) refreshPipelineGauges() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	columns, err := cm.oppSvc.Pipeline(ctx, 0)
	if err != nil {
		cm.logger.Error("pipeline gauge refresh failed", "error", err)
		return
	}

	for _, col := range columns {
		cm.appMetrics.SetOpportunitiesByStage(col.Stage, float64(col.Count))
	}
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish
func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
}
