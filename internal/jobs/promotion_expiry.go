// File: internal/jobs/promotion_expiry.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"sabuconnect_backend/internal/config"
	"sabuconnect_backend/internal/listing"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// PromotionExpiryJob stops listing promotions whose paid window has lapsed.
type PromotionExpiryJob struct {
	listingService listing.Service
	logger         *zap.Logger
	cfg            *config.Config
	cronScheduler  *cron.Cron
}

// NewPromotionExpiryJob creates a new PromotionExpiryJob.
func NewPromotionExpiryJob(
	listingService listing.Service,
	logger *zap.Logger,
	cfg *config.Config,
) *PromotionExpiryJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))
	return &PromotionExpiryJob{
		listingService: listingService,
		logger:         logger.Named("PromotionExpiryJob"),
		cfg:            cfg,
		cronScheduler:  scheduler,
	}
}

// SetupAndStart schedules and starts the cron job. An empty schedule disables
// the job without failing startup.
func (j *PromotionExpiryJob) SetupAndStart() error {
	jobSpec := j.cfg.PromotionExpiryJobSchedule
	if jobSpec == "" {
		j.logger.Warn("Promotion expiry job schedule not defined (PROMOTION_EXPIRY_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule promotion expiry job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Promotion expiry job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

func (j *PromotionExpiryJob) runJob() {
	j.logger.Info("Starting promotion expiry job run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	stoppedCount, err := j.listingService.ExpirePromotions(ctx)
	if err != nil {
		j.logger.Error("Promotion expiry job run failed", zap.Error(err))
	} else {
		j.logger.Info("Promotion expiry job run completed", zap.Int("promotions_stopped", stoppedCount))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *PromotionExpiryJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping promotion expiry job scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Promotion expiry job scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Promotion expiry job scheduler stop timed out.")
		}
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to the cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
