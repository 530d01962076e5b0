package jobs

import (
	"context"
	"log/slog"

	"cargopay/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AccessCodeExpiryJob sweeps delivery access codes past their expiry.
// Runs every minute to invalidate stale codes so the code-gated page
// refuses them.
type AccessCodeExpiryJob struct {
	handler commands.ExpireAccessCodesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAccessCodeExpiryJob creates a new job for expiring access codes.
// Uses ExpireAccessCodesCommandHandler to invalidate codes every minute.
func NewAccessCodeExpiryJob(handler commands.ExpireAccessCodesCommandHandler, logger *slog.Logger) *AccessCodeExpiryJob {
	return &AccessCodeExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "access_code_expiry_job"),
	}
}

// Start begins the access code expiry job to run every minute.
func (j *AccessCodeExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireAccessCodesCommand()

		swept, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Access code expiry job failed", "error", err)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Expired access codes swept", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Access code expiry job started (running every minute)")
	return nil
}

// Stop stops the access code expiry job.
func (j *AccessCodeExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Access code expiry job stopped")
}
