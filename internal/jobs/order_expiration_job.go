package jobs

import (
	"context"
	"log/slog"
	"time"

	"negcom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpirationJob manages the scheduled cancellation of stale orders.
// Runs every minute to abandon pending orders older than the configured age.
type OrderExpirationJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpirationJob creates a new job for expiring stale orders.
// Uses ExpireStaleOrdersCommandHandler to sweep unpaid orders every minute.
func NewOrderExpirationJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *OrderExpirationJob {
	return &OrderExpirationJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_expiration_job"),
	}
}

// Start begins the order expiration job to run every minute.
func (j *OrderExpirationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiration job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order expiration job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiration job started (running every minute)", "maxAge", j.maxAge)
	return nil
}

// Stop stops the order expiration job.
func (j *OrderExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiration job stopped")
}
