package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultExpirationSchedule runs at second zero of every minute.
const DefaultExpirationSchedule = "0 * * * * *"

type ExpirePendingOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (int, error)
}

// PendingOrderExpirationJob cancels stale pending orders on a cron schedule.
type PendingOrderExpirationJob struct {
	handler  ExpirePendingOrdersHandler
	command  commands.ExpirePendingOrdersCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewPendingOrderExpirationJob(
	handler ExpirePendingOrdersHandler,
	timeout time.Duration,
	schedule string,
	logger *slog.Logger,
) (*PendingOrderExpirationJob, error) {
	command, err := commands.NewExpirePendingOrdersCommand(timeout)
	if err != nil {
		return nil, err
	}

	if schedule == "" {
		schedule = DefaultExpirationSchedule
	}

	return &PendingOrderExpirationJob{
		handler:  handler,
		command:  command,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_order_expiration_job"),
	}, nil
}

func (j *PendingOrderExpirationJob) Name() string {
	return "pending order expiration"
}

// Start schedules the job. An invalid cron expression is returned as an error.
func (j *PendingOrderExpirationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order expiration job started",
		"schedule", j.schedule,
		"timeout", j.command.OlderThan().String())
	return nil
}

// Run performs one expiration pass.
func (j *PendingOrderExpirationJob) Run(ctx context.Context) {
	canceled, err := j.handler.Handle(ctx, j.command)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order expiration failed", "error", err)
		return
	}

	if canceled > 0 {
		j.logger.InfoContext(ctx, "Canceled stale pending orders", "count", canceled)
	}
}

// Stop unschedules the job and waits for a running pass to finish.
func (j *PendingOrderExpirationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending order expiration job stopped")
}
