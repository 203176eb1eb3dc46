package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketing-server/internal/jobs"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/hibiken/asynq"
)

// StatusStore is the store surface the sweep needs
type StatusStore interface {
	AdvanceStatuses(ctx context.Context, today time.Time) (store.StatusSweepResult, error)
}

// StatusWorker moves campaigns and phases through planned, active and completed as their dates pass
type StatusWorker struct {
	store    StatusStore
	location *time.Location
	logger   *observability.Logger
	now      func() time.Time
}

// NewStatusWorker creates a new status worker. Today is evaluated in location.
func NewStatusWorker(store StatusStore, location *time.Location, logger *observability.Logger) *StatusWorker {
	if location == nil {
		location = time.UTC
	}
	return &StatusWorker{
		store:    store,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// ProcessStatusSweepTask processes a campaign status sweep task
func (w *StatusWorker) ProcessStatusSweepTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.StatusSweepJobPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			w.logger.Error(ctx, "failed to unmarshal status sweep job payload", err)
			return fmt.Errorf("failed to unmarshal status sweep job payload: %w: %w", err, asynq.SkipRetry)
		}
	}

	today, err := w.today(payload.Date)
	if err != nil {
		w.logger.Error(ctx, "invalid status sweep date", err)
		return fmt.Errorf("invalid status sweep date: %w: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "sweep_date", Value: today.Format(time.DateOnly)})

	result, err := w.store.AdvanceStatuses(ctx, today)
	if err != nil {
		w.logger.Error(ctx, "failed to advance campaign statuses", err)
		return fmt.Errorf("failed to advance campaign statuses: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaigns_activated", Value: result.CampaignsActivated},
		observability.Field{Key: "campaigns_completed", Value: result.CampaignsCompleted},
		observability.Field{Key: "phases_activated", Value: result.PhasesActivated},
		observability.Field{Key: "phases_completed", Value: result.PhasesCompleted},
	)
	w.logger.Info(ctx, "advanced campaign statuses")
	return nil
}

// today returns the sweep date as midnight UTC of the calendar day.
func (w *StatusWorker) today(override string) (time.Time, error) {
	if override != "" {
		return time.Parse(time.DateOnly, override)
	}
	y, m, d := w.now().In(w.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
