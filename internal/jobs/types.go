package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeCampaignStatusSweep = "campaign:status_sweep"
)

// Queue names
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// StatusSweepSchedule is the cron spec the worker registers the sweep under
const StatusSweepSchedule = "@hourly"

// StatusSweepJobPayload optionally pins the sweep to a calendar date (YYYY-MM-DD). An empty
// date means today in the configured schedule timezone.
type StatusSweepJobPayload struct {
	Date string `json:"date,omitempty"`
}

// NewStatusSweepTask creates a campaign status sweep task
func NewStatusSweepTask(payload StatusSweepJobPayload) (*asynq.Task, error) {
	if payload.Date != "" {
		if _, err := time.Parse(time.DateOnly, payload.Date); err != nil {
			return nil, fmt.Errorf("invalid sweep date %q: %w", payload.Date, err)
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeCampaignStatusSweep, data,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
	), nil
}
