package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UpdateScheduleParams carries a status transition together with the computed date window.
// Dates are calendar dates; only their year, month and day are stored.
type UpdateScheduleParams struct {
	Status    string
	StartDate time.Time
	EndDate   time.Time
}

const sqlGetCampaignByID = `
SELECT id, user_id, name, status, start_date, end_date, platforms, goals, target_audience, created_at, updated_at
FROM campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := sqlx.GetContext(ctx, s.q, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlUpdateCampaignSchedule = `
UPDATE campaigns
SET status = $2, start_date = $3, end_date = $4, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// UpdateCampaignSchedule sets the campaign status and date window and returns the number of rows
// updated.
func (s *Store) UpdateCampaignSchedule(ctx context.Context, campaignID uuid.UUID, params UpdateScheduleParams) (int64, error) {
	res, err := s.q.ExecContext(ctx, sqlUpdateCampaignSchedule,
		campaignID,
		params.Status,
		params.StartDate,
		params.EndDate)
	if err != nil {
		s.logger.Error(ctx, "failed to update campaign schedule", err)
		return 0, fmt.Errorf("failed to update campaign schedule: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

const sqlActivateCampaigns = `
UPDATE campaigns
SET status = 'active', updated_at = CURRENT_TIMESTAMP
WHERE status = 'planned' AND start_date <= $1 AND end_date >= $1
`

const sqlCompleteCampaigns = `
UPDATE campaigns
SET status = 'completed', updated_at = CURRENT_TIMESTAMP
WHERE status IN ('planned', 'active') AND end_date < $1
`

const sqlActivatePhases = `
UPDATE campaign_phases
SET status = 'active', updated_at = CURRENT_TIMESTAMP
WHERE status = 'planned' AND start_date <= $1 AND end_date >= $1
`

const sqlCompletePhases = `
UPDATE campaign_phases
SET status = 'completed', updated_at = CURRENT_TIMESTAMP
WHERE status IN ('planned', 'active') AND end_date < $1
`

// StatusSweepResult counts the rows moved by AdvanceStatuses.
type StatusSweepResult struct {
	CampaignsActivated int64 `json:"campaigns_activated"`
	CampaignsCompleted int64 `json:"campaigns_completed"`
	PhasesActivated    int64 `json:"phases_activated"`
	PhasesCompleted    int64 `json:"phases_completed"`
}

// AdvanceStatuses moves planned campaigns and phases to active once they have started and to
// completed once they have ended, relative to the calendar date today. Runs in one transaction.
func (s *Store) AdvanceStatuses(ctx context.Context, today time.Time) (StatusSweepResult, error) {
	var result StatusSweepResult
	err := s.WithTx(ctx, func(tx *Store) error {
		steps := []struct {
			query string
			dest  *int64
			what  string
		}{
			{sqlActivateCampaigns, &result.CampaignsActivated, "activate campaigns"},
			{sqlCompleteCampaigns, &result.CampaignsCompleted, "complete campaigns"},
			{sqlActivatePhases, &result.PhasesActivated, "activate phases"},
			{sqlCompletePhases, &result.PhasesCompleted, "complete phases"},
		}
		for _, step := range steps {
			res, err := tx.q.ExecContext(ctx, step.query, today)
			if err != nil {
				tx.logger.Error(ctx, "failed to "+step.what, err)
				return fmt.Errorf("failed to %s: %w", step.what, err)
			}
			if *step.dest, err = res.RowsAffected(); err != nil {
				return fmt.Errorf("failed to get rows affected: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return StatusSweepResult{}, err
	}
	return result, nil
}
