package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const sqlGetPhasesByCampaign = `
SELECT id, campaign_id, name, phase_order, duration_weeks, start_date, end_date, status, created_at, updated_at
FROM campaign_phases
WHERE campaign_id = $1
ORDER BY phase_order ASC
`

// GetPhasesByCampaign returns the campaign's phases ordered by phase_order
func (s *Store) GetPhasesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Phase, error) {
	phases := []Phase{}
	err := sqlx.SelectContext(ctx, s.q, &phases, sqlGetPhasesByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to get phases by campaign", err)
		return nil, fmt.Errorf("failed to get phases by campaign: %w", err)
	}
	return phases, nil
}

const sqlUpdatePhaseSchedule = `
UPDATE campaign_phases
SET status = $3, start_date = $4, end_date = $5, updated_at = CURRENT_TIMESTAMP
WHERE campaign_id = $1 AND name = $2
`

// UpdatePhaseSchedule sets status and date window on the phase matched by campaign and phase name,
// returning the number of rows updated.
func (s *Store) UpdatePhaseSchedule(ctx context.Context, campaignID uuid.UUID, phaseName string, params UpdateScheduleParams) (int64, error) {
	res, err := s.q.ExecContext(ctx, sqlUpdatePhaseSchedule,
		campaignID,
		phaseName,
		params.Status,
		params.StartDate,
		params.EndDate)
	if err != nil {
		s.logger.Error(ctx, "failed to update phase schedule", err)
		return 0, fmt.Errorf("failed to update phase schedule: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
