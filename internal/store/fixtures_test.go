package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// CampaignOpts customizes campaign creation.
type CampaignOpts struct {
	UserID    uuid.UUID
	Name      string
	Platforms string
	Goals     *string
}

// CreateCampaign inserts a draft campaign. Uses raw SQL since campaigns are created by the
// workflow engine, not by this service.
func (f *Fixtures) CreateCampaign(opts ...func(*CampaignOpts)) Campaign {
	f.t.Helper()
	o := CampaignOpts{
		UserID:    uuid.New(),
		Name:      "Spring Launch",
		Platforms: `["instagram","linkedin"]`,
	}
	for _, fn := range opts {
		fn(&o)
	}

	var id uuid.UUID
	query := `INSERT INTO campaigns (user_id, name, platforms, goals) VALUES ($1, $2, $3::jsonb, $4::jsonb) RETURNING id`
	err := f.testDB.GetDB().GetContext(f.ctx, &id, query, o.UserID, o.Name, o.Platforms, o.Goals)
	require.NoError(f.t, err, "failed to create test campaign")

	campaign, err := f.testDB.Store.GetCampaignByID(f.ctx, id)
	require.NoError(f.t, err, "failed to read back test campaign")
	return campaign
}

// CreatePhase inserts a draft phase for the campaign.
func (f *Fixtures) CreatePhase(campaignID uuid.UUID, name string, order int, durationWeeks *int) Phase {
	f.t.Helper()

	var phase Phase
	query := `
INSERT INTO campaign_phases (campaign_id, name, phase_order, duration_weeks)
VALUES ($1, $2, $3, $4)
RETURNING id, campaign_id, name, phase_order, duration_weeks, start_date, end_date, status, created_at, updated_at`
	err := f.testDB.GetDB().GetContext(f.ctx, &phase, query, campaignID, name, order, durationWeeks)
	require.NoError(f.t, err, "failed to create test phase")
	return phase
}

func intPtr(v int) *int {
	return &v
}
