package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStore_GetCampaignByID(t *testing.T) {
	testDB := SetupTestDB(t)
	f := NewFixtures(t, testDB)

	goals := `"Grow newsletter signups"`
	created := f.CreateCampaign(func(o *CampaignOpts) {
		o.Platforms = `["Instagram"," linkedin","instagram"]`
		o.Goals = &goals
	})

	t.Run("found", func(t *testing.T) {
		got, err := testDB.Store.GetCampaignByID(testDB.ctx(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, CampaignStatusDraft, got.Status)
		assert.Equal(t, Platforms{"instagram", "linkedin"}, got.Platforms)
		assert.Equal(t, TextVariant{"Grow newsletter signups"}, got.Goals)
		assert.Equal(t, TextVariant{}, got.TargetAudience)
		assert.Nil(t, got.StartDate)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := testDB.Store.GetCampaignByID(testDB.ctx(), uuid.New())
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestStore_UpdateCampaignSchedule(t *testing.T) {
	testDB := SetupTestDB(t)
	f := NewFixtures(t, testDB)
	campaign := f.CreateCampaign()

	params := UpdateScheduleParams{
		Status:    CampaignStatusPlanned,
		StartDate: date(2025, 3, 3),
		EndDate:   date(2025, 3, 23),
	}

	rows, err := testDB.Store.UpdateCampaignSchedule(testDB.ctx(), campaign.ID, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err := testDB.Store.GetCampaignByID(testDB.ctx(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, CampaignStatusPlanned, got.Status)
	require.NotNil(t, got.StartDate)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2025-03-03", got.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-03-23", got.EndDate.Format("2006-01-02"))

	rows, err = testDB.Store.UpdateCampaignSchedule(testDB.ctx(), uuid.New(), params)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestStore_WithTxRollsBack(t *testing.T) {
	testDB := SetupTestDB(t)
	f := NewFixtures(t, testDB)
	campaign := f.CreateCampaign()

	boom := errors.New("boom")
	err := testDB.Store.WithTx(testDB.ctx(), func(tx *Store) error {
		_, err := tx.UpdateCampaignSchedule(testDB.ctx(), campaign.ID, UpdateScheduleParams{
			Status:    CampaignStatusPlanned,
			StartDate: date(2025, 3, 3),
			EndDate:   date(2025, 3, 9),
		})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := testDB.Store.GetCampaignByID(testDB.ctx(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, CampaignStatusDraft, got.Status)
	assert.Nil(t, got.StartDate)
}

func TestStore_AdvanceStatuses(t *testing.T) {
	testDB := SetupTestDB(t)
	f := NewFixtures(t, testDB)
	ctx := testDB.ctx()

	upcoming := f.CreateCampaign()
	running := f.CreateCampaign()
	finished := f.CreateCampaign()
	draft := f.CreateCampaign()

	schedule := func(id uuid.UUID, start, end time.Time) {
		_, err := testDB.Store.UpdateCampaignSchedule(ctx, id, UpdateScheduleParams{
			Status: CampaignStatusPlanned, StartDate: start, EndDate: end,
		})
		require.NoError(t, err)
	}
	schedule(upcoming.ID, date(2025, 4, 1), date(2025, 4, 30))
	schedule(running.ID, date(2025, 3, 1), date(2025, 3, 31))
	schedule(finished.ID, date(2025, 2, 1), date(2025, 2, 28))

	phase := f.CreatePhase(running.ID, "Teaser", 1, intPtr(1))
	_, err := testDB.Store.UpdatePhaseSchedule(ctx, running.ID, phase.Name, UpdateScheduleParams{
		Status: CampaignStatusPlanned, StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 7),
	})
	require.NoError(t, err)

	result, err := testDB.Store.AdvanceStatuses(ctx, date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, StatusSweepResult{
		CampaignsActivated: 1,
		CampaignsCompleted: 1,
		PhasesActivated:    0,
		PhasesCompleted:    1,
	}, result)

	statusOf := func(id uuid.UUID) string {
		c, err := testDB.Store.GetCampaignByID(ctx, id)
		require.NoError(t, err)
		return c.Status
	}
	assert.Equal(t, CampaignStatusPlanned, statusOf(upcoming.ID))
	assert.Equal(t, CampaignStatusActive, statusOf(running.ID))
	assert.Equal(t, CampaignStatusCompleted, statusOf(finished.ID))
	assert.Equal(t, CampaignStatusDraft, statusOf(draft.ID))

	phases, err := testDB.Store.GetPhasesByCampaign(ctx, running.ID)
	require.NoError(t, err)
	require.Len(t, phases, 1)
	assert.Equal(t, CampaignStatusCompleted, phases[0].Status)
}
