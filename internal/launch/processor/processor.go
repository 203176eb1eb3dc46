package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing-server/internal/events"
	"marketing-server/internal/observability"
	"marketing-server/internal/schedule"
	"marketing-server/internal/store"
	"marketing-server/internal/workflow"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

const DefaultStepTimeout = 15 * time.Second

// Config holds the tunable launch policy
type Config struct {
	// StepTimeout bounds every individual persistence or network step.
	StepTimeout time.Duration
	Cadence     schedule.Cadence
}

type LaunchProcessor struct {
	store       LaunchStore
	notifier    Notifier
	events      EventPublisher
	logger      *observability.Logger
	stepTimeout time.Duration
	cadence     schedule.Cadence
}

// New creates a LaunchProcessor. notifier and events may be nil, which disables them. An invalid
// cadence falls back to schedule.DefaultCadence.
func New(store LaunchStore, notifier Notifier, events EventPublisher, logger *observability.Logger, cfg Config) LaunchProcessor {
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = DefaultStepTimeout
	}
	if len(cfg.Cadence.DayOffsets) == 0 {
		cfg.Cadence = schedule.DefaultCadence
	}
	if err := cfg.Cadence.Validate(); err != nil {
		logger.WarnWithError(context.Background(), "invalid posting cadence; using default", err)
		cfg.Cadence = schedule.DefaultCadence
	}
	return LaunchProcessor{
		store:       store,
		notifier:    notifier,
		events:      events,
		logger:      logger,
		stepTimeout: cfg.StepTimeout,
		cadence:     cfg.Cadence,
	}
}

// TimelinePreview is what the user reviews before confirming a launch
type TimelinePreview struct {
	Timeline           schedule.Timeline `json:"timeline"`
	Platforms          []string          `json:"platforms"`
	PostCount          int               `json:"post_count"`
	PlatformEntryCount int               `json:"platform_entry_count"`
	Confirmable        bool              `json:"confirmable"`
}

// Warning is an advisory failure that did not stop the launch
type Warning struct {
	Step     State  `json:"step"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	TimedOut bool   `json:"timed_out,omitempty"`
}

// LaunchResult reports a successful launch and how its advisory steps went
type LaunchResult struct {
	CampaignID               uuid.UUID         `json:"campaign_id"`
	Status                   string            `json:"status"`
	Timeline                 schedule.Timeline `json:"timeline"`
	PlannedPosts             int               `json:"planned_posts"`
	PostsCreated             int               `json:"posts_created"`
	PlatformEntriesCreated   int64             `json:"platform_entries_created"`
	PlatformEntriesPersisted bool              `json:"platform_entries_persisted"`
	NotificationSent         bool              `json:"notification_sent"`
	EventPublished           bool              `json:"event_published"`
	Warnings                 []Warning         `json:"warnings"`
	Trace                    []State           `json:"trace"`
}

// PreviewTimeline computes the timeline and post counts for a launch date without persisting anything.
func (p *LaunchProcessor) PreviewTimeline(ctx context.Context, userID, campaignID uuid.UUID, launchDate string) (TimelinePreview, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "launch_date", Value: launchDate},
	)

	launch, err := parseLaunchDate(launchDate)
	if err != nil {
		return TimelinePreview{}, err
	}

	campaign, tl, err := p.loadTimeline(ctx, userID, campaignID, launch)
	if err != nil {
		return TimelinePreview{}, err
	}

	sched, err := schedule.GeneratePostSchedule(tl, campaign.Platforms, userID, p.cadence)
	if err != nil {
		p.logger.Error(ctx, "failed to generate post schedule preview", err)
		return TimelinePreview{}, err
	}

	return TimelinePreview{
		Timeline:           tl,
		Platforms:          campaign.Platforms,
		PostCount:          len(sched.Posts),
		PlatformEntryCount: sched.PlatformEntryCount(),
		Confirmable:        !tl.Empty(),
	}, nil
}

// ConfirmLaunch persists the timeline for launchDate and the generated post schedule, then
// notifies downstream consumers.
//
// Campaign, phase and post writes share one transaction and any failure there is returned as a
// *LaunchError. Platform entries, the workflow notification and the launch event run after commit;
// their failures are reported as warnings on the result.
func (p *LaunchProcessor) ConfirmLaunch(ctx context.Context, userID, campaignID uuid.UUID, launchDate string) (LaunchResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "launch_date", Value: launchDate},
	)

	run := newTrace()
	run.enter(StateConfirming)

	launch, err := parseLaunchDate(launchDate)
	if err != nil {
		return LaunchResult{}, err
	}

	campaign, tl, err := p.loadTimeline(ctx, userID, campaignID, launch)
	if err != nil {
		return LaunchResult{}, err
	}
	if tl.Empty() {
		p.logger.Warn(ctx, "launch rejected: campaign has no phases")
		return LaunchResult{}, ErrNoPhases
	}

	var (
		sched   schedule.Schedule
		posts   []store.Post
		created int
	)
	err = p.store.InTx(ctx, func(tx LaunchStore) error {
		var err error
		if err = p.persistCampaign(ctx, run, tx, tl); err != nil {
			return err
		}
		if err = p.persistPhases(ctx, run, tx, tl); err != nil {
			return err
		}
		sched, posts, created, err = p.persistPosts(ctx, run, tx, tl, campaign.Platforms, userID)
		return err
	})
	if err != nil {
		var launchErr *LaunchError
		if !errors.As(err, &launchErr) {
			// begin or commit failed
			launchErr = p.fail(ctx, run, err)
		}
		launchErr.Trace = run.snapshot()
		return LaunchResult{}, launchErr
	}

	result := LaunchResult{
		CampaignID:   campaignID,
		Status:       store.CampaignStatusPlanned,
		Timeline:     tl,
		PlannedPosts: len(sched.Posts),
		PostsCreated: created,
		Warnings:     []Warning{},
	}

	p.persistPlatformEntries(ctx, run, &result, sched, posts)
	p.notifyDownstream(ctx, run, &result, campaign, tl, userID)

	run.enter(StateDone)
	result.Trace = run.snapshot()

	p.logger.Info(ctx, fmt.Sprintf("campaign launched with %d posts (%d new)", result.PlannedPosts, result.PostsCreated))
	return result, nil
}

// GetSchedule lists the persisted posts of a campaign with their platform entries.
func (p *LaunchProcessor) GetSchedule(ctx context.Context, userID, campaignID uuid.UUID) ([]store.PostWithPlatforms, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	if _, err := p.getOwnedCampaign(ctx, userID, campaignID); err != nil {
		return nil, err
	}

	stepCtx, cancel := p.stepContext(ctx)
	defer cancel()

	posts, err := p.store.GetScheduleByCampaign(stepCtx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get campaign schedule", err)
		return nil, withTimeout(err)
	}
	return posts, nil
}

func parseLaunchDate(value string) (civil.Date, error) {
	launch, err := schedule.ParseLaunchDate(value)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return launch, nil
}

func (p *LaunchProcessor) stepContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.stepTimeout)
}

func (p *LaunchProcessor) getOwnedCampaign(ctx context.Context, userID, campaignID uuid.UUID) (store.Campaign, error) {
	stepCtx, cancel := p.stepContext(ctx)
	defer cancel()

	campaign, err := p.store.GetCampaignByID(stepCtx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, withTimeout(err)
	}

	if campaign.UserID != userID {
		return store.Campaign{}, ErrUnauthorized
	}
	return campaign, nil
}

// loadTimeline fetches the campaign and its phases (ordered by phase_order) and computes the
// timeline for launch.
func (p *LaunchProcessor) loadTimeline(ctx context.Context, userID, campaignID uuid.UUID, launch civil.Date) (store.Campaign, schedule.Timeline, error) {
	campaign, err := p.getOwnedCampaign(ctx, userID, campaignID)
	if err != nil {
		return store.Campaign{}, schedule.Timeline{}, err
	}

	stepCtx, cancel := p.stepContext(ctx)
	defer cancel()

	phases, err := p.store.GetPhasesByCampaign(stepCtx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get campaign phases", err)
		return store.Campaign{}, schedule.Timeline{}, withTimeout(err)
	}

	specs := make([]schedule.PhaseSpec, len(phases))
	for i, phase := range phases {
		weeks := 0
		if phase.DurationWeeks != nil {
			weeks = *phase.DurationWeeks
		}
		specs[i] = schedule.PhaseSpec{
			ID:          phase.ID,
			Name:        phase.Name,
			Order:       phase.PhaseOrder,
			LengthWeeks: weeks,
		}
	}

	return campaign, schedule.CalculateTimeline(campaignID, launch, specs), nil
}

func (p *LaunchProcessor) persistCampaign(ctx context.Context, run *trace, tx LaunchStore, tl schedule.Timeline) error {
	run.enter(StatePersistingCampaign)

	stepCtx, cancel := p.stepContext(ctx)
	defer cancel()

	rows, err := tx.UpdateCampaignSchedule(stepCtx, tl.CampaignID, store.UpdateScheduleParams{
		Status:    store.CampaignStatusPlanned,
		StartDate: tl.CampaignStart.In(time.UTC),
		EndDate:   tl.CampaignEnd.In(time.UTC),
	})
	if err != nil {
		return p.fail(ctx, run, err)
	}
	if rows == 0 {
		return p.fail(ctx, run, errNoRowsUpdated)
	}
	return nil
}

func (p *LaunchProcessor) persistPhases(ctx context.Context, run *trace, tx LaunchStore, tl schedule.Timeline) error {
	run.enter(StatePersistingPhases)

	for _, phase := range tl.Phases {
		stepCtx, cancel := p.stepContext(ctx)
		rows, err := tx.UpdatePhaseSchedule(stepCtx, tl.CampaignID, phase.Name, store.UpdateScheduleParams{
			Status:    store.CampaignStatusPlanned,
			StartDate: phase.Start.In(time.UTC),
			EndDate:   phase.End.In(time.UTC),
		})
		cancel()
		if err == nil && rows == 0 {
			err = errNoRowsUpdated
		}
		if err != nil {
			return p.fail(ctx, run, fmt.Errorf("phase %q: %w", phase.Name, err))
		}
	}
	return nil
}

// persistPosts inserts the generated schedule and returns the campaign's persisted posts along
// with how many of them this call created. Posts left by an earlier launch of the same date are
// read back so their platform entries can still be written.
func (p *LaunchProcessor) persistPosts(ctx context.Context, run *trace, tx LaunchStore, tl schedule.Timeline, platforms []string, userID uuid.UUID) (schedule.Schedule, []store.Post, int, error) {
	run.enter(StatePersistingPosts)

	sched, err := schedule.GeneratePostSchedule(tl, platforms, userID, p.cadence)
	if err != nil {
		return schedule.Schedule{}, nil, 0, p.fail(ctx, run, err)
	}

	params := make([]store.CreatePostParams, len(sched.Posts))
	for i, post := range sched.Posts {
		params[i] = store.CreatePostParams{
			UserID:      post.UserID,
			CampaignID:  post.CampaignID,
			PhaseID:     post.PhaseID,
			ScheduledAt: post.ScheduledAt.In(time.UTC),
		}
	}

	stepCtx, cancel := p.stepContext(ctx)
	created, err := tx.BulkCreatePosts(stepCtx, params)
	cancel()
	if err != nil {
		return schedule.Schedule{}, nil, 0, p.fail(ctx, run, err)
	}
	if len(created) == len(params) {
		return sched, created, len(created), nil
	}

	stepCtx, cancel = p.stepContext(ctx)
	defer cancel()

	existing, err := tx.GetPostsByCampaign(stepCtx, tl.CampaignID)
	if err != nil {
		return schedule.Schedule{}, nil, 0, p.fail(ctx, run, err)
	}
	p.logger.Info(ctx, fmt.Sprintf("%d of %d posts already existed", len(params)-len(created), len(params)))
	return sched, existing, len(created), nil
}

type postKey struct {
	phaseID     uuid.UUID
	scheduledAt civil.DateTime
}

// persistPlatformEntries fans the planned entries out onto the persisted posts, matched by phase
// and scheduled time. Entries that already exist are skipped by the store. Failure is recorded as
// a warning.
func (p *LaunchProcessor) persistPlatformEntries(ctx context.Context, run *trace, result *LaunchResult, sched schedule.Schedule, posts []store.Post) {
	run.enter(StatePersistingPlatformEntries)

	postIDs := make(map[postKey]uuid.UUID, len(posts))
	for _, post := range posts {
		postIDs[postKey{post.PhaseID, civil.DateTimeOf(post.ScheduledAt)}] = post.ID
	}

	var params []store.CreatePlatformEntryParams
	for _, planned := range sched.Posts {
		postID, ok := postIDs[postKey{planned.PhaseID, planned.ScheduledAt}]
		if !ok {
			continue
		}
		for _, entry := range planned.PlatformEntries {
			params = append(params, store.CreatePlatformEntryParams{
				PostID:   postID,
				Platform: entry.Platform,
				Caption:  entry.Caption,
				Hashtags: entry.Hashtags,
				Status:   entry.Status,
			})
		}
	}

	if len(params) == 0 {
		result.PlatformEntriesPersisted = true
		return
	}

	stepCtx, cancel := p.stepContext(ctx)
	defer cancel()

	n, err := p.store.BulkCreatePlatformEntries(stepCtx, params)
	if err != nil {
		err = withTimeout(err)
		p.logger.WarnWithError(ctx, "failed to persist platform entries; launch continues", err)
		result.Warnings = append(result.Warnings, Warning{
			Step:     StatePersistingPlatformEntries,
			Code:     "PLATFORM_ENTRY_PERSIST_FAILED",
			Message:  "Posts were scheduled but their platform entries could not be saved.",
			TimedOut: errors.Is(err, ErrStepTimeout),
		})
		return
	}
	result.PlatformEntriesCreated = n
	result.PlatformEntriesPersisted = true
}

// notifyDownstream triggers caption generation and publishes the launch event. Neither can fail
// the launch.
func (p *LaunchProcessor) notifyDownstream(ctx context.Context, run *trace, result *LaunchResult, campaign store.Campaign, tl schedule.Timeline, userID uuid.UUID) {
	run.enter(StateNotifyingDownstream)

	if p.notifier != nil && p.notifier.Enabled() {
		stepCtx, cancel := p.stepContext(ctx)
		err := p.notifier.NotifyLaunch(stepCtx, workflow.LaunchNotification{
			CampaignID:   campaign.ID,
			UserID:       userID,
			CampaignName: campaign.Name,
			PostCount:    result.PlannedPosts,
		})
		cancel()
		if err != nil {
			err = withTimeout(err)
			p.logger.WarnWithError(ctx, "failed to notify workflow; launch continues", errors.Join(ErrNotificationFailed, err))
			result.Warnings = append(result.Warnings, Warning{
				Step:     StateNotifyingDownstream,
				Code:     "NOTIFICATION_FAILED",
				Message:  "Caption generation could not be started. Captions will need manual follow-up.",
				TimedOut: errors.Is(err, ErrStepTimeout),
			})
		} else {
			result.NotificationSent = true
		}
	}

	if p.events != nil {
		stepCtx, cancel := p.stepContext(ctx)
		err := p.events.PublishCampaignLaunched(stepCtx, events.CampaignLaunched{
			UserID:       userID,
			CampaignID:   campaign.ID,
			CampaignName: campaign.Name,
			StartDate:    tl.CampaignStart.String(),
			EndDate:      tl.CampaignEnd.String(),
			PostCount:    result.PlannedPosts,
			EntryCount:   int(result.PlatformEntriesCreated),
		})
		cancel()
		if err != nil {
			err = withTimeout(err)
			p.logger.WarnWithError(ctx, "failed to publish launch event", errors.Join(ErrEventPublishFailed, err))
			result.Warnings = append(result.Warnings, Warning{
				Step:     StateNotifyingDownstream,
				Code:     "EVENT_PUBLISH_FAILED",
				Message:  "The launch event could not be published.",
				TimedOut: errors.Is(err, ErrStepTimeout),
			})
		} else {
			result.EventPublished = true
		}
	}
}

// fail closes the current fatal step and builds its LaunchError.
func (p *LaunchProcessor) fail(ctx context.Context, run *trace, err error) *LaunchError {
	step := run.fail()
	launchErr := &LaunchError{
		Step: step,
		Kind: failureKinds[step],
		Err:  withTimeout(err),
	}
	if step == StateConfirming {
		launchErr.Step = StatePersistingCampaign
	}
	p.logger.Error(observability.WithFields(ctx,
		observability.Field{Key: "launch_step", Value: string(launchErr.Step)},
	), "launch step failed", launchErr)
	return launchErr
}
