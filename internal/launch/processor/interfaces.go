package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"marketing-server/internal/events"
	"marketing-server/internal/store"
	"marketing-server/internal/workflow"

	"github.com/google/uuid"
)

// LaunchStore defines the database operations required by LaunchProcessor
type LaunchStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetPhasesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Phase, error)
	UpdateCampaignSchedule(ctx context.Context, campaignID uuid.UUID, params store.UpdateScheduleParams) (int64, error)
	UpdatePhaseSchedule(ctx context.Context, campaignID uuid.UUID, phaseName string, params store.UpdateScheduleParams) (int64, error)
	BulkCreatePosts(ctx context.Context, params []store.CreatePostParams) ([]store.Post, error)
	GetPostsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Post, error)
	BulkCreatePlatformEntries(ctx context.Context, params []store.CreatePlatformEntryParams) (int64, error)
	GetScheduleByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.PostWithPlatforms, error)

	// InTx runs fn against a LaunchStore bound to one transaction, committing when fn returns nil.
	InTx(ctx context.Context, fn func(tx LaunchStore) error) error
}

// Notifier triggers downstream caption generation for a launched campaign
type Notifier interface {
	Enabled() bool
	NotifyLaunch(ctx context.Context, n workflow.LaunchNotification) error
}

// EventPublisher publishes launch events to the event stream
type EventPublisher interface {
	PublishCampaignLaunched(ctx context.Context, launched events.CampaignLaunched) error
}
