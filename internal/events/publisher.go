package events

//go:generate go run go.uber.org/mock/mockgen@latest -source=publisher.go -destination=mocks_test.go -package=events

import (
	"context"
	"time"

	"marketing-server/internal/clients/kafka"
	"marketing-server/internal/observability"

	"github.com/google/uuid"
)

const TypeCampaignLaunched = "campaign.launched"

// EventProducer writes a single event to the event stream
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events to Kafka
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// CampaignLaunched describes a confirmed launch
type CampaignLaunched struct {
	UserID       uuid.UUID
	CampaignID   uuid.UUID
	CampaignName string
	StartDate    string
	EndDate      string
	PostCount    int
	EntryCount   int
}

// PublishCampaignLaunched publishes a campaign.launched event
func (p *Publisher) PublishCampaignLaunched(ctx context.Context, launched CampaignLaunched) error {
	event := kafka.EventMessage{
		ID:         uuid.New().String(),
		Type:       TypeCampaignLaunched,
		UserID:     launched.UserID.String(),
		CampaignID: launched.CampaignID.String(),
		Data: map[string]interface{}{
			"campaign_name":        launched.CampaignName,
			"start_date":           launched.StartDate,
			"end_date":             launched.EndDate,
			"post_count":           launched.PostCount,
			"platform_entry_count": launched.EntryCount,
		},
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	return p.producer.PublishEvent(ctx, event)
}
