package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Campaign is created by the AI workflow in draft and planned by the launch flow.
type Campaign struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	UserID         uuid.UUID   `db:"user_id" json:"user_id"`
	Name           string      `db:"name" json:"name"`
	Status         string      `db:"status" json:"status"`
	StartDate      *time.Time  `db:"start_date" json:"start_date,omitempty"`
	EndDate        *time.Time  `db:"end_date" json:"end_date,omitempty"`
	Platforms      Platforms   `db:"platforms" json:"platforms"`
	Goals          TextVariant `db:"goals" json:"goals"`
	TargetAudience TextVariant `db:"target_audience" json:"target_audience"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updated_at"`
}

// Phase is a contiguous sub-period of a campaign.
type Phase struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	CampaignID    uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	Name          string     `db:"name" json:"name"`
	PhaseOrder    int        `db:"phase_order" json:"phase_order"`
	DurationWeeks *int       `db:"duration_weeks" json:"duration_weeks,omitempty"`
	StartDate     *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate       *time.Time `db:"end_date" json:"end_date,omitempty"`
	Status        string     `db:"status" json:"status"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// Post is one scheduled piece of content. ScheduledAt is a wall-clock time without a zone.
type Post struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	CampaignID  uuid.UUID `db:"campaign_id" json:"campaign_id"`
	PhaseID     uuid.UUID `db:"phase_id" json:"phase_id"`
	ScheduledAt time.Time `db:"scheduled_at" json:"scheduled_at"`
	AssetURL    *string   `db:"asset_url" json:"asset_url,omitempty"`
	AssetName   *string   `db:"asset_name" json:"asset_name,omitempty"`
	AssetType   *string   `db:"asset_type" json:"asset_type,omitempty"`
	Caption     *string   `db:"caption" json:"caption,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// PlatformEntry is the per-network instance of a post.
type PlatformEntry struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	PostID    uuid.UUID      `db:"post_id" json:"post_id"`
	Platform  string         `db:"platform" json:"platform"`
	Caption   *string        `db:"caption" json:"caption"`
	Hashtags  pq.StringArray `db:"hashtags" json:"hashtags"`
	Status    string         `db:"status" json:"status"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// PostWithPlatforms is a post together with its platform entries.
type PostWithPlatforms struct {
	Post
	PlatformEntries []PlatformEntry `json:"platform_entries"`
}
