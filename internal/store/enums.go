package store

// Campaign and phase lifecycle
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusPlanned   = "planned"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
)

// Post asset types
const (
	AssetTypeImage = "image"
	AssetTypeVideo = "video"
)

// Platform entry publication status
const (
	PlatformStatusPending   = "pending"
	PlatformStatusPublished = "published"
	PlatformStatusFailed    = "failed"
)
