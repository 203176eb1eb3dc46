package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// CreatePostParams represents one post row to insert. ScheduledAt is a wall-clock time; its
// location is ignored.
type CreatePostParams struct {
	UserID      uuid.UUID
	CampaignID  uuid.UUID
	PhaseID     uuid.UUID
	ScheduledAt time.Time
}

const timestampLayout = "2006-01-02 15:04:05"

const sqlBulkCreatePosts = `
INSERT INTO posts (user_id, campaign_id, phase_id, scheduled_at)
SELECT * FROM unnest($1::uuid[], $2::uuid[], $3::uuid[], $4::timestamp[])
ON CONFLICT (campaign_id, phase_id, scheduled_at) DO NOTHING
RETURNING id, user_id, campaign_id, phase_id, scheduled_at, asset_url, asset_name, asset_type, caption, created_at, updated_at
`

// BulkCreatePosts inserts all posts in a single statement and returns the rows that were created.
// Posts that already exist for the same campaign, phase and time are skipped, so the result may be
// shorter than params.
func (s *Store) BulkCreatePosts(ctx context.Context, params []CreatePostParams) ([]Post, error) {
	posts := []Post{}
	if len(params) == 0 {
		return posts, nil
	}

	userIDs := make([]string, len(params))
	campaignIDs := make([]string, len(params))
	phaseIDs := make([]string, len(params))
	scheduled := make([]string, len(params))
	for i, p := range params {
		userIDs[i] = p.UserID.String()
		campaignIDs[i] = p.CampaignID.String()
		phaseIDs[i] = p.PhaseID.String()
		scheduled[i] = p.ScheduledAt.Format(timestampLayout)
	}

	err := sqlx.SelectContext(ctx, s.q, &posts, sqlBulkCreatePosts,
		pq.Array(userIDs),
		pq.Array(campaignIDs),
		pq.Array(phaseIDs),
		pq.Array(scheduled))
	if err != nil {
		s.logger.Error(ctx, "failed to bulk create posts", err)
		return nil, fmt.Errorf("failed to bulk create posts: %w", err)
	}
	return posts, nil
}

const sqlGetPostsByCampaign = `
SELECT id, user_id, campaign_id, phase_id, scheduled_at, asset_url, asset_name, asset_type, caption, created_at, updated_at
FROM posts
WHERE campaign_id = $1
ORDER BY scheduled_at ASC, created_at ASC
`

// GetPostsByCampaign returns the campaign's posts in schedule order
func (s *Store) GetPostsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Post, error) {
	posts := []Post{}
	err := sqlx.SelectContext(ctx, s.q, &posts, sqlGetPostsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to get posts by campaign", err)
		return nil, fmt.Errorf("failed to get posts by campaign: %w", err)
	}
	return posts, nil
}

// GetScheduleByCampaign returns the campaign's posts in schedule order, each with its platform
// entries.
func (s *Store) GetScheduleByCampaign(ctx context.Context, campaignID uuid.UUID) ([]PostWithPlatforms, error) {
	posts, err := s.GetPostsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	out := make([]PostWithPlatforms, len(posts))
	if len(posts) == 0 {
		return out, nil
	}

	postIDs := make([]uuid.UUID, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}
	entries, err := s.GetPlatformEntriesByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	byPost := make(map[uuid.UUID][]PlatformEntry, len(posts))
	for _, e := range entries {
		byPost[e.PostID] = append(byPost[e.PostID], e)
	}
	for i, p := range posts {
		out[i] = PostWithPlatforms{Post: p, PlatformEntries: byPost[p.ID]}
		if out[i].PlatformEntries == nil {
			out[i].PlatformEntries = []PlatformEntry{}
		}
	}
	return out, nil
}
