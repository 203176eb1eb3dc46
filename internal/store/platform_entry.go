package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// CreatePlatformEntryParams represents one post_platforms row to insert.
type CreatePlatformEntryParams struct {
	PostID   uuid.UUID
	Platform string
	Caption  *string
	Hashtags []string
	Status   string
}

const sqlInsertPlatformEntry = `
INSERT INTO post_platforms (post_id, platform, caption, hashtags, status)
VALUES (:post_id, :platform, :caption, :hashtags, :status)
ON CONFLICT (post_id, platform) DO NOTHING
`

type platformEntryRow struct {
	PostID   uuid.UUID      `db:"post_id"`
	Platform string         `db:"platform"`
	Caption  *string        `db:"caption"`
	Hashtags pq.StringArray `db:"hashtags"`
	Status   string         `db:"status"`
}

// BulkCreatePlatformEntries inserts all entries in a single multi-row statement and returns the
// number of rows created. Entries that already exist for the same post and platform are skipped.
func (s *Store) BulkCreatePlatformEntries(ctx context.Context, params []CreatePlatformEntryParams) (int64, error) {
	if len(params) == 0 {
		return 0, nil
	}

	rows := make([]platformEntryRow, len(params))
	for i, p := range params {
		hashtags := p.Hashtags
		if hashtags == nil {
			hashtags = []string{}
		}
		status := p.Status
		if status == "" {
			status = PlatformStatusPending
		}
		rows[i] = platformEntryRow{
			PostID:   p.PostID,
			Platform: p.Platform,
			Caption:  p.Caption,
			Hashtags: pq.StringArray(hashtags),
			Status:   status,
		}
	}

	res, err := sqlx.NamedExecContext(ctx, s.q, sqlInsertPlatformEntry, rows)
	if err != nil {
		s.logger.Error(ctx, "failed to bulk create platform entries", err)
		return 0, fmt.Errorf("failed to bulk create platform entries: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected, nil
}

const sqlGetPlatformEntriesByPostIDs = `
SELECT id, post_id, platform, caption, hashtags, status, created_at, updated_at
FROM post_platforms
WHERE post_id = ANY($1::uuid[])
ORDER BY post_id, created_at ASC, platform ASC
`

// GetPlatformEntriesByPostIDs returns all platform entries belonging to the given posts
func (s *Store) GetPlatformEntriesByPostIDs(ctx context.Context, postIDs []uuid.UUID) ([]PlatformEntry, error) {
	entries := []PlatformEntry{}
	if len(postIDs) == 0 {
		return entries, nil
	}

	ids := make([]string, len(postIDs))
	for i, id := range postIDs {
		ids[i] = id.String()
	}

	err := sqlx.SelectContext(ctx, s.q, &entries, sqlGetPlatformEntriesByPostIDs, pq.Array(ids))
	if err != nil {
		s.logger.Error(ctx, "failed to get platform entries", err)
		return nil, fmt.Errorf("failed to get platform entries: %w", err)
	}
	return entries, nil
}
