package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creatorscore/internal/domain"
)

const snapshotColumns = `
id, profile_id, taken_at, follower_count, following_count, media_count,
avg_engagement_rate, authenticity_pct, posts_analyzed, demographics, ai_insights`

// SnapshotRepositoryPG implements SnapshotRepository using PostgreSQL.
// Demographics and AI insights live in JSONB columns; snapshots are
// append-only so all queries are plain reads.
type SnapshotRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository constructs the repository.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepositoryPG {
	return &SnapshotRepositoryPG{pool: pool}
}

// LatestValid returns the newest snapshot with genuine analysis data,
// falling back to the newest partial (demographics-only) snapshot.
func (r *SnapshotRepositoryPG) LatestValid(ctx context.Context, profileID string) (*domain.Snapshot, error) {
	snap, err := r.latest(ctx, profileID, true)
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, domain.ErrNoSnapshot) {
		return nil, err
	}
	return r.latest(ctx, profileID, false)
}

func (r *SnapshotRepositoryPG) latest(ctx context.Context, profileID string, analyzedOnly bool) (*domain.Snapshot, error) {
	query := `
SELECT ` + snapshotColumns + `
FROM snapshots
WHERE profile_id = $1
ORDER BY taken_at DESC
LIMIT 1;
`
	if analyzedOnly {
		query = `
SELECT ` + snapshotColumns + `
FROM snapshots
WHERE profile_id = $1 AND posts_analyzed > 0
ORDER BY taken_at DESC
LIMIT 1;
`
	}
	row := r.pool.QueryRow(ctx, query, profileID)
	snap, err := scanSnapshot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoSnapshot
		}
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}
	return snap, nil
}

// RecentAnalyzed returns up to limit analyzed snapshots, newest first. Used
// for demographics-stability history.
func (r *SnapshotRepositoryPG) RecentAnalyzed(ctx context.Context, profileID string, limit int) ([]domain.Snapshot, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+snapshotColumns+`
FROM snapshots
WHERE profile_id = $1 AND posts_analyzed > 0
ORDER BY taken_at DESC
LIMIT $2;
`, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent snapshots: %w", err)
	}
	defer rows.Close()

	var out []domain.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, *snap)
	}
	return out, rows.Err()
}

func scanSnapshot(row pgx.Row) (*domain.Snapshot, error) {
	var (
		snap      domain.Snapshot
		demoJSON  []byte
		aiJSON    []byte
	)
	if err := row.Scan(
		&snap.ID,
		&snap.ProfileID,
		&snap.TakenAt,
		&snap.FollowerCount,
		&snap.FollowingCount,
		&snap.MediaCount,
		&snap.AvgEngagementRate,
		&snap.AuthenticityPct,
		&snap.PostsAnalyzed,
		&demoJSON,
		&aiJSON,
	); err != nil {
		return nil, err
	}
	if len(demoJSON) > 0 {
		if err := json.Unmarshal(demoJSON, &snap.Demographics); err != nil {
			return nil, fmt.Errorf("decode demographics: %w", err)
		}
	}
	if len(aiJSON) > 0 {
		var ai domain.AIInsights
		if err := json.Unmarshal(aiJSON, &ai); err != nil {
			return nil, fmt.Errorf("decode ai insights: %w", err)
		}
		if !ai.GeneratedAt.IsZero() {
			snap.AI = &ai
		}
	}
	return &snap, nil
}
