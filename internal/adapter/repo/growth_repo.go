package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"creatorscore/internal/domain"
)

// GrowthRepositoryPG implements GrowthRepository using PostgreSQL.
type GrowthRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewGrowthRepository constructs the repository.
func NewGrowthRepository(pool *pgxpool.Pool) *GrowthRepositoryPG {
	return &GrowthRepositoryPG{pool: pool}
}

// SnapshotsInWindow returns the daily follower records in the trailing
// window, oldest first.
func (r *GrowthRepositoryPG) SnapshotsInWindow(ctx context.Context, profileID string, days int) ([]domain.GrowthSnapshot, error) {
	rows, err := r.pool.Query(ctx, `
SELECT profile_id, day, follower_count
FROM growth_snapshots
WHERE profile_id = $1 AND day >= now() - make_interval(days => $2)
ORDER BY day ASC;
`, profileID, days)
	if err != nil {
		return nil, fmt.Errorf("growth snapshots: %w", err)
	}
	defer rows.Close()

	var out []domain.GrowthSnapshot
	for rows.Next() {
		var g domain.GrowthSnapshot
		if err := rows.Scan(&g.ProfileID, &g.Day, &g.FollowerCount); err != nil {
			return nil, fmt.Errorf("scan growth snapshot: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
