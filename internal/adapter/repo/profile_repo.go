package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creatorscore/internal/domain"
)

// ProfileRepositoryPG implements ProfileRepository using PostgreSQL.
type ProfileRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewProfileRepository constructs the repository.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{pool: pool}
}

// GetByID loads one creator profile.
func (r *ProfileRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, username, full_name, follower_count, following_count, media_count,
       account_type, COALESCE(target_country, ''), COALESCE(target_languages, '{}'), created_at
FROM profiles
WHERE id = $1;
`, id)

	var p domain.Profile
	if err := row.Scan(
		&p.ID,
		&p.Username,
		&p.FullName,
		&p.FollowerCount,
		&p.FollowingCount,
		&p.MediaCount,
		&p.AccountType,
		&p.TargetCountry,
		&p.TargetLanguages,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
