package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
)

type LikeRepo struct {
	pool *pgxpool.Pool
}

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{pool: pool}
}

// targetColumn maps a like target kind to its column. Kinds come from the
// LikeTargetKind constants, never from user input.
func targetColumn(kind model.LikeTargetKind) (string, error) {
	switch kind {
	case model.LikeTargetVideo:
		return "video_id", nil
	case model.LikeTargetComment:
		return "comment_id", nil
	case model.LikeTargetTweet:
		return "tweet_id", nil
	}
	return "", fmt.Errorf("unknown like target kind %q", kind)
}

// Toggle flips the like state for (userID, target) in one transaction.
// The DELETE and conditional INSERT run atomically, and the partial unique
// index on (liked_by, target) guarantees concurrent toggles for the same
// pair cannot both insert. Returns true when the like now exists.
func (r *LikeRepo) Toggle(ctx context.Context, kind model.LikeTargetKind, targetID, userID uuid.UUID) (liked bool, err error) {
	col, err := targetColumn(kind)
	if err != nil {
		return false, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		fmt.Sprintf(`DELETE FROM likes WHERE %s = $1 AND liked_by = $2`, col),
		targetID, userID)
	if err != nil {
		return false, translate(err)
	}

	if tag.RowsAffected() == 0 {
		_, err = tx.Exec(ctx,
			fmt.Sprintf(`INSERT INTO likes (%s, liked_by) VALUES ($1, $2) ON CONFLICT DO NOTHING`, col),
			targetID, userID)
		if err != nil {
			return false, translate(err)
		}
		liked = true
	}

	return liked, tx.Commit(ctx)
}

// LikedVideos returns the published videos userID has liked, most recently
// liked first, with owners populated.
func (r *LikeRepo) LikedVideos(ctx context.Context, userID uuid.UUID) ([]model.VideoWithOwner, error) {
	query := `
		SELECT ` + videoColumns + `, u.id, u.username, u.fullname, u.avatar_url
		FROM likes l
		JOIN videos v ON v.id = l.video_id
		JOIN users u ON u.id = v.owner_id
		WHERE l.liked_by = $1 AND l.video_id IS NOT NULL AND v.is_published = TRUE
		ORDER BY l.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked videos: %w", err)
	}
	defer rows.Close()

	var videos []model.VideoWithOwner
	for rows.Next() {
		v, err := scanVideoWithOwner(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

// CountForTarget returns the number of likes on a single target.
func (r *LikeRepo) CountForTarget(ctx context.Context, kind model.LikeTargetKind, targetID uuid.UUID) (int64, error) {
	col, err := targetColumn(kind)
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM likes WHERE %s = $1`, col),
		targetID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}
