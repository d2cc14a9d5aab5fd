package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

// Create inserts a comment on a video.
func (r *CommentRepo) Create(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*model.Comment, error) {
	query := `
		INSERT INTO comments (video_id, owner_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, video_id, owner_id, content, created_at, updated_at`

	var c model.Comment
	err := r.pool.QueryRow(ctx, query, videoID, ownerID, content).Scan(
		&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &c, nil
}

// FindByID returns a single comment by id.
func (r *CommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `
		SELECT id, video_id, owner_id, content, created_at, updated_at
		FROM comments
		WHERE id = $1`

	var c model.Comment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// ListByVideo returns one page of a video's comments, newest first, with
// authors populated, plus the total count.
func (r *CommentRepo) ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]model.CommentWithOwner, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE video_id = $1`, videoID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	query := `
		SELECT c.id, c.video_id, c.owner_id, c.content, c.created_at, c.updated_at,
		       u.id, u.username, u.fullname, u.avatar_url
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC, c.id
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, videoID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []model.CommentWithOwner
	for rows.Next() {
		var c model.CommentWithOwner
		err := rows.Scan(
			&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
			&c.Owner.ID, &c.Owner.Username, &c.Owner.Fullname, &c.Owner.AvatarURL,
		)
		if err != nil {
			return nil, 0, err
		}
		comments = append(comments, c)
	}
	return comments, total, rows.Err()
}

// Update replaces a comment's content.
func (r *CommentRepo) Update(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	query := `
		UPDATE comments SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, video_id, owner_id, content, created_at, updated_at`

	var c model.Comment
	err := r.pool.QueryRow(ctx, query, id, content).Scan(
		&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// Delete removes a comment. Its likes cascade at the schema level.
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
