package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
)

type TweetRepo struct {
	pool *pgxpool.Pool
}

func NewTweetRepo(pool *pgxpool.Pool) *TweetRepo {
	return &TweetRepo{pool: pool}
}

// Create inserts a tweet.
func (r *TweetRepo) Create(ctx context.Context, ownerID uuid.UUID, content string) (*model.Tweet, error) {
	query := `
		INSERT INTO tweets (owner_id, content)
		VALUES ($1, $2)
		RETURNING id, owner_id, content, created_at, updated_at`

	var t model.Tweet
	err := r.pool.QueryRow(ctx, query, ownerID, content).Scan(
		&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert tweet: %w", err)
	}
	return &t, nil
}

// FindByID returns a single tweet by id.
func (r *TweetRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	query := `
		SELECT id, owner_id, content, created_at, updated_at
		FROM tweets
		WHERE id = $1`

	var t model.Tweet
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// ListByOwner returns all of a user's tweets, newest first.
func (r *TweetRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Tweet, error) {
	query := `
		SELECT id, owner_id, content, created_at, updated_at
		FROM tweets
		WHERE owner_id = $1
		ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}
	defer rows.Close()

	var tweets []model.Tweet
	for rows.Next() {
		var t model.Tweet
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}

// Update replaces a tweet's content.
func (r *TweetRepo) Update(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error) {
	query := `
		UPDATE tweets SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, owner_id, content, created_at, updated_at`

	var t model.Tweet
	err := r.pool.QueryRow(ctx, query, id, content).Scan(
		&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// Delete removes a tweet. Its likes cascade at the schema level.
func (r *TweetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
