package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, username, email, fullname, password_hash, avatar_url,
	cover_image_url, refresh_token, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Fullname, &u.PasswordHash,
		&u.AvatarURL, &u.CoverImageURL, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// Create inserts a new user. Returns ErrConflict when the username or email
// is already taken.
func (r *UserRepo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (username, email, fullname, password_hash, avatar_url, cover_image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		u.Username, u.Email, u.Fullname, u.PasswordHash, u.AvatarURL, u.CoverImageURL))
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// FindByID returns a single user by id.
func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

// FindByUsername returns a single user by username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.pool.QueryRow(ctx, query, username))
}

// FindByUsernameOrEmail matches either credential identifier at login.
func (r *UserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2`
	return scanUser(r.pool.QueryRow(ctx, query, username, email))
}

// UpdateRefreshToken stores the user's current refresh token; nil clears it.
func (r *UserRepo) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET refresh_token = $2, updated_at = NOW()
		WHERE id = $1`, id, token)
	if err != nil {
		return fmt.Errorf("update refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile sets fullname and email, keeping existing values where the
// argument is empty.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, fullname, email string) (*model.User, error) {
	query := `
		UPDATE users SET
			fullname = COALESCE(NULLIF($2, ''), fullname),
			email = COALESCE(NULLIF($3, ''), email),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(r.pool.QueryRow(ctx, query, id, fullname, email))
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

// UpdateAvatar replaces the avatar image URL.
func (r *UserRepo) UpdateAvatar(ctx context.Context, id uuid.UUID, url string) (*model.User, error) {
	query := `
		UPDATE users SET avatar_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, id, url))
}

// UpdateCoverImage replaces the cover image URL.
func (r *UserRepo) UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) (*model.User, error) {
	query := `
		UPDATE users SET cover_image_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, id, url))
}

// ChannelProfile returns the public channel page for a username, including
// subscriber counters and whether viewerID already subscribes. viewerID may
// be uuid.Nil for anonymous viewers.
func (r *UserRepo) ChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*model.ChannelProfile, error) {
	query := `
		SELECT u.id, u.username, u.fullname, u.avatar_url, u.cover_image_url,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id) AS subscriber_count,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id) AS subscribed_to,
		       EXISTS (SELECT 1 FROM subscriptions s WHERE s.channel_id = u.id AND s.subscriber_id = $2) AS is_subscribed,
		       u.created_at
		FROM users u
		WHERE u.username = $1`

	var p model.ChannelProfile
	err := r.pool.QueryRow(ctx, query, username, viewerID).Scan(
		&p.ID, &p.Username, &p.Fullname, &p.AvatarURL, &p.CoverImageURL,
		&p.SubscriberCount, &p.SubscribedTo, &p.IsSubscribed, &p.CreatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// ChannelStats returns the dashboard aggregate for a channel. Likes are
// counted over the channel's own videos.
func (r *UserRepo) ChannelStats(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM videos v WHERE v.owner_id = $1) AS total_videos,
			(SELECT COALESCE(SUM(v.views), 0) FROM videos v WHERE v.owner_id = $1) AS total_views,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = $1) AS total_subscribers,
			(SELECT COUNT(*) FROM likes l JOIN videos v ON v.id = l.video_id WHERE v.owner_id = $1) AS total_likes`

	var stats model.ChannelStats
	err := r.pool.QueryRow(ctx, query, channelID).Scan(
		&stats.TotalVideos, &stats.TotalViews, &stats.TotalSubscribers, &stats.TotalLikes,
	)
	if err != nil {
		return nil, fmt.Errorf("channel stats: %w", err)
	}
	return &stats, nil
}
