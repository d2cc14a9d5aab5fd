package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// sortColumns maps caller-facing sort keys to real columns. Anything else
// falls back to created_at so user input never reaches the SQL string.
var sortColumns = map[string]string{
	"createdAt": "v.created_at",
	"views":     "v.views",
	"duration":  "v.duration",
	"title":     "v.title",
}

const videoColumns = `v.id, v.owner_id, v.title, v.description, v.video_url,
	v.thumbnail_url, v.duration, v.views, v.is_published, v.created_at, v.updated_at`

func scanVideoWithOwner(row interface{ Scan(...any) error }) (*model.VideoWithOwner, error) {
	var v model.VideoWithOwner
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL,
		&v.ThumbnailURL, &v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
		&v.Owner.ID, &v.Owner.Username, &v.Owner.Fullname, &v.Owner.AvatarURL,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// Create inserts a new video owned by v.OwnerID.
func (r *VideoRepo) Create(ctx context.Context, v *model.Video) (*model.Video, error) {
	query := `
		INSERT INTO videos (owner_id, title, description, video_url, thumbnail_url, duration, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, title, description, video_url, thumbnail_url,
		          duration, views, is_published, created_at, updated_at`

	var created model.Video
	err := r.pool.QueryRow(ctx, query,
		v.OwnerID, v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.Duration, v.IsPublished,
	).Scan(
		&created.ID, &created.OwnerID, &created.Title, &created.Description, &created.VideoURL,
		&created.ThumbnailURL, &created.Duration, &created.Views, &created.IsPublished,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}
	return &created, nil
}

// FindByID returns a single video with its owner populated, regardless of
// publish state. Callers decide whether drafts are visible.
func (r *VideoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error) {
	query := `
		SELECT ` + videoColumns + `, u.id, u.username, u.fullname, u.avatar_url
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.id = $1`
	return scanVideoWithOwner(r.pool.QueryRow(ctx, query, id))
}

// List returns one page of videos matching params plus the total match
// count. Only published videos are returned unless the owner filter matches
// the requesting user upstream.
func (r *VideoRepo) List(ctx context.Context, params model.VideoListParams, includeUnpublished bool) ([]model.VideoWithOwner, int64, error) {
	var (
		conds []string
		args  []any
	)
	if !includeUnpublished {
		conds = append(conds, "v.is_published = TRUE")
	}
	if params.Query != "" {
		args = append(args, "%"+params.Query+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(v.title ILIKE $%d OR v.description ILIKE $%d)", n, n))
	}
	if params.OwnerID != nil {
		args = append(args, *params.OwnerID)
		conds = append(conds, fmt.Sprintf("v.owner_id = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM videos v ` + where
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count videos: %w", err)
	}

	sortCol, ok := sortColumns[params.SortBy]
	if !ok {
		sortCol = "v.created_at"
	}
	dir := "DESC"
	if params.SortAsc {
		dir = "ASC"
	}

	args = append(args, params.Limit, (params.Page-1)*params.Limit)
	query := fmt.Sprintf(`
		SELECT %s, u.id, u.username, u.fullname, u.avatar_url
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		%s
		ORDER BY %s %s, v.id
		LIMIT $%d OFFSET $%d`,
		videoColumns, where, sortCol, dir, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	var videos []model.VideoWithOwner
	for rows.Next() {
		v, err := scanVideoWithOwner(rows)
		if err != nil {
			return nil, 0, err
		}
		videos = append(videos, *v)
	}
	return videos, total, rows.Err()
}

// Update sets title, description and optionally the thumbnail, keeping
// existing values where the argument is empty.
func (r *VideoRepo) Update(ctx context.Context, id uuid.UUID, title, description, thumbnailURL string) (*model.Video, error) {
	query := `
		UPDATE videos SET
			title = COALESCE(NULLIF($2, ''), title),
			description = COALESCE(NULLIF($3, ''), description),
			thumbnail_url = COALESCE(NULLIF($4, ''), thumbnail_url),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, owner_id, title, description, video_url, thumbnail_url,
		          duration, views, is_published, created_at, updated_at`

	var v model.Video
	err := r.pool.QueryRow(ctx, query, id, title, description, thumbnailURL).Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL,
		&v.ThumbnailURL, &v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// Delete removes a video. Likes and comments cascade at the schema level.
func (r *VideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TogglePublish flips is_published in a single statement and returns the
// new state.
func (r *VideoRepo) TogglePublish(ctx context.Context, id uuid.UUID) (bool, error) {
	var published bool
	err := r.pool.QueryRow(ctx, `
		UPDATE videos SET is_published = NOT is_published, updated_at = NOW()
		WHERE id = $1
		RETURNING is_published`, id).Scan(&published)
	if err != nil {
		return false, translate(err)
	}
	return published, nil
}

// IncrementViews bumps the view counter. Concurrent increments are safe
// because the addition happens inside the UPDATE.
func (r *VideoRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
