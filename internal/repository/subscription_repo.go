package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
)

type SubscriptionRepo struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepo(pool *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// Toggle flips the subscription state for (subscriberID, channelID) in one
// transaction. The UNIQUE constraint on the pair keeps concurrent toggles
// from double-inserting. Returns true when the subscription now exists.
func (r *SubscriptionRepo) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (subscribed bool, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`,
		subscriberID, channelID)
	if err != nil {
		return false, translate(err)
	}

	if tag.RowsAffected() == 0 {
		_, err = tx.Exec(ctx, `
			INSERT INTO subscriptions (subscriber_id, channel_id)
			VALUES ($1, $2)
			ON CONFLICT (subscriber_id, channel_id) DO NOTHING`,
			subscriberID, channelID)
		if err != nil {
			return false, translate(err)
		}
		subscribed = true
	}

	return subscribed, tx.Commit(ctx)
}

// Subscribers returns the users subscribed to a channel, newest first.
func (r *SubscriptionRepo) Subscribers(ctx context.Context, channelID uuid.UUID) ([]model.Subscriber, error) {
	query := `
		SELECT s.id, s.subscriber_id, s.channel_id, s.created_at,
		       u.id, u.username, u.fullname, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.pool.Query(ctx, query, channelID)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	var subs []model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		err := rows.Scan(
			&s.ID, &s.SubscriberID, &s.ChannelID, &s.CreatedAt,
			&s.Subscriber.ID, &s.Subscriber.Username, &s.Subscriber.Fullname, &s.Subscriber.AvatarURL,
		)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// SubscribedChannels returns the channels a user subscribes to, newest first.
func (r *SubscriptionRepo) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]model.SubscribedChannel, error) {
	query := `
		SELECT s.id, s.subscriber_id, s.channel_id, s.created_at,
		       u.id, u.username, u.fullname, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.pool.Query(ctx, query, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("list subscribed channels: %w", err)
	}
	defer rows.Close()

	var subs []model.SubscribedChannel
	for rows.Next() {
		var s model.SubscribedChannel
		err := rows.Scan(
			&s.ID, &s.SubscriberID, &s.ChannelID, &s.CreatedAt,
			&s.Channel.ID, &s.Channel.Username, &s.Channel.Fullname, &s.Channel.AvatarURL,
		)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
