package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
)

// StatsStore aggregates the dashboard counters for a channel.
type StatsStore interface {
	ChannelStats(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error)
}

// DashboardService serves a channel owner's private dashboard: aggregate
// stats and the channel's full video list including drafts.
type DashboardService struct {
	stats  StatsStore
	videos VideoStore
}

func NewDashboardService(stats StatsStore, videos VideoStore) *DashboardService {
	return &DashboardService{stats: stats, videos: videos}
}

// Stats returns the aggregate counters for the caller's own channel.
func (s *DashboardService) Stats(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error) {
	return s.stats.ChannelStats(ctx, channelID)
}

// Videos returns every video on the caller's own channel, drafts included.
func (s *DashboardService) Videos(ctx context.Context, channelID uuid.UUID, page, limit int) (model.Page[model.VideoWithOwner], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	params := model.VideoListParams{
		OwnerID: &channelID,
		SortBy:  "createdAt",
		Page:    page,
		Limit:   limit,
	}
	videos, total, err := s.videos.List(ctx, params, true)
	if err != nil {
		return model.Page[model.VideoWithOwner]{}, err
	}
	return model.NewPage(videos, total, page, limit), nil
}
