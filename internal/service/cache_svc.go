package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vidtube_cache_hits_total",
		Help: "Total Redis cache hits.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vidtube_cache_misses_total",
		Help: "Total Redis cache misses.",
	})
)

const (
	VideoCacheTTL   = 5 * time.Minute
	ChannelCacheTTL = 15 * time.Minute
)

// CacheService provides a Redis cache-aside layer for video and channel
// profile lookups.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetVideo retrieves a cached video. Returns nil if not cached or cache is
// disabled.
func (c *CacheService) GetVideo(ctx context.Context, videoID string) (*model.VideoWithOwner, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, videoKey(videoID)).Bytes()
	if err == redis.Nil {
		cacheMisses.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v model.VideoWithOwner
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	cacheHits.Inc()
	return &v, nil
}

// SetVideo stores a video in cache.
func (c *CacheService) SetVideo(ctx context.Context, videoID string, v *model.VideoWithOwner) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, videoKey(videoID), b, VideoCacheTTL).Err()
}

// InvalidateVideo removes a video from cache (called after mutations).
func (c *CacheService) InvalidateVideo(ctx context.Context, videoID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, videoKey(videoID)).Err()
}

// GetChannel retrieves a cached channel profile. Returns nil if not cached.
func (c *CacheService) GetChannel(ctx context.Context, username string) (*model.ChannelProfile, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, channelKey(username)).Bytes()
	if err == redis.Nil {
		cacheMisses.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p model.ChannelProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	cacheHits.Inc()
	return &p, nil
}

// SetChannel stores a channel profile in cache.
func (c *CacheService) SetChannel(ctx context.Context, username string, p *model.ChannelProfile) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, channelKey(username), b, ChannelCacheTTL).Err()
}

// InvalidateChannel removes a channel profile from cache.
func (c *CacheService) InvalidateChannel(ctx context.Context, username string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, channelKey(username)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func videoKey(videoID string) string {
	return fmt.Sprintf("video:%s", videoID)
}

func channelKey(username string) string {
	return fmt.Sprintf("channel:%s", username)
}
