package processing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/cache"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/clients"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/models"
)

// TrendingFetcher and CommentFetcher are the two source operations the
// analysis layer needs; *clients.YouTubeClient satisfies both.
type TrendingFetcher interface {
	FetchTrending(region string, maxResults int) ([]models.VideoMeta, error)
}

type CommentFetcher interface {
	FetchComments(videoID string, maxResults int, order string) ([]models.Comment, error)
}

// Analyzer ties the fetch layer to the aggregator and memoizes both fetch
// products in an injected TTL cache so repeated renders of the same view
// don't refetch.
type Analyzer struct {
	Trending TrendingFetcher
	Comments CommentFetcher

	cache  cache.Cache
	apiKey string
	ttl    time.Duration
}

func NewAnalyzer(trending TrendingFetcher, comments CommentFetcher, store cache.Cache, apiKey string, ttl time.Duration) *Analyzer {
	return &Analyzer{
		Trending: trending,
		Comments: comments,
		cache:    store,
		apiKey:   apiKey,
		ttl:      ttl,
	}
}

// TrendingVideos returns the region's trending set, cached per
// (apiKey, region, maxResults).
func (a *Analyzer) TrendingVideos(ctx context.Context, region string, maxResults int) ([]models.VideoMeta, error) {
	key := fmt.Sprintf("trending:%s:%s:%d", a.apiKey, region, maxResults)

	if raw, ok := a.cache.Get(ctx, key); ok {
		var videos []models.VideoMeta
		if err := json.Unmarshal(raw, &videos); err == nil {
			return videos, nil
		}
	}

	videos, err := a.Trending.FetchTrending(region, maxResults)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(videos); err == nil {
		a.cache.Put(ctx, key, raw, a.ttl)
	}
	return videos, nil
}

// AnalyzeVideo fetches and aggregates one video's comments, cached per
// (apiKey, videoId). A nil summary with nil error is the absent state:
// zero usable comments or comments disabled.
func (a *Analyzer) AnalyzeVideo(ctx context.Context, videoID string, maxComments int) (*models.SentimentSummary, error) {
	key := fmt.Sprintf("sentiment:%s:%s", a.apiKey, videoID)

	if raw, ok := a.cache.Get(ctx, key); ok {
		var summary *models.SentimentSummary
		if err := json.Unmarshal(raw, &summary); err == nil {
			return summary, nil
		}
	}

	comments, err := a.Comments.FetchComments(videoID, maxComments, "time")
	if err != nil {
		if errors.Is(err, clients.ErrCommentsDisabled) {
			slog.Info("[Analyzer] Comments disabled, nothing to aggregate",
				slog.String("videoId", videoID))
			a.putSummary(ctx, key, nil)
			return nil, nil
		}
		return nil, fmt.Errorf("analyze %s: %w", videoID, err)
	}

	summary := Aggregate(comments)
	a.putSummary(ctx, key, summary)
	return summary, nil
}

// putSummary caches absent results too: a video with no usable comments
// should not be refetched every render either.
func (a *Analyzer) putSummary(ctx context.Context, key string, summary *models.SentimentSummary) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	a.cache.Put(ctx, key, raw, a.ttl)
}
