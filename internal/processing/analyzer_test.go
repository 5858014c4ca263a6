package processing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/cache"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/clients"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/models"
)

type erroringComments struct {
	err   error
	calls int
}

func (e *erroringComments) FetchComments(videoID string, maxResults int, order string) ([]models.Comment, error) {
	e.calls++
	return nil, e.err
}

func TestAnalyzeVideoUsesCache(t *testing.T) {
	comments := &fakeComments{byVideo: map[string][]models.Comment{
		"vid-a": {{Text: "Great video!", PublishedAt: "2024-06-01T10:00:00Z"}},
	}}
	analyzer := NewAnalyzer(&fakeTrending{}, comments, cache.NewMemory(), "test-key", time.Minute)

	ctx := context.Background()
	first, err := analyzer.AnalyzeVideo(ctx, "vid-a", 200)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := analyzer.AnalyzeVideo(ctx, "vid-a", 200)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, 1, comments.calls)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.AvgSentiment, second.AvgSentiment)
	assert.Len(t, second.TimeSeries, 24)
}

func TestAnalyzeVideoCachesAbsentResult(t *testing.T) {
	comments := &fakeComments{byVideo: map[string][]models.Comment{}}
	analyzer := NewAnalyzer(&fakeTrending{}, comments, cache.NewMemory(), "test-key", time.Minute)

	ctx := context.Background()
	summary, err := analyzer.AnalyzeVideo(ctx, "empty-video", 200)
	require.NoError(t, err)
	assert.Nil(t, summary)

	summary, err = analyzer.AnalyzeVideo(ctx, "empty-video", 200)
	require.NoError(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, 1, comments.calls)
}

func TestAnalyzeVideoCommentsDisabledIsAbsentNotError(t *testing.T) {
	comments := &erroringComments{err: clients.ErrCommentsDisabled}
	analyzer := NewAnalyzer(&fakeTrending{}, comments, cache.NewMemory(), "test-key", time.Minute)

	summary, err := analyzer.AnalyzeVideo(context.Background(), "locked-video", 200)
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestAnalyzeVideoPropagatesFetchErrors(t *testing.T) {
	comments := &erroringComments{err: &clients.RetryableError{StatusCode: 503}}
	analyzer := NewAnalyzer(&fakeTrending{}, comments, cache.NewMemory(), "test-key", time.Minute)

	_, err := analyzer.AnalyzeVideo(context.Background(), "flaky-video", 200)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flaky-video")
}

func TestTrendingVideosUsesCache(t *testing.T) {
	trending := &fakeTrending{byRegion: map[string][]models.VideoMeta{
		"CA": {{VideoID: "vid-a", Title: "A"}},
	}}
	analyzer := NewAnalyzer(trending, &fakeComments{}, cache.NewMemory(), "test-key", time.Minute)

	ctx := context.Background()
	first, err := analyzer.TrendingVideos(ctx, "CA", 10)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := analyzer.TrendingVideos(ctx, "CA", 10)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, 1, trending.calls)
}
