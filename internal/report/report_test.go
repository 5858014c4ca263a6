package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/models"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/processing"
)

func TestDashboardRendersSummaryAndAbsentState(t *testing.T) {
	avg := 0.42
	series := make(models.TimeSeries, models.TimeSeriesLen)
	series[23] = &avg

	sections := []VideoSection{
		{
			Video: models.VideoMeta{Title: "Scored Video", Channel: "Chan", Views: 1000},
			Summary: &models.SentimentSummary{
				AvgSentiment: avg,
				Positive:     7, Neutral: 2, Negative: 1, Total: 10,
				TimeSeries: series,
			},
			Narrative: "Viewers are happy.",
		},
		{
			Video: models.VideoMeta{Title: "Quiet Video", Channel: "Chan"},
		},
	}

	out := Dashboard("CA", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), sections)

	assert.Contains(t, out, "# YouTube Trending Sentiment — CA")
	assert.Contains(t, out, "Scored Video")
	assert.Contains(t, out, "70% positive / 20% neutral / 10% negative (10 comments)")
	assert.Contains(t, out, "Viewers are happy.")
	assert.Contains(t, out, "Sentiment not available")
}

func TestComparisonTable(t *testing.T) {
	cmp := &processing.Comparison{
		Order: []string{"CA", "US"},
		Summaries: map[string]models.RegionSummary{
			"CA": {Region: "CA", AvgSentiment: 0.3, Positive: 6, Neutral: 2, Negative: 2, Total: 10, VideoCount: 2},
			"US": {Region: "US", AvgSentiment: -0.2, Positive: 2, Neutral: 2, Negative: 6, Total: 10, VideoCount: 3},
		},
	}

	out := ComparisonTable(cmp)

	assert.Contains(t, out, "| CA | +0.300 |")
	assert.Contains(t, out, "| US | -0.200 |")
	assert.Contains(t, out, "Most positive: **CA**")
	assert.Contains(t, out, "Most negative: **US**")
	// Both regions have 10 comments; encounter order breaks the tie.
	assert.Contains(t, out, "Most active: **CA**")
}

func TestRenderHTML(t *testing.T) {
	html := string(RenderHTML("# Title\n\nSome **bold** text.\n"))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	// blackfriday's default extensions add an id attribute to headings.
	assert.Contains(t, html, "Title</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestSparkline(t *testing.T) {
	series := make(models.TimeSeries, models.TimeSeriesLen)
	hi, lo := 1.0, -1.0
	series[0] = &lo
	series[23] = &hi

	line := sparkline(series)
	runes := []rune(line)
	assert.Len(t, runes, models.TimeSeriesLen)
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, '█', runes[23])
	assert.Equal(t, '·', runes[1])
}
