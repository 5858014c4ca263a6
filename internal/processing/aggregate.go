package processing

import (
	"time"

	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/models"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/sentiment"
)

// Aggregate scores a video's comments and rolls them up into a
// SentimentSummary. A nil return means there was nothing to aggregate;
// callers must treat that as "no data", not as a zero-valued summary.
//
// The time series only covers comments whose timestamps parse and fall in
// the trailing 24h window anchored at the newest comment. The counts and
// AvgSentiment deliberately do not share that window: they run over every
// scored comment, timestamped or not.
func Aggregate(comments []models.Comment) *models.SentimentSummary {
	if len(comments) == 0 {
		return nil
	}

	scored := make([]models.ScoredComment, 0, len(comments))
	for _, c := range comments {
		scored = append(scored, models.ScoredComment{
			Comment: c,
			Score:   sentiment.ScoreText(c.Text),
		})
	}

	summary := &models.SentimentSummary{
		Total:      len(scored),
		TimeSeries: buildTimeSeries(scored),
	}

	var sum float64
	for _, sc := range scored {
		sum += sc.Score.Compound
		switch sc.Score.Label {
		case models.LabelPositive:
			summary.Positive++
		case models.LabelNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}
	}
	summary.AvgSentiment = sum / float64(len(scored))

	return summary
}

// buildTimeSeries buckets compound scores into 24 one-hour slots ending at
// the hour of the newest parseable timestamp. Comments whose hour falls
// before the first slot (or that have no parseable timestamp at all) are
// left out of the series; when nothing has a usable timestamp all 24 slots
// stay empty.
func buildTimeSeries(scored []models.ScoredComment) models.TimeSeries {
	series := make(models.TimeSeries, models.TimeSeriesLen)

	var latest time.Time
	found := false
	for _, sc := range scored {
		t, err := time.Parse(time.RFC3339, sc.PublishedAt)
		if err != nil {
			continue
		}
		if !found || t.After(latest) {
			latest = t
			found = true
		}
	}
	if !found {
		return series
	}

	// Slot 23 is the anchor hour; slot 0 is 23 hours earlier.
	firstHour := latest.Truncate(time.Hour).Add(-(models.TimeSeriesLen - 1) * time.Hour)

	sums := make([]float64, models.TimeSeriesLen)
	counts := make([]int, models.TimeSeriesLen)
	for _, sc := range scored {
		t, err := time.Parse(time.RFC3339, sc.PublishedAt)
		if err != nil {
			continue
		}
		k := int(t.Truncate(time.Hour).Sub(firstHour) / time.Hour)
		if k < 0 || k >= models.TimeSeriesLen {
			continue
		}
		sums[k] += sc.Score.Compound
		counts[k]++
	}

	for k := range series {
		if counts[k] > 0 {
			avg := sums[k] / float64(counts[k])
			series[k] = &avg
		}
	}
	return series
}
